package store

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/phylotree/newick"
	"github.com/katalvlaran/phylotree/tree"
)

// Load parses a tree from source. If source names an existing regular file,
// its first line is parsed; otherwise source itself is parsed as notation.
// A source naming a directory yields ErrIO.
func Load(source string) (*tree.Tree, error) {
	info, err := os.Stat(source)
	if err != nil {
		// not a path (missing, or too long to be one): inline notation
		return newick.Parse(source)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrIO, source)
	}
	line, err := readFirstLine(source)
	if err != nil {
		return nil, err
	}

	return newick.Parse(line)
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	return line, nil
}

// Save writes t to path in format f, creating or truncating the file.
// An invalid format is rejected before the file is touched.
func Save(path string, t *tree.Tree, f newick.Format) (err error) {
	s, err := newick.String(t, f)
	if err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", ErrIO, path, cerr)
		}
	}()

	if _, err := io.WriteString(fh, s); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}

	return nil
}
