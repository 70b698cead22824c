package newick

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/phylotree/tree"
)

// Reader reads a sequence of ';'-terminated trees from a stream.
type Reader struct {
	buf *bufio.Reader
}

// NewReader returns a reader ready for reading trees from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(r)}
}

// ReadTree reads the next tree. When only whitespace remains, a nil tree is
// returned with io.EOF. A final tree without its terminator yields ErrParse.
func (r *Reader) ReadTree() (*tree.Tree, error) {
	chunk, err := r.buf.ReadString(terminal)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if err == io.EOF && strings.TrimSpace(chunk) == "" {
		return nil, io.EOF
	}

	return Parse(chunk)
}

// ReadAll returns every tree in the input. The first error aborts the read
// and no trees are returned. The error is never io.EOF.
func (r *Reader) ReadAll() ([]*tree.Tree, error) {
	trees := make([]*tree.Tree, 0)
	for {
		t, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}

	return trees, nil
}
