package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/phylotree/tree"
)

// String serializes t with the given format, including the trailing ';'.
func String(t *tree.Tree, f Format) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("%w: %d", ErrFormat, int(f))
	}
	var b strings.Builder
	writeNode(&b, t.Root(), f, true)
	b.WriteByte(terminal)

	return b.String(), nil
}

// Write serializes t to w.
func Write(w io.Writer, t *tree.Tree, f Format) error {
	s, err := String(t, f)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

func writeNode(b *strings.Builder, n *tree.Node, f Format, root bool) {
	if n.IsLeaf() {
		b.WriteString(n.Label)
	} else {
		b.WriteByte(descStart)
		for i := 0; i < n.NumChildren(); i++ {
			if i > 0 {
				b.WriteByte(descDelimiter)
			}
			writeNode(b, n.Child(i), f, false)
		}
		b.WriteByte(descEnd)
		if f.InternalNames() {
			b.WriteString(n.Label)
		}
	}
	if f.Lengths() && !root {
		b.WriteByte(lengthStart)
		b.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
}
