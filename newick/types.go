package newick

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates malformed notation. The wrapped message carries the
	// byte offset into the whitespace-stripped input.
	ErrParse = errors.New("newick: parse error")

	// ErrFormat indicates a Format code outside 0..3.
	ErrFormat = errors.New("newick: unknown format")
)

// Format selects which fields are written.
type Format int

const (
	// LeafNames writes leaf names only.
	LeafNames Format = iota
	// LeafNamesLengths writes leaf names and every non-root branch length.
	LeafNamesLengths
	// AllNames writes leaf and internal names.
	AllNames
	// AllNamesLengths writes leaf and internal names and branch lengths.
	AllNamesLengths
)

// Valid reports whether f is one of the four known codes.
func (f Format) Valid() bool {
	return f >= LeafNames && f <= AllNamesLengths
}

// InternalNames reports whether f writes internal node labels.
func (f Format) InternalNames() bool {
	return f == AllNames || f == AllNamesLengths
}

// Lengths reports whether f writes branch lengths.
func (f Format) Lengths() bool {
	return f == LeafNamesLengths || f == AllNamesLengths
}

func (f Format) String() string {
	switch f {
	case LeafNames:
		return "leaf-names"
	case LeafNamesLengths:
		return "leaf-names+lengths"
	case AllNames:
		return "all-names"
	case AllNamesLengths:
		return "all-names+lengths"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// errf wraps ErrParse with the offset at which the problem was found.
func errf(pos int, format string, v ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", ErrParse, pos, fmt.Sprintf(format, v...))
}
