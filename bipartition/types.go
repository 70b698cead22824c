package bipartition

import (
	"slices"
	"strings"
)

// Bipartition is the pair of leaf-label sets on either side of one edge.
// Sides keep the order in which the labels were discovered.
type Bipartition struct {
	A []string
	B []string
}

// New returns the bipartition (a, b).
func New(a, b []string) Bipartition {
	return Bipartition{A: a, B: b}
}

// Minor returns a sorted copy of the smaller side. Ties go to the side whose
// sorted labels compare lexicographically lower.
func (bp Bipartition) Minor() []string {
	a := slices.Sorted(slices.Values(bp.A))
	b := slices.Sorted(slices.Values(bp.B))
	if compareMinor(a, b) <= 0 {
		return a
	}

	return b
}

// Equal reports whether bp and other have the same minor side.
func (bp Bipartition) Equal(other Bipartition) bool {
	return slices.Equal(bp.Minor(), other.Minor())
}

// String renders the split as "a,b|c,d,e", minor side first.
func (bp Bipartition) String() string {
	minor := bp.Minor()
	major := bp.B
	if !slices.Equal(minor, slices.Sorted(slices.Values(bp.A))) {
		major = bp.A
	}

	return strings.Join(minor, ",") + "|" + strings.Join(slices.Sorted(slices.Values(major)), ",")
}

// compareMinor orders sorted label sets by size, then lexicographically.
func compareMinor(a, b []string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}

	return slices.Compare(a, b)
}

// minors returns the minor side of every split, index-aligned with bps.
func minors(bps []Bipartition) [][]string {
	out := make([][]string, len(bps))
	for i, bp := range bps {
		out[i] = bp.Minor()
	}

	return out
}
