package bipartition

import (
	"slices"

	"github.com/katalvlaran/phylotree/tree"
)

// StrictConsensus returns the tree holding exactly the rooted splits shared
// by t1 and t2, over t1's leaf labels. Splits found in only one input
// collapse into polytomies.
//
// Each split of t2 can be matched at most once.
// Complexity: O(m1·m2·s) for m1, m2 splits of minor size s, plus reconstruction.
func StrictConsensus(t1, t2 *tree.Tree, opts ...Option) (*tree.Tree, error) {
	b1, labels := Extract(t1, true)
	b2, _ := Extract(t2, true)

	m2 := minors(b2)
	used := make([]bool, len(m2))
	shared := make([]Bipartition, 0, len(b1))
	for _, bp := range b1 {
		minor := bp.Minor()
		for j := range m2 {
			if !used[j] && slices.Equal(minor, m2[j]) {
				used[j] = true
				shared = append(shared, bp)
				break
			}
		}
	}

	return Reconstruct(shared, labels, opts...)
}

// RobinsonFoulds returns the number of splits of t1 absent from t2 plus the
// number of splits of t2 absent from t1, and maxScore = |splits(t1)| +
// |splits(t2)| for normalization. Matching is by minor side and does not
// consume splits.
func RobinsonFoulds(t1, t2 *tree.Tree, rooted bool) (score, maxScore int) {
	b1, _ := Extract(t1, rooted)
	b2, _ := Extract(t2, rooted)
	m1, m2 := minors(b1), minors(b2)

	score = unmatched(m1, m2) + unmatched(m2, m1)
	maxScore = len(b1) + len(b2)

	return score, maxScore
}

// Normalized scales an RF score into [0,1]. It returns 0 when maxScore is 0.
func Normalized(score, maxScore int) float64 {
	if maxScore == 0 {
		return 0
	}

	return float64(score) / float64(maxScore)
}

// unmatched counts entries of from with no equal entry in to.
func unmatched(from, to [][]string) int {
	count := 0
	for _, m := range from {
		if !slices.ContainsFunc(to, func(o []string) bool { return slices.Equal(m, o) }) {
			count++
		}
	}

	return count
}
