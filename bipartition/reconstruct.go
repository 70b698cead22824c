package bipartition

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/phylotree/tree"
)

// Reconstruct builds the tree induced by bps over labels.
//
// Implementation:
//   - Stage 1: a star tree with every label as a direct leaf child of the root.
//   - Stage 2: sort the minor sides by size, ties broken lexicographically.
//   - Stage 3: for each minor side, find its LCA in the tree being built and
//     group every LCA child whose leaves lie inside the minor side under a new
//     clade (ResolvePolytomy).
//
// Smaller splits are resolved first, so every split finds its members as
// direct children of a single node. A split whose members already form one
// clade, or that selects nothing, leaves the tree unchanged; a single-label
// minor side, as carried by a root split with a leaf child, is such a split.
//
// Errors:
//   - tree.ErrNotFound (wrapped) when a minor side is empty or names a label
//     outside labels; reconstruction stops there.
//
// Complexity: O(n·k) for n labels and k splits.
func Reconstruct(bps []Bipartition, labels []string, opts ...Option) (*tree.Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	root := tree.NewNode(o.RootLabel, 0)
	for _, l := range labels {
		root.AddChild(l, 0)
	}
	t := tree.New(root)

	order := minors(bps)
	slices.SortStableFunc(order, compareMinor)
	for _, minor := range order {
		if err := refine(t, minor, o); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// refine groups the members of minor under a new clade below their LCA.
func refine(t *tree.Tree, minor []string, o Options) error {
	lca, err := t.FindLCA(minor)
	if err != nil {
		return fmt.Errorf("bipartition: reconstruct split {%v}: %w", minor, err)
	}

	want := make(map[string]struct{}, len(minor))
	for _, l := range minor {
		want[l] = struct{}{}
	}
	var selected []*tree.Node
	for _, c := range lca.Children() {
		if within(c.LeafLabels(), want) {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 || len(selected) == lca.NumChildren() {
		return nil
	}
	_, err = lca.ResolvePolytomy(selected, o.CladeLabel(minor))

	return err
}

func within(labels []string, set map[string]struct{}) bool {
	for _, l := range labels {
		if _, ok := set[l]; !ok {
			return false
		}
	}

	return true
}
