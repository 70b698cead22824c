package bipartition

import "github.com/katalvlaran/phylotree/tree"

// Extract returns the splits of t in breadth-first discovery order together
// with t's leaf labels in post-order.
//
// Rooted: the root's own split(s) come first (see package doc), followed by
// one split per internal node that is neither the root nor a root child.
// Unrooted: one split per internal non-root node.
// Edges to leaves are never emitted.
//
// Complexity: O(n·h) time, where h is the tree height.
func Extract(t *tree.Tree, rooted bool) ([]Bipartition, []string) {
	labels := t.LeafLabels()
	under := leafSets(t.Root())
	root := t.Root()

	var out []Bipartition
	if rooted {
		out = append(out, rootSplits(root, under, labels)...)
	}
	for n := range t.LevelOrder() {
		if n.IsRoot() || n.IsLeaf() {
			continue
		}
		if rooted && n.Parent().IsRoot() {
			continue
		}
		out = append(out, New(under[n], complement(under[n], labels)))
	}

	return out, labels
}

// rootSplits emits the split(s) carried by the root in rooted mode.
func rootSplits(root *tree.Node, under map[*tree.Node][]string, labels []string) []Bipartition {
	switch k := root.NumChildren(); {
	case k == 2:
		left, right := root.Child(0), root.Child(1)
		return []Bipartition{New(under[left], under[right])}
	case k > 2:
		var out []Bipartition
		for i := 0; i < k; i++ {
			c := root.Child(i)
			if c.IsLeaf() {
				continue
			}
			out = append(out, New(under[c], complement(under[c], labels)))
		}
		return out
	}

	return nil
}

// leafSets maps every node to its leaf labels, left to right, in one
// post-order pass.
func leafSets(root *tree.Node) map[*tree.Node][]string {
	under := make(map[*tree.Node][]string)
	for n := range root.Postorder() {
		if n.IsLeaf() {
			under[n] = []string{n.Label}
			continue
		}
		var set []string
		for i := 0; i < n.NumChildren(); i++ {
			set = append(set, under[n.Child(i)]...)
		}
		under[n] = set
	}

	return under
}

// complement returns the labels not in side, in the order of labels.
func complement(side, labels []string) []string {
	in := make(map[string]struct{}, len(side))
	for _, l := range side {
		in[l] = struct{}{}
	}
	out := make([]string, 0, len(labels)-len(side))
	for _, l := range labels {
		if _, ok := in[l]; !ok {
			out = append(out, l)
		}
	}

	return out
}
