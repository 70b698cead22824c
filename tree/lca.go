package tree

import "fmt"

// FindLCA returns the lowest node whose leaves cover every label in labels.
//
// Implementation:
//   - Stage 1: reject an empty set or labels that are not leaf labels (ErrNotFound).
//   - Stage 2: one post-order pass counts, per node, how many distinct target
//     labels lie beneath it.
//   - Stage 3: breadth-first descent from the root; a node is a candidate when
//     it covers the whole set, only candidates are expanded, and the last
//     candidate dequeued is the answer.
//
// Leaf labels are assumed unique; with duplicates the answer is one of the
// covering nodes, not necessarily the intended one.
//
// Complexity: O(n·k) time for k target labels, O(n) extra space.
func (t *Tree) FindLCA(labels []string) (*Node, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: empty label set", ErrNotFound)
	}
	leaves := t.LeafIndex()
	target := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if !leaves.Contains(l) {
			return nil, fmt.Errorf("%w: %q is not a leaf label", ErrNotFound, l)
		}
		target[l] = struct{}{}
	}

	covered := coverage(t.root, target)
	want := len(target)

	var lca *Node
	queue := []*Node{t.root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(covered[cur]) < want {
			continue
		}
		lca = cur
		queue = append(queue, cur.children...)
	}
	if lca == nil {
		return nil, fmt.Errorf("%w: no node covers %v", ErrNotFound, labels)
	}

	return lca, nil
}

// coverage maps each node under root to the set of target labels found
// among its leaves. Nodes covering nothing are absent.
func coverage(root *Node, target map[string]struct{}) map[*Node]map[string]struct{} {
	covered := make(map[*Node]map[string]struct{})
	for n := range root.Postorder() {
		if n.IsLeaf() {
			if _, ok := target[n.Label]; ok {
				covered[n] = map[string]struct{}{n.Label: {}}
			}
			continue
		}
		var set map[string]struct{}
		for _, c := range n.children {
			for l := range covered[c] {
				if set == nil {
					set = make(map[string]struct{}, len(target))
				}
				set[l] = struct{}{}
			}
		}
		if set != nil {
			covered[n] = set
		}
	}

	return covered
}
