package tree

import (
	"fmt"
	"iter"
	"strconv"
)

// Len returns the number of leaves.
// Complexity: O(n).
func (t *Tree) Len() int {
	count := 0
	for n := range t.root.Postorder() {
		if n.IsLeaf() {
			count++
		}
	}

	return count
}

// Height returns the maximum number of edges on a root-to-leaf path.
func (t *Tree) Height() int {
	return t.root.Height()
}

// TotalBranchLength sums Length over every non-root node.
func (t *Tree) TotalBranchLength() float64 {
	total := 0.0
	for n := range t.root.LevelOrder() {
		if n != t.root {
			total += n.Length
		}
	}

	return total
}

// Leaves returns the leaf nodes left to right.
func (t *Tree) Leaves() []*Node {
	return t.root.Leaves()
}

// LeafLabels returns the leaf labels left to right.
func (t *Tree) LeafLabels() []string {
	return t.root.LeafLabels()
}

// Postorder walks the whole tree, descendants first.
func (t *Tree) Postorder() iter.Seq[*Node] {
	return t.root.Postorder()
}

// LevelOrder walks the whole tree breadth-first from the root.
func (t *Tree) LevelOrder() iter.Seq[*Node] {
	return t.root.LevelOrder()
}

// PathTo returns the nodes from the root down to n, inclusive.
// ErrNotFound is returned when n belongs to a different tree.
func (t *Tree) PathTo(n *Node) ([]*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	var path []*Node
	cur := n
	for ; cur.parent != nil; cur = cur.parent {
		path = append(path, cur)
	}
	if cur != t.root {
		return nil, fmt.Errorf("%w: %q is not part of this tree", ErrNotFound, n.Label)
	}
	path = append(path, cur)
	// reverse to root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// HasLeafNames reports whether every leaf carries a non-empty label.
func (t *Tree) HasLeafNames() bool {
	for n := range t.root.Postorder() {
		if n.IsLeaf() && n.Label == "" {
			return false
		}
	}

	return true
}

// SetLeafNames labels every unnamed leaf "leaf1", "leaf2", … left to right.
// Named leaves are kept as they are.
func (t *Tree) SetLeafNames() {
	count := 1
	for n := range t.root.Postorder() {
		if n.IsLeaf() && n.Label == "" {
			n.Label = "leaf" + strconv.Itoa(count)
			count++
		}
	}
}

// SetNodeNames overwrites every label breadth-first: the root becomes "root",
// internal nodes "internal1", "internal2", … and leaves "leaf1", "leaf2", ….
func (t *Tree) SetNodeNames() {
	internal, leaf := 1, 1
	for n := range t.root.LevelOrder() {
		switch {
		case n.IsRoot():
			n.Label = "root"
		case n.IsLeaf():
			n.Label = "leaf" + strconv.Itoa(leaf)
			leaf++
		default:
			n.Label = "internal" + strconv.Itoa(internal)
			internal++
		}
	}
}

// Clone returns a deep copy sharing no nodes with t.
func (t *Tree) Clone() *Tree {
	return &Tree{root: t.root.Clone()}
}

// Unroot collapses the root-adjacent edge of a bifurcating root: the internal
// child (the second one, unless it is a leaf) is detached and its children are
// re-attached directly under the root, in order.
//
// ErrInvariant is returned when the root does not have exactly two children
// or when both of them are leaves.
func (t *Tree) Unroot() error {
	r := t.root
	if len(r.children) != 2 {
		return fmt.Errorf("%w: unroot needs a bifurcating root, got %d children", ErrInvariant, len(r.children))
	}
	sub := r.children[1]
	if sub.IsLeaf() {
		sub = r.children[0]
		if sub.IsLeaf() {
			return fmt.Errorf("%w: unroot needs an internal root child", ErrInvariant)
		}
	}
	if err := sub.Detach(); err != nil {
		return err
	}
	for _, c := range sub.Children() {
		if err := c.Detach(); err != nil {
			return err
		}
		if err := r.SetChild(c); err != nil {
			return err
		}
	}

	return nil
}

// String renders one node per line, indented by depth.
func (t *Tree) String() string {
	var out []byte
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for i := 0; i < depth; i++ {
			out = append(out, "  "...)
		}
		name := n.Label
		if name == "" {
			name = "N/A"
		}
		out = append(out, name...)
		if !n.IsRoot() {
			out = append(out, " ("...)
			out = strconv.AppendFloat(out, n.Length, 'g', -1, 64)
			out = append(out, ')')
		}
		out = append(out, '\n')
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(t.root, 0)

	return string(out)
}
