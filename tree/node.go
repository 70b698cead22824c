package tree

import (
	"fmt"
	"slices"
)

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child. It panics on an out-of-range index, like a
// slice access would.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Root walks parent links up to the root of n's tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// AddChild creates a new child under n and returns it.
// Complexity: O(1) amortized.
func (n *Node) AddChild(label string, length float64) *Node {
	child := &Node{Label: label, Length: length, parent: n}
	n.children = append(n.children, child)

	return child
}

// SetChild appends an orphan subtree to n's children. The child must not
// have a parent and must not be an ancestor of n.
func (n *Node) SetChild(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if child.parent != nil {
		return fmt.Errorf("%w: %q already has a parent", ErrInvariant, child.Label)
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur == child {
			return fmt.Errorf("%w: %q would become its own descendant", ErrInvariant, child.Label)
		}
	}
	child.parent = n
	n.children = append(n.children, child)

	return nil
}

// Detach removes n from its parent's children and clears its parent link.
// n becomes the root of an orphan subtree owned by the caller.
// Complexity: O(deg(parent)).
func (n *Node) Detach() error {
	if n.parent == nil {
		return fmt.Errorf("%w: cannot detach a root", ErrInvariant)
	}
	p := n.parent
	i := slices.Index(p.children, n)
	if i < 0 {
		// parent link without a matching child entry
		return fmt.Errorf("%w: %q missing from its parent's children", ErrInvariant, n.Label)
	}
	p.children = slices.Delete(p.children, i, i+1)
	n.parent = nil

	return nil
}

// ResolvePolytomy creates a new intermediate child under n labelled label and
// moves every node of subset beneath it, keeping the order given in subset.
// Every element must be a distinct direct child of n and subset must not be
// empty; otherwise nothing is changed and ErrInvariant is returned.
//
// Complexity: O(deg(n)·|subset|).
func (n *Node) ResolvePolytomy(subset []*Node, label string) (*Node, error) {
	if len(subset) == 0 {
		return nil, fmt.Errorf("%w: empty subset under %q", ErrInvariant, n.Label)
	}
	seen := make(map[*Node]struct{}, len(subset))
	for _, c := range subset {
		if c == nil {
			return nil, ErrNilNode
		}
		if c.parent != n {
			return nil, fmt.Errorf("%w: %q is not a child of %q", ErrInvariant, c.Label, n.Label)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvariant, c.Label)
		}
		seen[c] = struct{}{}
	}

	clade := n.AddChild(label, 0)
	for _, c := range subset {
		if err := c.Detach(); err != nil {
			return nil, err
		}
		c.parent = clade
		clade.children = append(clade.children, c)
	}

	return clade, nil
}

// Height returns 0 for a leaf, otherwise 1 + the maximum child height.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.children {
		h = max(h, 1+c.Height())
	}

	return h
}

// LeafLabels returns the labels of the leaves under n in post-order.
func (n *Node) LeafLabels() []string {
	var out []string
	for leaf := range n.Postorder() {
		if leaf.IsLeaf() {
			out = append(out, leaf.Label)
		}
	}

	return out
}

// Clone deep-copies the subtree rooted at n. The copy has no parent.
func (n *Node) Clone() *Node {
	cp := &Node{Label: n.Label, Length: n.Length}
	if len(n.children) > 0 {
		cp.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			cc := c.Clone()
			cc.parent = cp
			cp.children[i] = cc
		}
	}

	return cp
}

func (n *Node) String() string {
	return n.Label
}
