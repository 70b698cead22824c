package tree

import (
	"errors"
	"slices"
)

// Sentinel errors for tree operations.
var (
	// ErrNilNode indicates a nil *Node where a node is required.
	ErrNilNode = errors.New("tree: node is nil")

	// ErrInvariant indicates an operation that would break the tree structure,
	// such as detaching a root or resolving a polytomy over a non-child.
	ErrInvariant = errors.New("tree: structural invariant violated")

	// ErrNotFound indicates a label set that cannot be located in the tree.
	ErrNotFound = errors.New("tree: not found")
)

// Node is a single tree vertex.
//
// Label may be empty. Length is the branch length of the edge to the parent
// and is meaningless on a root.
type Node struct {
	// Label names the node. Leaf labels are expected to be unique for
	// comparison work; internal labels may repeat.
	Label string

	// Length is the incoming branch length (>= 0, default 0).
	Length float64

	parent   *Node   // non-owning, nil for a root
	children []*Node // owned, ordered
}

// Tree owns a single root Node.
type Tree struct {
	root *Node
}

// NewNode returns a detached node with the given label and branch length.
func NewNode(label string, length float64) *Node {
	return &Node{Label: label, Length: length}
}

// New wraps root in a Tree. A nil root yields a tree with an unnamed single
// node. A root that still has a parent is cut loose first: it is removed from
// its former parent's children and its parent link is cleared.
func New(root *Node) *Tree {
	if root == nil {
		root = NewNode("", 0)
	}
	if p := root.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == root })
		root.parent = nil
	}

	return &Tree{root: root}
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}
