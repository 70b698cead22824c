// Package tree provides a rooted, multifurcating tree for phylogenetic and
// lineage data, together with the traversal and mutation primitives the
// comparison algorithms are built on.
//
// A Tree owns exactly one root Node. Every Node owns its ordered children and
// keeps a non-owning back-reference to its parent, used only for read-side
// walks (PathTo, Root) and for Detach. Child order is significant: it is kept
// by every traversal and by the newick codec.
//
// Traversals are lazy and restartable:
//
//	for n := range t.Root().Postorder() { ... } // descendants before ancestors, left to right
//	for n := range t.Root().LevelOrder() { ... } // breadth-first from the receiver
//
// Mutation:
//
//	AddChild(label, length)        // O(1)
//	Detach()                       // O(deg(parent)), ErrInvariant on a root
//	ResolvePolytomy(subset, label) // O(deg·|subset|), ErrInvariant for non-children or an empty subset
//	Unroot()                       // collapses one root-adjacent internal edge
//
// Search:
//
//	FindLCA(labels)   // breadth-first candidate expansion, ErrNotFound for unknown labels
//	FindNode(label)   // radix index over labels
//	FindPrefix(prefix)
//
// Errors:
//
//	ErrNilNode   - a nil *Node was passed where a node is required.
//	ErrInvariant - structural misuse (detach root, foreign polytomy member, ineligible unroot).
//	ErrNotFound  - a label set that is empty or not covered by the tree's leaves.
//
// Nodes are not synchronized. Callers sharing a Tree across goroutines must
// serialize every mutation themselves.
package tree
