package tree

import (
	"fmt"
	"iter"

	iradix "github.com/hashicorp/go-immutable-radix"
)

// Index is an immutable snapshot mapping labels to nodes, backed by a radix
// tree so that prefix queries come out in lexicographic label order.
// It is not updated by later mutations; rebuild it after changing the tree.
type Index struct {
	radix *iradix.Tree
	size  int
}

// buildIndex inserts every node yielded by seq under its label. Nodes sharing
// a label are kept in the order seq produced them.
func buildIndex(seq iter.Seq[*Node]) *Index {
	txn := iradix.New().Txn()
	size := 0
	for n := range seq {
		key := []byte(n.Label)
		var bucket []*Node
		if v, ok := txn.Get(key); ok {
			bucket = v.([]*Node)
		}
		txn.Insert(key, append(bucket, n))
		size++
	}

	return &Index{radix: txn.Commit(), size: size}
}

// Index builds a label index over every node, breadth-first.
// Complexity: O(n·L) where L is the mean label length.
func (t *Tree) Index() *Index {
	return buildIndex(t.root.LevelOrder())
}

// LeafIndex builds a label index over the leaves only, left to right.
func (t *Tree) LeafIndex() *Index {
	return buildIndex(func(yield func(*Node) bool) {
		for n := range t.root.Postorder() {
			if n.IsLeaf() && !yield(n) {
				return
			}
		}
	})
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	return ix.size
}

// Labels returns the number of distinct labels.
func (ix *Index) Labels() int {
	return ix.radix.Len()
}

// Lookup returns the nodes labelled exactly label.
func (ix *Index) Lookup(label string) []*Node {
	v, ok := ix.radix.Get([]byte(label))
	if !ok {
		return nil
	}

	return v.([]*Node)
}

// Contains reports whether any node carries label.
func (ix *Index) Contains(label string) bool {
	_, ok := ix.radix.Get([]byte(label))
	return ok
}

// Prefix returns every node whose label starts with prefix, grouped by label
// in lexicographic order.
func (ix *Index) Prefix(prefix string) []*Node {
	var out []*Node
	ix.radix.Root().WalkPrefix([]byte(prefix), func(_ []byte, v interface{}) bool {
		out = append(out, v.([]*Node)...)
		return false
	})

	return out
}

// FindNode returns the first node, breadth-first, labelled label.
func (t *Tree) FindNode(label string) (*Node, error) {
	nodes := t.Index().Lookup(label)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no node labelled %q", ErrNotFound, label)
	}

	return nodes[0], nil
}

// FindPrefix returns every node whose label starts with prefix.
func (t *Tree) FindPrefix(prefix string) []*Node {
	return t.Index().Prefix(prefix)
}
