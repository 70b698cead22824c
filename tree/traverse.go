package tree

import "iter"

// frame is one level of the explicit post-order stack.
type frame struct {
	node *Node
	next int // index of the next child to descend into
}

// Postorder yields every node of the subtree rooted at n so that each node
// follows all of its descendants and sibling subtrees appear left to right.
// The sequence is lazy; each range over it starts a fresh walk.
// Complexity: O(n) time, O(height) space.
func (n *Node) Postorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []frame{{node: n}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.node.children) {
				child := top.node.children[top.next]
				top.next++
				stack = append(stack, frame{node: child})
				continue
			}
			done := top.node
			stack = stack[:len(stack)-1]
			if !yield(done) {
				return
			}
		}
	}
}

// LevelOrder yields the subtree rooted at n breadth-first, starting at n.
// Complexity: O(n) time and space.
func (n *Node) LevelOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{n}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			queue = append(queue, cur.children...)
		}
	}
}

// Leaves returns the leaves under n in post-order (left to right).
func (n *Node) Leaves() []*Node {
	var out []*Node
	for cur := range n.Postorder() {
		if cur.IsLeaf() {
			out = append(out, cur)
		}
	}

	return out
}
