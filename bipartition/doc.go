// Package bipartition compares trees through the splits their edges induce.
//
// Cutting one edge of a tree divides its leaves into two complementary sets
// A and B; that pair is a Bipartition. Two splits over the same leaf universe
// are equal exactly when their minor (smaller) sides are equal, so every
// comparison in this package goes through Bipartition.Minor. When both sides
// have the same size, the side whose sorted labels compare lexicographically
// lower is the minor side.
//
// Operations:
//
//	Extract(t, rooted)          // splits in discovery (breadth-first) order + leaf labels
//	Reconstruct(bps, labels)    // star tree refined split by split, smallest minor first
//	StrictConsensus(t1, t2)     // tree of the rooted splits shared by both inputs
//	RobinsonFoulds(t1, t2, r)   // |splits only in t1| + |splits only in t2|, and the maximum
//
// Root handling for rooted extraction:
//
//   - a bifurcating root contributes one split pairing its two children,
//     even when one or both of them are leaves;
//   - a root with more than two children contributes one split per internal child;
//   - edges directly below the root are otherwise not emitted again.
//
// Unrooted extraction emits one split per internal non-root node.
//
// Leaf labels are assumed unique within a comparison. Every call is
// synchronous and allocates its own working state.
package bipartition
