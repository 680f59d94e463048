// Package vectree stores forests of trees in flat, contiguous slices.
//
// # Overview
//
// A Tree holds any number of root branches in a single slice, laid out in
// pre-order: every branch occupies a contiguous run of nodes, and every
// node's subtree is the run starting at the node itself. Instead of child
// pointers, each node carries three integers that describe the layout:
//
//   - NbrChildren: number of direct children
//   - BranchStride: total node count of the subtree, itself included
//   - ParentOfs: distance back to the parent, 0 for roots
//
// The payoff is locality. Depth-first traversal of a branch is a linear
// scan over one slice with no pointer chasing, which is what per-frame
// passes such as transform propagation spend their time doing.
//
// # Mutation Cost
//
// The flat layout trades mutation speed for traversal speed. Insert and
// EraseBranch splice the slice and then repair the stride and offset
// bookkeeping of every ancestor and of every trailing node whose parent
// lies across the splice point, so structural edits cost O(n) in the worst
// case. Reparent and Unparent extract a branch into a scratch buffer and
// reinsert it node by node. Build and edit hierarchies at load time or at
// low frequency; traverse them every frame.
//
// New nodes are inserted as the first child of their parent, so siblings
// are stored in reverse insertion order.
//
// # Traversal
//
// Each traversal order comes in three variants: the whole forest, a branch
// by start index (At), and a branch by payload (Of). DepthFirst is the fast
// path. DepthFirstLevel adds depth tracking at the cost of an explicit
// stack. BreadthFirst visits level by level. Progressive reports
// parent/child pairs in an order where every parent is visited before its
// children, which hierarchical state propagation needs. Ascend walks from a
// node to its root.
//
// # Serialization
//
// SaveJSON and LoadJSON round-trip the flat layout directly. Loaded
// documents are validated with Validate before use, so a corrupt file
// surfaces as ErrCorruptTree rather than as a panic during traversal.
//
// # Usage Example
//
//	tr := vectree.New[string]()
//	tr.InsertAsRoot("world")
//	tr.Insert("player", "world")
//	tr.Insert("camera", "player")
//
//	tr.DepthFirstLevel(func(name *string, index, level int) {
//		fmt.Printf("%*s%s\n", level*2, "", *name)
//	})
//
// Trees are not safe for concurrent mutation. Guard shared trees with a
// mutex, or confine mutation to one goroutine and traverse from others
// only between edits.
package vectree
