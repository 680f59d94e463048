package vectree

import "slices"

// Traversal family. Each order comes in three variants: whole forest, by
// start index (At, panics on a bad index), and by start payload (Of, returns
// false when the payload is absent). Callbacks receive a payload pointer and
// may mutate the payload in place, but no callback may structurally mutate
// the tree it is traversing.

// DepthFirst visits every node of the forest in pre-order.
func (t *Tree[P]) DepthFirst(f func(p *P, index int)) {
	for i := 0; i < len(t.nodes); i += int(t.nodes[i].BranchStride) {
		t.DepthFirstAt(i, f)
	}
}

// DepthFirstAt visits the branch at start in pre-order. Since branches are
// stored pre-order, this is a raw scan of [start, start+stride): O(stride)
// with no auxiliary state. This is the traversal the layout is built for.
func (t *Tree[P]) DepthFirstAt(start int, f func(p *P, index int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.checkIndex(start)
	stride := int(t.nodes[start].BranchStride)
	for o := 0; o < stride; o++ {
		f(&t.nodes[start+o].Payload, start+o)
	}
}

// DepthFirstOf visits the branch of the node holding payload in pre-order.
func (t *Tree[P]) DepthFirstOf(payload P, f func(p *P, index int)) bool {
	i := t.Find(payload)
	if i == NullIndex {
		return false
	}
	t.DepthFirstAt(i, f)
	return true
}

type dfsEntry struct {
	index, level int
}

// DepthFirstLevel visits every node of the forest in pre-order with its
// depth, root = 0.
func (t *Tree[P]) DepthFirstLevel(f func(p *P, index, level int)) {
	for i := 0; i < len(t.nodes); i += int(t.nodes[i].BranchStride) {
		t.DepthFirstLevelAt(i, f)
	}
}

// DepthFirstLevelAt visits the branch at start in pre-order with depth
// information. Uses an explicit stack, children pushed in reverse so they
// pop in stored order; costs more than DepthFirstAt.
func (t *Tree[P]) DepthFirstLevelAt(start int, f func(p *P, index, level int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.checkIndex(start)

	stack := make([]dfsEntry, 0, t.nodes[start].BranchStride)
	stack = append(stack, dfsEntry{start, 0})
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &t.nodes[e.index]
		f(&node.Payload, e.index, e.level)

		mark := len(stack)
		child := e.index + 1
		for n := int(node.NbrChildren); n > 0; n-- {
			stack = append(stack, dfsEntry{child, e.level + 1})
			child += int(t.nodes[child].BranchStride)
		}
		slices.Reverse(stack[mark:])
	}
}

// DepthFirstLevelOf visits the branch of the node holding payload with depth
// information.
func (t *Tree[P]) DepthFirstLevelOf(payload P, f func(p *P, index, level int)) bool {
	i := t.Find(payload)
	if i == NullIndex {
		return false
	}
	t.DepthFirstLevelAt(i, f)
	return true
}

// BreadthFirst visits every node of the forest level by level, one root
// branch at a time.
func (t *Tree[P]) BreadthFirst(f func(p *P, index int)) {
	for i := 0; i < len(t.nodes); i += int(t.nodes[i].BranchStride) {
		t.BreadthFirstAt(i, f)
	}
}

// BreadthFirstAt visits the branch at start level by level. The layout is
// not optimized for this order; sibling hops jump by branch stride.
func (t *Tree[P]) BreadthFirstAt(start int, f func(p *P, index int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.checkIndex(start)

	queue := []int{start}
	for len(queue) > 0 {
		index := queue[0]
		queue = queue[1:]

		node := &t.nodes[index]
		f(&node.Payload, index)

		child := index + 1
		for n := int(node.NbrChildren); n > 0; n-- {
			queue = append(queue, child)
			child += int(t.nodes[child].BranchStride)
		}
	}
}

// BreadthFirstOf visits the branch of the node holding payload level by level.
func (t *Tree[P]) BreadthFirstOf(payload P, f func(p *P, index int)) bool {
	i := t.Find(payload)
	if i == NullIndex {
		return false
	}
	t.BreadthFirstAt(i, f)
	return true
}

// Progressive visits the whole forest one parent/child pair at a time: each
// root is reported once with a nil parent, then every node's direct children
// are reported with that node, in index order. Because parents precede
// children in the layout, a parent's visit always completes before any of
// its children are reported, which is exactly what hierarchical transform
// propagation needs.
func (t *Tree[P]) Progressive(f func(node, parent *P, nodeIndex, parentIndex int)) {
	for i := 0; i < len(t.nodes); i += int(t.nodes[i].BranchStride) {
		t.ProgressiveAt(i, f)
	}
}

// ProgressiveAt runs the progressive visit over the branch at start. Nodes
// with a parent outside the branch are not reported on their own; only roots
// get the nil-parent call.
func (t *Tree[P]) ProgressiveAt(start int, f func(node, parent *P, nodeIndex, parentIndex int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.checkIndex(start)
	stride := int(t.nodes[start].BranchStride)
	for i := 0; i < stride; i++ {
		index := start + i
		node := &t.nodes[index]

		if node.ParentOfs == 0 {
			f(&node.Payload, nil, index, NullIndex)
		}
		child := index + 1
		for n := int(node.NbrChildren); n > 0; n-- {
			f(&t.nodes[child].Payload, &node.Payload, child, index)
			child += int(t.nodes[child].BranchStride)
		}
	}
}

// ProgressiveOf runs the progressive visit over the branch of the node
// holding payload.
func (t *Tree[P]) ProgressiveOf(payload P, f func(node, parent *P, nodeIndex, parentIndex int)) bool {
	i := t.Find(payload)
	if i == NullIndex {
		return false
	}
	t.ProgressiveAt(i, f)
	return true
}

// AscendAt walks from the node at start up to its root, visiting the start
// node and the root. Panics on a bad index.
func (t *Tree[P]) AscendAt(start int, f func(p *P, index int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.checkIndex(start)

	index := start
	for t.nodes[index].ParentOfs != 0 {
		f(&t.nodes[index].Payload, index)
		index -= int(t.nodes[index].ParentOfs)
	}
	f(&t.nodes[index].Payload, index)
}

// Ascend walks from the node holding payload up to its root.
func (t *Tree[P]) Ascend(payload P, f func(p *P, index int)) bool {
	i := t.Find(payload)
	if i == NullIndex {
		return false
	}
	t.AscendAt(i, f)
	return true
}
