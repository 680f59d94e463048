package vectree

import (
	"fmt"
	"slices"
)

// Tree stores a forest of trees as one flat pre-order node sequence. Nodes
// are located by payload equality (linear scan) or by index; structural edits
// rewrite the stride and parent offsets of surrounding nodes in place.
//
// The tree is not synchronized. Callers that share one across goroutines
// must layer their own locking, and no traversal may structurally mutate the
// tree it is walking.
type Tree[P any] struct {
	nodes []Node[P]
	eq    func(a, b P) bool
}

// New creates an empty tree using == for payload identity.
func New[P comparable]() *Tree[P] {
	return NewFunc[P](func(a, b P) bool { return a == b })
}

// NewFunc creates an empty tree with a custom payload equality, for payload
// types whose identity is one field (a name, an ID) rather than the whole
// value. Panics when eq is nil.
func NewFunc[P any](eq func(a, b P) bool) *Tree[P] {
	if eq == nil {
		panic("vectree: nil equality function")
	}
	return &Tree[P]{eq: eq}
}

// Len returns the total node count across all roots.
func (t *Tree[P]) Len() int {
	return len(t.nodes)
}

// Find returns the index of the first node whose payload equals payload,
// or NullIndex. O(N).
func (t *Tree[P]) Find(payload P) int {
	for i := range t.nodes {
		if t.eq(payload, t.nodes[i].Payload) {
			return i
		}
	}
	return NullIndex
}

// Contains reports whether payload is in the tree.
func (t *Tree[P]) Contains(payload P) bool {
	return t.Find(payload) != NullIndex
}

// InsertAsRoot appends a new single-node branch at the end of the sequence.
func (t *Tree[P]) InsertAsRoot(payload P) {
	t.nodes = append(t.nodes, Node[P]{BranchStride: 1, Payload: payload})
}

// Insert adds payload as the FIRST child of the node holding parentPayload,
// directly after the parent. Returns false when the parent is not found.
//
// The fixup order is load-bearing: ancestor strides are widened against
// pre-insertion indices first, then forward parent offsets, and only then is
// the node spliced in. Reordering these steps corrupts the offsets.
func (t *Tree[P]) Insert(payload, parentPayload P) bool {
	pi := t.Find(parentPayload)
	if pi == NullIndex {
		return false
	}

	// Walk from the parent back to its root. Every node whose branch spans
	// the insertion point (the parent itself included) gets one more slot.
	for ri := pi; ri >= 0; ri-- {
		if int(t.nodes[ri].BranchStride) > pi-ri {
			t.nodes[ri].BranchStride++
		}
		if t.nodes[ri].ParentOfs == 0 {
			break // preceding trees are unaffected
		}
	}

	// Walk forward until the next root. Nodes whose parent sits at or before
	// the insertion point see their parent move one slot further away.
	for fi := pi + 1; fi < len(t.nodes); fi++ {
		if t.nodes[fi].ParentOfs == 0 {
			break
		}
		if int(t.nodes[fi].ParentOfs) >= fi-pi {
			t.nodes[fi].ParentOfs++
		}
	}

	t.nodes[pi].NbrChildren++
	t.nodes = slices.Insert(t.nodes, pi+1, Node[P]{
		BranchStride: 1,
		ParentOfs:    1,
		Payload:      payload,
	})
	return true
}

// EraseBranch removes the node holding payload together with its entire
// branch. Returns false when the payload is not found. Erasing a whole root
// branch is permitted.
func (t *Tree[P]) EraseBranch(payload P) bool {
	ni := t.Find(payload)
	if ni == NullIndex {
		return false
	}
	t.eraseBranchAt(ni)
	return true
}

func (t *Tree[P]) eraseBranchAt(ni int) {
	stride := int(t.nodes[ni].BranchStride)

	if t.nodes[ni].ParentOfs == 0 {
		// Root branch: nothing outside the branch refers into it.
		t.nodes = slices.Delete(t.nodes, ni, ni+stride)
		return
	}
	pi := ni - int(t.nodes[ni].ParentOfs)

	// Ancestor strides shrink by the erased stride.
	for ri := pi; ri >= 0; ri-- {
		if int(t.nodes[ri].BranchStride) > pi-ri {
			t.nodes[ri].BranchStride -= uint32(stride)
		}
		if t.nodes[ri].ParentOfs == 0 {
			break
		}
	}

	// Trailing nodes up to the next root whose parent offset reaches back
	// across the erased range shrink by the same amount.
	for fi := ni + stride; fi < len(t.nodes); fi++ {
		if t.nodes[fi].ParentOfs == 0 {
			break
		}
		if int(t.nodes[fi].ParentOfs) >= fi-pi {
			t.nodes[fi].ParentOfs -= uint32(stride)
		}
	}

	t.nodes[pi].NbrChildren--
	t.nodes = slices.Delete(t.nodes, ni, ni+stride)
}

// Reparent moves the branch rooted at payload under newParentPayload. The
// branch is extracted to a buffer with its relative parent offsets intact,
// erased, and reinserted node by node, so the subtree keeps its internal
// structure (sibling runs inside it come back in reverse order, a
// consequence of first-child insertion).
func (t *Tree[P]) Reparent(payload, newParentPayload P) error {
	ni := t.Find(payload)
	if ni == NullIndex {
		return fmt.Errorf("%w: reparent source", ErrNotFound)
	}
	if t.Find(newParentPayload) == NullIndex {
		return fmt.Errorf("%w: reparent target", ErrNotFound)
	}
	if t.eq(payload, newParentPayload) {
		return fmt.Errorf("%w: node under itself", ErrCycle)
	}
	if t.IsDescendantOf(newParentPayload, payload) {
		return fmt.Errorf("%w: target is a descendant of the moved branch", ErrCycle)
	}

	branch := t.extractBranch(ni)
	t.Insert(branch[0].Payload, newParentPayload)
	t.reinsertDescendants(branch)
	return nil
}

// Unparent detaches the branch rooted at payload and reattaches it as a new
// root at the end of the forest, keeping its internal structure.
func (t *Tree[P]) Unparent(payload P) error {
	ni := t.Find(payload)
	if ni == NullIndex {
		return fmt.Errorf("%w: unparent source", ErrNotFound)
	}

	branch := t.extractBranch(ni)
	t.InsertAsRoot(branch[0].Payload)
	t.reinsertDescendants(branch)
	return nil
}

// extractBranch copies the branch at ni into a buffer and erases it from the
// tree. The buffer keeps the original relative parent offsets, which is what
// reinsertDescendants resolves against.
func (t *Tree[P]) extractBranch(ni int) []Node[P] {
	stride := int(t.nodes[ni].BranchStride)
	branch := make([]Node[P], stride)
	copy(branch, t.nodes[ni:ni+stride])
	t.eraseBranchAt(ni)
	return branch
}

func (t *Tree[P]) reinsertDescendants(branch []Node[P]) {
	for i := 1; i < len(branch); i++ {
		parent := branch[i-int(branch[i].ParentOfs)]
		t.Insert(branch[i].Payload, parent.Payload)
	}
}
