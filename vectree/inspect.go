package vectree

import "fmt"

// PayloadAt returns a pointer to the payload at index. Panics when index is
// out of range.
func (t *Tree[P]) PayloadAt(index int) *P {
	t.checkIndex(index)
	return &t.nodes[index].Payload
}

// NodeAt returns a copy of the node at index. Panics when index is out of range.
func (t *Tree[P]) NodeAt(index int) Node[P] {
	t.checkIndex(index)
	return t.nodes[index]
}

// NodeInfo returns the offsets of the node holding payload. ok is false when
// the payload is absent.
func (t *Tree[P]) NodeInfo(payload P) (nbrChildren, branchStride, parentOfs uint32, ok bool) {
	i := t.Find(payload)
	if i == NullIndex {
		return 0, 0, 0, false
	}
	n := t.nodes[i]
	return n.NbrChildren, n.BranchStride, n.ParentOfs, true
}

// BranchSize returns the branch stride of the node holding payload, or 0
// when the payload is absent.
func (t *Tree[P]) BranchSize(payload P) int {
	if i := t.Find(payload); i != NullIndex {
		return int(t.nodes[i].BranchStride)
	}
	return 0
}

// NbrChildren returns the direct child count of the node holding payload, or
// 0 when the payload is absent (use Contains to distinguish).
func (t *Tree[P]) NbrChildren(payload P) int {
	if i := t.Find(payload); i != NullIndex {
		return int(t.nodes[i].NbrChildren)
	}
	return 0
}

// ParentOfs returns the relative parent distance of the node holding
// payload, or 0 for roots and absent payloads.
func (t *Tree[P]) ParentOfs(payload P) int {
	if i := t.Find(payload); i != NullIndex {
		return int(t.nodes[i].ParentOfs)
	}
	return 0
}

// IsRoot reports whether payload names a top-level node.
func (t *Tree[P]) IsRoot(payload P) bool {
	i := t.Find(payload)
	return i != NullIndex && t.nodes[i].ParentOfs == 0
}

// IsLeaf reports whether payload names a node without children.
func (t *Tree[P]) IsLeaf(payload P) bool {
	i := t.Find(payload)
	return i != NullIndex && t.nodes[i].NbrChildren == 0
}

// ParentIndex returns the index of payload's parent, or NullIndex when the
// payload is absent or a root.
func (t *Tree[P]) ParentIndex(payload P) int {
	i := t.Find(payload)
	if i == NullIndex || t.nodes[i].ParentOfs == 0 {
		return NullIndex
	}
	return i - int(t.nodes[i].ParentOfs)
}

// Parent returns a pointer to the parent payload of the node holding
// payload. ok is false for roots and absent payloads.
func (t *Tree[P]) Parent(payload P) (*P, bool) {
	pi := t.ParentIndex(payload)
	if pi == NullIndex {
		return nil, false
	}
	return &t.nodes[pi].Payload, true
}

// IsDescendantOf reports whether b lies on the ancestor path of a. The scan
// starts at a and walks to a's root; a itself is excluded from the
// comparison, so IsDescendantOf(x, x) is false.
func (t *Tree[P]) IsDescendantOf(a, b P) bool {
	ai := t.Find(a)
	if ai == NullIndex {
		return false
	}
	found := false
	t.AscendAt(ai, func(p *P, idx int) {
		if idx == ai {
			return
		}
		if t.eq(*p, b) {
			found = true
		}
	})
	return found
}

// IsLastSiblingAt reports whether the node at index is the final child in
// its sibling run, or the final root. Panics when index is out of range.
func (t *Tree[P]) IsLastSiblingAt(index int) bool {
	t.checkIndex(index)
	node := t.nodes[index]
	stride := int(node.BranchStride)

	if node.ParentOfs == 0 {
		return index+stride >= len(t.nodes)
	}

	parentIndex := index - int(node.ParentOfs)
	parentEnd := parentIndex + int(t.nodes[parentIndex].BranchStride)
	return index+stride >= parentEnd
}

// IsLastSibling is the payload form of IsLastSiblingAt. Returns false when
// the payload is absent.
func (t *Tree[P]) IsLastSibling(payload P) bool {
	i := t.Find(payload)
	if i == NullIndex {
		return false
	}
	return t.IsLastSiblingAt(i)
}

// Validate walks the whole forest and checks the structural invariants:
// every branch stride equals one plus the sum of its children's strides,
// every child's parent offset points back at its actual parent, and the
// sequence partitions cleanly into root branches. Returns ErrCorruptTree
// (wrapped with the offending index) on the first violation.
func (t *Tree[P]) Validate() error {
	n := len(t.nodes)
	i := 0
	for i < n {
		if t.nodes[i].ParentOfs != 0 {
			return fmt.Errorf("%w: node %d opens a top-level branch with parent offset %d",
				ErrCorruptTree, i, t.nodes[i].ParentOfs)
		}
		end, err := t.validateBranch(i)
		if err != nil {
			return err
		}
		i = end
	}
	return nil
}

// validateBranch checks the branch rooted at index and returns the index one
// past its end.
func (t *Tree[P]) validateBranch(index int) (int, error) {
	node := t.nodes[index]
	stride := int(node.BranchStride)
	if stride < 1 || index+stride > len(t.nodes) {
		return 0, fmt.Errorf("%w: node %d stride %d out of bounds", ErrCorruptTree, index, stride)
	}

	child := index + 1
	for c := 0; c < int(node.NbrChildren); c++ {
		if child >= index+stride {
			return 0, fmt.Errorf("%w: node %d declares %d children but branch ends at %d",
				ErrCorruptTree, index, node.NbrChildren, index+stride)
		}
		if got := int(t.nodes[child].ParentOfs); got != child-index {
			return 0, fmt.Errorf("%w: node %d parent offset %d, want %d",
				ErrCorruptTree, child, got, child-index)
		}
		end, err := t.validateBranch(child)
		if err != nil {
			return 0, err
		}
		child = end
	}
	if child != index+stride {
		return 0, fmt.Errorf("%w: node %d stride %d, children cover %d",
			ErrCorruptTree, index, stride, child-index)
	}
	return index + stride, nil
}

func (t *Tree[P]) checkIndex(index int) {
	if index < 0 || index >= len(t.nodes) {
		panic(fmt.Sprintf("vectree: index %d out of range [0,%d)", index, len(t.nodes)))
	}
}
