package vectree

// NullIndex marks the absence of a node.
const NullIndex = -1

// Node is one entry of the flattened pre-order sequence. The first child of a
// node sits directly after it, so a branch occupies the contiguous range
// [index, index+BranchStride).
type Node[P any] struct {
	NbrChildren  uint32 // direct children
	BranchStride uint32 // branch size including this node
	ParentOfs    uint32 // distance back to the parent, 0 for roots
	Payload      P
}
