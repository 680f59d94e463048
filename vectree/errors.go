package vectree

import "errors"

var (
	// ErrNotFound indicates the named payload is not in the tree.
	ErrNotFound = errors.New("vectree: payload not found")

	// ErrCycle indicates a reparent that would move a branch under its own descendant.
	ErrCycle = errors.New("vectree: reparent would create a cycle")

	// ErrCorruptTree indicates node offsets that violate the pre-order layout.
	ErrCorruptTree = errors.New("vectree: corrupt tree structure")
)
