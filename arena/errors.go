package arena

import "errors"

var (
	// ErrNullHandle indicates an operation on the null handle.
	ErrNullHandle = errors.New("arena: null handle")

	// ErrOffsetRange indicates a handle offset outside the pool's capacity.
	ErrOffsetRange = errors.New("arena: handle offset out of range")

	// ErrOffsetAlign indicates a handle offset that is not a multiple of the element size.
	ErrOffsetAlign = errors.New("arena: handle offset not aligned to element size")

	// ErrSlotFree indicates the addressed slot is on the free list (stale handle or double destroy).
	ErrSlotFree = errors.New("arena: slot is free")

	// ErrPoolExhausted indicates growth would exceed the pool's addressable capacity.
	ErrPoolExhausted = errors.New("arena: pool capacity limit reached")
)
