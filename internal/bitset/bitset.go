// Package bitset provides a fixed-size bit set used to track visited or free
// slots during pool and tree scans.
package bitset

const bitsPerWord = 64

// Bitset tracks membership for indices in [0, size).
type Bitset struct {
	words []uint64
	size  int
}

// New creates a bitset able to track size indices, all initially clear.
func New(size int) *Bitset {
	if size < 0 {
		size = 0
	}
	numWords := (size + bitsPerWord - 1) / bitsPerWord
	return &Bitset{
		words: make([]uint64, numWords),
		size:  size,
	}
}

// Set marks index as a member. Out-of-range indices are ignored silently so
// callers scanning possibly-stale link values do not need their own guard.
func (b *Bitset) Set(index int) {
	if index < 0 || index >= b.size {
		return
	}
	b.words[index/bitsPerWord] |= 1 << (uint(index) % bitsPerWord)
}

// Get reports whether index is a member. Out-of-range indices report false.
func (b *Bitset) Get(index int) bool {
	if index < 0 || index >= b.size {
		return false
	}
	return b.words[index/bitsPerWord]&(1<<(uint(index)%bitsPerWord)) != 0
}

// Len returns the tracked index range.
func (b *Bitset) Len() int {
	return b.size
}
