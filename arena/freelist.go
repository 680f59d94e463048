package arena

import "github.com/joshuapare/arenakit/internal/bitset"

// Free-chain management. All functions here assume the pool lock is held.

// popFree removes and returns the head slot. The chain must be non-empty.
func (p *Pool[T]) popFree() int32 {
	slot := p.freeFirst
	p.freeFirst = p.links[slot]
	if p.freeFirst == NullOfs {
		p.freeLast = NullOfs
	}
	return slot
}

// pushFree puts slot at the head of the chain, so the most recently destroyed
// slot is the next one reused.
func (p *Pool[T]) pushFree(slot int32) {
	p.links[slot] = p.freeFirst
	p.freeFirst = slot
	if p.freeLast == NullOfs {
		p.freeLast = slot
	}
}

// expandFreelist threads slots [oldCount, newCount) onto the back of the
// chain in ascending order, the last one terminating with NullOfs.
func (p *Pool[T]) expandFreelist(oldCount, newCount int) {
	for i := oldCount; i < newCount-1; i++ {
		p.links[i] = int32(i + 1)
	}
	p.links[newCount-1] = NullOfs
	if p.freeLast != NullOfs {
		p.links[p.freeLast] = int32(oldCount)
	} else {
		p.freeFirst = int32(oldCount)
	}
	p.freeLast = int32(newCount - 1)
}

// isFree walks the chain looking for slot. O(chain length); this is the
// stale-handle check behind Get and Destroy.
func (p *Pool[T]) isFree(slot int32) bool {
	for cur := p.freeFirst; cur != NullOfs; cur = p.links[cur] {
		if cur == slot {
			return true
		}
	}
	return false
}

func (p *Pool[T]) countFreeLocked() int {
	n := 0
	for cur := p.freeFirst; cur != NullOfs; cur = p.links[cur] {
		n++
	}
	return n
}

// freeBits folds the chain into a per-slot bitmap.
func (p *Pool[T]) freeBits() *bitset.Bitset {
	bits := bitset.New(len(p.values))
	for cur := p.freeFirst; cur != NullOfs; cur = p.links[cur] {
		bits.Set(int(cur))
	}
	return bits
}
