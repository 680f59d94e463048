package arena

import "fmt"

// NullOfs is the offset of the null handle. Offset zero addresses the first
// slot, so the null marker has to live outside the valid range.
const NullOfs int32 = -1

// Handle identifies an element inside a Pool[T] without owning it. The offset
// is a byte offset into the pool's storage and stays valid across pool growth;
// only Destroy invalidates it. The version field is reserved for layers that
// stamp generation counts on top of the raw pool (see arena/registry) and is
// never interpreted by the pool itself.
//
// The type parameter ties a handle to its pool's element type at compile
// time, so a handle minted by one pool type cannot be passed to another.
type Handle[T any] struct {
	Ofs     int32
	Version uint16
}

// NullHandle returns the null handle for element type T.
func NullHandle[T any]() Handle[T] {
	return Handle[T]{Ofs: NullOfs}
}

// IsNull reports whether h is the null handle.
func (h Handle[T]) IsNull() bool {
	return h.Ofs == NullOfs
}

// Valid reports whether h refers to some slot. It does not check liveness;
// use Pool.Get for that.
func (h Handle[T]) Valid() bool {
	return h.Ofs != NullOfs
}

// Reset turns h into the null handle.
func (h *Handle[T]) Reset() {
	h.Ofs = NullOfs
	h.Version = 0
}

// Key packs offset and version into a single comparable word, for use as a
// map key where mixing handles of several versions matters.
func (h Handle[T]) Key() uint64 {
	return uint64(uint32(h.Ofs)) | uint64(h.Version)<<32
}

func (h Handle[T]) String() string {
	if h.IsNull() {
		return "Handle(null)"
	}
	return fmt.Sprintf("Handle(ofs=%d ver=%d)", h.Ofs, h.Version)
}
