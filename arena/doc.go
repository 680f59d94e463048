// Package arena provides a growable, handle-addressed element pool with
// free-list slot recycling.
//
// # Overview
//
// A Pool[T] stores elements of a single type in contiguous slot storage and
// hands out Handle[T] values instead of pointers. Handles carry a byte
// offset (slot index times element size) that stays meaningful across pool
// growth, so they can be stored, copied and compared freely while the pool
// relocates its backing storage underneath.
//
// # Free List
//
// Destroyed slots are threaded onto a singly linked free chain with
// head/tail tracking:
//
//   - Destroy pushes the slot on the front, so reuse is LIFO: the most
//     recently destroyed slot is the next one Create hands out.
//   - Growth appends the newly created slots to the back of the chain in
//     ascending order, so fresh slots are consumed in offset order once
//     recycled slots run out.
//
// Link values live in a slice parallel to the element storage. For a live
// slot the last link value is simply left behind, the same way an embedded
// free list leaves stale bytes in reused element memory; nothing reads a
// link unless its slot is on the chain.
//
// # Growth
//
// When Create finds the chain empty, the pool grows inline to the next
// power-of-two slot count (1, 2, 4, 8, ... slots), copying live elements and
// link values verbatim. Growth is the only O(N) operation and the only event
// that invalidates pointers previously returned by Get; handles are never
// invalidated by growth, only by Destroy. Capacity is capped at 2GB so every
// offset fits in an int32. Shrinking is not supported.
//
// # Thread Safety
//
// Every public operation locks one mutex per pool, so operations are
// linearizable. Callbacks (VisitUsed, the OnDestroy hook) run under that
// lock and must not call back into the pool.
//
// # Usage Example
//
//	pool := arena.New[Mesh]()
//
//	h, err := pool.Create(Mesh{Verts: verts})
//	if err != nil {
//	    return err
//	}
//
//	m, err := pool.Get(h)
//	if err != nil {
//	    return err
//	}
//	m.Verts = append(m.Verts, v)
//
//	// Later, release the slot for reuse.
//	err = pool.Destroy(h)
//
// # Related Packages
//
//   - github.com/joshuapare/arenakit/arena/registry: GUID lookup, handle
//     versioning and reference counts layered on top of Pool.
//   - github.com/joshuapare/arenakit/vectree: flattened scene trees whose
//     payloads commonly hold pool handles.
package arena
