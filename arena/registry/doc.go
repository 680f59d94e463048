// Package registry adds identity and lifetime tracking to arena pools.
//
// # Overview
//
// A raw pool handle stays resolvable as long as its slot is live, which
// means a handle held past Destroy silently resolves to whatever entry
// recycled the slot. Registry closes that hole with three layers of
// per-slot metadata:
//
//   - versions: each handle is stamped with the slot's version at Add time,
//     and Remove bumps the version, so stale handles fail with
//     ErrStaleHandle instead of aliasing the new occupant.
//   - GUIDs: every entry is bound to a uuid.UUID, minted on Add or supplied
//     by the caller for deterministic import, and can be looked up both ways.
//   - use counts: Retain and Release track sharing, and Remove refuses
//     entries whose count has not returned to zero.
//
// # Versions
//
// Version 0 is reserved as the null version. Fresh slots bump to 1 on first
// use and removal increments from there, skipping 0 on wrap, so the
// zero-valued handle never validates.
//
// # Thread Safety
//
// All operations serialize on the registry's mutex, which wraps the backing
// pool's own lock. ForEach callbacks run under both and must not call back
// into the registry or its pool.
package registry
