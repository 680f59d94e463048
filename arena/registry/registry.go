package registry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joshuapare/arenakit/arena"
)

// VersionNull is the version value no issued handle ever carries. Fresh
// slots start at VersionNull and are bumped to 1 on first use, so a
// zero-valued Handle can never validate against a live entry.
const VersionNull uint16 = 0

// Registry layers entry versioning, GUID identity, and use counting over an
// arena pool. Where the raw pool will happily resolve any handle whose slot
// is live, a registry handle also carries the slot's version at issue time:
// once the entry is removed the slot version moves on and every outstanding
// handle to it goes stale, even after the slot is recycled for a new entry.
//
// The registry owns its pool; do not mix registry handles with handles
// minted directly from another pool.
type Registry[T any] struct {
	mu   sync.Mutex
	pool *arena.Pool[T]

	// Per-slot metadata, grown in lockstep with the pool.
	versions []uint16
	counts   []int32

	guids  map[int32]uuid.UUID
	byGUID map[uuid.UUID]arena.Handle[T]

	label string
	log   *zap.Logger
}

// New creates an empty registry for element type T.
func New[T any](opts ...Option[T]) *Registry[T] {
	cfg := config[T]{
		label:  arena.TypeInfoOf[T]().Name,
		logger: Logger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry[T]{
		pool: arena.New[T](
			arena.WithLabel[T](cfg.label),
			arena.WithLogger[T](cfg.logger),
		),
		guids:  make(map[int32]uuid.UUID),
		byGUID: make(map[uuid.UUID]arena.Handle[T]),
		label:  cfg.label,
		log:    cfg.logger,
	}
}

// Add stores v under a freshly minted GUID and returns the versioned handle
// together with the GUID.
func (r *Registry[T]) Add(v T) (arena.Handle[T], uuid.UUID, error) {
	return r.add(uuid.New(), v)
}

// AddWithGUID stores v under a caller-provided GUID, which deterministic
// import paths need. Fails with ErrGUIDExists when the GUID is already live.
func (r *Registry[T]) AddWithGUID(guid uuid.UUID, v T) (arena.Handle[T], error) {
	h, _, err := r.add(guid, v)
	return h, err
}

func (r *Registry[T]) add(guid uuid.UUID, v T) (arena.Handle[T], uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byGUID[guid]; exists {
		return arena.NullHandle[T](), uuid.Nil, fmt.Errorf("%w: %s", ErrGUIDExists, guid)
	}
	h, err := r.pool.Create(v)
	if err != nil {
		return arena.NullHandle[T](), uuid.Nil, err
	}

	slot := int32(int64(h.Ofs) / r.pool.ElemSize())
	r.ensureMeta(slot)
	if r.versions[slot] == VersionNull {
		r.versions[slot] = 1
	}
	h.Version = r.versions[slot]
	r.counts[slot] = 0
	r.guids[slot] = guid
	r.byGUID[guid] = h

	r.log.Debug("registry add",
		zap.String("registry", r.label),
		zap.Int32("slot", slot),
		zap.Uint16("version", h.Version),
		zap.String("guid", guid.String()),
	)
	return h, guid, nil
}

// Get resolves h to its element. Stale handles fail with ErrStaleHandle
// rather than resolving to whatever entry recycled the slot.
func (r *Registry[T]) Get(h arena.Handle[T]) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.validLocked(h); !ok {
		return nil, fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	return r.pool.Get(h)
}

// Valid reports whether h addresses a live entry of this registry.
func (r *Registry[T]) Valid(h arena.Handle[T]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.validLocked(h)
	return ok
}

// Remove deletes the entry addressed by h. The slot version is bumped so
// every outstanding handle to the entry goes stale, then the slot returns to
// the pool's free list. Entries with a non-zero use count are refused with
// ErrStillReferenced.
func (r *Registry[T]) Remove(h arena.Handle[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.validLocked(h)
	if !ok {
		return fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	if r.counts[slot] > 0 {
		return fmt.Errorf("%w: use count %d", ErrStillReferenced, r.counts[slot])
	}
	if err := r.pool.Destroy(h); err != nil {
		return err
	}

	r.versions[slot]++
	if r.versions[slot] == VersionNull {
		r.versions[slot] = 1 // version wrapped; 0 stays reserved
	}
	guid := r.guids[slot]
	delete(r.guids, slot)
	delete(r.byGUID, guid)

	r.log.Debug("registry remove",
		zap.String("registry", r.label),
		zap.Int32("slot", slot),
		zap.Uint16("next_version", r.versions[slot]),
		zap.String("guid", guid.String()),
	)
	return nil
}

// Retain increments the use count of the entry addressed by h.
func (r *Registry[T]) Retain(h arena.Handle[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.validLocked(h)
	if !ok {
		return fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	r.counts[slot]++
	return nil
}

// Release decrements the use count of the entry addressed by h. Releasing an
// entry whose count is already zero is a caller bug and panics.
func (r *Registry[T]) Release(h arena.Handle[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.validLocked(h)
	if !ok {
		return fmt.Errorf("%w: %v", ErrStaleHandle, h)
	}
	if r.counts[slot] == 0 {
		panic(fmt.Sprintf("registry: release below zero on %s slot %d", r.label, slot))
	}
	r.counts[slot]--
	return nil
}

// UseCount returns the entry's current use count, or 0 for stale handles.
func (r *Registry[T]) UseCount(h arena.Handle[T]) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.validLocked(h)
	if !ok {
		return 0
	}
	return int(r.counts[slot])
}

// GUIDOf returns the GUID bound to the entry addressed by h.
func (r *Registry[T]) GUIDOf(h arena.Handle[T]) (uuid.UUID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.validLocked(h)
	if !ok {
		return uuid.Nil, false
	}
	guid, ok := r.guids[slot]
	return guid, ok
}

// FindByGUID returns the handle of the live entry bound to guid.
func (r *Registry[T]) FindByGUID(guid uuid.UUID) (arena.Handle[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byGUID[guid]
	if !ok {
		return arena.NullHandle[T](), false
	}
	return h, true
}

// ForEach visits every live entry in slot order with its versioned handle.
// f runs under the registry lock and must not call back into the registry.
func (r *Registry[T]) ForEach(f func(h arena.Handle[T], v *T)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	elem := r.pool.ElemSize()
	r.pool.VisitUsed(func(h arena.Handle[T], v *T) {
		h.Version = r.versions[int64(h.Ofs)/elem]
		f(h, v)
	})
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byGUID)
}

// Stats returns the backing pool's counters.
func (r *Registry[T]) Stats() arena.PoolStats {
	return r.pool.Stats()
}

// Label returns the registry's diagnostic name.
func (r *Registry[T]) Label() string {
	return r.label
}

// validLocked checks h against the slot metadata. A handle is valid when its
// offset addresses a known live slot and its version matches the slot's
// current version. Callers hold r.mu.
func (r *Registry[T]) validLocked(h arena.Handle[T]) (int32, bool) {
	if h.IsNull() || h.Version == VersionNull {
		return 0, false
	}
	elem := r.pool.ElemSize()
	if h.Ofs < 0 || int64(h.Ofs)%elem != 0 {
		return 0, false
	}
	slot := int32(int64(h.Ofs) / elem)
	if int(slot) >= len(r.versions) {
		return 0, false
	}
	_, live := r.guids[slot]
	return slot, live && r.versions[slot] == h.Version
}

// ensureMeta grows the metadata slices to cover slot. Pool growth can hand
// out any slot index in the new range, so sizing happens per Add rather than
// per grow.
func (r *Registry[T]) ensureMeta(slot int32) {
	for int(slot) >= len(r.versions) {
		r.versions = append(r.versions, VersionNull)
		r.counts = append(r.counts, 0)
	}
}
