package arena

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/joshuapare/arenakit/internal/bounds"
)

// maxPoolBytes caps capacity so every byte offset fits in an int32.
const maxPoolBytes = int64(0x7FFFFFFF) // 2GB - 1

// Pool is a growable homogeneous element pool addressed by handles. Slots are
// recycled through a singly linked free list with LIFO reuse; when the list
// runs dry the pool grows to the next power-of-two slot count, preserving
// every element's byte offset so outstanding handles survive growth.
//
// All public operations serialize on one mutex per pool, giving a total
// order over creates, destroys and reads. Growth happens inline inside
// Create, so callers should expect occasional O(N) latency there.
type Pool[T any] struct {
	mu sync.Mutex

	info      TypeInfo
	label     string
	log       *zap.Logger
	onDestroy func(T)

	// values and links always have equal length. A slot's public identity is
	// its byte offset slot*info.Size. For slots on the free chain, links
	// holds the next free slot (NullOfs terminates); for live slots the last
	// link value is left behind untouched, the same way the embedded free
	// list left stale bytes in reused storage.
	values []T
	links  []int32

	freeFirst int32
	freeLast  int32

	stats PoolStats
}

// New creates an empty pool for element type T. No storage is allocated
// until the first Create. New panics when T has zero size, since byte
// offsets would be meaningless.
func New[T any](opts ...Option[T]) *Pool[T] {
	info := TypeInfoOf[T]()
	if info.Size <= 0 {
		panic("arena: zero-size element type " + info.Name)
	}
	cfg := poolConfig[T]{label: info.Name, logger: Logger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pool[T]{
		info:      info,
		label:     cfg.label,
		log:       cfg.logger,
		onDestroy: cfg.onDestroy,
		freeFirst: NullOfs,
		freeLast:  NullOfs,
	}
}

// Create stores v in a recycled slot, growing the pool first when no free
// slot exists, and returns the slot's handle. The returned handle carries
// version 0; versioning is layered by arena/registry.
func (p *Pool[T]) Create(v T) (Handle[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.freeFirst == NullOfs {
		if err := p.grow(); err != nil {
			return NullHandle[T](), err
		}
	}
	slot := p.popFree()
	p.values[slot] = v
	p.stats.CreateCalls++
	return Handle[T]{Ofs: slot * int32(p.info.Size)}, nil
}

// Destroy releases the element addressed by h: the OnDestroy hook runs with
// the stored value, the slot is cleared so the GC can reclaim anything the
// element referenced, and the slot is pushed on the front of the free list.
// Destroying an already-free slot returns ErrSlotFree.
func (p *Pool[T]) Destroy(h Handle[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot, err := p.slotOf(h)
	if err != nil {
		return err
	}
	if p.isFree(slot) {
		return fmt.Errorf("%w: ofs=%d", ErrSlotFree, h.Ofs)
	}
	if p.onDestroy != nil {
		p.onDestroy(p.values[slot])
	}
	var zero T
	p.values[slot] = zero
	p.pushFree(slot)
	p.stats.DestroyCalls++
	return nil
}

// Get returns a pointer to the live element addressed by h. The pointer is
// valid until the next Create that grows the pool; handles stay valid, so
// re-Get after interleaved creates rather than caching the pointer.
func (p *Pool[T]) Get(h Handle[T]) (*T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot, err := p.slotOf(h)
	if err != nil {
		return nil, err
	}
	if p.isFree(slot) {
		return nil, fmt.Errorf("%w: ofs=%d", ErrSlotFree, h.Ofs)
	}
	return &p.values[slot], nil
}

// Cap returns the pool capacity in bytes.
func (p *Pool[T]) Cap() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capBytes()
}

// Count returns the total slot count, live and free.
func (p *Pool[T]) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.values)
}

// CountFree walks the free chain and returns its length.
func (p *Pool[T]) CountFree() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.countFreeLocked()
}

// CountUsed returns the number of live elements.
func (p *Pool[T]) CountUsed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.values) - p.countFreeLocked()
}

// ElemSize returns the element size in bytes.
func (p *Pool[T]) ElemSize() int64 {
	return p.info.Size
}

// TypeInfo returns the element type descriptor.
func (p *Pool[T]) TypeInfo() TypeInfo {
	return p.info
}

// Label returns the pool's diagnostic name.
func (p *Pool[T]) Label() string {
	return p.label
}

func (p *Pool[T]) capBytes() int64 {
	return int64(len(p.values)) * p.info.Size
}

// slotOf validates h against the current capacity and converts its byte
// offset to a slot index. Liveness is not checked here.
func (p *Pool[T]) slotOf(h Handle[T]) (int32, error) {
	if h.IsNull() {
		return 0, ErrNullHandle
	}
	if h.Ofs < 0 || int64(h.Ofs) >= p.capBytes() {
		return 0, fmt.Errorf("%w: ofs=%d cap=%d", ErrOffsetRange, h.Ofs, p.capBytes())
	}
	if int64(h.Ofs)%p.info.Size != 0 {
		return 0, fmt.Errorf("%w: ofs=%d elem=%d", ErrOffsetAlign, h.Ofs, p.info.Size)
	}
	return int32(int64(h.Ofs) / p.info.Size), nil
}

// grow extends storage to the next power-of-two slot count and threads the
// new slots onto the back of the free chain. Live elements keep their slots,
// and free-link values are carried over verbatim, so offsets mean the same
// thing in the new storage. Caller holds the lock.
func (p *Pool[T]) grow() error {
	oldCount := len(p.values)
	newCount64, ok := bounds.NextPow2(int64(oldCount) + 1)
	if !ok {
		return fmt.Errorf("%w: slot count overflow at %d slots", ErrPoolExhausted, oldCount)
	}
	newBytes, ok := bounds.MulOverflowSafe(newCount64, p.info.Size)
	if !ok || newBytes > maxPoolBytes {
		return fmt.Errorf("%w: %d slots of %d bytes", ErrPoolExhausted, newCount64, p.info.Size)
	}
	newCount := int(newCount64)
	if newCount <= oldCount {
		panic("arena: pool shrink")
	}

	oldBytes := p.capBytes()
	values := make([]T, newCount)
	copy(values, p.values)
	links := make([]int32, newCount)
	copy(links, p.links)
	p.values = values
	p.links = links
	p.expandFreelist(oldCount, newCount)

	p.stats.GrowCalls++
	p.stats.GrowBytes += newBytes - oldBytes
	p.log.Debug("pool grown",
		zap.String("pool", p.label),
		zap.Int("slots", newCount),
		zap.Int64("capacity_bytes", newBytes),
	)
	return nil
}
