package arena

// VisitUsed invokes f for every live element in slot order. Two passes: the
// free chain is folded into a bitmap first, then every slot not on it is
// visited, so cost is O(2N) regardless of how the chain happens to be
// ordered. f runs under the pool lock and must not call back into the pool.
func (p *Pool[T]) VisitUsed(f func(h Handle[T], v *T)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	free := p.freeBits()
	elemSize := int32(p.info.Size)
	for i := range p.values {
		if free.Get(i) {
			continue
		}
		f(Handle[T]{Ofs: int32(i) * elemSize}, &p.values[i])
	}
}
