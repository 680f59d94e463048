package arena

// PoolStats carries operation counters for instrumentation and tests.
type PoolStats struct {
	CreateCalls  int   // Create() calls that returned a handle
	DestroyCalls int   // Destroy() calls that freed a slot
	GrowCalls    int   // Inline growths triggered by Create
	GrowBytes    int64 // Total bytes added by growth
}

// Stats returns a copy of the pool's counters.
func (p *Pool[T]) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
