package taskpool

// Future holds the pending result of a task queued with Go.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Wait blocks until the task has run and returns its result.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Done returns a channel closed when the result is ready, for select loops.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Go queues fn on p and returns a future for its result. If the pool is
// already closed the future resolves immediately with ErrClosed.
func Go[T any](p *Pool, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	err := p.Submit(func() {
		f.val, f.err = fn()
		close(f.done)
	})
	if err != nil {
		f.err = err
		close(f.done)
	}
	return f
}
