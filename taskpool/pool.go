// Package taskpool runs queued tasks on a fixed set of worker goroutines.
//
// The queue is unbounded FIFO: Submit never blocks on a full queue, it only
// appends and wakes a worker. Close drains everything already queued before
// the workers exit, so a producer can queue a batch and shut down without
// losing work.
package taskpool

import (
	"errors"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// ErrClosed is returned by Submit after Close has been called.
var ErrClosed = errors.New("taskpool: pool is closed")

// Pool is a fixed-size worker pool. The zero value is not usable; construct
// with New.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool

	workers int
	wg      sync.WaitGroup
	log     *zap.Logger
	label   string
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithWorkers sets the worker count. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithLabel names the pool in log events.
func WithLabel(label string) Option {
	return func(p *Pool) {
		p.label = label
	}
}

// WithLogger sets the pool's logger, no-op by default.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a pool and starts its workers. Worker count defaults to
// runtime.NumCPU().
func New(opts ...Option) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
		log:     zap.NewNop(),
		label:   "taskpool",
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker()
	}
	p.log.Debug("task pool started",
		zap.String("pool", p.label),
		zap.Int("workers", p.workers),
	)
	return p
}

// Submit queues task for execution. Returns ErrClosed after Close; panics on
// a nil task.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		panic("taskpool: nil task")
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
	return nil
}

// QueueEmpty reports whether no task is waiting. Tasks already picked up by
// a worker do not count as waiting.
func (p *Pool) QueueEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) == 0
}

// Workers returns the worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops accepting tasks, runs everything still queued, and joins the
// workers. Safe to call more than once; later calls just wait.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.wg.Wait()
		return
	}
	p.closed = true
	p.mu.Unlock()

	p.cond.Broadcast()
	p.wg.Wait()
	p.log.Debug("task pool stopped", zap.String("pool", p.label))
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			// closed and drained
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue[0] = nil // release for GC; the slice head is about to move
		p.queue = p.queue[1:]
		p.mu.Unlock()

		task()
	}
}
