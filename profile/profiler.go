// Package profile accumulates wall-clock intervals per category and
// subtask, for coarse frame-style timing reports. It is a bookkeeping
// profiler, not a sampling one: callers bracket the code they care about
// with Start/Stop and read back totals, counts, and averages.
package profile

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// Accum is the accumulated timing of one key.
type Accum struct {
	TotalMS float64
	Count   int
}

// AvgMS returns the mean interval length in milliseconds.
func (a Accum) AvgMS() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.TotalMS / float64(a.Count)
}

// Profiler accumulates intervals under string keys. Category keys stand on
// their own; subtask keys are stored as "category#subtask" and reported as
// fractions of their category's total. All methods are safe for concurrent
// use, but one key should only be open in one goroutine at a time.
type Profiler struct {
	mu     sync.Mutex
	open   map[string]time.Time
	accums map[string]Accum

	now func() time.Time // swapped out in tests
}

// NewProfiler creates an empty profiler.
func NewProfiler() *Profiler {
	return &Profiler{
		open:   make(map[string]time.Time),
		accums: make(map[string]Accum),
		now:    time.Now,
	}
}

func taskKey(category, subtask string) string {
	return category + "#" + subtask
}

// Start opens an interval for category. Starting an already open key
// restarts it; the earlier start is discarded.
func (p *Profiler) Start(category string) {
	p.startKey(category)
}

// StartTask opens an interval for a subtask within category.
func (p *Profiler) StartTask(category, subtask string) {
	p.startKey(taskKey(category, subtask))
}

// Stop closes the category interval and adds it to the accumulator. Stopping
// a key that is not open is a no-op.
func (p *Profiler) Stop(category string) {
	p.stopKey(category)
}

// StopTask closes a subtask interval.
func (p *Profiler) StopTask(category, subtask string) {
	p.stopKey(taskKey(category, subtask))
}

func (p *Profiler) startKey(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open[key] = p.now()
}

func (p *Profiler) stopKey(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	started, ok := p.open[key]
	if !ok {
		return
	}
	delete(p.open, key)

	a := p.accums[key]
	a.TotalMS += float64(p.now().Sub(started)) / float64(time.Millisecond)
	a.Count++
	p.accums[key] = a
}

// Total returns the accumulator of a category key.
func (p *Profiler) Total(category string) (Accum, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.accums[category]
	return a, ok
}

// Task returns the accumulator of a subtask key.
func (p *Profiler) Task(category, subtask string) (Accum, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.accums[taskKey(category, subtask)]
	return a, ok
}

// Reset drops the category's accumulator, its open interval, and all of its
// subtasks.
func (p *Profiler) Reset(category string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefix := category + "#"
	for key := range p.accums {
		if key == category || strings.HasPrefix(key, prefix) {
			delete(p.accums, key)
		}
	}
	for key := range p.open {
		if key == category || strings.HasPrefix(key, prefix) {
			delete(p.open, key)
		}
	}
}

// ResetAll drops everything.
func (p *Profiler) ResetAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = make(map[string]time.Time)
	p.accums = make(map[string]Accum)
}

// Report writes the category's totals followed by each subtask's share,
// subtasks sorted by name:
//
//	frame: 33.60 ms over 2 runs (avg 16.80 ms)
//	  update: 12.00 ms, 2 runs, avg 6.00 ms, 35.7%
//
// Percentages are of the category total; when the category itself was never
// timed, the subtask sum stands in for it.
func (p *Profiler) Report(w io.Writer, category string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefix := category + "#"
	var subtasks []string
	subtaskSum := 0.0
	for key := range p.accums {
		if strings.HasPrefix(key, prefix) {
			subtasks = append(subtasks, key)
			subtaskSum += p.accums[key].TotalMS
		}
	}
	sort.Strings(subtasks)

	total, haveTotal := p.accums[category]
	if !haveTotal && len(subtasks) == 0 {
		_, err := fmt.Fprintf(w, "%s: no samples\n", category)
		return err
	}

	base := total.TotalMS
	if !haveTotal {
		base = subtaskSum
	}
	if haveTotal {
		if _, err := fmt.Fprintf(w, "%s: %.2f ms over %d runs (avg %.2f ms)\n",
			category, total.TotalMS, total.Count, total.AvgMS()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s: %.2f ms (subtask sum)\n", category, base); err != nil {
			return err
		}
	}

	for _, key := range subtasks {
		a := p.accums[key]
		pct := 0.0
		if base > 0 {
			pct = 100 * a.TotalMS / base
		}
		if _, err := fmt.Fprintf(w, "  %s: %.2f ms, %d runs, avg %.2f ms, %.1f%%\n",
			strings.TrimPrefix(key, prefix), a.TotalMS, a.Count, a.AvgMS(), pct); err != nil {
			return err
		}
	}
	return nil
}
