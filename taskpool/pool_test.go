package taskpool

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Submit_RunsQueuedTasks(t *testing.T) {
	p := New(WithWorkers(4))
	defer p.Close()

	var ran atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(func() {
			ran.Add(1)
			wg.Done()
		}))
	}
	wg.Wait()
	assert.Equal(t, int64(100), ran.Load())
}

func Test_SingleWorker_RunsInSubmissionOrder(t *testing.T) {
	p := New(WithWorkers(1))

	var mu sync.Mutex
	var order []int
	for i := 0; i < 50; i++ {
		require.NoError(t, p.Submit(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	p.Close()

	require.Len(t, order, 50)
	for i, v := range order {
		assert.Equal(t, i, v, "position %d", i)
	}
}

func Test_Close_DrainsQueueBeforeReturning(t *testing.T) {
	p := New(WithWorkers(2))

	var ran atomic.Int64
	for i := 0; i < 200; i++ {
		require.NoError(t, p.Submit(func() {
			time.Sleep(100 * time.Microsecond)
			ran.Add(1)
		}))
	}
	p.Close()

	assert.Equal(t, int64(200), ran.Load(), "queued work survives shutdown")
	assert.True(t, p.QueueEmpty())
}

func Test_Submit_AfterClose_ErrClosed(t *testing.T) {
	p := New(WithWorkers(1))
	p.Close()

	err := p.Submit(func() {})
	assert.ErrorIs(t, err, ErrClosed)
}

func Test_Close_Twice_IsSafe(t *testing.T) {
	p := New(WithWorkers(1))
	require.NoError(t, p.Submit(func() {}))
	p.Close()
	p.Close()
}

func Test_Submit_NilTask_Panics(t *testing.T) {
	p := New(WithWorkers(1))
	defer p.Close()

	require.Panics(t, func() {
		_ = p.Submit(nil)
	})
}

func Test_DefaultWorkerCount(t *testing.T) {
	p := New()
	defer p.Close()
	assert.Equal(t, runtime.NumCPU(), p.Workers())

	p2 := New(WithWorkers(0))
	defer p2.Close()
	assert.Equal(t, runtime.NumCPU(), p2.Workers(), "worker counts below 1 fall back to the default")
}

func Test_Go_DeliversValue(t *testing.T) {
	p := New(WithWorkers(2))
	defer p.Close()

	f := Go(p, func() (int, error) {
		return 42, nil
	})
	v, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func Test_Go_DeliversError(t *testing.T) {
	p := New(WithWorkers(2))
	defer p.Close()

	boom := errors.New("boom")
	f := Go(p, func() (string, error) {
		return "", boom
	})
	_, err := f.Wait()
	assert.ErrorIs(t, err, boom)
}

func Test_Go_OnClosedPool_ResolvesWithErrClosed(t *testing.T) {
	p := New(WithWorkers(1))
	p.Close()

	f := Go(p, func() (int, error) { return 1, nil })
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future never resolved")
	}
	_, err := f.Wait()
	assert.ErrorIs(t, err, ErrClosed)
}

func Test_Futures_ManyInFlight(t *testing.T) {
	p := New(WithWorkers(4))
	defer p.Close()

	futures := make([]*Future[int], 100)
	for i := range futures {
		futures[i] = Go(p, func() (int, error) {
			return i * i, nil
		})
	}
	for i, f := range futures {
		v, err := f.Wait()
		require.NoError(t, err)
		assert.Equal(t, i*i, v)
	}
}

func Test_Concurrent_Submitters(t *testing.T) {
	p := New(WithWorkers(4))

	var ran atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				if err := p.Submit(func() { ran.Add(1) }); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	p.Close()

	assert.Equal(t, int64(8*250), ran.Load())
}
