package workers

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPoolCreation(t *testing.T) {
	if p := NewPool(0); p.Workers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers (CPU count), got %d", runtime.NumCPU(), p.Workers())
	}
	if p := NewPool(4); p.Workers() != 4 {
		t.Errorf("Expected 4 workers, got %d", p.Workers())
	}
}

func TestPoolJobExecution(t *testing.T) {
	p := NewPool(2)
	p.Start()
	defer p.Stop()

	var counter atomic.Int32
	for range 10 {
		p.Submit(func() { counter.Add(1) })
	}
	p.Wait()

	if counter.Load() != 10 {
		t.Errorf("Expected counter to be 10, got %d", counter.Load())
	}
}

func TestParallelFor(t *testing.T) {
	p := NewPool(3)
	p.Start()
	defer p.Stop()

	var results [10]int32
	p.ParallelFor(0, 10, func(i int) {
		atomic.StoreInt32(&results[i], int32(i*2))
	})

	for i := range results {
		if got := atomic.LoadInt32(&results[i]); got != int32(i*2) {
			t.Errorf("Expected results[%d] = %d, got %d", i, i*2, got)
		}
	}

	called := false
	p.ParallelFor(5, 5, func(int) { called = true })
	if called {
		t.Error("Empty range should not call fn")
	}
}

func TestParallelForCancelled(t *testing.T) {
	p := NewPool(2)
	p.Start()
	defer p.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	p.ParallelForWithContext(ctx, 0, 100, func(int) { calls.Add(1) })
	if calls.Load() != 0 {
		t.Errorf("Expected no calls after cancel, got %d", calls.Load())
	}
}

func TestPoolConcurrentSubmit(t *testing.T) {
	p := NewPool(4)
	p.Start()
	defer p.Stop()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				p.Submit(func() { counter.Add(1) })
			}
		}()
	}
	wg.Wait()
	p.Wait()

	if counter.Load() != 500 {
		t.Errorf("Expected 500 jobs, got %d", counter.Load())
	}
}
