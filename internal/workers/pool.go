// Package workers runs independent jobs on a fixed set of goroutines.
package workers

import (
	"context"
	"runtime"
	"sync"
)

// Pool manages a pool of worker goroutines for parallel processing
type Pool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
}

// NewPool creates a pool with n workers; n <= 0 means one per CPU.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return &Pool{
		numWorkers: n,
		jobQueue:   make(chan func(), n*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for range p.numWorkers {
		go p.worker()
	}
}

func (p *Pool) worker() {
	for {
		select {
		case job := <-p.jobQueue:
			job()
			p.wg.Done()
		case <-p.quit:
			return
		}
	}
}

// Submit queues a job. It blocks while the queue is full.
func (p *Pool) Submit(job func()) {
	p.wg.Add(1)
	p.jobQueue <- job
}

// Wait blocks until every submitted job has finished
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stop shuts the workers down. Jobs still queued are dropped.
func (p *Pool) Stop() {
	close(p.quit)
}

// Workers returns the number of workers in the pool
func (p *Pool) Workers() int {
	return p.numWorkers
}

// ParallelFor calls fn for every i in [start, end) and waits.
func (p *Pool) ParallelFor(start, end int, fn func(int)) {
	p.ParallelForWithContext(context.Background(), start, end, fn)
}

// ParallelForWithContext is ParallelFor with cancellation; indices not yet
// reached when ctx is done are skipped.
func (p *Pool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunkSize := max(1, (end-start)/p.numWorkers)
	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := min(i+chunkSize, end)
		p.Submit(func() {
			for j := chunkStart; j < chunkEnd; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					fn(j)
				}
			}
		})
	}
	p.Wait()
}
