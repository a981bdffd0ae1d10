package search

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool runs fire-and-forget DFS workers, optionally bounding how many
// run concurrently.
type Pool interface {
	Go(fn func())
}

// AdHocPool spawns a fresh goroutine per call. Used by debug single-draw
// mode, which has no shared pool to submit into.
type AdHocPool struct{}

func (AdHocPool) Go(fn func()) { go fn() }

// BoundedPool caps concurrent workers with a weighted semaphore, the
// inner pool simulation mode submits DFS workers into instead of
// spawning unbounded goroutines.
type BoundedPool struct {
	sem *semaphore.Weighted
}

// NewBoundedPool builds a pool that runs at most size workers at once.
func NewBoundedPool(size int) *BoundedPool {
	if size < 1 {
		size = 1
	}
	return &BoundedPool{sem: semaphore.NewWeighted(int64(size))}
}

func (p *BoundedPool) Go(fn func()) {
	// Acquire blocks until a slot frees; test_candidate callers always
	// run on a goroutine of their own, so this never deadlocks the
	// caller's own execution.
	if err := p.sem.Acquire(context.Background(), 1); err != nil {
		return
	}
	go func() {
		defer p.sem.Release(1)
		fn()
	}()
}

// waitGroupDone runs wg.Wait in a goroutine and signals on the returned
// channel, so callers can select between it and a deadline timer.
func waitGroupDone(wg *sync.WaitGroup) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}
