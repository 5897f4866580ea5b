package parexec

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Executor maps fn over the chunk indices [0, chunks), invoking each index
// exactly once and returning only after every invocation finished.
type Executor interface {
	Map(chunks int, fn func(chunk int))
}

// Sync is the sequential Executor: chunks run in index order on the calling
// goroutine. Use it whenever deterministic scheduling matters (tests).
type Sync struct{}

// Map runs fn(0) .. fn(chunks-1) in order.
func (Sync) Map(chunks int, fn func(chunk int)) {
	for i := 0; i < chunks; i++ {
		fn(i)
	}
}

// Pool is the concurrent Executor: each chunk runs on its own goroutine,
// with at most `workers` chunks in flight at a time.
type Pool struct {
	workers int64
	sem     *semaphore.Weighted
}

// NewPool returns a Pool bounded to the given worker count.
// A non-positive count means runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Pool{
		workers: int64(workers),
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// Workers returns the concurrency bound of the pool.
func (p *Pool) Workers() int { return int(p.workers) }

// Map fans the chunk indices out over bounded goroutines and waits for all
// of them. Acquire cannot fail here: the context is never canceled.
func (p *Pool) Map(chunks int, fn func(chunk int)) {
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			continue
		}
		wg.Add(1)
		go func(chunk int) {
			defer wg.Done()
			defer p.sem.Release(1)
			fn(chunk)
		}(i)
	}
	wg.Wait()
}

// defaultPool is shared by every engine that was not given an explicit
// Executor; sizing it once to NumCPU avoids per-engine goroutine churn.
var defaultPool = NewPool(0)

// Default returns the process-wide Pool used when no WithExecutor option
// is supplied.
func Default() Executor { return defaultPool }
