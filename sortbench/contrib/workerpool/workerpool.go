// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for the
// bookkeeping around benchmark measurements: cloning inputs before a timed
// batch and verifying the sorted copies after it.
//
// The pool never runs while a measurement clock is running, so it does not
// perturb timings. A Pool is created once per run and reused for every
// (method, input) pair, which avoids spawning goroutines per measurement.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	copies := workerpool.Clone(pool, input, runs)
//	// ... time the sorts sequentially ...
//	ok := pool.All(len(copies), func(i int) bool { return isSorted(copies[i]) })
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// A nil *Pool is valid and runs everything on the calling goroutine.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// sequential reports whether work for n items should run on the caller.
func (p *Pool) sequential(n int) bool {
	return p == nil || p.closed.Load() || min(p.numWorkers, n) <= 1
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing, which balances better when the cost per item varies.
// Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// All reports whether pred holds for every index in [0, n). Every index is
// evaluated, even after a failure.
func (p *Pool) All(n int, pred func(i int) bool) bool {
	var failed atomic.Bool
	p.ParallelForAtomic(n, func(i int) {
		if !pred(i) {
			failed.Store(true)
		}
	})
	return !failed.Load()
}

// Clone returns copies independent clones of src. The clones share no
// backing memory with src or with each other.
func Clone[T any](p *Pool, src []T, copies int) [][]T {
	if copies <= 0 {
		return nil
	}
	out := make([][]T, copies)
	p.ParallelFor(copies, func(start, end int) {
		for i := start; i < end; i++ {
			c := make([]T, len(src))
			copy(c, src)
			out[i] = c
		}
	})
	return out
}
