// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent pool of goroutines for fanning
// independent kernel calls out across cores.
//
// The statistics kernels themselves are single-threaded. A Pool is created
// once by the caller and handed to the Parallel* entry points, which split
// their outer loop (for example the rows of a covariance matrix) across the
// workers and block until every piece is done.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(rows), func(i int) {
//	    processRow(i)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of workers reused across parallel operations.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one worker's share of a parallel operation.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines that live until Close.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending tasks finish. Calling Close more
// than once is safe. A closed pool still accepts work and runs it on the
// calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// run hands fn to workers goroutines and waits for all of them.
func (p *Pool) run(workers int, fn func(w int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.tasks <- task{fn: func() { fn(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each chunk. Blocks until all chunks complete.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	workers = (n + chunk - 1) / chunk
	p.run(workers, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing indices out
// one at a time so that uneven work per index stays balanced. Blocks until
// all indices are processed.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	})
}
