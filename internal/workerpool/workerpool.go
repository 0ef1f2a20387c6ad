// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs batched index ranges on a fixed set of goroutines.
//
// The rotation engines are single-threaded; the pool serves the tooling
// around them, such as filling multi-gigabyte test buffers:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForBatched(len(data), 1<<20, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        data[i] = int32(i)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of goroutines that stay alive until Close.
type Pool struct {
	workers int
	tasks   chan func()
	once    sync.Once
	closed  atomic.Bool
}

// New starts a pool of workers goroutines, or GOMAXPROCS when workers <= 0.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers),
	}
	for range workers {
		go func() {
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Workers returns the number of goroutines in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after queued tasks finish. It is safe to call more
// than once; a closed pool runs ParallelForBatched on the calling goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelForBatched calls fn on consecutive [start, end) ranges of at most
// batch indexes covering [0, n). Workers claim the next batch atomically, so
// uneven batches balance out. It returns when every batch is done.
func (p *Pool) ParallelForBatched(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch = max(batch, 1)
	batches := (n + batch - 1) / batch
	workers := min(p.workers, batches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- func() {
			defer wg.Done()
			for {
				start := int(next.Add(1)-1) * batch
				if start >= n {
					return
				}
				fn(start, min(start+batch, n))
			}
		}
	}
	wg.Wait()
}
