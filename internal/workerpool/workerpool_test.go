// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.Workers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.Workers())
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		n, batch int
	}{
		{0, 10},
		{1, 10},
		{100, 10},
		{101, 10},
		{1000, 1},
		{1000, 0},
		{5, 1000},
	}
	for _, tt := range tests {
		hits := make([]int32, tt.n)
		pool.ParallelForBatched(tt.n, tt.batch, func(start, end int) {
			assert.LessOrEqual(t, end-start, max(tt.batch, 1))
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			require.EqualValues(t, 1, h, "n=%d batch=%d index %d", tt.n, tt.batch, i)
		}
	}
}

func TestParallelForBatchedReuse(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var total atomic.Int64
	for range 50 {
		pool.ParallelForBatched(1000, 64, func(start, end int) {
			total.Add(int64(end - start))
		})
	}
	assert.Equal(t, int64(50*1000), total.Load())
}

func TestParallelForBatchedConcurrentCallers(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	var wg sync.WaitGroup
	var total atomic.Int64
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.ParallelForBatched(500, 7, func(start, end int) {
				total.Add(int64(end - start))
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8*500), total.Load())
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var calls int
	pool.ParallelForBatched(100, 10, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	})
	assert.Equal(t, 1, calls)
}
