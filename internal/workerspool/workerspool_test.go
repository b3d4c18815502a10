// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package workerspool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_Limit(t *testing.T) {
	const maxParallelism = 3
	pool := WithParallelism(maxParallelism)
	assert.False(t, pool.IsUnlimited())

	var running, peak, count atomic.Int32
	for range 50 {
		pool.WaitToStart(func() {
			now := running.Add(1)
			for {
				old := peak.Load()
				if now <= old || peak.CompareAndSwap(old, now) {
					break
				}
			}
			runtime.Gosched()
			count.Add(1)
			running.Add(-1)
		})
	}
	pool.Wait()
	assert.Equal(t, int32(50), count.Load())
	assert.LessOrEqual(t, peak.Load(), int32(maxParallelism))
}

func TestPool_Inline(t *testing.T) {
	pool := WithParallelism(0)
	assert.Zero(t, pool.MaxParallelism())
	var order []int
	for i := range 5 {
		pool.WaitToStart(func() { order = append(order, i) })
	}
	pool.Wait()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestPool_Default(t *testing.T) {
	pool := New()
	assert.Equal(t, runtime.NumCPU(), pool.MaxParallelism())
	assert.False(t, pool.IsUnlimited())
}

func TestPool_Unlimited(t *testing.T) {
	pool := WithParallelism(-1)
	assert.True(t, pool.IsUnlimited())
	var count atomic.Int32
	for range 100 {
		pool.WaitToStart(func() { count.Add(1) })
	}
	pool.Wait()
	assert.Equal(t, int32(100), count.Load())
}
