// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package orchestrate runs one worker per random stream, in the order the rng package requires:
// the factory is reseeded by the calling goroutine first, and only then are the workers started,
// each creating its own generator.
package orchestrate

import (
	"github.com/gomlx/embedrng/internal/workerspool"
	"github.com/gomlx/embedrng/pkg/rng"
	"k8s.io/klog/v2"
)

// WorkerFn is called once per stream, with the generator created for it.
// Calls for different streams may run concurrently.
type WorkerFn func(stream int, g rng.Generator)

// Run reseeds factory, then calls fn for each stream in [0, numStreams) with at most parallelism
// calls running at the same time. It returns when all calls are finished.
//
// parallelism 0 defaults to runtime.NumCPU(), and a negative parallelism starts every stream at once.
//
// For batch factories numStreams must not exceed the number of streams the factory was built for.
func Run(factory rng.Factory, numStreams, parallelism int, fn WorkerFn) {
	var pool *workerspool.Pool
	if parallelism == 0 {
		pool = workerspool.New()
	} else {
		pool = workerspool.WithParallelism(parallelism)
	}
	run(factory, numStreams, pool, fn)
}

// RunSequential is like Run, but calls fn for each stream in order on the calling goroutine.
func RunSequential(factory rng.Factory, numStreams int, fn WorkerFn) {
	run(factory, numStreams, workerspool.WithParallelism(0), fn)
}

func run(factory rng.Factory, numStreams int, pool *workerspool.Pool, fn WorkerFn) {
	// Entropy is only touched here, before any worker exists.
	factory.Reseed()
	klog.V(1).Infof("orchestrate: running %d %s streams (parallelism=%d)", numStreams, factory.Kind(), pool.MaxParallelism())
	for stream := range numStreams {
		pool.WaitToStart(func() {
			fn(stream, factory.Create(stream))
		})
	}
	pool.Wait()
}
