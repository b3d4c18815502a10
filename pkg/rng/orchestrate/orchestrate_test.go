// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package orchestrate

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gomlx/embedrng/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFactory counts calls to Reseed and Create.
type recordingFactory struct {
	rng.Factory
	reseeds atomic.Int32
	mu      sync.Mutex
	created map[int]int
}

func (f *recordingFactory) Reseed() {
	f.reseeds.Add(1)
	f.Factory.Reseed()
}

func (f *recordingFactory) Create(index int) rng.Generator {
	f.mu.Lock()
	f.created[index]++
	f.mu.Unlock()
	return f.Factory.Create(index)
}

func newRecordingFactory(t *testing.T, kind rng.Kind, numStreams int) *recordingFactory {
	inner, err := rng.Build(rng.NewSeededEntropy(5)).Kind(kind).Batch(numStreams).Done()
	require.NoError(t, err)
	return &recordingFactory{Factory: inner, created: make(map[int]int)}
}

func TestRun(t *testing.T) {
	const numStreams = 16
	for _, kind := range rng.KindValues() {
		f := newRecordingFactory(t, kind, numStreams)
		draws := make([][]int, numStreams)
		parallelism := 4
		if kind == rng.KindPCG {
			parallelism = 0 // Number of CPUs.
		}
		Run(f, numStreams, parallelism, func(stream int, g rng.Generator) {
			values := make([]int, 8)
			for i := range values {
				values[i] = g.Draw(100, stream, i)
			}
			draws[stream] = values
		})
		assert.Equal(t, int32(1), f.reseeds.Load(), "kind %s", kind)
		require.Len(t, f.created, numStreams)
		for stream := range numStreams {
			assert.Equal(t, 1, f.created[stream], "kind %s, stream %d", kind, stream)
			assert.Len(t, draws[stream], 8)
		}
	}
}

func TestRunMatchesSequential(t *testing.T) {
	const numStreams = 8
	collect := func(parallel bool) [][]int {
		f := newRecordingFactory(t, rng.KindTau, numStreams)
		out := make([][]int, numStreams)
		fn := func(stream int, g rng.Generator) {
			for i := range 10 {
				out[stream] = append(out[stream], g.Draw(1000, stream, i))
			}
		}
		if parallel {
			Run(f, numStreams, -1, fn)
		} else {
			RunSequential(f, numStreams, fn)
		}
		return out
	}
	assert.Equal(t, collect(false), collect(true))
}

func TestRunUnlimited(t *testing.T) {
	// More streams than CPUs, and every worker waits for all others to start: this only finishes
	// if all streams run at the same time.
	numStreams := 2*runtime.NumCPU() + 1
	f := newRecordingFactory(t, rng.KindTau, numStreams)
	var started atomic.Int32
	allStarted := make(chan struct{})
	var timedOut atomic.Bool
	Run(f, numStreams, -1, func(int, rng.Generator) {
		if int(started.Add(1)) == numStreams {
			close(allStarted)
		}
		select {
		case <-allStarted:
		case <-time.After(5 * time.Second):
			timedOut.Store(true)
		}
	})
	assert.False(t, timedOut.Load(), "streams did not all run concurrently")
	assert.Equal(t, int32(numStreams), started.Load())
}
