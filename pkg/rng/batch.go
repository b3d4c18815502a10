// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import (
	"sync/atomic"

	"k8s.io/klog/v2"
)

// BatchTauFactory holds TauWordsPerStream 64-bit seed words for each of a fixed number of streams.
//
// Stream i reads words [3i, 3i+3) of the pool. The pool starts zeroed: call Reseed before Create.
type BatchTauFactory struct {
	entropy    EntropySource
	numStreams int
	pool       atomic.Pointer[[]uint64]
	generation atomic.Int64
}

var _ Factory = (*BatchTauFactory)(nil)

// NewBatchTauFactory creates an unseeded factory for numStreams streams.
func NewBatchTauFactory(entropy EntropySource, numStreams int) *BatchTauFactory {
	f := &BatchTauFactory{entropy: entropy, numStreams: numStreams}
	pool := make([]uint64, numStreams*TauWordsPerStream)
	f.pool.Store(&pool)
	return f
}

// Reseed draws a whole new pool, in pool order, and replaces the previous one in a single step.
func (f *BatchTauFactory) Reseed() {
	pool := make([]uint64, f.numStreams*TauWordsPerStream)
	for i := range pool {
		pool[i] = f.entropy.Uint64()
	}
	f.pool.Store(&pool)
	gen := f.generation.Add(1)
	klog.V(1).Infof("rng: batch tau factory reseeded (%d streams, generation %d)", f.numStreams, gen)
}

// Create returns the TauGenerator of the given stream. index must be in [0, NumStreams()).
func (f *BatchTauFactory) Create(index int) Generator {
	assertStreamIndex("BatchTauFactory", index, f.numStreams)
	words := (*f.pool.Load())[index*TauWordsPerStream : (index+1)*TauWordsPerStream]
	g := NewTauGenerator(words[0], words[1], words[2])
	return &g
}

// Kind implements Factory.
func (f *BatchTauFactory) Kind() Kind { return KindTau }

// NumStreams the factory was created for.
func (f *BatchTauFactory) NumStreams() int { return f.numStreams }

// Generation returns the number of times Reseed was called. 0 means unseeded.
func (f *BatchTauFactory) Generation() int64 { return f.generation.Load() }

// Seeded returns whether Reseed was called at least once.
func (f *BatchTauFactory) Seeded() bool { return f.Generation() > 0 }

// Pool returns a copy of the current seed words.
func (f *BatchTauFactory) Pool() []uint64 {
	pool := *f.pool.Load()
	out := make([]uint64, len(pool))
	copy(out, pool)
	return out
}

// BatchPCGFactory holds PCGWordsPerStream 32-bit seed words for each of a fixed number of streams.
//
// Stream i combines words 2i and 2i+1 with CombineSeeds and narrows the result to 32 bits, so only
// word 2i ends up seeding the generator. The pool starts zeroed: call Reseed before Create.
type BatchPCGFactory struct {
	entropy    EntropySource
	numStreams int
	pool       atomic.Pointer[[]uint32]
	generation atomic.Int64
}

var _ Factory = (*BatchPCGFactory)(nil)

// NewBatchPCGFactory creates an unseeded factory for numStreams streams.
func NewBatchPCGFactory(entropy EntropySource, numStreams int) *BatchPCGFactory {
	f := &BatchPCGFactory{entropy: entropy, numStreams: numStreams}
	pool := make([]uint32, numStreams*PCGWordsPerStream)
	f.pool.Store(&pool)
	return f
}

// Reseed draws a whole new pool, in pool order, and replaces the previous one in a single step.
func (f *BatchPCGFactory) Reseed() {
	pool := make([]uint32, f.numStreams*PCGWordsPerStream)
	for i := range pool {
		pool[i] = f.entropy.Uint32()
	}
	f.pool.Store(&pool)
	gen := f.generation.Add(1)
	klog.V(1).Infof("rng: batch pcg factory reseeded (%d streams, generation %d)", f.numStreams, gen)
}

// Create returns the PCGGenerator of the given stream. index must be in [0, NumStreams()).
func (f *BatchPCGFactory) Create(index int) Generator {
	assertStreamIndex("BatchPCGFactory", index, f.numStreams)
	words := (*f.pool.Load())[index*PCGWordsPerStream : (index+1)*PCGWordsPerStream]
	g := newPCGGeneratorFromWide(CombineSeeds(words...))
	return &g
}

// Kind implements Factory.
func (f *BatchPCGFactory) Kind() Kind { return KindPCG }

// NumStreams the factory was created for.
func (f *BatchPCGFactory) NumStreams() int { return f.numStreams }

// Generation returns the number of times Reseed was called. 0 means unseeded.
func (f *BatchPCGFactory) Generation() int64 { return f.generation.Load() }

// Seeded returns whether Reseed was called at least once.
func (f *BatchPCGFactory) Seeded() bool { return f.Generation() > 0 }

// Pool returns a copy of the current seed words, widened to 64 bits.
func (f *BatchPCGFactory) Pool() []uint64 {
	pool := *f.pool.Load()
	out := make([]uint64, len(pool))
	for i, w := range pool {
		out[i] = uint64(w)
	}
	return out
}
