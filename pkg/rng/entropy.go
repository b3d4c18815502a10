// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	cryptorand "github.com/decred/dcrd/crypto/rand"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// EntropySource produces the seed words consumed by the factories.
//
// Implementations are not required to be safe for concurrent use: factories only draw from it in
// their constructors and in Reseed, which must be called from a single goroutine before any worker
// starts.
type EntropySource interface {
	// Uint32 returns a uniformly distributed 32-bit word.
	Uint32() uint32

	// Uint64 returns a uniformly distributed 64-bit word.
	Uint64() uint64
}

// UniformSource is the host random generator: Float64 returns a uniform value in [0, 1).
//
// *rand.Rand from math/rand/v2 satisfies it.
type UniformSource interface {
	Float64() float64
}

// Entropy is the EntropySource backed by a host UniformSource. Each word is obtained by scaling a
// single uniform draw to the full width of the word.
//
// An Entropy must only be used from one goroutine at a time. It is not reentrant either: the
// UniformSource must not call back into the Entropy that owns it.
// With the "rngdebug" build tag, violations are detected and raised as exceptions.
type Entropy struct {
	src  UniformSource
	busy atomic.Bool
}

var _ EntropySource = (*Entropy)(nil)

// NewEntropy returns an Entropy drawing from src.
func NewEntropy(src UniformSource) *Entropy {
	return &Entropy{src: src}
}

// NewSeededEntropy returns an Entropy whose host source is a PCG generator with the given seed.
// Two instances with the same seed yield the same words, which makes whole optimization runs
// reproducible.
func NewSeededEntropy(seed uint64) *Entropy {
	klog.V(1).Infof("rng: seeded entropy source, seed=%d", seed)
	return NewEntropy(rand.New(rand.NewPCG(seed, seed)))
}

// NewSystemEntropy returns an Entropy whose host source is a ChaCha8 generator keyed from the
// operating system entropy (through the decred userspace CSPRNG).
func NewSystemEntropy() *Entropy {
	var key [32]byte
	cryptorand.Read(key[:])
	return NewEntropy(rand.New(rand.NewChaCha8(key)))
}

func (e *Entropy) uniform() float64 {
	if debugChecks {
		if !e.busy.CompareAndSwap(false, true) {
			exceptions.Panicf("rng.Entropy used concurrently or reentrantly: it must only be used by the orchestrating goroutine")
		}
		defer e.busy.Store(false)
	}
	return e.src.Float64()
}

// Uint32 implements EntropySource.
func (e *Entropy) Uint32() uint32 {
	word := uint32(e.uniform() * float64(math.MaxUint32))
	if klog.V(2).Enabled() {
		klog.Infof("rng: entropy drew uint32 %d", word)
	}
	return word
}

// Uint64 implements EntropySource.
func (e *Entropy) Uint64() uint64 {
	word := uint64(e.uniform() * float64(math.MaxUint64))
	if klog.V(2).Enabled() {
		klog.Infof("rng: entropy drew uint64 %d", word)
	}
	return word
}
