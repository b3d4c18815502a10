// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import "k8s.io/klog/v2"

// TauFactory is the non-batch Tausworthe factory: two seeds are shared by all streams and the
// stream index given to Create is used as the third word.
//
// Unlike BatchTauFactory it is seeded as soon as it is created.
type TauFactory struct {
	entropy      EntropySource
	seed1, seed2 uint64
}

var _ Factory = (*TauFactory)(nil)

// NewTauFactory creates a TauFactory, drawing its two seeds immediately.
func NewTauFactory(entropy EntropySource) *TauFactory {
	f := &TauFactory{entropy: entropy}
	f.Reseed()
	return f
}

// Reseed draws new shared seeds.
func (f *TauFactory) Reseed() {
	f.seed1 = f.entropy.Uint64()
	f.seed2 = f.entropy.Uint64()
	klog.V(1).Infof("rng: tau factory reseeded")
}

// Create returns a TauGenerator with the shared seeds and seed as the stream word.
func (f *TauFactory) Create(seed int) Generator {
	g := NewTauGenerator(f.seed1, f.seed2, uint64(seed))
	return &g
}

// Kind implements Factory.
func (f *TauFactory) Kind() Kind { return KindTau }

// PCGFactory is the non-batch PCG factory: one shared 32-bit seed is combined with the value
// given to Create.
//
// The combined seed is narrowed to 32 bits like in BatchPCGFactory, which keeps only the shared
// seed: every stream of a PCGFactory yields the same sequence.
type PCGFactory struct {
	entropy EntropySource
	seed1   uint32
}

var _ Factory = (*PCGFactory)(nil)

// NewPCGFactory creates a PCGFactory, drawing its seed immediately.
func NewPCGFactory(entropy EntropySource) *PCGFactory {
	f := &PCGFactory{entropy: entropy}
	f.Reseed()
	return f
}

// Reseed draws a new shared seed.
func (f *PCGFactory) Reseed() {
	f.seed1 = f.entropy.Uint32()
	klog.V(1).Infof("rng: pcg factory reseeded")
}

// Create returns a PCGGenerator from the shared seed combined with seed.
func (f *PCGFactory) Create(seed int) Generator {
	g := newPCGGeneratorFromWide(CombineSeeds(f.seed1, uint32(seed)))
	return &g
}

// Kind implements Factory.
func (f *PCGFactory) Kind() Kind { return KindPCG }
