// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

// DeterministicGenerator is a non-random Generator: the k-th call to Draw(n, ...) returns k mod n.
type DeterministicGenerator struct {
	step uint64
}

var _ Generator = (*DeterministicGenerator)(nil)

// Draw implements Generator. The context words are ignored.
func (g *DeterministicGenerator) Draw(n, _, _ int) int {
	v := g.step % uint64(n)
	g.step++
	return int(v)
}

// DeterministicFactory always creates a fresh DeterministicGenerator. It never consumes entropy.
//
// It is used to switch sampling randomness off without changing the calling code.
type DeterministicFactory struct{}

var _ Factory = DeterministicFactory{}

// Reseed is a no-op.
func (DeterministicFactory) Reseed() {}

// Create returns a new DeterministicGenerator, regardless of index.
func (DeterministicFactory) Create(_ int) Generator {
	return &DeterministicGenerator{}
}

// Kind implements Factory.
func (DeterministicFactory) Kind() Kind { return KindDeterministic }
