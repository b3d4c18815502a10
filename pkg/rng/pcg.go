// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import "math/rand/v2"

// PCGWordsPerStream is the number of 32-bit seed words a batch PCG stream consumes.
const PCGWordsPerStream = 2

// pcgIncrement selects the PCG sequence. It is shared by all streams: streams differ by seed only.
const pcgIncrement = 0xda3e39cb94b95bdb

// PCGGenerator is a permuted congruential generator seeded from a single 32-bit word.
//
// It is a value type: copying it forks the stream.
type PCGGenerator struct {
	seed uint32
	src  rand.PCG
}

var _ Generator = (*PCGGenerator)(nil)

// NewPCGGenerator creates a PCGGenerator from its native 32-bit seed.
func NewPCGGenerator(seed uint32) PCGGenerator {
	g := PCGGenerator{seed: seed}
	g.src.Seed(uint64(seed), pcgIncrement)
	return g
}

// newPCGGeneratorFromWide narrows a combined 64-bit seed to the native 32-bit width: only the low
// word survives. Reproducible runs depend on this narrowing, so it must stay as is.
func newPCGGeneratorFromWide(seed uint64) PCGGenerator {
	return NewPCGGenerator(uint32(seed))
}

// Seed returns the 32-bit seed the generator was created with.
func (g *PCGGenerator) Seed() uint32 {
	return g.seed
}

// Draw implements Generator.
//
// The context words are accepted for parity with TauGenerator and are intentionally unused.
func (g *PCGGenerator) Draw(n, _, _ int) int {
	return int(g.src.Uint64() % uint64(n))
}
