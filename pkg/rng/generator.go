// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

// Generator is one random stream.
//
// Draw returns a value in [0, n). The two context words identify the sampling decision being made
// (e.g. the edge and the negative sample number); whether they influence the result depends on the
// generator family. n must be > 0.
//
// A Generator is owned by a single worker and is not safe for concurrent use.
type Generator interface {
	Draw(n, ctxA, ctxB int) int
}

// Factory hands out independent generators, one per stream.
type Factory interface {
	// Reseed refreshes the seed material from the entropy source.
	// It must not run concurrently with Create or with any other use of the entropy source.
	Reseed()

	// Create returns the generator for the given stream. It does not modify the factory and can be
	// called concurrently once the factory is seeded.
	Create(index int) Generator

	// Kind of generators created.
	Kind() Kind
}

// Kind enumerates the generator families.
type Kind int

const (
	// KindTau is the combined Tausworthe generator, TauGenerator.
	KindTau Kind = iota

	// KindPCG is the permuted congruential generator, PCGGenerator.
	KindPCG

	// KindDeterministic is the non-random DeterministicGenerator.
	KindDeterministic
)

//go:generate go tool enumer -type=Kind -trimprefix=Kind -transform=snake -values -text -output=gen_kind_enumer.go generator.go
