// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package rng supplies independent, reproducible random streams to the parallel workers of an
// iterative embedding optimizer, typically for negative sampling.
//
// The flow is always the same:
//
//  1. The orchestrating goroutine creates an EntropySource (see NewSeededEntropy or NewSystemEntropy)
//     and a Factory (see Build).
//  2. It calls Factory.Reseed once. This is the only place entropy is consumed.
//  3. Each worker calls Factory.Create with its own stream index and from then on only uses the
//     returned Generator.
//
// Batch factories (NewBatchTauFactory, NewBatchPCGFactory) partition a pool of seed words into
// disjoint per-stream ranges. They start unseeded and must be reseeded before use.
// Legacy factories (NewTauFactory, NewPCGFactory) seed themselves at construction and derive each
// stream from the index given to Create. DeterministicFactory disables randomness altogether.
//
// Nothing in this package is cryptographically secure.
//
// Building with the "rngdebug" tag enables contract checks (stream index range, concurrent entropy
// use) that raise exceptions with github.com/gomlx/exceptions. Without the tag these are not checked.
package rng
