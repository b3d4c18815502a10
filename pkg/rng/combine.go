// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

// CombineSeeds merges up to two 32-bit words into a 64-bit seed.
//
// No words yield 0, one word is zero-extended, and two words yield words[1]<<32 | words[0].
// Words past the second are ignored.
func CombineSeeds(words ...uint32) uint64 {
	switch len(words) {
	case 0:
		return 0
	case 1:
		return uint64(words[0])
	default:
		return uint64(words[1])<<32 | uint64(words[0])
	}
}
