// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

// TauWordsPerStream is the number of 64-bit seed words a TauGenerator is built from.
const TauWordsPerStream = 3

// Minimum values of the three Tausworthe components: smaller states degenerate.
const (
	tauMin0 = 2
	tauMin1 = 8
	tauMin2 = 16
)

// TauGenerator is a combined Tausworthe generator (three 32-bit LFSR components).
//
// It is a value type: copying it forks the stream, and the copy evolves independently.
type TauGenerator struct {
	seeds [TauWordsPerStream]uint64
	state [TauWordsPerStream]uint64
}

var _ Generator = (*TauGenerator)(nil)

// NewTauGenerator creates a TauGenerator from two long-lived mixing seeds and a stream-specific word.
//
// Each word is hashed into its 32-bit component state: the Tausworthe steps drop low bits of the
// components, so small stream words used directly would collapse into the same sequence.
func NewTauGenerator(seed1, seed2, stream uint64) TauGenerator {
	return TauGenerator{
		seeds: [TauWordsPerStream]uint64{seed1, seed2, stream},
		state: [TauWordsPerStream]uint64{
			max(mixWord(seed1)&0xffffffff, tauMin0),
			max(mixWord(seed2)&0xffffffff, tauMin1),
			max(mixWord(stream)&0xffffffff, tauMin2),
		},
	}
}

// Seeds returns the words the generator was created with.
func (g *TauGenerator) Seeds() [TauWordsPerStream]uint64 {
	return g.seeds
}

// next advances the three components and returns their combination.
func (g *TauGenerator) next() uint32 {
	s := &g.state
	s[0] = (((s[0] & 4294967294) << 12) & 0xffffffff) ^ ((((s[0] << 13) & 0xffffffff) ^ s[0]) >> 19)
	s[1] = (((s[1] & 4294967288) << 4) & 0xffffffff) ^ ((((s[1] << 2) & 0xffffffff) ^ s[1]) >> 25)
	s[2] = (((s[2] & 4294967280) << 17) & 0xffffffff) ^ ((((s[2] << 3) & 0xffffffff) ^ s[2]) >> 11)
	return uint32(s[0] ^ s[1] ^ s[2])
}

// Draw implements Generator. Both context words are mixed into the output.
func (g *TauGenerator) Draw(n, ctxA, ctxB int) int {
	word := g.next() ^ uint32(mixContext(uint64(ctxA), uint64(ctxB)))
	return int(uint64(word) % uint64(n))
}

// mixWord is one SplitMix64 step: distinct words map to unrelated outputs, and 0 maps to non-zero.
func mixWord(w uint64) uint64 {
	return splitMixFinalize(w + 0x9e3779b97f4a7c15)
}

// mixContext hashes the two context words with the SplitMix64 finalizer.
func mixContext(a, b uint64) uint64 {
	return splitMixFinalize(a*0x9e3779b97f4a7c15 ^ b)
}

func splitMixFinalize(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
