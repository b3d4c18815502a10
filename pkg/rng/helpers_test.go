// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

// countingEntropy yields 1, 2, 3, ... in draw order, for both widths.
type countingEntropy struct {
	next  uint64
	draws int
}

func (c *countingEntropy) Uint32() uint32 {
	c.next++
	c.draws++
	return uint32(c.next)
}

func (c *countingEntropy) Uint64() uint64 {
	c.next++
	c.draws++
	return c.next
}

// fixedUniform always returns the same value.
type fixedUniform float64

func (f fixedUniform) Float64() float64 { return float64(f) }

// drawN returns the first count values drawn from g.
func drawN(g Generator, n, count int) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = g.Draw(n, i, 2*i+1)
	}
	return values
}
