// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineSeeds(t *testing.T) {
	assert.Equal(t, uint64(0), CombineSeeds())
	assert.Equal(t, uint64(7), CombineSeeds(7))
	assert.Equal(t, uint64(math.MaxUint32), CombineSeeds(math.MaxUint32))

	words := []uint32{0, 1, 0xdeadbeef, math.MaxUint32}
	for _, a := range words {
		for _, b := range words {
			got := CombineSeeds(a, b)
			assert.Equal(t, a, uint32(got), "low half of CombineSeeds(%#x, %#x)", a, b)
			assert.Equal(t, b, uint32(got>>32), "high half of CombineSeeds(%#x, %#x)", a, b)
		}
	}

	// Extra words are ignored.
	assert.Equal(t, CombineSeeds(1, 2), CombineSeeds(1, 2, 3))
}
