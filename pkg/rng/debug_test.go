// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

//go:build rngdebug

package rng

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/require"
)

func TestDebugStreamIndex(t *testing.T) {
	tau := NewBatchTauFactory(&countingEntropy{}, 2)
	tau.Reseed()
	err := exceptions.TryCatch[error](func() { tau.Create(2) })
	require.ErrorContains(t, err, "out of range")
	err = exceptions.TryCatch[error](func() { tau.Create(-1) })
	require.ErrorContains(t, err, "out of range")

	pcg := NewBatchPCGFactory(&countingEntropy{}, 0)
	err = exceptions.TryCatch[error](func() { pcg.Create(0) })
	require.ErrorContains(t, err, "out of range")

	require.NotPanics(t, func() { tau.Create(1) })
}

// reentrantUniform calls back into its own Entropy, which is a contract violation.
type reentrantUniform struct {
	entropy *Entropy
}

func (r *reentrantUniform) Float64() float64 {
	r.entropy.Uint32()
	return 0.5
}

func TestDebugEntropyReentrancy(t *testing.T) {
	src := &reentrantUniform{}
	src.entropy = NewEntropy(src)
	err := exceptions.TryCatch[error](func() { src.entropy.Uint64() })
	require.ErrorContains(t, err, "reentrantly")
}
