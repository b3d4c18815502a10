// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	entropy := &countingEntropy{}

	f, err := Build(entropy).Done()
	require.NoError(t, err)
	tau, ok := f.(*BatchTauFactory)
	require.True(t, ok, "got %T", f)
	assert.Equal(t, 1, tau.NumStreams())
	assert.False(t, tau.Seeded(), "batch factories are returned unseeded")

	f, err = Build(entropy).Kind(KindPCG).Batch(8).Done()
	require.NoError(t, err)
	pcg, ok := f.(*BatchPCGFactory)
	require.True(t, ok, "got %T", f)
	assert.Equal(t, 8, pcg.NumStreams())
	assert.Zero(t, entropy.draws)

	f, err = Build(entropy).KindName("tau").Legacy().Done()
	require.NoError(t, err)
	assert.IsType(t, &TauFactory{}, f)
	assert.Equal(t, 2, entropy.draws)

	f, err = Build(entropy).KindName("PCG").Legacy().Done()
	require.NoError(t, err)
	assert.IsType(t, &PCGFactory{}, f)

	f, err = Build(nil).Kind(KindDeterministic).Done()
	require.NoError(t, err)
	assert.Equal(t, DeterministicFactory{}, f)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(nil).Kind(KindTau).Done()
	require.ErrorContains(t, err, "entropy")

	_, err = Build(&countingEntropy{}).Batch(0).Done()
	require.ErrorContains(t, err, "at least one stream")

	_, err = Build(&countingEntropy{}).KindName("mersenne").Done()
	require.ErrorContains(t, err, "mersenne")

	_, err = Build(&countingEntropy{}).Kind(Kind(17)).Done()
	require.ErrorContains(t, err, "Kind(17)")
}

func TestKindText(t *testing.T) {
	assert.Equal(t, []string{"tau", "pcg", "deterministic"}, KindStrings())
	for _, kind := range KindValues() {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		var parsed Kind
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, kind, parsed)
	}
	assert.False(t, Kind(-1).IsAKind())
}
