// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatsTable(t *testing.T) {
	table := newStatsTable([]string{"Stream", "Chi²"}, lipgloss.Right)
	table.Row(false, "0", "8.5")
	table.Row(true, "1", "93.25")
	table.Row(false, "2", "11")
	assert.Equal(t, 3, table.numRows)
	assert.Equal(t, map[int]bool{0: false, 1: true, 2: false}, table.flagged)

	rendered := table.Render()
	for _, cell := range []string{"Stream", "Chi²", "8.5", "93.25", "11"} {
		assert.Contains(t, rendered, cell)
	}
}
