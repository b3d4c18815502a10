// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/embedrng/pkg/rng"
	"github.com/gomlx/embedrng/pkg/rng/streamstats"
)

// suspiciousChiSquareFactor flags streams whose chi² exceeds this multiple of the degrees of freedom.
const suspiciousChiSquareFactor = 3

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
	cellStyle  = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	headStyle  = cellStyle.Reverse(true).Align(lipgloss.Center)
	flagStyle  = cellStyle.Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"})
)

// statsTable is a lipgloss table where rows can be flagged (rendered in red) as they are added.
type statsTable struct {
	table   *lgtable.Table
	numRows int
	flagged map[int]bool
}

// newStatsTable creates a table with the given header, if any. alignments are given per column, and
// the last one is used for the remaining columns.
func newStatsTable(header []string, alignments ...lipgloss.Position) *statsTable {
	t := &statsTable{flagged: make(map[int]bool)}
	t.table = lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headStyle
			}
			s := cellStyle.Faint(row%2 == 1)
			if t.flagged[row] {
				s = flagStyle
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			return s.Align(alignment)
		})
	if len(header) > 0 {
		t.table.Headers(header...)
	}
	return t
}

// Row appends a row, rendered in red if flagged.
func (t *statsTable) Row(flagged bool, cells ...string) {
	t.flagged[t.numRows] = flagged
	t.table.Row(cells...)
	t.numRows++
}

func (t *statsTable) Render() string {
	return t.table.Render()
}

// report prints a summary of the run and one row of uniformity statistics per stream.
// Streams with a suspiciously large chi² are flagged.
func report(factory rng.Factory, histograms []*streamstats.Histogram) {
	merged := streamstats.NewHistogram(*flagBins)
	chiSquares := make([]float64, len(histograms))
	for stream, hist := range histograms {
		merged.Merge(hist)
		chiSquares[stream] = hist.ChiSquare()
	}
	degreesOfFreedom := *flagBins - 1
	maxChiSquare := float64(suspiciousChiSquareFactor * max(degreesOfFreedom, 1))

	mode := "batch"
	if *flagLegacy {
		mode = "legacy"
	}
	fmt.Println(titleStyle.Render("Summary"))
	summary := newStatsTable(nil, lipgloss.Right, lipgloss.Left)
	summary.Row(false, "generator", fmt.Sprintf("%s (%s)", factory.Kind(), mode))
	summary.Row(false, "# streams", humanize.Comma(int64(len(histograms))))
	summary.Row(false, "# draws", humanize.Comma(merged.Total))
	summary.Row(false, "upper bound", humanize.Comma(int64(*flagN)))
	summary.Row(false, "degrees of freedom", humanize.Comma(int64(degreesOfFreedom)))
	summary.Row(false, "merged chi²", humanize.FtoaWithDigits(merged.ChiSquare(), 4))
	summary.Row(false, "best stream chi²", humanize.FtoaWithDigits(streamstats.MinOf(chiSquares), 4))
	worst := streamstats.MaxOf(chiSquares)
	summary.Row(worst > maxChiSquare, "worst stream chi²", humanize.FtoaWithDigits(worst, 4))
	fmt.Println(summary.Render())

	fmt.Println(titleStyle.Render("Streams"))
	streams := newStatsTable([]string{"Stream", "Draws", "Chi²", "Max deviation"}, lipgloss.Right)
	for stream, hist := range histograms {
		streams.Row(chiSquares[stream] > maxChiSquare,
			humanize.Comma(int64(stream)),
			humanize.Comma(hist.Total),
			humanize.FtoaWithDigits(chiSquares[stream], 4),
			fmt.Sprintf("%.2f%%", 100*hist.MaxDeviation()),
		)
	}
	fmt.Println(streams.Render())
}
