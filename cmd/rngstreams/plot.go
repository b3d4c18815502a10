// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/gomlx/embedrng/pkg/rng/streamstats"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotBins saves a bar chart of the merged bin counts of all streams to filePath.
func plotBins(filePath string, histograms []*streamstats.Histogram) error {
	merged := streamstats.NewHistogram(len(histograms[0].Bins))
	for _, hist := range histograms {
		merged.Merge(hist)
	}
	values := make(plotter.Values, len(merged.Bins))
	for i, count := range merged.Bins {
		values[i] = float64(count)
	}

	p := plot.New()
	p.Title.Text = "Draws per bin, all streams"
	p.X.Label.Text = "bin"
	p.Y.Label.Text = "count"
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return errors.Wrap(err, "failed to create bar chart")
	}
	p.Add(bars)
	expected, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: merged.Expected()},
		{X: float64(len(values)) - 0.5, Y: merged.Expected()},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create expected-count line")
	}
	p.Add(expected)
	p.Legend.Add("expected", expected)
	if err := p.Save(12*vg.Inch, 6*vg.Inch, filePath); err != nil {
		return errors.Wrapf(err, "failed to save plot to %q", filePath)
	}
	return nil
}
