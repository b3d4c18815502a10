// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package streamstats collects histograms of the values drawn from random streams and measures how
// far they are from uniform.
package streamstats

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Histogram of draws in [0, n) grouped into equally sized bins.
//
// A Histogram is not safe for concurrent use: give each worker its own and Merge them at the end.
type Histogram struct {
	Bins  []int64
	Total int64
}

// NewHistogram returns an empty Histogram with numBins bins.
func NewHistogram(numBins int) *Histogram {
	return &Histogram{Bins: make([]int64, numBins)}
}

// Add records value, drawn from [0, n).
func (h *Histogram) Add(value, n int) {
	bin := int(int64(value) * int64(len(h.Bins)) / int64(n))
	h.Bins[bin]++
	h.Total++
}

// Merge adds the counts of other into h. Both must have the same number of bins.
func (h *Histogram) Merge(other *Histogram) {
	if len(other.Bins) != len(h.Bins) {
		panic(fmt.Sprintf("streamstats.Histogram.Merge: %d bins merged into %d bins", len(other.Bins), len(h.Bins)))
	}
	for i, count := range other.Bins {
		h.Bins[i] += count
	}
	h.Total += other.Total
}

// Expected count of each bin if draws were perfectly uniform.
//
// It assumes n is a multiple of the number of bins, otherwise bins have slightly different widths.
func (h *Histogram) Expected() float64 {
	return float64(h.Total) / float64(len(h.Bins))
}

// ChiSquare statistic of the bin counts against the uniform distribution, with len(Bins)-1 degrees of
// freedom. It returns 0 for an empty histogram.
func (h *Histogram) ChiSquare() float64 {
	if h.Total == 0 {
		return 0
	}
	expected := h.Expected()
	var chi float64
	for _, count := range h.Bins {
		diff := float64(count) - expected
		chi += diff * diff / expected
	}
	return chi
}

// MaxDeviation returns the largest relative difference between a bin count and the expected count.
func (h *Histogram) MaxDeviation() float64 {
	if h.Total == 0 {
		return 0
	}
	expected := h.Expected()
	var deviation float64
	for _, count := range h.Bins {
		deviation = max(deviation, math.Abs(float64(count)-expected))
	}
	return deviation / expected
}

// Sum of values.
func Sum[T constraints.Integer | constraints.Float](values []T) (sum T) {
	for _, v := range values {
		sum += v
	}
	return
}

// MaxOf returns the largest of values, or the zero value if values is empty.
func MaxOf[T constraints.Ordered](values []T) (m T) {
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return
}

// MinOf returns the smallest of values, or the zero value if values is empty.
func MinOf[T constraints.Ordered](values []T) (m T) {
	for i, v := range values {
		if i == 0 || v < m {
			m = v
		}
	}
	return
}
