// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// rngstreams draws from a set of parallel random streams, the way an embedding optimizer would
// for negative sampling, and reports how uniform each stream is.
//
// Example:
//
//	rngstreams -kind=pcg -streams=16 -draws=1000000 -plot=/tmp/bins.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/embedrng/pkg/rng"
	"github.com/gomlx/embedrng/pkg/rng/orchestrate"
	"github.com/gomlx/embedrng/pkg/rng/streamstats"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

var (
	flagKind = flag.String("kind", "tau",
		fmt.Sprintf("Generator family, one of %s.", strings.Join(rng.KindStrings(), ", ")))
	flagLegacy  = flag.Bool("legacy", false, "Use the non-batch factory: streams derived from their index instead of a seed pool.")
	flagStreams = flag.Int("streams", 8, "Number of parallel streams (one per worker).")
	flagDraws   = flag.Int("draws", 100_000, "Number of draws per stream.")
	flagN       = flag.Int("n", 10_000, "Upper bound of the drawn values, e.g. the number of points of the embedding.")
	flagBins    = flag.Int("bins", 20, "Number of histogram bins used to measure uniformity.")
	flagSeed    = flag.Uint64("seed", 0, "Seed of the host random source. 0 uses system entropy (non-reproducible).")
	flagWorkers = flag.Int("parallelism", 0, "Maximum number of streams drawn at the same time. 0 uses the number of CPUs, negative draws all streams at once.")
	flagPlot    = flag.String("plot", "", "If set, saves a bar chart of the merged bin counts to this PNG file.")
	flagNoColor = flag.Bool("no_color", false, "Disable colors in the output.")
)

// progressChunk is the number of draws between progress bar updates.
const progressChunk = 10_000

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if err := validateFlags(); err != nil {
		klog.Errorf("%v. See 'rngstreams -help'.", err)
		os.Exit(1)
	}

	var entropy rng.EntropySource
	if *flagSeed == 0 {
		entropy = rng.NewSystemEntropy()
	} else {
		entropy = rng.NewSeededEntropy(*flagSeed)
	}
	config := rng.Build(entropy).KindName(*flagKind)
	if *flagLegacy {
		config = config.Legacy()
	} else {
		config = config.Batch(*flagStreams)
	}
	factory := must.M1(config.Done())

	histograms := drawStreams(factory)
	report(factory, histograms)
	if *flagPlot != "" {
		must.M(plotBins(*flagPlot, histograms))
		fmt.Printf("Bin counts plotted to %q\n", *flagPlot)
	}
}

func validateFlags() error {
	switch {
	case *flagStreams < 1:
		return errors.Errorf("-streams must be >= 1, got %d", *flagStreams)
	case *flagDraws < 1:
		return errors.Errorf("-draws must be >= 1, got %d", *flagDraws)
	case *flagN < 1:
		return errors.Errorf("-n must be >= 1, got %d", *flagN)
	case *flagBins < 1 || *flagBins > *flagN:
		return errors.Errorf("-bins must be in [1, -n=%d], got %d", *flagN, *flagBins)
	}
	return nil
}

// drawStreams runs one worker per stream and returns the histogram of each stream's draws.
func drawStreams(factory rng.Factory) []*streamstats.Histogram {
	numStreams, numDraws, n := *flagStreams, *flagDraws, *flagN
	histograms := make([]*streamstats.Histogram, numStreams)
	bar := progressbar.NewOptions64(int64(numStreams)*int64(numDraws),
		progressbar.OptionSetDescription("drawing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("draws"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	var barMu sync.Mutex
	addProgress := func(amount int) {
		barMu.Lock()
		defer barMu.Unlock()
		_ = bar.Add(amount)
	}

	orchestrate.Run(factory, numStreams, *flagWorkers, func(stream int, g rng.Generator) {
		hist := streamstats.NewHistogram(*flagBins)
		pending := 0
		for i := range numDraws {
			hist.Add(g.Draw(n, stream, i), n)
			pending++
			if pending == progressChunk {
				addProgress(pending)
				pending = 0
			}
		}
		addProgress(pending)
		histograms[stream] = hist
	})
	_ = bar.Finish()
	return histograms
}
