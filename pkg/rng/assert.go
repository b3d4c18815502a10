// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package rng

import "github.com/gomlx/exceptions"

// assertStreamIndex panics if index is outside [0, numStreams). Only active with the rngdebug tag.
func assertStreamIndex(factory string, index, numStreams int) {
	if debugChecks && (index < 0 || index >= numStreams) {
		exceptions.Panicf("%s.Create(%d): stream index out of range [0, %d)", factory, index, numStreams)
	}
}
