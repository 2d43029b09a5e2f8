// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats summarizes samples of float64 values.
//
// The heavy lifting (means, deviations, modes, extrema) is done by
// gonum; this package fixes the conventions the calculator relies on,
// such as the treatment of single-value samples and of samples in
// which no value repeats.
package stats // import "github.com/calckit/calckit/stats"

import (
	"errors"
	"math"
)

var nan = math.NaN()

// ErrEmptySample is returned when a summary is requested for a
// sample with no values.
var ErrEmptySample = errors.New("sample is empty")
