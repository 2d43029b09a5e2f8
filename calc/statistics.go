// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import "github.com/calckit/calckit/stats"

// NoMode is how ModeString reports a sample in which every value is
// distinct.
const NoMode = "No mode"

// StatisticsResult summarizes a list of numbers. When several values
// are equally frequent, Mode is the one listed first.
type StatisticsResult struct {
	stats.Summary
}

// ModeString returns the mode in record notation, or NoMode.
func (r StatisticsResult) ModeString() string {
	if !r.HasMode {
		return NoMode
	}
	return formatNumber(r.Mode)
}

// Statistics summarizes xs. It fails with ErrEmptyInput if xs is
// empty. xs is not modified.
func (s *Session) Statistics(xs []float64) (StatisticsResult, error) {
	sum, err := stats.Summarize(xs)
	if err != nil {
		// Summarize only fails on an empty sample.
		return StatisticsResult{}, s.reject("statistics", "numbers", ErrEmptyInput, "list cannot be empty")
	}
	s.record("statistics", "Statistics calculated for %d numbers", sum.Count)
	return StatisticsResult{sum}, nil
}
