// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Summary describes a non-empty sample.
type Summary struct {
	Mean   float64
	Median float64

	// Mode is the most frequent value. It is only meaningful when
	// HasMode is true.
	Mode    float64
	HasMode bool

	// StdDev is the sample standard deviation (0 for one value).
	StdDev float64

	Min, Max float64
	Range    float64
	Sum      float64
	Count    int
}

// Summarize computes the Summary of xs. It fails with ErrEmptySample
// if xs has no values. xs is not modified.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmptySample
	}
	s := Sample{Xs: xs}
	lo, hi := s.Bounds()
	mode, ok := s.Mode()
	return Summary{
		Mean:    s.Mean(),
		Median:  s.Median(),
		Mode:    mode,
		HasMode: ok,
		StdDev:  s.StdDev(),
		Min:     lo,
		Max:     hi,
		Range:   hi - lo,
		Sum:     s.Sum(),
		Count:   len(xs),
	}, nil
}
