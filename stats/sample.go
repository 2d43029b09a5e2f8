// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a set of observations. The order of Xs is preserved;
// methods that need sorted data work on a copy unless Sorted is set.
type Sample struct {
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Copy returns a copy of s that does not share its backing array.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts s in place and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// Sum returns the sum of the values in s.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Median returns the middle value of s. For an even number of values
// it is the mean of the two middle values. It is NaN if s is empty.
func (s Sample) Median() float64 {
	n := len(s.Xs)
	if n == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if n%2 == 1 {
		return s.Xs[n/2]
	}
	return (s.Xs[n/2-1] + s.Xs[n/2]) / 2
}

// StdDev returns the sample standard deviation of s, using n-1 in
// the denominator. A sample with fewer than two values has a standard
// deviation of 0.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return 0
	}
	return stat.StdDev(s.Xs, nil)
}

// Mode returns the most frequent value in s and whether s has one.
//
// A sample in which every value is distinct has no mode. When several
// values share the highest frequency, Mode returns the one that
// occurs first in Xs.
func (s Sample) Mode() (float64, bool) {
	// stat.Mode is not used: it ranges over a map, so its choice
	// among tied values varies from call to call.
	counts := make(map[float64]int, len(s.Xs))
	order := make([]float64, 0, len(s.Xs))
	for _, x := range s.Xs {
		if counts[x] == 0 {
			order = append(order, x)
		}
		counts[x]++
	}
	if len(order) == len(s.Xs) {
		return nan, false
	}
	mode, best := order[0], counts[order[0]]
	for _, x := range order[1:] {
		if counts[x] > best {
			mode, best = x, counts[x]
		}
	}
	return mode, true
}

// Bounds returns the smallest and largest values in s. If s is empty,
// both are NaN.
func (s Sample) Bounds() (lo, hi float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}
