// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "testing"

func TestSummarize(t *testing.T) {
	xs := []float64{10, 15, 20, 25, 30, 25, 20}
	s, err := Summarize(xs)
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{
		Mean:    20.714285714285715,
		Median:  20,
		Mode:    20,
		HasMode: true,
		StdDev:  6.725927091,
		Min:     10,
		Max:     30,
		Range:   20,
		Sum:     145,
		Count:   7,
	}
	if !aeq(want.Mean, s.Mean) || !aeq(want.StdDev, s.StdDev) {
		t.Errorf("want mean %v std dev %v, got %v %v", want.Mean, want.StdDev, s.Mean, s.StdDev)
	}
	s.Mean, s.StdDev = want.Mean, want.StdDev
	if s != want {
		t.Errorf("want %+v, got %+v", want, s)
	}
}

func TestSummarizeNoMode(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if s.HasMode {
		t.Errorf("want no mode, got %v", s.Mode)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); err != ErrEmptySample {
		t.Errorf("want ErrEmptySample, got %v", err)
	}
}
