// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompoundInterest(t *testing.T) {
	s, _ := newTestSession(t)
	r := s.CompoundInterest(1000, 5, 2, 1)
	assert.InDelta(t, 1102.5, r.Amount, 1e-9)
	assert.InDelta(t, 102.5, r.Interest, 1e-9)
	assert.True(t, strings.HasPrefix(s.History()[0], "Compound Interest: P=1000, R=5%, T=2 years = 102.5"))

	monthly := s.CompoundInterest(1000, 12, 1, 12)
	assert.InDelta(t, 1000*math.Pow(1.01, 12), monthly.Amount, 1e-9)
}

func TestCompoundInterestDefaultsToAnnual(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, s.CompoundInterest(500, 3, 4, 1), s.CompoundInterest(500, 3, 4, 0))
}

func TestCompoundInterestNegativeCompounding(t *testing.T) {
	s, _ := newTestSession(t)
	r := s.CompoundInterest(1000, 5, 2, -1)
	assert.InDelta(t, 1000*math.Pow(0.95, -2), r.Amount, 1e-9)
	assert.NotEqual(t, s.CompoundInterest(1000, 5, 2, 1), r)
}

func TestBMI(t *testing.T) {
	s, _ := newTestSession(t)
	r := s.BMI(70, 1.75)
	assert.Equal(t, BMIResult{BMI: 22.86, Category: NormalWeight}, r)
	assert.Equal(t, []string{"BMI: 70kg, 1.75m = 22.86"}, s.History())
}

func TestBMICategories(t *testing.T) {
	tests := []struct {
		bmi  float64
		want Category
	}{
		{10, Underweight},
		{18.49, Underweight},
		{18.5, NormalWeight},
		{24.99, NormalWeight},
		{25, Overweight},
		{29.99, Overweight},
		{30, Obese},
		{45, Obese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categorize(tt.bmi), "bmi %v", tt.bmi)
	}
}

func TestBMIZeroHeight(t *testing.T) {
	s, _ := newTestSession(t)
	r := s.BMI(70, 0)
	assert.True(t, math.IsInf(r.BMI, 1))
	assert.Equal(t, Obese, r.Category)
	assert.Equal(t, []string{"BMI: 70kg, 0m = inf"}, s.History())

	r = s.BMI(0, 0)
	assert.True(t, math.IsNaN(r.BMI))
	assert.Equal(t, "BMI: 0kg, 0m = nan", s.History()[1])
}
