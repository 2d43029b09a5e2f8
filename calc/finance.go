// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"strconv"
)

// InterestResult is the outcome of a compound interest calculation.
type InterestResult struct {
	// Amount is the balance at the end of the term.
	Amount float64

	// Interest is Amount less the principal.
	Interest float64
}

// CompoundInterest returns the balance after investing principal for
// years years at an annual rate of rate percent, compounded
// compoundsPerYear times a year. A compoundsPerYear of 0 means annual
// compounding; negative values are used as given.
func (s *Session) CompoundInterest(principal, rate, years float64, compoundsPerYear int) InterestResult {
	if compoundsPerYear == 0 {
		compoundsPerYear = 1
	}
	n := float64(compoundsPerYear)
	amount := principal * math.Pow(1+rate/100/n, n*years)
	res := InterestResult{Amount: amount, Interest: amount - principal}
	s.record("compound_interest", "Compound Interest: P=%s, R=%s%%, T=%s years = %s",
		formatNumber(principal), formatNumber(rate), formatNumber(years), formatFloat(res.Interest))
	return res
}

// A Category is a body mass index classification.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// categorize classifies an unrounded BMI value.
func categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	}
	return Obese
}

// BMIResult is a body mass index and its classification.
type BMIResult struct {
	// BMI is rounded to two decimal places.
	BMI      float64
	Category Category
}

// BMI computes the body mass index for a weight in kilograms and a
// height in meters. A zero height is not rejected; it yields an
// infinite or NaN index.
func (s *Session) BMI(weightKg, heightM float64) BMIResult {
	bmi := weightKg / (heightM * heightM)
	shown := formatNumber(bmi)
	if !math.IsNaN(bmi) && !math.IsInf(bmi, 0) {
		shown = strconv.FormatFloat(bmi, 'f', 2, 64)
	}
	s.record("bmi", "BMI: %skg, %sm = %s", formatNumber(weightKg), formatNumber(heightM), shown)
	return BMIResult{
		BMI:      math.Round(bmi*100) / 100,
		Category: categorize(bmi),
	}
}
