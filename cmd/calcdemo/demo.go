// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/calckit/calckit/calc"
)

// runDemo exercises a fixed sequence of operations on s and prints
// each result to w, followed by the most recent history records. It
// stops at the first rejected input.
func runDemo(w io.Writer, s *calc.Session, cfg Config) error {
	fmt.Fprint(w, "=== Calculator Demo ===\n\n")

	fmt.Fprintln(w, "Basic Arithmetic:")
	fmt.Fprintf(w, "10 + 5 = %v\n", s.Add(10, 5))
	fmt.Fprintf(w, "10 - 3 = %v\n", s.Subtract(10, 3))
	fmt.Fprintf(w, "6 * 7 = %v\n", s.Multiply(6, 7))
	q, err := s.Divide(15, 3)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "15 / 3 = %v\n", q)
	fmt.Fprintf(w, "2^8 = %v\n", s.Power(2, 8))
	root, err := s.SquareRoot(16)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "√16 = %v\n", root)
	fact, err := s.Factorial(5)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "5! = %v\n", fact)

	fmt.Fprintln(w, "\nAdvanced Calculations:")
	fmt.Fprintf(w, "15%% of 200 = %v\n", s.Percentage(200, 15))

	ci := s.CompoundInterest(1000, 5, 2, 1)
	fmt.Fprintf(w, "Compound Interest: Amount = $%.*f, Interest = $%.*f\n",
		cfg.MoneyPrecision, ci.Amount, cfg.MoneyPrecision, ci.Interest)

	bmi := s.BMI(70, 1.75)
	fmt.Fprintf(w, "BMI: %v (%s)\n", bmi.BMI, bmi.Category)

	for _, tc := range []struct {
		angle float64
		fn    string
	}{{30, "sin"}, {60, "cos"}} {
		v, err := s.Trigonometry(tc.angle, tc.fn)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s(%v°) = %.*f\n", tc.fn, tc.angle, cfg.TrigPrecision, v)
	}

	numbers := []float64{10, 15, 20, 25, 30, 25, 20}
	st, err := s.Statistics(numbers)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nStatistics for %v:\n", numbers)
	fmt.Fprintf(w, "Mean: %.2f\n", st.Mean)
	fmt.Fprintf(w, "Median: %v\n", st.Median)
	fmt.Fprintf(w, "Mode: %s\n", st.ModeString())
	fmt.Fprintf(w, "Standard Deviation: %.2f\n", st.StdDev)

	quad, err := s.Quadratic(1, -5, 6)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nQuadratic equation x² - 5x + 6 = 0:")
	fmt.Fprintf(w, "Solutions: %s\n", quad)

	fmt.Fprintln(w, "\nArea Calculations:")
	fmt.Fprintf(w, "Rectangle (5×3): %v\n", s.Area(calc.Rectangle{Length: 5, Width: 3}))
	circle, err := s.AreaByName("circle", map[string]float64{"radius": 4})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Circle (radius=4): %.2f\n", circle)
	fmt.Fprintf(w, "Triangle (base=6, height=8): %v\n", s.Area(calc.Triangle{Base: 6, Height: 8}))

	fmt.Fprintf(w, "\nCalculation History (%d operations):\n", s.Len())
	for i, rec := range s.Recent(cfg.HistoryTail) {
		fmt.Fprintf(w, "%d. %s\n", i+1, rec)
	}
	return nil
}
