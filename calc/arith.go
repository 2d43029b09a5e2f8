// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"math/big"
)

// Add returns a + b.
func (s *Session) Add(a, b float64) float64 {
	r := a + b
	s.record("add", "%s + %s = %s", formatNumber(a), formatNumber(b), formatNumber(r))
	return r
}

// Subtract returns a - b.
func (s *Session) Subtract(a, b float64) float64 {
	r := a - b
	s.record("subtract", "%s - %s = %s", formatNumber(a), formatNumber(b), formatNumber(r))
	return r
}

// Multiply returns a * b.
func (s *Session) Multiply(a, b float64) float64 {
	r := a * b
	s.record("multiply", "%s * %s = %s", formatNumber(a), formatNumber(b), formatNumber(r))
	return r
}

// Divide returns a / b. It fails with ErrDivisionByZero if b is 0.
func (s *Session) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, s.reject("divide", "b", ErrDivisionByZero, "cannot divide by zero")
	}
	r := a / b
	s.record("divide", "%s / %s = %s", formatNumber(a), formatNumber(b), formatFloat(r))
	return r, nil
}

// Power returns base raised to exponent, following math.Pow for
// fractional and negative exponents.
func (s *Session) Power(base, exponent float64) float64 {
	r := math.Pow(base, exponent)
	s.record("power", "%s ^ %s = %s", formatNumber(base), formatNumber(exponent), formatNumber(r))
	return r
}

// SquareRoot returns the square root of x. It fails with
// ErrInvalidDomain if x is negative.
func (s *Session) SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, s.reject("square_root", "number", ErrInvalidDomain, "cannot take the square root of a negative number")
	}
	r := math.Sqrt(x)
	s.record("square_root", "√%s = %s", formatNumber(x), formatFloat(r))
	return r, nil
}

// Factorial returns n! after truncating n toward zero. It fails with
// ErrInvalidDomain if n is negative or not finite.
//
// The cost grows with n; the result is exact for any n.
func (s *Session) Factorial(n float64) (*big.Int, error) {
	if n < 0 {
		return nil, s.reject("factorial", "n", ErrInvalidDomain, "factorial is not defined for negative numbers")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n >= math.MaxInt64 {
		return nil, s.reject("factorial", "n", ErrInvalidDomain, "factorial is only defined for finite integers")
	}
	r := new(big.Int).MulRange(1, int64(n))
	s.record("factorial", "%s! = %s", formatNumber(n), r.String())
	return r, nil
}

// Percentage returns percent percent of value.
func (s *Session) Percentage(value, percent float64) float64 {
	r := percent / 100 * value
	s.record("percentage", "%s%% of %s = %s", formatNumber(percent), formatNumber(value), formatFloat(r))
	return r
}
