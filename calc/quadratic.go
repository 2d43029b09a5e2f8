// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"
	"math"
)

// NoRealSolutions describes a quadratic whose roots are complex.
const NoRealSolutions = "No real solutions (complex roots)"

// QuadraticResult holds the real roots of a quadratic equation.
type QuadraticResult struct {
	// Real is false if the discriminant is negative, in which case
	// X1 and X2 are meaningless.
	Real bool

	// X1 is the root from -b + √d, X2 the root from -b - √d. They
	// are equal when the discriminant is zero.
	X1, X2 float64
}

func (r QuadraticResult) String() string {
	if !r.Real {
		return NoRealSolutions
	}
	return fmt.Sprintf("x1 = %s, x2 = %s", formatFloat(r.X1), formatFloat(r.X2))
}

// Quadratic solves ax² + bx + c = 0 for real x. It fails with
// ErrInvalidArgument if a is 0.
func (s *Session) Quadratic(a, b, c float64) (QuadraticResult, error) {
	if a == 0 {
		return QuadraticResult{}, s.reject("quadratic", "a", ErrInvalidArgument, "coefficient cannot be zero in a quadratic equation")
	}
	eq := fmt.Sprintf("Quadratic: %sx² + %sx + %s = 0", formatNumber(a), formatNumber(b), formatNumber(c))

	d := b*b - 4*a*c
	switch {
	case d < 0:
		s.record("quadratic", "%s, %s", eq, NoRealSolutions)
		return QuadraticResult{}, nil
	case d == 0:
		x := -b / (2 * a)
		s.record("quadratic", "%s, Solution: x = %s", eq, formatFloat(x))
		return QuadraticResult{Real: true, X1: x, X2: x}, nil
	}
	sq := math.Sqrt(d)
	r := QuadraticResult{
		Real: true,
		X1:   (-b + sq) / (2 * a),
		X2:   (-b - sq) / (2 * a),
	}
	s.record("quadratic", "%s, Solutions: x1 = %s, x2 = %s", eq, formatFloat(r.X1), formatFloat(r.X2))
	return r, nil
}
