// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"strings"
)

// A TrigFunc is one of the supported trigonometric functions.
type TrigFunc string

const (
	Sin TrigFunc = "sin"
	Cos TrigFunc = "cos"
	Tan TrigFunc = "tan"
)

// ParseTrigFunc returns the TrigFunc named by name, ignoring case.
func ParseTrigFunc(name string) (TrigFunc, bool) {
	switch f := TrigFunc(strings.ToLower(name)); f {
	case Sin, Cos, Tan:
		return f, true
	}
	return "", false
}

func (f TrigFunc) apply(radians float64) float64 {
	switch f {
	case Sin:
		return math.Sin(radians)
	case Cos:
		return math.Cos(radians)
	}
	return math.Tan(radians)
}

// Trigonometry applies the function named by function ("sin", "cos" or
// "tan", in any case) to an angle given in degrees. It fails with
// ErrInvalidArgument for any other function name.
//
// The record shows the function name as given.
func (s *Session) Trigonometry(angleDegrees float64, function string) (float64, error) {
	f, ok := ParseTrigFunc(function)
	if !ok {
		return 0, s.reject("trigonometry", "function", ErrInvalidArgument, "function must be sin, cos, or tan")
	}
	r := f.apply(angleDegrees * (math.Pi / 180))
	s.record("trigonometry", "%s(%s°) = %s", function, formatNumber(angleDegrees), formatFloat(r))
	return r, nil
}
