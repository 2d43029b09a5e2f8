// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc_test

import (
	"errors"
	"fmt"

	"github.com/calckit/calckit/calc"
)

func Example() {
	s := calc.New()
	s.Add(10, 5)
	q, _ := s.Quadratic(1, -5, 6)
	fmt.Println(q)

	if _, err := s.Divide(1, 0); errors.Is(err, calc.ErrDivisionByZero) {
		fmt.Println(err)
	}

	for _, rec := range s.History() {
		fmt.Println(rec)
	}
	s.ClearHistory()
	fmt.Println(s.Len())
	// Output:
	// x1 = 3.0, x2 = 2.0
	// divide: b: cannot divide by zero
	// 10 + 5 = 15
	// Quadratic: 1x² + -5x + 6 = 0, Solutions: x1 = 3.0, x2 = 2.0
	// History cleared!
	// 0
}

func ExampleSession_AreaByName() {
	s := calc.New()
	a, err := s.AreaByName("Circle", map[string]float64{"radius": 4})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", a)
	fmt.Println(s.History()[0])

	_, err = s.AreaByName("hexagon", nil)
	fmt.Println(errors.Is(err, calc.ErrUnsupportedShape))
	// Output:
	// 50.27
	// Circle area: π × 4² = 50.26548245743669
	// true
}
