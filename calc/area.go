// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A Shape is a plane figure with known dimensions. The set of shapes
// is closed: Rectangle, Circle, Triangle and Square.
type Shape interface {
	area() float64
	describe(area float64) string
}

// A Rectangle is a rectangle with sides Length and Width.
type Rectangle struct{ Length, Width float64 }

// A Circle is a circle of the given Radius.
type Circle struct{ Radius float64 }

// A Triangle is a triangle with the given Base and perpendicular Height.
type Triangle struct{ Base, Height float64 }

// A Square is a square with sides of length Side.
type Square struct{ Side float64 }

func (r Rectangle) area() float64 { return r.Length * r.Width }
func (c Circle) area() float64    { return math.Pi * (c.Radius * c.Radius) }
func (t Triangle) area() float64  { return 0.5 * t.Base * t.Height }
func (s Square) area() float64    { return s.Side * s.Side }

func (r Rectangle) describe(a float64) string {
	return fmt.Sprintf("Rectangle area: %s × %s = %s", formatNumber(r.Length), formatNumber(r.Width), formatNumber(a))
}

func (c Circle) describe(a float64) string {
	return fmt.Sprintf("Circle area: π × %s² = %s", formatNumber(c.Radius), formatFloat(a))
}

func (t Triangle) describe(a float64) string {
	return fmt.Sprintf("Triangle area: 0.5 × %s × %s = %s", formatNumber(t.Base), formatNumber(t.Height), formatFloat(a))
}

func (s Square) describe(a float64) string {
	return fmt.Sprintf("Square area: %s² = %s", formatNumber(s.Side), formatNumber(a))
}

// Area returns the area of shape.
func (s *Session) Area(shape Shape) float64 {
	a := shape.area()
	s.record("area", "%s", shape.describe(a))
	return a
}

// shapeDims lists the dimensions each named shape needs, in the
// order its constructor takes them.
var shapeDims = map[string][]string{
	"rectangle": {"length", "width"},
	"circle":    {"radius"},
	"triangle":  {"base", "height"},
	"square":    {"side"},
}

func shapeNames() string {
	names := make([]string, 0, len(shapeDims))
	for name := range shapeDims {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// ParseShape builds a Shape from a case-insensitive shape name and
// its dimensions keyed by name ("length", "width", "radius", "base",
// "height", "side"). Dimensions the shape does not use are ignored.
func ParseShape(name string, dims map[string]float64) (Shape, error) {
	shape, err := parseShape("area", name, dims)
	if err != nil {
		return nil, err
	}
	return shape, nil
}

func parseShape(op, name string, dims map[string]float64) (Shape, *InputError) {
	name = strings.ToLower(name)
	want, ok := shapeDims[name]
	if !ok {
		return nil, &InputError{Op: op, Field: "shape", Err: ErrUnsupportedShape,
			Message: fmt.Sprintf("%q is not one of %s", name, shapeNames())}
	}
	v := make([]float64, len(want))
	for i, d := range want {
		x, ok := dims[d]
		if !ok {
			return nil, &InputError{Op: op, Field: d, Err: ErrMissingParameter,
				Message: fmt.Sprintf("%s requires %s", name, strings.Join(want, " and "))}
		}
		v[i] = x
	}
	switch name {
	case "rectangle":
		return Rectangle{Length: v[0], Width: v[1]}, nil
	case "circle":
		return Circle{Radius: v[0]}, nil
	case "triangle":
		return Triangle{Base: v[0], Height: v[1]}, nil
	}
	return Square{Side: v[0]}, nil
}

// AreaByName is Area for a shape given by name and dimensions, as
// accepted by ParseShape. It fails with ErrUnsupportedShape for an
// unknown shape and ErrMissingParameter if a required dimension is
// absent.
func (s *Session) AreaByName(name string, dims map[string]float64) (float64, error) {
	shape, err := parseShape("area", name, dims)
	if err != nil {
		return 0, s.rejected(err)
	}
	return s.Area(shape), nil
}
