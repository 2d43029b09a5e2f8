// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/calckit/calckit/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantDemo = `=== Calculator Demo ===

Basic Arithmetic:
10 + 5 = 15
10 - 3 = 7
6 * 7 = 42
15 / 3 = 5
2^8 = 256
√16 = 4
5! = 120

Advanced Calculations:
15% of 200 = 30
Compound Interest: Amount = $1102.50, Interest = $102.50
BMI: 22.86 (Normal weight)
sin(30°) = 0.5000
cos(60°) = 0.5000

Statistics for [10 15 20 25 30 25 20]:
Mean: 20.71
Median: 20
Mode: 20
Standard Deviation: 6.73

Quadratic equation x² - 5x + 6 = 0:
Solutions: x1 = 3.0, x2 = 2.0

Area Calculations:
Rectangle (5×3): 15
Circle (radius=4): 50.27
Triangle (base=6, height=8): 24

Calculation History (17 operations):
1. Statistics calculated for 7 numbers
2. Quadratic: 1x² + -5x + 6 = 0, Solutions: x1 = 3.0, x2 = 2.0
3. Rectangle area: 5 × 3 = 15
4. Circle area: π × 4² = 50.26548245743669
5. Triangle area: 0.5 × 6 × 8 = 24.0
`

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	s := calc.New(calc.WithNotice(io.Discard))
	require.NoError(t, runDemo(&out, s, defaultConfig()))
	assert.Equal(t, wantDemo, out.String())
	assert.Equal(t, 17, s.Len())
}

func TestRunDemoConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.HistoryTail = 2
	cfg.TrigPrecision = 2
	cfg.MoneyPrecision = 1

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, calc.New(calc.WithNotice(io.Discard)), cfg))

	text := out.String()
	assert.Contains(t, text, "sin(30°) = 0.50\n")
	assert.Contains(t, text, "Amount = $1102.5, Interest = $102.5\n")

	tail := text[strings.Index(text, "Calculation History"):]
	assert.Equal(t, 3, strings.Count(tail, "\n"))
	assert.Contains(t, tail, "1. Circle area")
	assert.Contains(t, tail, "2. Triangle area")
}
