// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"
	"strconv"
	"strings"
)

// Record text uses the shortest representation that round-trips, in
// positional notation between 1e-4 and 1e16 and scientific notation
// outside that range. Integral values carry no fractional part, so
// 15 prints as "15" and 1.0/3 prints as "0.3333333333333333".
const (
	sciSmall = 1e-4
	sciLarge = 1e16
)

// formatFloat is formatNumber for results that are always fractional
// quantities, such as quotients and roots. Integral values keep a
// trailing ".0", so 15/3 records as "5.0".
func formatFloat(x float64) string {
	s := formatNumber(x)
	if math.IsNaN(x) || math.IsInf(x, 0) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

func formatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if abs := math.Abs(x); abs < sciSmall || abs >= sciLarge {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
