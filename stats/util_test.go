// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

const tolerance = 0.00001

// aeq reports whether got is within tolerance of expect. Two NaNs
// are considered equal.
func aeq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return math.IsNaN(expect) && math.IsNaN(got)
	}
	return math.Abs(expect-got) < tolerance
}
