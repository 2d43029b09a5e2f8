// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc is a calculator that remembers what it did.
//
// All calculations go through a Session. Each operation validates its
// inputs, computes its result with a well-known formula and appends a
// human-readable record such as "10 + 5 = 15" to the session history.
// An operation that rejects its inputs returns an *InputError and
// leaves the history untouched.
//
// A Session is not safe for concurrent use.
package calc // import "github.com/calckit/calckit/calc"
