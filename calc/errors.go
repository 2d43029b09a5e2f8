// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import "errors"

// Input validation failures. Every error returned by a Session wraps
// exactly one of these; test for them with errors.Is.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidDomain    = errors.New("argument outside function domain")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrEmptyInput       = errors.New("empty input")
	ErrUnsupportedShape = errors.New("unsupported shape")
	ErrMissingParameter = errors.New("missing parameter")
)

// An InputError reports an operation whose inputs were rejected.
type InputError struct {
	// Op is the operation that failed, such as "divide".
	Op string

	// Field names the offending input, if there is a single one.
	Field string

	// Err is one of the sentinel errors above.
	Err error

	Message string
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return e.Op + ": " + e.Field + ": " + e.Message
	}
	return e.Op + ": " + e.Message
}

func (e *InputError) Unwrap() error {
	return e.Err
}
