// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// clearNotice is written to the notice writer by ClearHistory.
const clearNotice = "History cleared!"

// A Session performs calculations and keeps an append-only history of
// them. The zero value is not usable; create sessions with New.
type Session struct {
	history []string

	logger *zap.Logger
	notice io.Writer
}

// An Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger that receives a debug entry for every
// recorded operation and every rejected input. A nil logger discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l == nil {
			l = zap.NewNop()
		}
		s.logger = l
	}
}

// WithNotice sets where ClearHistory prints its confirmation. The
// default is standard output.
func WithNotice(w io.Writer) Option {
	return func(s *Session) {
		if w == nil {
			w = io.Discard
		}
		s.notice = w
	}
}

// New returns a Session with an empty history.
func New(opts ...Option) *Session {
	s := &Session{
		logger: zap.NewNop(),
		notice: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// History returns every record in the order the operations were
// performed, most recent last. The returned slice is a copy.
func (s *Session) History() []string {
	return s.Recent(len(s.history))
}

// Recent returns up to the n most recent records, oldest first.
func (s *Session) Recent(n int) []string {
	if n > len(s.history) {
		n = len(s.history)
	}
	if n < 0 {
		n = 0
	}
	out := make([]string, n)
	copy(out, s.history[len(s.history)-n:])
	return out
}

// Len returns the number of records in the history.
func (s *Session) Len() int {
	return len(s.history)
}

// ClearHistory discards every record and prints a confirmation to
// the session's notice writer.
func (s *Session) ClearHistory() {
	n := len(s.history)
	s.history = nil
	fmt.Fprintln(s.notice, clearNotice)
	s.logger.Info("history cleared", zap.Int("records", n))
}

// record appends one history entry for a successful operation.
func (s *Session) record(op, format string, args ...any) {
	rec := fmt.Sprintf(format, args...)
	s.history = append(s.history, rec)
	s.logger.Debug("operation recorded", zap.String("op", op), zap.String("record", rec))
}

// reject builds the error for a rejected input. It never touches the
// history.
func (s *Session) reject(op, field string, sentinel error, msg string) error {
	return s.rejected(&InputError{Op: op, Field: field, Err: sentinel, Message: msg})
}

func (s *Session) rejected(err *InputError) error {
	s.logger.Debug("input rejected", zap.String("op", err.Op), zap.Error(err))
	return err
}
