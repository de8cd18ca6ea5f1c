// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apportionment

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/apportion/fraction"
)

var (
	ErrInvalidInput       = errors.New("invalid apportionment input")
	ErrInvariantViolation = errors.New("apportionment invariant violated")
	ErrUnresolvedTie      = errors.New("unresolved tie")
)

// InputError describes input rejected before any seat was allocated.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// TieError reports a tie the configured policy could not decide.
type TieError struct {
	Seat       int
	Method     Method
	Candidates []int
	Value      fraction.Fraction
}

func (e *TieError) Error() string {
	return fmt.Sprintf("%s for residual seat %d: lists %v share %s (%s)",
		ErrUnresolvedTie, e.Seat, e.Candidates, e.Value, e.Method)
}

func (e *TieError) Unwrap() error { return ErrUnresolvedTie }

func invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
