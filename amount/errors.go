// Package amount: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user input.
package amount

import "errors"

var (
	// ErrDimensionMismatch indicates a binary operation whose operands do not
	// share the same variant, or two Dense operands of different lengths.
	// Every binary operation checks this unconditionally before touching any
	// element, so a mismatch never mutates the receiver.
	ErrDimensionMismatch = errors.New("amount: dimension mismatch")

	// ErrOutOfRange indicates that an element index is outside [0, Dims()).
	// At MUST return this, not panic. Empty amounts have no valid index.
	ErrOutOfRange = errors.New("amount: index out of range")
)
