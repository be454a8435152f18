// SPDX-License-Identifier: MIT
// Package: einsolid/multiplicity
//
// errors.go — sentinel errors for the multiplicity package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Call sites attach context with %w and never stringify parameters into
//     the sentinel itself.
//   • Domain checks run before any arithmetic, so a failure is never the side
//     effect of a downstream overflow or panic.

package multiplicity

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that a quantum count is negative or an
// oscillator count is not positive.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* reject input */ }.
var ErrInvalidArgument = errors.New("multiplicity: invalid argument")

// Operation names used when wrapping sentinels.
const (
	opMultiplicity = "Multiplicity"
	opCombined     = "Combined"
	opNewTable     = "NewTable"
	opTableAt      = "Table.At"
)

// invalidf wraps ErrInvalidArgument with the operation name and offending values.
func invalidf(op string, q, n int) error {
	return fmt.Errorf("%s(q=%d, n=%d): %w", op, q, n, ErrInvalidArgument)
}

// invalidOscillatorsf is invalidf for operations that take no quantum count.
func invalidOscillatorsf(op string, n int) error {
	return fmt.Errorf("%s(n=%d): oscillator count must be positive: %w", op, n, ErrInvalidArgument)
}
