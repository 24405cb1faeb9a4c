// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Callers match these via errors.Is; operations wrap them with an operation tag.

package scalar

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a divisor (complex or real) is zero.
// Produced by Div, DivScalar, Inv, Normalize and Pow with a negative exponent.
var ErrDivisionByZero = errors.New("scalar: division by zero")

// scalarErrorf wraps err with an operation tag, preserving it for errors.Is.
func scalarErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
