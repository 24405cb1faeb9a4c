// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// sentinels with matrixErrorf("<Op>", err); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> index -> element-level failures.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive,
	// ragged (rows of different lengths) or not a power of two where one is required.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row, column or coordinate) is outside
	// valid bounds. Public indexers (At/Set/Coord/SetCoord) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a required matrix or vector operand was omitted.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrNonSquare signals that a square matrix was required but the input wasn't.
// It is a specialization of ErrDimensionMismatch: errors.Is matches both.
var ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
