// SPDX-License-Identifier: MIT
// Package matrix - centralized validation checks.
//
// Purpose:
//   - Provide a single source of truth for nil/shape checks so kernels stay small.
//   - Return sentinels wrapped with the validator name; kernels add their own op tag.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Shape.
//   - All checks are O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or a typed-nil pointer to one of
// the package's concrete containers.
func isNil[T Field[T]](m Matrix[T]) bool {
	switch x := m.(type) {
	case nil:
		return true
	case *Dense[T]:
		return x == nil
	case *Vector[T]:
		return x == nil || x.d == nil
	}

	return false
}

// ValidateNotNil ensures the matrix reference is usable.
// Returns ErrNilMatrix for a nil interface or a typed-nil *Dense / *Vector.
func ValidateNotNil[T Field[T]](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare (matches ErrDimensionMismatch).
func ValidateSquare[T Field[T]](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape[T Field[T]](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows (both non-nil).
func ValidateMulCompatible[T Field[T]](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n entries.
func ValidateVecLen[T any](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePowerOfTwo ensures n is a positive power of two (1, 2, 4, ...).
// Returns ErrInvalidDimensions otherwise.
func ValidatePowerOfTwo(n int) error {
	if n <= 0 || n&(n-1) != 0 {
		return validatorErrorf("ValidatePowerOfTwo", ErrInvalidDimensions)
	}

	return nil
}
