// SPDX-License-Identifier: MIT

// Package matrix: element and container abstractions.
// This file contains ONLY the Field capability set and the public Matrix
// interface. Storage lives in impl_dense.go and vector.go; kernels live in
// impl_linear_algebra.go.
package matrix

// Field is the capability set an element type must provide to be stored in a
// Matrix. T is the implementing type itself (F-bounded), e.g. scalar.Complex
// satisfies Field[scalar.Complex].
//
// Contract:
//   - All methods are pure: they return new values and never mutate the receiver.
//   - The zero value of T is the additive identity; One returns the
//     multiplicative identity regardless of the receiver's value.
//   - Div, DivScalar, Pow (negative exponent) and Inv report division by zero
//     as an error rather than producing infinities.
//   - Equal is tolerance-based for floating-point fields.
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Scale(float64) T
	Div(T) (T, error)
	DivScalar(float64) (T, error)
	Pow(int) (T, error)
	Neg() T
	Inv() (T, error)
	Equal(T) bool
	One() T
}

// tolerantField is implemented by fields that support a caller-chosen equality
// tolerance (scalar.Complex does). EqualWith uses it when available.
type tolerantField[T any] interface {
	EqualTol(T, float64) bool
}

// Matrix represents a two-dimensional mutable table of field elements.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Field[T]] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix[T]
}
