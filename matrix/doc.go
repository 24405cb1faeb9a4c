// Package matrix provides generic dense linear algebra over any field-like
// element type.
//
// The matrix package provides:
//
//   - Field: the minimal capability set an element type must offer
//     (Add, Sub, Mul, Scale, Div, DivScalar, Pow, Neg, Inv, Equal, One).
//   - Matrix: a bounds-checked two-dimensional table abstraction.
//   - Dense: a row-major implementation storing cells in a flat slice.
//   - Vector: a Dense with one dimension fixed to 1 plus an Orientation tag;
//     results of vector arithmetic keep the operand's orientation.
//   - Kernels: Add, Sub, Mul, Scale, Div, MulScalar, Neg, Transpose, Equal,
//     MatVec, MatVecInto and Kron, all validating shapes before allocating.
//
// Matrices here are small (gate matrices are 2×2 up to 2^k×2^k), so Mul is the
// straightforward triple accumulation with no blocking or Strassen tricks.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrNilMatrix) wrapped with an operation tag; match
// them with errors.Is. Element-level failures (e.g. scalar.ErrDivisionByZero
// from Div) are propagated wrapped, not replaced.
//
// See scalar.Complex for the element type used by the quantum register and
// scalar.Real for a simpler field used in tests.
package matrix
