// SPDX-License-Identifier: MIT

// Package scalar provides the element types the rest of quansim computes with.
//
// What & Why:
//
//	Complex is an immutable complex number (re, im) closed under the field
//	operations required by the generic matrix layer: Add, Sub, Mul, Div,
//	Scale, DivScalar, Pow, Neg and Inv, plus Conj, Modulus and Normalize.
//	Real[T] is a real-number field with the same capability set; it exists so
//	that the matrix kernels can be exercised with a simpler field than Complex.
//
// Numeric policy:
//
//   - Every operation returns a new value; receivers are never mutated.
//   - Division by a zero divisor (Div, DivScalar, Inv, Normalize, negative Pow
//     of zero) returns ErrDivisionByZero instead of producing IEEE ±Inf/NaN.
//   - Equality is tolerance-based (DefaultEpsilon = 1e-9 per component)
//     because amplitudes accumulate rounding error. A tolerant equality is not
//     transitive and cannot back an exact hash, so Complex values must not be
//     used as map keys.
//
// Complexity:
//
//	All operations are O(1) except Pow, which is O(log |p|) multiplications.
package scalar
