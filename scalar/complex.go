// SPDX-License-Identifier: MIT

// Package scalar - Complex value type.
//
// Purpose:
//   - Provide the concrete field element used by register amplitudes and gates.
//   - Keep every operation pure; division-like operations report ErrDivisionByZero.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Scale/Neg/Conj/Modulus: O(1); Div/Inv/Normalize: O(1); Pow: O(log|p|).

package scalar

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the per-component tolerance used by Equal.
const DefaultEpsilon = 1e-9

// operation tags for error wrapping
const (
	opDiv       = "Complex.Div"
	opDivScalar = "Complex.DivScalar"
	opInv       = "Complex.Inv"
	opPow       = "Complex.Pow"
	opNormalize = "Complex.Normalize"
)

// Complex is an immutable complex number re + im·i.
// The zero value is 0+0i, the additive identity.
type Complex struct {
	re, im float64
}

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{re: re, im: im} }

// FromReal returns the purely real number re + 0i.
func FromReal(re float64) Complex { return Complex{re: re} }

// Zero returns 0+0i.
func Zero() Complex { return Complex{} }

// One returns the multiplicative identity 1+0i.
func One() Complex { return Complex{re: 1} }

// I returns the imaginary unit 0+1i.
func I() Complex { return Complex{im: 1} }

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// One returns 1+0i. It lets generic code obtain the identity from any value.
func (z Complex) One() Complex { return One() }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z − w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z·w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Scale returns s·z for a real s.
func (z Complex) Scale(s float64) Complex {
	return Complex{re: z.re * s, im: z.im * s}
}

// Div returns z / w, or ErrDivisionByZero when w is exactly 0+0i.
//
// Implementation:
//   - Stage 1: reject w == 0.
//   - Stage 2: Smith's method: divide through by the larger component of w so
//     that |w|² is never formed and large operands do not overflow.
//
// Complexity: O(1).
func (z Complex) Div(w Complex) (Complex, error) {
	q, ok := z.quo(w)
	if !ok {
		return Complex{}, scalarErrorf(opDiv, ErrDivisionByZero)
	}

	return q, nil
}

// quo is Smith's complex division; ok is false when w == 0.
func (z Complex) quo(w Complex) (Complex, bool) {
	if w.re == 0 && w.im == 0 {
		return Complex{}, false
	}
	if math.Abs(w.re) >= math.Abs(w.im) {
		ratio := w.im / w.re
		den := w.re + w.im*ratio
		return Complex{re: (z.re + z.im*ratio) / den, im: (z.im - z.re*ratio) / den}, true
	}
	ratio := w.re / w.im
	den := w.im + w.re*ratio

	return Complex{re: (z.re*ratio + z.im) / den, im: (z.im*ratio - z.re) / den}, true
}

// DivScalar returns z / s for a real s, or ErrDivisionByZero when s == 0.
func (z Complex) DivScalar(s float64) (Complex, error) {
	if s == 0 {
		return Complex{}, scalarErrorf(opDivScalar, ErrDivisionByZero)
	}

	return Complex{re: z.re / s, im: z.im / s}, nil
}

// Pow returns z^p for an integer p.
//
// Implementation:
//   - Stage 1: p == 0 yields 1+0i (also for z == 0).
//   - Stage 2: compute z^|p| by repeated squaring.
//   - Stage 3: for p < 0 invert the positive power.
//
// Errors:
//   - ErrDivisionByZero when p < 0 and z == 0.
//
// Complexity: O(log |p|).
func (z Complex) Pow(p int) (Complex, error) {
	if p == 0 {
		return One(), nil
	}
	n := absExponent(p)
	acc, base := One(), z
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if p > 0 {
		return acc, nil
	}
	inv, err := acc.Inv()
	if err != nil {
		return Complex{}, scalarErrorf(opPow, err)
	}

	return inv, nil
}

// absExponent returns |p| as a uint; math.MinInt has no positive int
// counterpart, so the negation happens in two's complement.
func absExponent(p int) uint {
	if p < 0 {
		return uint(^p) + 1
	}

	return uint(p)
}

// Neg returns −z (equivalently z scaled by −1).
func (z Complex) Neg() Complex { return z.Scale(-1) }

// Conj returns the complex conjugate re − im·i.
func (z Complex) Conj() Complex { return Complex{re: z.re, im: -z.im} }

// Abs2 returns |z|², the squared modulus. For an amplitude this is the
// probability of the corresponding basis state.
func (z Complex) Abs2() float64 { return z.re*z.re + z.im*z.im }

// Modulus returns |z|.
func (z Complex) Modulus() float64 { return math.Hypot(z.re, z.im) }

// Inv returns 1/z (conj(z) / |z|², computed without forming |z|²), or
// ErrDivisionByZero when z == 0.
func (z Complex) Inv() (Complex, error) {
	inv, ok := One().quo(z)
	if !ok {
		return Complex{}, scalarErrorf(opInv, ErrDivisionByZero)
	}

	return inv, nil
}

// Normalize returns z / |z|, a unit-modulus number with the same phase.
func (z Complex) Normalize() (Complex, error) {
	m := z.Modulus()
	if m == 0 {
		return Complex{}, scalarErrorf(opNormalize, ErrDivisionByZero)
	}

	return Complex{re: z.re / m, im: z.im / m}, nil
}

// Equal reports whether |Δre| and |Δim| are both below DefaultEpsilon.
func (z Complex) Equal(w Complex) bool { return z.EqualTol(w, DefaultEpsilon) }

// EqualTol reports whether |Δre| < tol and |Δim| < tol.
func (z Complex) EqualTol(w Complex, tol float64) bool {
	return math.Abs(z.re-w.re) < tol && math.Abs(z.im-w.im) < tol
}

// IsZero reports whether z equals 0+0i within DefaultEpsilon.
func (z Complex) IsZero() bool { return z.Equal(Complex{}) }

// Complex128 converts z to the builtin complex128.
func (z Complex) Complex128() complex128 { return complex(z.re, z.im) }

// FromComplex128 converts a builtin complex128 value.
func FromComplex128(c complex128) Complex { return Complex{re: real(c), im: imag(c)} }

// String renders z as "a+bi" using %g for both parts.
func (z Complex) String() string {
	return fmt.Sprintf("%g%+gi", z.re, z.im)
}
