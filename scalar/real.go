// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// operation tags for Real error wrapping
const (
	opRealDiv       = "Real.Div"
	opRealDivScalar = "Real.DivScalar"
	opRealInv       = "Real.Inv"
	opRealPow       = "Real.Pow"
)

// Real is a real-number field element over any floating-point type.
// It satisfies the same capability set as Complex and is used to test the
// generic matrix layer with exactly representable values.
type Real[T constraints.Float] struct {
	v T
}

// NewReal wraps v.
func NewReal[T constraints.Float](v T) Real[T] { return Real[T]{v: v} }

// Value returns the wrapped number.
func (r Real[T]) Value() T { return r.v }

// One returns the multiplicative identity.
func (r Real[T]) One() Real[T] { return Real[T]{v: 1} }

// Add returns r + o.
func (r Real[T]) Add(o Real[T]) Real[T] { return Real[T]{v: r.v + o.v} }

// Sub returns r − o.
func (r Real[T]) Sub(o Real[T]) Real[T] { return Real[T]{v: r.v - o.v} }

// Mul returns r·o.
func (r Real[T]) Mul(o Real[T]) Real[T] { return Real[T]{v: r.v * o.v} }

// Scale returns s·r.
func (r Real[T]) Scale(s float64) Real[T] { return Real[T]{v: r.v * T(s)} }

// Neg returns −r.
func (r Real[T]) Neg() Real[T] { return Real[T]{v: -r.v} }

// Div returns r / o, or ErrDivisionByZero when o == 0.
func (r Real[T]) Div(o Real[T]) (Real[T], error) {
	if o.v == 0 {
		return Real[T]{}, scalarErrorf(opRealDiv, ErrDivisionByZero)
	}

	return Real[T]{v: r.v / o.v}, nil
}

// DivScalar returns r / s, or ErrDivisionByZero when s == 0.
func (r Real[T]) DivScalar(s float64) (Real[T], error) {
	if s == 0 {
		return Real[T]{}, scalarErrorf(opRealDivScalar, ErrDivisionByZero)
	}

	return Real[T]{v: r.v / T(s)}, nil
}

// Inv returns 1/r, or ErrDivisionByZero when r == 0.
func (r Real[T]) Inv() (Real[T], error) {
	if r.v == 0 {
		return Real[T]{}, scalarErrorf(opRealInv, ErrDivisionByZero)
	}

	return Real[T]{v: 1 / r.v}, nil
}

// Pow returns r^p; p == 0 yields 1 and p < 0 inverts the positive power.
func (r Real[T]) Pow(p int) (Real[T], error) {
	if p == 0 {
		return r.One(), nil
	}
	n := absExponent(p)
	acc, base := r.One(), r
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
		return Real[T]{}, scalarErrorf(opRealPow, err)
	}

	return inv, nil
}

// Equal reports |r − o| < DefaultEpsilon.
func (r Real[T]) Equal(o Real[T]) bool {
	return math.Abs(float64(r.v-o.v)) < DefaultEpsilon
}

// String renders the wrapped number with %g.
func (r Real[T]) String() string { return fmt.Sprintf("%g", float64(r.v)) }
