// SPDX-License-Identifier: MIT

// Package matrix - Vector: a Dense with one dimension fixed to 1.
//
// Design:
//   - Composition, not inheritance: a Vector wraps a *Dense plus an Orientation
//     flag and translates 1-D coordinates to 2-D cells (Vertical: (i,0),
//     Horizontal: (0,i)).
//   - Vector implements Matrix by delegation, so it can be passed to every
//     kernel; the vector-returning methods re-wrap results with the same
//     orientation (Transpose flips it).

package matrix

import (
	"fmt"
	"strings"
)

// Orientation tags a Vector as a column (Vertical) or a row (Horizontal).
type Orientation uint8

const (
	// Vertical is a column vector: n×1.
	Vertical Orientation = iota
	// Horizontal is a row vector: 1×n.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}

	return "vertical"
}

// flip returns the opposite orientation.
func (o Orientation) flip() Orientation {
	if o == Horizontal {
		return Vertical
	}

	return Horizontal
}

const (
	ctxCoord    = "Coord"
	ctxSetCoord = "SetCoord"
)

// Vector is a one-dimensional Matrix with an orientation.
type Vector[T Field[T]] struct {
	d *Dense[T]
	o Orientation
}

// NewVector creates a zero vector of length n with the given orientation.
// Errors: ErrInvalidDimensions when n <= 0.
func NewVector[T Field[T]](n int, o Orientation) (*Vector[T], error) {
	rows, cols := n, 1
	if o == Horizontal {
		rows, cols = 1, n
	}
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{d: d, o: o}, nil
}

// NewColumn creates a vertical vector holding a copy of values.
func NewColumn[T Field[T]](values ...T) (*Vector[T], error) {
	return newVectorFrom(values, Vertical)
}

// NewRow creates a horizontal vector holding a copy of values.
func NewRow[T Field[T]](values ...T) (*Vector[T], error) {
	return newVectorFrom(values, Horizontal)
}

func newVectorFrom[T Field[T]](values []T, o Orientation) (*Vector[T], error) {
	v, err := NewVector[T](len(values), o)
	if err != nil {
		return nil, err
	}
	copy(v.d.data, values)

	return v, nil
}

// wrapVector re-wraps a kernel result that already has vector shape.
func wrapVector[T Field[T]](d *Dense[T], o Orientation) *Vector[T] {
	return &Vector[T]{d: d, o: o}
}

// Len returns the number of coordinates.
func (v *Vector[T]) Len() int { return len(v.d.data) }

// Orientation returns the vector's orientation tag.
func (v *Vector[T]) Orientation() Orientation { return v.o }

// Rows implements Matrix.
func (v *Vector[T]) Rows() int { return v.d.r }

// Cols implements Matrix.
func (v *Vector[T]) Cols() int { return v.d.c }

// At implements Matrix (2-D addressing).
func (v *Vector[T]) At(i, j int) (T, error) { return v.d.At(i, j) }

// Set implements Matrix (2-D addressing).
func (v *Vector[T]) Set(i, j int, x T) error { return v.d.Set(i, j, x) }

// Clone implements Matrix; the dynamic type is *Vector[T].
func (v *Vector[T]) Clone() Matrix[T] { return v.Copy() }

// Copy returns an independent vector with the same orientation.
func (v *Vector[T]) Copy() *Vector[T] { return &Vector[T]{d: v.d.Copy(), o: v.o} }

// Coord returns coordinate i or ErrOutOfRange.
func (v *Vector[T]) Coord(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, fmt.Errorf("Vector.%s(%d): %w", ctxCoord, i, ErrOutOfRange)
	}

	return v.d.data[i], nil
}

// SetCoord stores x at coordinate i or returns ErrOutOfRange.
func (v *Vector[T]) SetCoord(i int, x T) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("Vector.%s(%d): %w", ctxSetCoord, i, ErrOutOfRange)
	}
	v.d.data[i] = x

	return nil
}

// Values returns a copy of the coordinates in order.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.d.data))
	copy(out, v.d.data)

	return out
}

// Dense returns an independent 2-D copy of the vector.
func (v *Vector[T]) Dense() *Dense[T] { return v.d.Copy() }

// Add returns v + m as a vector of v's orientation.
// Errors: as Add (ErrNilMatrix, ErrDimensionMismatch).
func (v *Vector[T]) Add(m Matrix[T]) (*Vector[T], error) {
	d, err := Add[T](v, m)
	if err != nil {
		return nil, err
	}

	return wrapVector(d, v.o), nil
}

// Sub returns v − m as a vector of v's orientation.
func (v *Vector[T]) Sub(m Matrix[T]) (*Vector[T], error) {
	d, err := Sub[T](v, m)
	if err != nil {
		return nil, err
	}

	return wrapVector(d, v.o), nil
}

// Scale returns s·v.
func (v *Vector[T]) Scale(s float64) *Vector[T] {
	d, _ := Scale[T](v, s) // v is non-nil and well-shaped; Scale cannot fail
	return wrapVector(d, v.o)
}

// Neg returns −v.
func (v *Vector[T]) Neg() *Vector[T] { return v.Scale(-1) }

// Transpose returns a copy with the opposite orientation.
func (v *Vector[T]) Transpose() *Vector[T] {
	d := v.d.Copy()
	d.r, d.c = d.c, d.r // a 1-D buffer has the same layout either way

	return wrapVector(d, v.o.flip())
}

// String renders the coordinates as "[a, b, c]" followed by a ᵀ suffix for
// vertical vectors.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.d.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteString("]")
	if v.o == Vertical {
		b.WriteString("ᵀ")
	}

	return b.String()
}
