// SPDX-License-Identifier: MIT

// Package matrix - convenience constructors.

package matrix

// NewIdentity returns the n×n identity matrix.
// The diagonal value is obtained from the field's One; off-diagonal cells keep
// the zero value.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity[T Field[T]](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	var z T
	one := z.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// NewZerosLike returns a zero matrix with the same shape as m.
// Errors: ErrNilMatrix.
func NewZerosLike[T Field[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.Rows(), m.Cols())
}
