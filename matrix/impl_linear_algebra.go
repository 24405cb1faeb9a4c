// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scaling, matrix–vector products and the Kronecker product.
//
// Purpose:
//   - All kernels validate operands before allocating and return either a
//     complete fresh *Dense or an error; no partial results.
//   - Concrete *Dense / *Vector operands take a flat-slice fast path; any other
//     Matrix implementation goes through At/Set with fixed i→j loop order.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opMulScalar  = "MulScalar"
	opDiv        = "Div"
	opNeg        = "Neg"
	opTranspose  = "Transpose"
	opMatVec     = "MatVec"
	opMatVecInto = "MatVecInto"
	opKron       = "Kron"
)

// asDense exposes the flat storage of the package's own containers.
func asDense[T Field[T]](m Matrix[T]) (*Dense[T], bool) {
	switch x := m.(type) {
	case *Dense[T]:
		return x, x != nil
	case *Vector[T]:
		if x != nil && x.d != nil {
			return x.d, true
		}
	}

	return nil, false
}

// mapDense allocates a result of m's shape and fills it with f(v) per cell.
func mapDense[T Field[T]](m Matrix[T], f func(T) (T, error)) (*Dense[T], error) {
	res, err := NewDense[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	if d, ok := asDense(m); ok {
		for k, v := range d.data {
			if res.data[k], err = f(v); err != nil {
				return nil, err
			}
		}

		return res, nil
	}
	var i, j int
	var v T
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if res.data[i*res.c+j], err = f(v); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// zipDense computes f(a_ij, b_ij) for same-shaped a and b.
func zipDense[T Field[T]](a, b Matrix[T], f func(x, y T) T) (*Dense[T], error) {
	res, err := NewDense[T](a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	da, okA := asDense(a)
	db, okB := asDense(b)
	if okA && okB {
		for k := range res.data {
			res.data[k] = f(da.data[k], db.data[k])
		}

		return res, nil
	}
	var i, j int
	var x, y T
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if x, err = a.At(i, j); err != nil {
				return nil, err
			}
			if y, err = b.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*res.c+j] = f(x, y)
		}
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Field[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := zipDense(a, b, func(x, y T) T { return x.Add(y) })
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T Field[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := zipDense(a, b, func(x, y T) T { return x.Sub(y) })
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Mul returns the product a·b (a is r×k, b is k×c).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible before allocating the r×c result.
//   - Stage 2: i→k→j accumulation; the fast path walks rows of b contiguously.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*k*c), Space O(r*c).
func Mul[T Field[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	da, okA := asDense(a)
	db, okB := asDense(b)
	if okA && okB {
		var aik T
		for i = 0; i < rows; i++ {
			out := res.data[i*cols : (i+1)*cols]
			for k = 0; k < inner; k++ {
				aik = da.data[i*inner+k]
				row := db.data[k*cols : (k+1)*cols]
				for j = 0; j < cols; j++ {
					out[j] = out[j].Add(aik.Mul(row[j]))
				}
			}
		}

		return res, nil
	}

	var x, y, sum T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			var zero T
			sum = zero
			for k = 0; k < inner; k++ {
				if x, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if y, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum = sum.Add(x.Mul(y))
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Scale returns s·m for a real factor s.
// Errors: ErrNilMatrix.
func Scale[T Field[T]](m Matrix[T], s float64) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := mapDense(m, func(v T) (T, error) { return v.Scale(s), nil })
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// MulScalar returns s·m for a field element s.
// Errors: ErrNilMatrix.
func MulScalar[T Field[T]](m Matrix[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}
	res, err := mapDense(m, func(v T) (T, error) { return v.Mul(s), nil })
	if err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}

	return res, nil
}

// Div returns m / s element-wise.
// Errors: ErrNilMatrix, or the field's division-by-zero error when s is zero.
func Div[T Field[T]](m Matrix[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	res, err := mapDense(m, func(v T) (T, error) { return v.Div(s) })
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return res, nil
}

// Neg returns −m.
func Neg[T Field[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res, err := mapDense(m, func(v T) (T, error) { return v.Neg(), nil })
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh c×r matrix.
func Transpose[T Field[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	if d, ok := asDense(m); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and every pair of cells
// satisfies the field's Equal. Nil operands compare unequal.
func Equal[T Field[T]](a, b Matrix[T]) bool {
	return equalBy(a, b, func(x, y T) bool { return x.Equal(y) })
}

// EqualTol is Equal with an explicit absolute tolerance. Fields that expose
// EqualTol (scalar.Complex) use it; others fall back to their own Equal.
func EqualTol[T Field[T]](a, b Matrix[T], tol float64) bool {
	return equalBy(a, b, func(x, y T) bool {
		if tf, ok := any(x).(tolerantField[T]); ok {
			return tf.EqualTol(y, tol)
		}

		return x.Equal(y)
	})
}

// EqualWith is EqualTol configured through options (WithEpsilon).
func EqualWith[T Field[T]](a, b Matrix[T], opts ...Option) bool {
	o := gatherOptions(opts...)

	return EqualTol(a, b, o.eps)
}

func equalBy[T Field[T]](a, b Matrix[T], eq func(x, y T) bool) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			x, errA := a.At(i, j)
			y, errB := b.At(i, j)
			if errA != nil || errB != nil || !eq(x, y) {
				return false
			}
		}
	}

	return true
}

// MatVec returns y = m·x as a fresh slice of length m.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
func MatVec[T Field[T]](m Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dst := make([]T, m.Rows())
	if err := MatVecInto(m, x, dst); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return dst, nil
}

// MatVecInto computes dst = m·x without allocating.
// dst must have length m.Rows() and must not alias x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (x or dst of the wrong length).
// Complexity: Time O(r*c), Space O(1).
func MatVecInto[T Field[T]](m Matrix[T], x, dst []T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := ValidateVecLen(dst, rows); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}

	var i, j int
	var sum T
	if d, ok := asDense(m); ok {
		for i = 0; i < rows; i++ {
			var zero T
			sum = zero
			row := d.data[i*cols : (i+1)*cols]
			for j = 0; j < cols; j++ {
				sum = sum.Add(row[j].Mul(x[j]))
			}
			dst[i] = sum
		}

		return nil
	}

	var v T
	var err error
	for i = 0; i < rows; i++ {
		var zero T
		sum = zero
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opMatVecInto, err)
			}
			sum = sum.Add(v.Mul(x[j]))
		}
		dst[i] = sum
	}

	return nil
}

// Kron returns the Kronecker product a ⊗ b: an (ar·br)×(ac·bc) matrix whose
// block (i,j) is a_ij·b.
// Errors: ErrNilMatrix.
// Complexity: O(ar*ac*br*bc).
func Kron[T Field[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	ar, ac, br, bc := a.Rows(), a.Cols(), b.Rows(), b.Cols()
	res, err := NewDense[T](ar*br, ac*bc)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	var i, j, k, l int
	var x, y T
	for i = 0; i < ar; i++ {
		for j = 0; j < ac; j++ {
			if x, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opKron, err)
			}
			for k = 0; k < br; k++ {
				for l = 0; l < bc; l++ {
					if y, err = b.At(k, l); err != nil {
						return nil, matrixErrorf(opKron, err)
					}
					res.data[(i*br+k)*res.c+j*bc+l] = x.Mul(y)
				}
			}
		}
	}

	return res, nil
}
