// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/quansim/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	v, err := matrix.NewVector[R](3, matrix.Vertical)
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
	require.Equal(t, 3, v.Len())

	h, err := matrix.NewVector[R](3, matrix.Horizontal)
	require.NoError(t, err)
	require.Equal(t, 1, h.Rows())
	require.Equal(t, 3, h.Cols())

	_, err = matrix.NewVector[R](0, matrix.Vertical)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewColumn[R]()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestVectorCoords(t *testing.T) {
	v, err := matrix.NewColumn(r(1), r(2), r(3))
	require.NoError(t, err)

	x, err := v.Coord(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, x.Value())

	require.NoError(t, v.SetCoord(0, r(7)))
	cell, err := v.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, cell.Value())

	_, err = v.Coord(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.SetCoord(-1, r(0)), matrix.ErrOutOfRange)

	// Values returns a copy
	vals := v.Values()
	vals[1] = r(100)
	x, err = v.Coord(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, x.Value())
}

func TestVectorArithmeticKeepsOrientation(t *testing.T) {
	a, err := matrix.NewRow(r(1), r(2))
	require.NoError(t, err)
	b, err := matrix.NewRow(r(10), r(20))
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, matrix.Horizontal, sum.Orientation())
	require.Equal(t, [][]float64{{11, 22}}, floats(t, sum))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 18}}, floats(t, diff))

	require.Equal(t, [][]float64{{2, 4}}, floats(t, a.Scale(2)))
	require.Equal(t, [][]float64{{-1, -2}}, floats(t, a.Neg()))

	col, err := matrix.NewColumn(r(1), r(2))
	require.NoError(t, err)
	_, err = a.Add(col)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVectorTransposeAndCopy(t *testing.T) {
	v, err := matrix.NewColumn(r(1), r(2), r(3))
	require.NoError(t, err)

	vt := v.Transpose()
	require.Equal(t, matrix.Horizontal, vt.Orientation())
	require.Equal(t, [][]float64{{1, 2, 3}}, floats(t, vt))
	require.Equal(t, matrix.Vertical, vt.Transpose().Orientation())

	cp := v.Copy()
	require.NoError(t, cp.SetCoord(0, r(-1)))
	x, err := v.Coord(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x.Value())

	cl, ok := v.Clone().(*matrix.Vector[R])
	require.True(t, ok)
	require.Equal(t, matrix.Vertical, cl.Orientation())
}

func TestVectorInKernels(t *testing.T) {
	m := mustDenseFrom(t, [][]float64{{0, 1}, {1, 0}})
	v, err := matrix.NewColumn(r(3), r(4))
	require.NoError(t, err)

	mv, err := matrix.Mul[R](m, v)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4}, {3}}, floats(t, mv))

	require.Equal(t, "[3, 4]ᵀ", v.String())
	require.Equal(t, "[3, 4]", v.Transpose().String())
	require.Equal(t, "vertical", matrix.Vertical.String())
	require.Equal(t, "horizontal", matrix.Horizontal.String())
}
