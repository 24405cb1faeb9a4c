// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures over scalar.Real (exact arithmetic on
//     small integers) and scalar.Complex.
//   - hide masks the concrete type so kernels take the At/Set fallback path.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/scalar"
	"github.com/stretchr/testify/require"
)

// R is the real field used by most kernel tests.
type R = scalar.Real[float64]

// C is the complex field used by the quantum layers.
type C = scalar.Complex

// r wraps a float64 into R.
func r(v float64) R { return scalar.NewReal(v) }

// hide wraps any Matrix to hide its concrete type from type switches.
type hide struct{ matrix.Matrix[R] }

// mustDenseFrom builds a *Dense[R] from float rows or fails the test.
func mustDenseFrom(tb testing.TB, rows [][]float64) *matrix.Dense[R] {
	tb.Helper()
	cells := make([][]R, len(rows))
	for i, row := range rows {
		cells[i] = make([]R, len(row))
		for j, v := range row {
			cells[i][j] = r(v)
		}
	}
	m, err := matrix.NewDenseFrom(cells)
	require.NoError(tb, err)

	return m
}

// floats reads back every cell of m in row-major order.
func floats(tb testing.TB, m matrix.Matrix[R]) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v.Value()
		}
	}

	return out
}
