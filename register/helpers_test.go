// SPDX-License-Identifier: MIT
package register_test

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/register"
	"github.com/katalvlaran/quansim/scalar"
	"github.com/stretchr/testify/require"
)

type cplx = scalar.Complex

var s2 = 1 / math.Sqrt2

// cs converts builtin complex literals.
func cs(vals ...complex128) []cplx {
	out := make([]cplx, len(vals))
	for i, v := range vals {
		out[i] = scalar.FromComplex128(v)
	}

	return out
}

// requireAmps compares the register's amplitudes with want within 1e-9 and
// dumps both on failure.
func requireAmps(tb testing.TB, want []cplx, r *register.Register) {
	tb.Helper()
	got := r.Amplitudes()
	require.Len(tb, got, len(want))
	for i := range want {
		require.True(tb, got[i].EqualTol(want[i], 1e-9),
			"amplitude %d differs\nwant: %s\ngot: %s", i, spew.Sdump(want), spew.Sdump(got))
	}
}

// fullOperator builds the 2ⁿ×2ⁿ operator that applies gate to qubits qs
// (qs[j] is local bit j) and the identity elsewhere, straight from the
// definition: entry (row, col) is gate[local(row)][local(col)] when row and col
// agree on every untouched bit, zero otherwise.
func fullOperator(tb testing.TB, gate *matrix.Dense[cplx], n int, qs []int) *matrix.Dense[cplx] {
	tb.Helper()
	size := 1 << n
	var mask int
	for _, q := range qs {
		mask |= 1 << q
	}
	local := func(idx int) int {
		var l int
		for j, q := range qs {
			l |= (idx >> q & 1) << j
		}
		return l
	}
	full, err := matrix.NewDense[cplx](size, size)
	require.NoError(tb, err)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if row&^mask != col&^mask {
				continue
			}
			v, err := gate.At(local(row), local(col))
			require.NoError(tb, err)
			require.NoError(tb, full.Set(row, col, v))
		}
	}

	return full
}

// kronChain returns ms[0] ⊗ ms[1] ⊗ … (ms[0] acts on the most significant bits).
func kronChain(tb testing.TB, ms ...*matrix.Dense[cplx]) *matrix.Dense[cplx] {
	tb.Helper()
	acc := ms[0]
	for _, m := range ms[1:] {
		var err error
		acc, err = matrix.Kron[cplx](acc, m)
		require.NoError(tb, err)
	}

	return acc
}

// identity returns the size×size identity.
func identity(tb testing.TB, size int) *matrix.Dense[cplx] {
	tb.Helper()
	id, err := matrix.NewIdentity[cplx](size)
	require.NoError(tb, err)

	return id
}

// reference applies full to r's amplitudes without touching r.
func reference(tb testing.TB, full *matrix.Dense[cplx], r *register.Register) []cplx {
	tb.Helper()
	out, err := matrix.MatVec[cplx](full, r.Amplitudes())
	require.NoError(tb, err)

	return out
}
