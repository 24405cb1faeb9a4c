// SPDX-License-Identifier: MIT
package register_test

import (
	"testing"

	"github.com/katalvlaran/quansim/gates"
	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/register"
	"github.com/katalvlaran/quansim/rng"
	"github.com/katalvlaran/quansim/scalar"
	"github.com/stretchr/testify/require"
)

func TestApplyXOnLSBAndMSB(t *testing.T) {
	lsb, err := register.New(2)
	require.NoError(t, err)
	require.NoError(t, lsb.Apply(gates.X(), 0))
	requireAmps(t, cs(0, 1, 0, 0), lsb)

	msb, err := register.New(2)
	require.NoError(t, err)
	require.NoError(t, msb.Apply(gates.X(), 1))
	requireAmps(t, cs(0, 0, 1, 0), msb)
}

func TestBellState(t *testing.T) {
	r, err := register.New(2)
	require.NoError(t, err)

	require.NoError(t, r.Apply(gates.H(), 1))
	requireAmps(t, cs(complex(s2, 0), 0, complex(s2, 0), 0), r)

	require.NoError(t, r.ApplyMulti(gates.CNOT(), 0, 1))
	requireAmps(t, cs(complex(s2, 0), 0, 0, complex(s2, 0)), r)

	want := []float64{0.5, 0, 0, 0.5}
	for i, p := range r.Probabilities() {
		require.InDelta(t, want[i], p, 1e-12)
	}
}

func TestSingleEqualsMultiWithOneIndex(t *testing.T) {
	src := rng.New(17)
	for q := 0; q < 4; q++ {
		a, err := register.NewRandom(4, src)
		require.NoError(t, err)
		b := a.Copy()

		require.NoError(t, a.Apply(gates.H(), q))
		require.NoError(t, b.ApplyMulti(gates.H(), q))
		require.True(t, a.Equal(b), "qubit %d", q)
	}
}

func TestApplyMatchesKronReference(t *testing.T) {
	src := rng.New(23)
	const n = 3
	for q := 0; q < n; q++ {
		r, err := register.NewRandom(n, src)
		require.NoError(t, err)

		full := kronChain(t, identity(t, 1<<(n-1-q)), gates.Y(), identity(t, 1<<q))
		want := reference(t, full, r)

		require.NoError(t, r.Apply(gates.Y(), q))
		requireAmps(t, want, r)
	}
}

func TestFullOperatorAgreesWithKron(t *testing.T) {
	// contiguous qubits (1, 2) of 4: I₂ ⊗ CNOT ⊗ I₂
	byKron := kronChain(t, identity(t, 2), gates.CNOT(), identity(t, 2))
	byDefinition := fullOperator(t, gates.CNOT(), 4, []int{1, 2})
	require.True(t, matrix.Equal[cplx](byKron, byDefinition))
}

func TestApplyMultiNonContiguous(t *testing.T) {
	src := rng.New(31)
	// a random 2-qubit unitary: CNOT·(H⊗Y)
	hy, err := matrix.Kron[cplx](gates.H(), gates.Y())
	require.NoError(t, err)
	u, err := matrix.Mul[cplx](gates.CNOT(), hy)
	require.NoError(t, err)

	cases := [][]int{{0, 1}, {0, 2}, {1, 3}, {0, 3}, {2, 3}}
	for _, qs := range cases {
		r, err := register.NewRandom(4, src)
		require.NoError(t, err)
		want := reference(t, fullOperator(t, u, 4, qs), r)

		require.NoError(t, r.ApplyMulti(u, qs...))
		requireAmps(t, want, r)
		require.InDelta(t, 1.0, r.Norm(), 1e-9)
	}
}

func TestApplyMultiThreeQubits(t *testing.T) {
	// Toffoli-like gate: X on local bit 0 controlled by local bits 1 and 2.
	cells := make([][]cplx, 8)
	for i := range cells {
		cells[i] = make([]cplx, 8)
	}
	for i := 0; i < 6; i++ {
		cells[i][i] = scalar.One()
	}
	cells[6][7], cells[7][6] = scalar.One(), scalar.One()
	toffoli, err := matrix.NewDenseFrom(cells)
	require.NoError(t, err)

	r, err := register.NewRandom(5, rng.New(41))
	require.NoError(t, err)
	qs := []int{0, 2, 4}
	want := reference(t, fullOperator(t, toffoli, 5, qs), r)
	require.NoError(t, r.ApplyMulti(toffoli, qs...))
	requireAmps(t, want, r)
}

func TestCNOTControlsOnHighestChosenQubit(t *testing.T) {
	// |100⟩ with CNOT on (0, 2): qubit 2 controls, qubit 0 flips → |101⟩
	r, err := register.New(3)
	require.NoError(t, err)
	require.NoError(t, r.Apply(gates.X(), 2))
	require.NoError(t, r.ApplyMulti(gates.CNOT(), 0, 2))
	p, err := r.Proba(5)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p, 1e-12)
}

func TestApplyValidationLeavesStateUntouched(t *testing.T) {
	r, err := register.NewRandom(3, rng.New(5))
	require.NoError(t, err)
	before := r.Copy()

	nonSquare, err := matrix.NewDense[cplx](2, 4)
	require.NoError(t, err)
	threeByThree, err := matrix.NewIdentity[cplx](3)
	require.NoError(t, err)
	huge, err := matrix.NewIdentity[cplx](16)
	require.NoError(t, err)

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"apply nil gate", func() error { return r.Apply(nil, 0) }, register.ErrMissingArgument},
		{"apply 4x4 gate", func() error { return r.Apply(gates.CNOT(), 0) }, register.ErrDimensionMismatch},
		{"apply qubit too high", func() error { return r.Apply(gates.X(), 3) }, register.ErrOutOfRange},
		{"apply negative qubit", func() error { return r.Apply(gates.X(), -1) }, register.ErrOutOfRange},
		{"multi nil gate", func() error { return r.ApplyMulti(nil, 0, 1) }, register.ErrMissingArgument},
		{"multi no qubits", func() error { return r.ApplyMulti(gates.CNOT()) }, register.ErrMissingArgument},
		{"multi non-square", func() error { return r.ApplyMulti(nonSquare, 0) }, register.ErrDimensionMismatch},
		{"multi side not power of two", func() error { return r.ApplyMulti(threeByThree, 0, 1) }, register.ErrInvalidDimensions},
		{"multi side exceeds register", func() error { return r.ApplyMulti(huge, 0, 1, 2, 3) }, register.ErrDimensionMismatch},
		{"multi side vs qubit count", func() error { return r.ApplyMulti(gates.CNOT(), 0, 1, 2) }, register.ErrDimensionMismatch},
		{"multi out of range", func() error { return r.ApplyMulti(gates.CNOT(), 0, 3) }, register.ErrOutOfRange},
		{"multi descending", func() error { return r.ApplyMulti(gates.CNOT(), 2, 0) }, register.ErrOutOfRange},
		{"multi duplicate", func() error { return r.ApplyMulti(gates.CNOT(), 1, 1) }, register.ErrDuplicateIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(), tc.want)
			require.True(t, r.Equal(before))
		})
	}
}

func TestApplyDescendingMentionsOrder(t *testing.T) {
	r, err := register.New(2)
	require.NoError(t, err)
	err = r.ApplyMulti(gates.CNOT(), 1, 0)
	require.ErrorIs(t, err, register.ErrOutOfRange)
	require.Contains(t, err.Error(), "not ascending")
}

// maskedGate hides the concrete *Dense type to exercise the snapshot path.
type maskedGate struct{ matrix.Matrix[cplx] }

func TestApplyAcceptsAnyMatrixImplementation(t *testing.T) {
	a, err := register.NewRandom(3, rng.New(8))
	require.NoError(t, err)
	b := a.Copy()

	require.NoError(t, a.ApplyMulti(gates.CNOT(), 0, 2))
	require.NoError(t, b.ApplyMulti(maskedGate{gates.CNOT()}, 0, 2))
	require.True(t, a.Equal(b))

	require.NoError(t, a.Apply(gates.H(), 1))
	require.NoError(t, b.Apply(maskedGate{gates.H()}, 1))
	require.True(t, a.Equal(b))
}

func TestNormPreservedUnderEvolution(t *testing.T) {
	r, err := register.NewRandom(4, rng.New(99))
	require.NoError(t, err)
	for step := 0; step < 20; step++ {
		require.NoError(t, r.Apply(gates.H(), step%4))
		require.NoError(t, r.ApplyMulti(gates.CNOT(), step%3, 3))
		require.InDelta(t, 1.0, r.Norm(), 1e-9)
	}
}
