// SPDX-License-Identifier: MIT

// Package gates provides constructors for the common one- and two-qubit gate
// matrices over scalar.Complex. Every call returns a fresh matrix, so callers
// may mutate the result freely.
//
// CNOT uses the local most-significant bit as control, matching the local
// ordering of register.ApplyMulti: ApplyMulti(CNOT(), 0, 1) controls on
// qubit 1 and flips qubit 0.
package gates

import (
	"math"

	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/scalar"
)

// Gate is the matrix type every constructor returns.
type Gate = *matrix.Dense[scalar.Complex]

var (
	zero = scalar.Zero()
	one  = scalar.One()
)

// build is NewDenseFrom for literal tables that are rectangular by construction.
func build(cells [][]scalar.Complex) Gate {
	m, err := matrix.NewDenseFrom(cells)
	if err != nil {
		panic(err) // unreachable: literal tables are non-empty and rectangular
	}

	return m
}

// I2 returns the 2×2 identity.
func I2() Gate {
	return build([][]scalar.Complex{
		{one, zero},
		{zero, one},
	})
}

// X returns the Pauli-X (NOT) gate.
func X() Gate {
	return build([][]scalar.Complex{
		{zero, one},
		{one, zero},
	})
}

// Y returns the Pauli-Y gate [[0, −i], [i, 0]].
func Y() Gate {
	return build([][]scalar.Complex{
		{zero, scalar.I().Neg()},
		{scalar.I(), zero},
	})
}

// Z returns the Pauli-Z gate.
func Z() Gate {
	return build([][]scalar.Complex{
		{one, zero},
		{zero, one.Neg()},
	})
}

// H returns the Hadamard gate (1/√2)[[1, 1], [1, −1]].
func H() Gate {
	h := scalar.FromReal(1 / math.Sqrt2)
	return build([][]scalar.Complex{
		{h, h},
		{h, h.Neg()},
	})
}

// CNOT returns the 4×4 controlled-NOT gate; the local MSB is the control.
func CNOT() Gate {
	return build([][]scalar.Complex{
		{one, zero, zero, zero},
		{zero, one, zero, zero},
		{zero, zero, zero, one},
		{zero, zero, one, zero},
	})
}
