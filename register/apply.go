// SPDX-License-Identifier: MIT

// Package register - in-place gate application.
//
// Purpose:
//   - Apply a 2×2 gate to one qubit by pairing amplitudes 2^q apart.
//   - Apply a 2^k×2^k gate to k ascending qubits by gather, multiply, scatter
//     over the N/2^k groups that share every unchosen bit.
//   - Validate everything before the first write, so a failed call leaves
//     the register untouched.
//
// Complexity quicksheet:
//   - Apply: O(N) time, O(1) extra; ApplyMulti: O(N·2^k) time, O(2^k) extra.

package register

import (
	"fmt"

	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/scalar"
)

// snapshot returns gate as a *Dense, copying other Matrix implementations
// cell by cell so that any read error surfaces before the register is touched.
func snapshot(gate matrix.Matrix[scalar.Complex]) (*matrix.Dense[scalar.Complex], error) {
	if d, ok := gate.(*matrix.Dense[scalar.Complex]); ok {
		return d, nil
	}
	rows, cols := gate.Rows(), gate.Cols()
	d, err := matrix.NewDense[scalar.Complex](rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v scalar.Complex
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = gate.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Apply applies a single-qubit gate to qubit q in place.
//
// Implementation:
//   - Stage 1: validate gate (non-nil, 2×2) and q ∈ [0, n).
//   - Stage 2: with offset = 2^q, walk i over runs of offset consecutive
//     indices separated by gaps of offset; each pair (aᵢ, a_{i+offset})
//     becomes gate·(aᵢ, a_{i+offset})ᵀ.
//
// Errors: ErrMissingArgument, ErrDimensionMismatch, ErrOutOfRange.
// Complexity: O(N) time, O(1) extra space.
func (r *Register) Apply(gate matrix.Matrix[scalar.Complex], q int) error {
	if matrix.ValidateNotNil(gate) != nil {
		return registerErrorf(opApply, ErrMissingArgument)
	}
	if gate.Rows() != 2 || gate.Cols() != 2 {
		return fmt.Errorf("%s: gate is %dx%d, want 2x2: %w", opApply, gate.Rows(), gate.Cols(), ErrDimensionMismatch)
	}
	n := r.Size()
	if q < 0 || q >= n {
		return fmt.Errorf("%s: qubit %d of %d: %w", opApply, q, n, ErrOutOfRange)
	}
	g, err := snapshot(gate)
	if err != nil {
		return registerErrorf(opApply, err)
	}

	offset := 1 << q
	var in, out [2]scalar.Complex
	var base, i int
	for base = 0; base < len(r.amps); base += 2 * offset {
		for i = base; i < base+offset; i++ {
			in[0], in[1] = r.amps[i], r.amps[i+offset]
			if err = matrix.MatVecInto(g, in[:], out[:]); err != nil {
				return registerErrorf(opApply, err) // unreachable for a validated 2×2 Dense
			}
			r.amps[i], r.amps[i+offset] = out[0], out[1]
		}
	}
	r.opts.logger.Debug("gate applied", "qubits", []int{q}, "side", 2)

	return nil
}

// validateQubits checks that qs is non-empty, in range, strictly ascending.
func validateQubits(qs []int, n int) error {
	if len(qs) == 0 {
		return fmt.Errorf("no qubit indices: %w", ErrMissingArgument)
	}
	for j, q := range qs {
		if q < 0 || q >= n {
			return fmt.Errorf("qubit %d of %d: %w", q, n, ErrOutOfRange)
		}
		if j == 0 {
			continue
		}
		switch prev := qs[j-1]; {
		case q == prev:
			return fmt.Errorf("qubit %d repeated: %w", q, ErrDuplicateIndex)
		case q < prev:
			return fmt.Errorf("qubit indices not ascending (%d after %d): %w", q, prev, ErrOutOfRange)
		}
	}

	return nil
}

// ApplyMulti applies a 2^k×2^k gate to the k qubits qs (strictly ascending,
// contiguous or not) in place. Chosen qubit qs[j] is local bit j of the gate's
// row/column index.
//
// Implementation:
//   - Stage 1: validate the gate shape, then the qubit list, before any write.
//   - Stage 2: precompute off[l] = Σⱼ bitⱼ(l)·2^qs[j], the offset of local
//     coordinate l from its group's all-zero representative.
//   - Stage 3: for each group g ∈ [0, N/2^k), build the representative by
//     inserting a zero bit at every chosen position (ascending), gather the
//     2^k amplitudes, multiply, and scatter back.
//
// Errors:
//   - ErrMissingArgument: nil gate or empty qs.
//   - ErrDimensionMismatch: gate not square, side > N or side != 2^k.
//   - ErrInvalidDimensions: side not a power of two.
//   - ErrOutOfRange: an index outside [0, n) or indices not ascending.
//   - ErrDuplicateIndex: a repeated index.
//
// Complexity: O(N·2^k) time, O(2^k) extra space.
func (r *Register) ApplyMulti(gate matrix.Matrix[scalar.Complex], qs ...int) error {
	if matrix.ValidateNotNil(gate) != nil {
		return registerErrorf(opApplyMulti, ErrMissingArgument)
	}
	if len(qs) == 0 {
		return fmt.Errorf("%s: no qubit indices: %w", opApplyMulti, ErrMissingArgument)
	}
	if err := matrix.ValidateSquare(gate); err != nil {
		return registerErrorf(opApplyMulti, err)
	}
	side := gate.Rows()
	if err := matrix.ValidatePowerOfTwo(side); err != nil {
		return registerErrorf(opApplyMulti, err)
	}
	if side > len(r.amps) {
		return fmt.Errorf("%s: gate side %d exceeds register length %d: %w",
			opApplyMulti, side, len(r.amps), ErrDimensionMismatch)
	}
	k := len(qs)
	if side != 1<<k {
		return fmt.Errorf("%s: gate side %d for %d qubits: %w", opApplyMulti, side, k, ErrDimensionMismatch)
	}
	if err := validateQubits(qs, r.Size()); err != nil {
		return registerErrorf(opApplyMulti, err)
	}
	g, err := snapshot(gate)
	if err != nil {
		return registerErrorf(opApplyMulti, err)
	}

	off := localOffsets(qs)
	in := make([]scalar.Complex, side)
	out := make([]scalar.Complex, side)
	groups := len(r.amps) >> k
	var grp, base, l int
	for grp = 0; grp < groups; grp++ {
		base = insertZeroBits(grp, qs)
		for l = 0; l < side; l++ {
			in[l] = r.amps[base+off[l]]
		}
		if err = matrix.MatVecInto(g, in, out); err != nil {
			return registerErrorf(opApplyMulti, err) // unreachable after validation
		}
		for l = 0; l < side; l++ {
			r.amps[base+off[l]] = out[l]
		}
	}
	r.opts.logger.Debug("gate applied", "qubits", qs, "side", side)

	return nil
}

// localOffsets returns off[l] = Σⱼ bitⱼ(l)·2^qs[j] for l ∈ [0, 2^len(qs)).
func localOffsets(qs []int) []int {
	off := make([]int, 1<<len(qs))
	for l := range off {
		for j, q := range qs {
			if l>>j&1 == 1 {
				off[l] |= 1 << q
			}
		}
	}

	return off
}

// insertZeroBits spreads the bits of g around zero bits placed at the
// ascending positions qs, yielding the group's all-zero representative.
func insertZeroBits(g int, qs []int) int {
	for _, p := range qs {
		low := g & (1<<p - 1)
		g = (g>>p)<<(p+1) | low
	}

	return g
}
