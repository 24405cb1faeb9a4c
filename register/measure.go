// SPDX-License-Identifier: MIT

// Package register - measurement & marginals.
//
// Purpose:
//   - Draw a basis index with probability |aᵢ|² from an explicit rng.Source
//     and collapse the register onto it.
//   - Report the (unnormalized) per-qubit marginal amplitudes.
//
// Complexity quicksheet:
//   - RandomDrawIndex/RandomDraw/Marginal: O(N).

package register

import (
	"fmt"

	"github.com/katalvlaran/quansim/rng"
	"github.com/katalvlaran/quansim/scalar"
)

// RandomDrawIndex measures every qubit at once and returns the observed basis
// index. It draws r uniform in [0,1), selects the first i whose cumulative
// probability Σ_{j≤i}|aⱼ|² reaches r (the last index when rounding leaves the
// total short of r), and collapses the register to |i⟩.
//
// Errors: ErrMissingArgument when src is nil.
// Complexity: O(N).
func (r *Register) RandomDrawIndex(src rng.Source) (int, error) {
	if src == nil {
		return 0, registerErrorf(opRandomDraw, ErrMissingArgument)
	}
	x := src.Float64()
	pick := len(r.amps) - 1
	var cum float64
	for i, a := range r.amps {
		cum += a.Abs2()
		if cum >= x {
			pick = i
			break
		}
	}
	for i := range r.amps {
		r.amps[i] = scalar.Complex{}
	}
	r.amps[pick] = scalar.One()
	r.opts.logger.Debug("register measured", "outcome", pick)

	return pick, nil
}

// RandomDraw measures the register like RandomDrawIndex and returns the
// outcome as n booleans, most significant qubit first: result[0] is qubit
// n−1 and result[n−1] is qubit 0.
func (r *Register) RandomDraw(src rng.Source) ([]bool, error) {
	idx, err := r.RandomDrawIndex(src)
	if err != nil {
		return nil, err
	}
	n := r.Size()
	out := make([]bool, n)
	for j := 0; j < n; j++ {
		out[j] = idx>>(n-1-j)&1 == 1
	}

	return out, nil
}

// Marginal returns (α, β): the sums of the amplitudes whose bit q is 0 and 1
// respectively. The pair is not normalized and only describes qubit q when it
// is not entangled with the rest of the register.
// Errors: ErrOutOfRange.
func (r *Register) Marginal(q int) (alpha, beta scalar.Complex, err error) {
	if n := r.Size(); q < 0 || q >= n {
		return alpha, beta, fmt.Errorf("%s: qubit %d of %d: %w", opMarginal, q, n, ErrOutOfRange)
	}
	for i, a := range r.amps {
		if i>>q&1 == 0 {
			alpha = alpha.Add(a)
		} else {
			beta = beta.Add(a)
		}
	}

	return alpha, beta, nil
}
