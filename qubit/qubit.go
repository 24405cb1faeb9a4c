// SPDX-License-Identifier: MIT

// Package qubit - single-qubit state α|0⟩ + β|1⟩.
//
// Purpose:
//   - Hold a validated pair of amplitudes with finite unit norm.
//   - Apply 2×2 gates in place and measure from an explicit rng.Source,
//     collapsing onto |0⟩ or |1⟩.
//
// Complexity quicksheet:
//   - Every operation is O(1).

package qubit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/rng"
	"github.com/katalvlaran/quansim/scalar"
)

// Qubit is the state α|0⟩ + β|1⟩.
type Qubit struct {
	alpha, beta scalar.Complex
	opts        Options
}

// New returns the qubit α|0⟩ + β|1⟩.
// Errors: ErrInvalidState when |α|²+|β|² is not within the norm tolerance of 1.
func New(alpha, beta scalar.Complex, opts ...Option) (*Qubit, error) {
	o := gatherOptions(opts...)
	norm := alpha.Abs2() + beta.Abs2()
	if math.IsNaN(norm) || math.Abs(norm-1) > o.normTol {
		return nil, fmt.Errorf("%s: norm %g: %w", opNew, norm, ErrInvalidState)
	}

	return &Qubit{alpha: alpha, beta: beta, opts: o}, nil
}

// NewZero returns |0⟩.
func NewZero(opts ...Option) *Qubit {
	return &Qubit{alpha: scalar.One(), opts: gatherOptions(opts...)}
}

// NewRandom draws a random normalized state from src: three sorted uniform
// cut points split [0,1] into the squared magnitudes of Re α, Im α, Re β and
// Im β, each with a random sign.
// Errors: ErrMissingArgument when src is nil.
func NewRandom(src rng.Source, opts ...Option) (*Qubit, error) {
	if src == nil {
		return nil, qubitErrorf(opNewRandom, ErrMissingArgument)
	}
	c := rng.UnitComponents(src, 4)

	return &Qubit{
		alpha: scalar.New(c[0], c[1]),
		beta:  scalar.New(c[2], c[3]),
		opts:  gatherOptions(opts...),
	}, nil
}

// Alpha returns the |0⟩ amplitude.
func (q *Qubit) Alpha() scalar.Complex { return q.alpha }

// Beta returns the |1⟩ amplitude.
func (q *Qubit) Beta() scalar.Complex { return q.beta }

// Proba0 returns |α|².
func (q *Qubit) Proba0() float64 { return q.alpha.Abs2() }

// Proba1 returns |β|².
func (q *Qubit) Proba1() float64 { return q.beta.Abs2() }

// Norm returns |α|² + |β|².
func (q *Qubit) Norm() float64 { return q.Proba0() + q.Proba1() }

// Copy returns an independent qubit with the same state and options.
func (q *Qubit) Copy() *Qubit {
	cp := *q
	return &cp
}

// Equal reports whether both amplitudes match within q's epsilon.
// A nil other compares unequal.
func (q *Qubit) Equal(other *Qubit) bool {
	if other == nil {
		return false
	}

	return q.alpha.EqualTol(other.alpha, q.opts.eps) && q.beta.EqualTol(other.beta, q.opts.eps)
}

// Apply replaces (α, β) by gate·(α, β)ᵀ.
// Errors: ErrMissingArgument (nil gate), ErrDimensionMismatch (not 2×2).
// The state is unchanged on error.
func (q *Qubit) Apply(gate matrix.Matrix[scalar.Complex]) error {
	if err := matrix.ValidateNotNil(gate); err != nil {
		return qubitErrorf(opApply, ErrMissingArgument)
	}
	if gate.Rows() != 2 || gate.Cols() != 2 {
		return fmt.Errorf("%s: gate is %dx%d, want 2x2: %w", opApply, gate.Rows(), gate.Cols(), ErrDimensionMismatch)
	}
	in := [2]scalar.Complex{q.alpha, q.beta}
	var out [2]scalar.Complex
	if err := matrix.MatVecInto(gate, in[:], out[:]); err != nil {
		return qubitErrorf(opApply, err)
	}
	q.alpha, q.beta = out[0], out[1]

	return nil
}

// RandomDraw measures the qubit: it draws r uniform in [0,1) and returns true
// (outcome 1) iff r > |α|². The state collapses to |1⟩ or |0⟩ accordingly.
// Errors: ErrMissingArgument when src is nil.
func (q *Qubit) RandomDraw(src rng.Source) (bool, error) {
	if src == nil {
		return false, qubitErrorf(opRandomDraw, ErrMissingArgument)
	}
	one := src.Float64() > q.Proba0()
	if one {
		q.alpha, q.beta = scalar.Zero(), scalar.One()
	} else {
		q.alpha, q.beta = scalar.One(), scalar.Zero()
	}

	return one, nil
}

// String renders "(α)|0⟩ + (β)|1⟩".
func (q *Qubit) String() string {
	return fmt.Sprintf("(%v)|0⟩ + (%v)|1⟩", q.alpha, q.beta)
}
