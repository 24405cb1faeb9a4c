// SPDX-License-Identifier: MIT

// Package register - n-qubit state vector: construction, accessors & equality.
//
// Purpose:
//   - Own the 2ⁿ amplitudes of an n-qubit register; basis index i has qubit j
//     as bit j, so qubit 0 is the least significant.
//   - Validate construction input (power-of-two length, finite unit norm)
//     and hand out copies only, so callers never alias internal storage.
//
// Complexity quicksheet:
//   - New/NewFromAmplitudes/NewRandom: O(N); Proba/Amplitude: O(1);
//     Probabilities/Amplitudes/Norm/Copy/Equal/String: O(N), with N = 2ⁿ.

package register

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/katalvlaran/quansim/matrix"
	"github.com/katalvlaran/quansim/rng"
	"github.com/katalvlaran/quansim/scalar"
)

// MaxQubits caps the register size accepted by New and NewRandom.
const MaxQubits = 30

// Register is an n-qubit state vector of 2ⁿ complex amplitudes.
type Register struct {
	amps []scalar.Complex
	opts Options
}

// New returns the n-qubit register in |0…0⟩.
// Errors: ErrInvalidDimensions when n < 1 or n > MaxQubits.
func New(n int, opts ...Option) (*Register, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("%s: %d qubits: %w", opNew, n, ErrInvalidDimensions)
	}
	r := &Register{amps: make([]scalar.Complex, 1<<n), opts: gatherOptions(opts...)}
	r.amps[0] = scalar.One()
	r.opts.logger.Debug("register created", "qubits", n, "len", len(r.amps))

	return r, nil
}

// NewFromAmplitudes builds a register holding a copy of amps.
//
// Errors:
//   - ErrInvalidDimensions when len(amps) is not a power of two ≥ 2.
//   - ErrInvalidState when Σ|aᵢ|² is not within the norm tolerance of 1.
func NewFromAmplitudes(amps []scalar.Complex, opts ...Option) (*Register, error) {
	if len(amps) < 2 || len(amps) > 1<<MaxQubits {
		return nil, fmt.Errorf("%s: length %d: %w", opNewFromAmplitudes, len(amps), ErrInvalidDimensions)
	}
	if err := matrix.ValidatePowerOfTwo(len(amps)); err != nil {
		return nil, registerErrorf(opNewFromAmplitudes, err)
	}
	o := gatherOptions(opts...)
	var norm float64
	for _, a := range amps {
		norm += a.Abs2()
	}
	if math.IsNaN(norm) || math.Abs(norm-1) > o.normTol {
		return nil, fmt.Errorf("%s: norm %g: %w", opNewFromAmplitudes, norm, ErrInvalidState)
	}
	r := &Register{amps: make([]scalar.Complex, len(amps)), opts: o}
	copy(r.amps, amps)
	o.logger.Debug("register created", "qubits", r.Size(), "len", len(r.amps))

	return r, nil
}

// NewRandom returns a random normalized n-qubit register: 2·2ⁿ−1 sorted
// uniform cut points split [0,1] into the squared magnitudes of every real and
// imaginary part, each with a random sign.
//
// Errors: ErrInvalidDimensions (n out of range), ErrMissingArgument (nil src).
func NewRandom(n int, src rng.Source, opts ...Option) (*Register, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("%s: %d qubits: %w", opNewRandom, n, ErrInvalidDimensions)
	}
	if src == nil {
		return nil, registerErrorf(opNewRandom, ErrMissingArgument)
	}
	size := 1 << n
	c := rng.UnitComponents(src, 2*size)
	r := &Register{amps: make([]scalar.Complex, size), opts: gatherOptions(opts...)}
	for i := range r.amps {
		r.amps[i] = scalar.New(c[2*i], c[2*i+1])
	}
	r.opts.logger.Debug("random register created", "qubits", n, "len", size)

	return r, nil
}

// Size returns the number of qubits n.
func (r *Register) Size() int { return bits.TrailingZeros(uint(len(r.amps))) }

// Len returns the number of amplitudes N = 2ⁿ.
func (r *Register) Len() int { return len(r.amps) }

// Proba returns |aᵢ|², the probability of observing basis state i.
// Errors: ErrOutOfRange.
func (r *Register) Proba(i int) (float64, error) {
	if i < 0 || i >= len(r.amps) {
		return 0, fmt.Errorf("%s(%d): %w", opProba, i, ErrOutOfRange)
	}

	return r.amps[i].Abs2(), nil
}

// Probabilities returns |aᵢ|² for every basis state.
func (r *Register) Probabilities() []float64 {
	out := make([]float64, len(r.amps))
	for i, a := range r.amps {
		out[i] = a.Abs2()
	}

	return out
}

// Amplitude returns aᵢ.
// Errors: ErrOutOfRange.
func (r *Register) Amplitude(i int) (scalar.Complex, error) {
	if i < 0 || i >= len(r.amps) {
		return scalar.Complex{}, fmt.Errorf("%s(%d): %w", opAmplitude, i, ErrOutOfRange)
	}

	return r.amps[i], nil
}

// Amplitudes returns a copy of the amplitude vector.
func (r *Register) Amplitudes() []scalar.Complex {
	out := make([]scalar.Complex, len(r.amps))
	copy(out, r.amps)

	return out
}

// Vector returns the amplitudes as an independent column vector.
func (r *Register) Vector() *matrix.Vector[scalar.Complex] {
	v, _ := matrix.NewColumn(r.amps...) // len ≥ 2 always
	return v
}

// Norm returns Σ|aᵢ|².
func (r *Register) Norm() float64 {
	var s float64
	for _, a := range r.amps {
		s += a.Abs2()
	}

	return s
}

// Copy returns a register with independent storage and the same options.
func (r *Register) Copy() *Register {
	cp := &Register{amps: make([]scalar.Complex, len(r.amps)), opts: r.opts}
	copy(cp.amps, r.amps)

	return cp
}

// Equal reports whether other has the same length and every amplitude matches
// within r's epsilon.
func (r *Register) Equal(other *Register) bool {
	if other == nil || len(other.amps) != len(r.amps) {
		return false
	}
	for i, a := range r.amps {
		if !a.EqualTol(other.amps[i], r.opts.eps) {
			return false
		}
	}

	return true
}

// String renders the amplitudes as a boxed column:
//
//	┌	a0	┐
//	│	a1	│
//	│	a2	│
//	└	a3	┘
func (r *Register) String() string {
	var b strings.Builder
	last := len(r.amps) - 1
	for i, a := range r.amps {
		open, closing := "│", "│"
		switch i {
		case 0:
			open, closing = "┌", "┐"
		case last:
			open, closing = "└", "┘"
		}
		fmt.Fprintf(&b, "%s\t%v\t%s\n", open, a, closing)
	}

	return b.String()
}
