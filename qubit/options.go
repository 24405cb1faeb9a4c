// SPDX-License-Identifier: MIT

package qubit

import "math"

const (
	// DefaultNormTolerance bounds |1 − (|α|²+|β|²)| for a valid state.
	DefaultNormTolerance = 0.001

	// DefaultEpsilon is the per-component tolerance used by Equal.
	DefaultEpsilon = 1e-9
)

// Options holds a Qubit's numeric policy.
type Options struct {
	normTol float64
	eps     float64
}

// Option mutates Options.
type Option func(*Options)

// WithNormTolerance sets the unit-norm tolerance.
// Panics if tol is negative, NaN or infinite.
func WithNormTolerance(tol float64) Option {
	mustFiniteNonNegative("WithNormTolerance", tol)

	return func(o *Options) { o.normTol = tol }
}

// WithEpsilon sets the tolerance used by Equal.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	mustFiniteNonNegative("WithEpsilon", eps)

	return func(o *Options) { o.eps = eps }
}

func mustFiniteNonNegative(name string, v float64) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic("qubit: " + name + " requires a finite value >= 0")
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{normTol: DefaultNormTolerance, eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
