// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for tolerance-based comparison.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// DefaultEpsilon is the absolute tolerance EqualWith uses when no option is given.
const DefaultEpsilon = 1e-9

// Options holds the resolved configuration for a comparison call.
type Options struct {
	eps float64
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon sets the absolute tolerance used by EqualWith.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("matrix: WithEpsilon requires a finite eps >= 0")
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
