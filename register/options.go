// SPDX-License-Identifier: MIT

package register

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

const (
	// DefaultNormTolerance bounds |1 − Σ|aᵢ|²| for a valid register.
	DefaultNormTolerance = 0.001

	// DefaultEpsilon is the per-component tolerance used by Equal.
	DefaultEpsilon = 1e-9
)

// Options holds a Register's numeric policy and logger.
type Options struct {
	normTol float64
	eps     float64
	logger  *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes the register's Debug events to logger.
// A nil logger keeps the silent default.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithNormTolerance sets the unit-norm tolerance used at construction.
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
		panic("register: " + name + " requires a finite value >= 0")
	}
}

// discardLogger is shared by registers built without WithLogger.
var discardLogger = log.New(io.Discard)

func gatherOptions(opts ...Option) Options {
	o := Options{normTol: DefaultNormTolerance, eps: DefaultEpsilon, logger: discardLogger}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
