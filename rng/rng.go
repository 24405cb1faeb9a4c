// SPDX-License-Identifier: MIT

// Package rng provides the deterministic random sources consumed by
// measurement and random-state construction.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across runs.
//   - Encapsulation: a single factory; no time-based sources hidden anywhere.
//   - Explicitness: every randomized operation takes a Source argument.
//
// Concurrency:
//   - *math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines;
//     use Derive to create independent streams for parallel trials.
package rng

import (
	"math"
	"math/rand"

	"golang.org/x/exp/slices"
)

// Source yields uniform floats in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// DefaultSeed is the fixed seed used when callers pass seed == 0.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent stream from base and a stream id.
// If base == nil, DefaultSeed is the parent. Otherwise base.Int63() is
// consumed once, so reusing a stream id still yields a fresh child.
//
// Call during setup, not in hot loops.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// UnitComponents draws k real components whose squares sum to 1: k−1 uniform
// cut points split [0,1] into k segments; component i is the square root of
// segment i with a fair-coin sign. Returns nil when k <= 0.
//
// Complexity: O(k log k) time, O(k) space.
func UnitComponents(src Source, k int) []float64 {
	if k <= 0 {
		return nil
	}
	bounds := make([]float64, k+1)
	bounds[k] = 1
	for i := 1; i < k; i++ {
		bounds[i] = src.Float64()
	}
	slices.Sort(bounds)

	out := make([]float64, k)
	for i := range out {
		out[i] = math.Sqrt(bounds[i+1] - bounds[i])
		if src.Float64() < 0.5 {
			out[i] = -out[i]
		}
	}

	return out
}

// Fixed replays a fixed sequence of values, cycling when exhausted.
// Useful for forcing specific measurement outcomes in tests and examples.
type Fixed struct {
	vals []float64
	pos  int
}

// NewFixed returns a Source that yields vals in order, then starts over.
// An empty Fixed always yields 0.
func NewFixed(vals ...float64) *Fixed {
	cp := make([]float64, len(vals))
	copy(cp, vals)

	return &Fixed{vals: cp}
}

// Float64 implements Source.
func (f *Fixed) Float64() float64 {
	if len(f.vals) == 0 {
		return 0
	}
	v := f.vals[f.pos]
	f.pos = (f.pos + 1) % len(f.vals)

	return v
}
