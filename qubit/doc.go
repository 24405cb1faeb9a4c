// SPDX-License-Identifier: MIT

// Package qubit models a standalone two-level quantum state α|0⟩ + β|1⟩.
//
// A Qubit keeps |α|² + |β|² ≈ 1 (within the configured norm tolerance) at
// every observable point. Gates are 2×2 complex matrices applied in place;
// RandomDraw performs a projective measurement in the computational basis and
// collapses the state to the observed basis vector.
//
// Randomness is never global: every randomized call takes an rng.Source.
// A Qubit is not safe for concurrent use.
package qubit
