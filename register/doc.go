// SPDX-License-Identifier: MIT

// Package register implements a dense state-vector simulator for an n-qubit
// register.
//
// A Register stores N = 2ⁿ complex amplitudes. Basis index i corresponds to
// the n-bit expansion of i with the most significant bit being the highest
// qubit index, so qubit q is bit q of the index.
//
// Operations:
//   - Apply(gate, q): a 2×2 gate on one qubit, by pair enumeration; O(N).
//   - ApplyMulti(gate, qs...): a 2^k×2^k gate on any ascending subset of k
//     qubits, contiguous or not. Chosen qubit qs[j] is local bit j of the gate,
//     so the highest chosen qubit is the gate's most significant bit.
//     O(N·2^k) arithmetic; the full 2ⁿ×2ⁿ operator is never built.
//   - RandomDraw(src): projective measurement of all qubits; the register
//     collapses to the observed basis state.
//
// Every mutating call validates all preconditions before the first write, so a
// failed call leaves the amplitudes untouched.
//
// Logging: the register logs construction, gate applications and measurements
// at Debug level through a charmbracelet/log Logger supplied with WithLogger.
// Without one, nothing is written.
//
// Concurrency: a Register is not safe for concurrent use; callers serialize
// access. Randomness is passed explicitly as an rng.Source.
package register
