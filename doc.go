// Package quansim simulates quantum state evolution on dense state vectors.
//
// A quantum state is held as complex probability amplitudes; unitary gates
// are applied to chosen qubits and measurement collapses the state at random.
//
// Everything is organized under small subpackages, leaves first:
//
//	scalar/   Complex value type (field operations, tolerant equality) and Real[T]
//	matrix/   generic Field capability set, Dense and Vector containers, kernels
//	rng/      deterministic seeded random sources passed to every draw
//	qubit/    a standalone two-level state with gate application and measurement
//	register/ the n-qubit state-vector engine: Apply, ApplyMulti, RandomDraw
//	gates/    constructors for I2, X, Y, Z, H and CNOT
//
// Quick start:
//
//	r, _ := register.New(2)
//	_ = r.Apply(gates.H(), 1)
//	_ = r.ApplyMulti(gates.CNOT(), 0, 1) // Bell state (|00⟩+|11⟩)/√2
//	out, _ := r.RandomDraw(rng.New(42))  // out[0] == out[1]
//
// The library is single-threaded and synchronous: Registers and Qubits carry
// no locks, and randomness is always supplied by the caller.
package quansim
