// Package circuit evolves an N-qubit register under single-qubit gates and
// controlled-NOT, and samples it with the Born rule.
//
// A Circuit owns exactly one state.Vector, initialised to |0…0⟩ (or to the
// basis state given by WithInitialBasis). Every mutating call validates its
// arguments first and touches the vector only once they pass, so a failed
// call leaves the amplitudes bit-for-bit unchanged.
//
// Two interchangeable engines apply single-qubit gates:
//
//	EnginePaired  visits each amplitude pair (i, i|mask) that differs only in
//	              the target bit and applies the 2×2 in place.
//	              O(2^N) time, O(1) extra memory. Default.
//	EngineTensor  builds I⊗…⊗U⊗…⊗I with matrix.KronAll and multiplies the
//	              whole vector into a fresh buffer. O(4^N) time and memory;
//	              kept as an executable reference for the paired engine.
//
// ApplyCX always computes its result into a freshly allocated vector. Under
// EngineTensor it uses the projector form |0⟩⟨0|_c⊗I + |1⟩⟨1|_c⊗X_t.
//
// Qubit order is big-endian: qubit 0 is the most significant bit of a basis
// index, so on three qubits index 5 = |101⟩ has qubits 0 and 2 set.
//
// Concurrency: a Circuit is not safe for concurrent mutation. Independent
// circuits share nothing and may run in parallel (see package batch).
package circuit
