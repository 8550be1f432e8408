// Package lvqsim is a small state-vector quantum circuit simulator: build an
// N-qubit register, apply H, X, Y, Z and CX, read the amplitudes, sample
// measurements.
//
// What is inside:
//
//	gates/    the fixed gate catalogue (closed Name enum + constant 2×2 table)
//	state/    the 2^N amplitude vector, big-endian labels, norm
//	circuit/  Circuit: paired-amplitude and tensor-product engines, CX
//	sampler/  Born-rule sampling with seedable randomness
//	matrix/   complex Dense matrices: Kron, Mul, MatVec, Adjoint, IsUnitary
//	history/  gate-sequence log, op parsing, YAML programs, replay
//	batch/    independent circuits evaluated concurrently
//	cmd/qsim  command-line front end
//
// Qubit order is big-endian everywhere: qubit 0 is the most significant
// bit of a basis index, so on three qubits index 5 is |101⟩.
//
// Quick example (Bell pair):
//
//	q0 ──H──●──
//	        │
//	q1 ─────X──
//
//	c, _ := circuit.New(2)
//	_ = c.ApplyGate(gates.H, 0)
//	_ = c.ApplyCX(0, 1)
//	counts, _ := c.Measure(1024, sampler.WithSeed(7))
//	// counts holds only "00" and "11", roughly 512 each
//
// Memory grows as 2^N for the default engine and 4^N for the tensor engine;
// the core caps N at state.MaxQubits and the CLI at its max_qubits setting.
//
//	go install github.com/katalvlaran/lvqsim/cmd/qsim@latest
package lvqsim
