// Package gates is the fixed catalogue of single-qubit gates understood by
// the simulator: Hadamard (H) and the three Pauli operators (X, Y, Z).
//
// Gates are identified by the closed enumeration Name and resolved through a
// package-level lookup table of immutable 2×2 unitaries:
//
//	H = 1/√2 · [[1, 1], [1, -1]]
//	X =        [[0, 1], [1,  0]]
//	Y =        [[0,-i], [i,  0]]
//	Z =        [[1, 0], [0, -1]]
//
// Free-form text (CLI flags, YAML programs) reaches a Name only through
// Parse, which consults a fixed alias table; nothing is ever evaluated.
// Accessors hand out copies, so the table cannot be mutated by callers.
package gates
