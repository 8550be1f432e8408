// Package state holds the amplitude vector of an N-qubit register.
//
// A Vector stores 2^N complex amplitudes; index i is the basis state whose
// big-endian N-bit expansion lists qubit 0 first. Qubit q therefore lives at
// bit position N-1-q of the index, and Label(5) on three qubits is "101".
//
// Vectors are plain values with no locking. The owning circuit is the only
// writer; everything handed to other callers (Amplitudes, Clone) is a copy.
package state
