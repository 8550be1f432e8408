// SPDX-License-Identifier: MIT

package state

import (
	"fmt"
	"math/bits"
	"math/cmplx"
	"strconv"
	"strings"
)

// MaxQubits bounds the register width so that 2^N stays addressable and the
// allocation request stays sane on 64-bit hosts (2^30 amplitudes = 16 GiB).
const MaxQubits = 30

// Vector is the amplitude vector of an N-qubit register.
type Vector struct {
	n    int          // qubit count, fixed at construction
	amps []complex128 // len == 1<<n
}

// New returns the all-zero basis state |0…0⟩ on numQubits qubits.
//
// Errors:
//   - ErrInvalidArgument when numQubits < 1.
//   - ErrTooManyQubits when numQubits > MaxQubits.
//
// Complexity: O(2^N) time and memory.
func New(numQubits int) (*Vector, error) {
	return BasisState(numQubits, 0)
}

// BasisState returns the computational basis state |index⟩ on numQubits qubits.
func BasisState(numQubits, index int) (*Vector, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("state.New(%d): %w", numQubits, ErrInvalidArgument)
	}
	if numQubits > MaxQubits {
		return nil, fmt.Errorf("state.New(%d): %w", numQubits, ErrTooManyQubits)
	}
	size := 1 << numQubits
	if index < 0 || index >= size {
		return nil, fmt.Errorf("state.BasisState(%d,%d): %w", numQubits, index, ErrOutOfRange)
	}
	amps := make([]complex128, size)
	amps[index] = 1

	return &Vector{n: numQubits, amps: amps}, nil
}

// FromAmplitudes copies amps into a new Vector. The length must be 2^N with
// 1 ≤ N ≤ MaxQubits. Normalisation is not enforced here; callers that need
// a probability distribution check Norm().
func FromAmplitudes(amps []complex128) (*Vector, error) {
	n, err := QubitsForLen(len(amps))
	if err != nil {
		return nil, err
	}
	cp := make([]complex128, len(amps))
	copy(cp, amps)

	return &Vector{n: n, amps: cp}, nil
}

// QubitsForLen returns N for a vector of length 2^N, or ErrBadLength.
func QubitsForLen(size int) (int, error) {
	if size < 2 || size&(size-1) != 0 {
		return 0, fmt.Errorf("state: length %d: %w", size, ErrBadLength)
	}
	n := bits.TrailingZeros(uint(size))
	if n > MaxQubits {
		return 0, fmt.Errorf("state: length %d: %w", size, ErrTooManyQubits)
	}

	return n, nil
}

// NumQubits returns N.
func (v *Vector) NumQubits() int { return v.n }

// Len returns 2^N.
func (v *Vector) Len() int { return len(v.amps) }

// Amplitudes returns a snapshot copy of the amplitudes.
func (v *Vector) Amplitudes() []complex128 {
	out := make([]complex128, len(v.amps))
	copy(out, v.amps)

	return out
}

// At returns the amplitude of basis state i.
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= len(v.amps) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.amps[i], nil
}

// Raw exposes the backing slice to the engine that owns this vector.
// Writes through the returned slice mutate the vector.
func (v *Vector) Raw() []complex128 { return v.amps }

// Swap replaces the backing slice with next, which must have the same
// length. The vector takes ownership of next.
func (v *Vector) Swap(next []complex128) error {
	if len(next) != len(v.amps) {
		return fmt.Errorf("Vector.Swap(len=%d): %w", len(next), ErrBadLength)
	}
	v.amps = next

	return nil
}

// Mask returns the index bit that carries qubit q (big-endian: 1<<(N-1-q)).
func (v *Vector) Mask(q int) (int, error) {
	if q < 0 || q >= v.n {
		return 0, fmt.Errorf("Vector.Mask(%d): %w", q, ErrOutOfRange)
	}

	return 1 << (v.n - 1 - q), nil
}

// Norm returns Σ|a_i|², which is 1 for a normalised state.
// Complexity: O(2^N).
func (v *Vector) Norm() float64 {
	var sum float64
	for _, a := range v.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	return sum
}

// Probabilities returns |a_i|² for every basis index.
func (v *Vector) Probabilities() []float64 {
	out := make([]float64, len(v.amps))
	for i, a := range v.amps {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return out
}

// Label returns the big-endian N-bit string of basis index i.
func (v *Vector) Label(i int) (string, error) {
	if i < 0 || i >= len(v.amps) {
		return "", fmt.Errorf("Vector.Label(%d): %w", i, ErrOutOfRange)
	}

	return Label(i, v.n), nil
}

// Label formats index as an n-character '0'/'1' string, qubit 0 first.
// The caller guarantees 0 ≤ index < 2^n.
func Label(index, n int) string {
	buf := make([]byte, n)
	for q := 0; q < n; q++ {
		if index&(1<<(n-1-q)) != 0 {
			buf[q] = '1'
		} else {
			buf[q] = '0'
		}
	}

	return string(buf)
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	return &Vector{n: v.n, amps: v.Amplitudes()}
}

// Equal reports whether both vectors have the same width and every
// amplitude pair differs by at most eps in modulus.
func (v *Vector) Equal(other *Vector, eps float64) bool {
	if other == nil || v.n != other.n {
		return false
	}
	for i := range v.amps {
		if cmplx.Abs(v.amps[i]-other.amps[i]) > eps {
			return false
		}
	}

	return true
}

// String lists the non-zero amplitudes as "(a)|bits⟩" terms joined by " + ".
// The all-zero vector renders as "0".
func (v *Vector) String() string {
	var b strings.Builder
	for i, a := range v.amps {
		if a == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatComplex(a, 'f', 4, 128))
		b.WriteString("|")
		b.WriteString(Label(i, v.n))
		b.WriteString("⟩")
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
