// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvqsim/matrix"
)

// Name identifies a gate in the catalogue. The zero value is not a gate, so
// an unset field never resolves to an operator by accident.
type Name uint8

// Catalogue entries. Order is stable and used by All().
const (
	H Name = iota + 1 // Hadamard
	X                 // Pauli-X (bit flip)
	Y                 // Pauli-Y
	Z                 // Pauli-Z (phase flip)
)

// Kernel is a 2×2 operator in row-major order: {u00, u01, u10, u11}.
type Kernel [4]complex128

// invSqrt2 is 1/√2 as a complex scalar.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// table maps every Name to its constant matrix. Arrays are values, so
// returning an entry returns a copy.
var table = map[Name]Kernel{
	H: {invSqrt2, invSqrt2, invSqrt2, -invSqrt2},
	X: {0, 1, 1, 0},
	Y: {0, -1i, 1i, 0},
	Z: {1, 0, 0, -1},
}

// identity is the 2×2 identity used by tensor-product construction.
var identity = Kernel{1, 0, 0, 1}

var names = map[Name]string{H: "H", X: "X", Y: "Y", Z: "Z"}

// aliases is the only path from text to a Name. Keys are lower-case.
var aliases = map[string]Name{
	"h": H, "hadamard": H,
	"x": X, "paulix": X, "pauli-x": X, "not": X,
	"y": Y, "pauliy": Y, "pauli-y": Y,
	"z": Z, "pauliz": Z, "pauli-z": Z,
}

// All returns the catalogue in stable order (H, X, Y, Z).
func All() []Name { return []Name{H, X, Y, Z} }

// Valid reports whether n is a catalogue entry.
func (n Name) Valid() bool {
	_, ok := table[n]
	return ok
}

// String returns the short symbol ("H", "X", ...) or "Name(<n>)" for
// values outside the catalogue.
func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}

	return fmt.Sprintf("Name(%d)", uint8(n))
}

// Parse resolves a case-insensitive symbol or alias ("h", "Hadamard",
// "pauli-x", ...) to a Name.
func Parse(s string) (Name, error) {
	n, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("Parse(%q): %w", s, ErrUnknownGate)
	}

	return n, nil
}

// KernelOf returns a copy of the gate's 2×2 entries.
// Complexity: O(1).
func KernelOf(n Name) (Kernel, error) {
	k, ok := table[n]
	if !ok {
		return Kernel{}, fmt.Errorf("KernelOf(%s): %w", n, ErrUnknownGate)
	}

	return k, nil
}

// Identity returns the 2×2 identity kernel. It is not an applicable gate
// name; the tensor engine uses it for untouched qubit positions.
func Identity() Kernel { return identity }

// Matrix returns a fresh 2×2 matrix.Dense holding the gate's entries.
func Matrix(n Name) (*matrix.Dense, error) {
	k, err := KernelOf(n)
	if err != nil {
		return nil, err
	}

	return k.Dense()
}

// Dense converts a kernel into a fresh 2×2 matrix.Dense.
func (k Kernel) Dense() (*matrix.Dense, error) {
	return matrix.NewFromRows([][]complex128{{k[0], k[1]}, {k[2], k[3]}})
}

// IsUnitary reports whether k is unitary within eps (matrix.IsUnitary).
func (k Kernel) IsUnitary(eps float64) (bool, error) {
	d, err := k.Dense()
	if err != nil {
		return false, err
	}

	return matrix.IsUnitary(d, matrix.WithEpsilon(eps))
}
