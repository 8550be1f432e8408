// SPDX-License-Identifier: MIT

package circuit

import (
	"github.com/katalvlaran/lvqsim/gates"
	"github.com/katalvlaran/lvqsim/matrix"
)

// Projectors onto |0⟩ and |1⟩ for the controlled-NOT tensor form.
var (
	proj0 = gates.Kernel{1, 0, 0, 0}
	proj1 = gates.Kernel{0, 0, 0, 1}
)

// expand returns the full 2^N×2^N operator f0⊗f1⊗…⊗f(N-1), where position
// q takes place[q] when present and the identity otherwise. Qubit 0 is the
// leftmost factor.
func expand(n int, place map[int]gates.Kernel) (matrix.Matrix, error) {
	factors := make([]matrix.Matrix, n)
	var k gates.Kernel
	var ok bool
	var err error
	for q := 0; q < n; q++ {
		if k, ok = place[q]; !ok {
			k = gates.Identity()
		}
		if factors[q], err = k.Dense(); err != nil {
			return nil, err
		}
	}

	return matrix.KronAll(factors...)
}

// applyTensor multiplies the register by I⊗…⊗k⊗…⊗I. The product goes into
// a new buffer that replaces the old one only after every step succeeded.
func (c *Circuit) applyTensor(k gates.Kernel, qubit int) error {
	op, err := expand(c.vec.NumQubits(), map[int]gates.Kernel{qubit: k})
	if err != nil {
		return err
	}
	next, err := matrix.MatVec(op, c.vec.Raw())
	if err != nil {
		return err
	}

	return c.vec.Swap(next)
}

// tensorCX computes (P0_c⊗I + P1_c⊗X_t)·ψ into a new vector.
func (c *Circuit) tensorCX(control, target int) ([]complex128, error) {
	n := c.vec.NumQubits()
	x, err := gates.KernelOf(gates.X)
	if err != nil {
		return nil, err
	}
	off, err := expand(n, map[int]gates.Kernel{control: proj0})
	if err != nil {
		return nil, err
	}
	on, err := expand(n, map[int]gates.Kernel{control: proj1, target: x})
	if err != nil {
		return nil, err
	}
	op, err := matrix.Add(off, on)
	if err != nil {
		return nil, err
	}

	return matrix.MatVec(op, c.vec.Raw())
}
