// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/lvqsim/gates"
	"github.com/katalvlaran/lvqsim/matrix"
)

// ApplyGate applies the catalogue gate name to qubit.
//
// Errors:
//   - ErrOutOfRange when qubit ∉ [0, N).
//   - gates.ErrUnknownGate for a Name outside the catalogue.
//
// The state is unchanged on error.
// Complexity: O(2^N) with EnginePaired, O(4^N) with EngineTensor.
func (c *Circuit) ApplyGate(name gates.Name, qubit int) error {
	args := fmt.Sprintf("%s,%d", name, qubit)
	if err := c.checkQubit(qubit); err != nil {
		return circuitErrorf("ApplyGate", args, err)
	}
	k, err := gates.KernelOf(name)
	if err != nil {
		return circuitErrorf("ApplyGate", args, err)
	}
	if err = c.apply(k, qubit); err != nil {
		return circuitErrorf("ApplyGate", args, err)
	}
	c.log.Debug("gate applied", "gate", name.String(), "qubit", qubit)

	return nil
}

// ApplyUnitary applies an arbitrary 2×2 operator u (row-major) to qubit.
// Entries must be finite. With WithUnitarityCheck the operator must also
// satisfy U†U ≈ I.
//
// Errors:
//   - ErrOutOfRange, matrix.ErrNaNInf, ErrNotUnitary.
func (c *Circuit) ApplyUnitary(u [4]complex128, qubit int) error {
	args := fmt.Sprintf("%v,%d", u, qubit)
	if err := c.checkQubit(qubit); err != nil {
		return circuitErrorf("ApplyUnitary", args, err)
	}
	if err := matrix.ValidateFinite(u[:]); err != nil {
		return circuitErrorf("ApplyUnitary", args, err)
	}
	k := gates.Kernel(u)
	if c.opts.checkUnit {
		ok, err := k.IsUnitary(c.opts.unitaryEps)
		if err != nil {
			return circuitErrorf("ApplyUnitary", args, err)
		}
		if !ok {
			return circuitErrorf("ApplyUnitary", args, ErrNotUnitary)
		}
	}
	if err := c.apply(k, qubit); err != nil {
		return circuitErrorf("ApplyUnitary", args, err)
	}
	c.log.Debug("unitary applied", "qubit", qubit)

	return nil
}

// apply dispatches a validated kernel to the configured engine.
func (c *Circuit) apply(k gates.Kernel, qubit int) error {
	if c.opts.engine == EngineTensor {
		return c.applyTensor(k, qubit)
	}
	applyPaired(c.vec.Raw(), c.vec.NumQubits(), k, qubit)

	return nil
}

// applyPaired updates amps in place. For each index i whose target bit is
// clear, (amps[i], amps[i|mask]) is replaced by k·(amps[i], amps[i|mask]).
// Every index belongs to exactly one pair, so each amplitude is written once.
func applyPaired(amps []complex128, n int, k gates.Kernel, qubit int) {
	mask := 1 << (n - 1 - qubit)
	var j int
	var a0, a1 complex128
	for i := range amps {
		if i&mask != 0 {
			continue
		}
		j = i | mask
		a0, a1 = amps[i], amps[j]
		// conversions round each product; keeps results identical to matrix.MatVec
		amps[i] = complex128(k[0]*a0) + complex128(k[1]*a1)
		amps[j] = complex128(k[2]*a0) + complex128(k[3]*a1)
	}
}
