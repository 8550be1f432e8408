// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// ApplyCX flips target on every basis state where control is 1.
//
// Implementation:
//   - Stage 1: both indices in range (ErrOutOfRange), then control ≠ target
//     (ErrInvalidOperands).
//   - Stage 2: write the permuted amplitudes into a fresh vector:
//     out[i^tmask] = in[i] when the control bit of i is set, else out[i] = in[i].
//   - Stage 3: swap the fresh vector in.
//
// The state is unchanged on error.
// Complexity: O(2^N) time and memory (EnginePaired), O(4^N) (EngineTensor).
func (c *Circuit) ApplyCX(control, target int) error {
	args := fmt.Sprintf("%d,%d", control, target)
	if err := c.checkQubit(control); err != nil {
		return circuitErrorf("ApplyCX", args, err)
	}
	if err := c.checkQubit(target); err != nil {
		return circuitErrorf("ApplyCX", args, err)
	}
	if control == target {
		return circuitErrorf("ApplyCX", args, ErrInvalidOperands)
	}

	var next []complex128
	if c.opts.engine == EngineTensor {
		var err error
		if next, err = c.tensorCX(control, target); err != nil {
			return circuitErrorf("ApplyCX", args, err)
		}
	} else {
		next = permuteCX(c.vec.Raw(), c.vec.NumQubits(), control, target)
	}
	if err := c.vec.Swap(next); err != nil {
		return circuitErrorf("ApplyCX", args, err)
	}
	c.log.Debug("cx applied", "control", control, "target", target)

	return nil
}

// permuteCX returns the CX image of in without modifying it.
func permuteCX(in []complex128, n, control, target int) []complex128 {
	cmask := 1 << (n - 1 - control)
	tmask := 1 << (n - 1 - target)
	out := make([]complex128, len(in))
	for i, a := range in {
		if i&cmask != 0 {
			out[i^tmask] = a
		} else {
			out[i] = a
		}
	}

	return out
}
