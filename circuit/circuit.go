// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvqsim/sampler"
	"github.com/katalvlaran/lvqsim/state"
)

// Circuit is an N-qubit register plus the engine that evolves it.
type Circuit struct {
	vec  *state.Vector
	opts Options
	log  *slog.Logger
}

// New creates a circuit of numQubits qubits in |0…0⟩ (or the basis state
// set by WithInitialBasis).
//
// numQubits above state.MaxQubits fails with state.ErrTooManyQubits. The cap
// is an implementation limit: the model itself is bounded only by memory
// (2^N amplitudes of 16 bytes each).
//
// Errors:
//   - ErrInvalidArgument when numQubits < 1.
//   - state.ErrTooManyQubits when numQubits > state.MaxQubits.
//   - ErrOutOfRange when the initial basis index does not fit.
//
// Complexity: O(2^N).
func New(numQubits int, opts ...Option) (*Circuit, error) {
	o := gatherOptions(opts...)
	vec, err := state.BasisState(numQubits, o.initial)
	if err != nil {
		if errors.Is(err, state.ErrOutOfRange) {
			err = fmt.Errorf("%v: %w", err, ErrOutOfRange)
		}

		return nil, fmt.Errorf("circuit.New(%d): %w", numQubits, err)
	}

	c := &Circuit{
		vec:  vec,
		opts: o,
		log:  o.logger.With("qubits", numQubits, "engine", o.engine.String()),
	}
	c.log.Debug("circuit created", "initial", state.Label(o.initial, numQubits))

	return c, nil
}

// NumQubits returns N.
func (c *Circuit) NumQubits() int { return c.vec.NumQubits() }

// Engine reports the engine chosen at construction.
func (c *Circuit) Engine() Engine { return c.opts.engine }

// Amplitudes returns a snapshot copy of the 2^N amplitudes. Later gate
// applications do not affect the returned slice.
func (c *Circuit) Amplitudes() []complex128 { return c.vec.Amplitudes() }

// State returns an independent copy of the register.
func (c *Circuit) State() *state.Vector { return c.vec.Clone() }

// Reset returns the register to its initial basis state.
func (c *Circuit) Reset() {
	raw := c.vec.Raw()
	for i := range raw {
		raw[i] = 0
	}
	raw[c.opts.initial] = 1
	c.log.Debug("circuit reset")
}

// Measure samples shots outcomes from the current amplitudes without
// collapsing them; repeated calls observe the same state.
//
// Errors: sampler.ErrInvalidArgument, sampler.ErrInvalidState.
func (c *Circuit) Measure(shots int, opts ...sampler.Option) (sampler.Counts, error) {
	counts, err := sampler.Sample(c.vec.Raw(), shots, opts...)
	if err != nil {
		return nil, circuitErrorf("Measure", fmt.Sprint(shots), err)
	}
	c.log.Debug("measured", "shots", shots, "outcomes", len(counts))

	return counts, nil
}

// String renders the register in ket notation (see state.Vector.String).
func (c *Circuit) String() string { return c.vec.String() }

// checkQubit returns ErrOutOfRange unless 0 ≤ q < N.
func (c *Circuit) checkQubit(q int) error {
	if q < 0 || q >= c.vec.NumQubits() {
		return ErrOutOfRange
	}

	return nil
}
