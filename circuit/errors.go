// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvqsim/state"
)

var (
	// ErrOutOfRange is returned when a qubit index is outside [0, N).
	ErrOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrInvalidOperands is returned by ApplyCX when control == target.
	ErrInvalidOperands = errors.New("circuit: control and target must differ")

	// ErrInvalidArgument is returned for a qubit count below 1. It is the
	// state package sentinel, so either name matches with errors.Is.
	ErrInvalidArgument = state.ErrInvalidArgument

	// ErrNotUnitary is returned by ApplyUnitary when the unitarity check is
	// enabled and the operator fails it.
	ErrNotUnitary = errors.New("circuit: operator is not unitary")
)

// circuitErrorf wraps err as "Circuit.<method>(args): err".
func circuitErrorf(method string, args string, err error) error {
	return fmt.Errorf("Circuit.%s(%s): %w", method, args, err)
}
