// SPDX-License-Identifier: MIT

package history

import "errors"

var (
	// ErrUnknownOp indicates an operation symbol outside the gate catalogue and CX.
	ErrUnknownOp = errors.New("history: unknown operation")

	// ErrMalformedOp indicates a recognised symbol with the wrong operands.
	ErrMalformedOp = errors.New("history: malformed operation")

	// ErrInvalidProgram indicates a Program that failed decoding or validation.
	ErrInvalidProgram = errors.New("history: invalid program")
)
