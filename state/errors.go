// SPDX-License-Identifier: MIT

package state

import "errors"

var (
	// ErrInvalidArgument is returned for a qubit count below 1.
	ErrInvalidArgument = errors.New("state: invalid argument")

	// ErrTooManyQubits is returned when 2^N amplitudes cannot be addressed.
	ErrTooManyQubits = errors.New("state: too many qubits")

	// ErrOutOfRange is returned for a basis index or qubit outside the register.
	ErrOutOfRange = errors.New("state: index out of range")

	// ErrBadLength is returned when an amplitude slice is not 2^N long for some N ≥ 1.
	ErrBadLength = errors.New("state: length is not a power of two")
)
