// SPDX-License-Identifier: MIT

package sampler

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive shot count.
	ErrInvalidArgument = errors.New("sampler: invalid argument")

	// ErrInvalidState indicates amplitudes that do not form a probability
	// distribution: wrong length, NaN/Inf entries or a norm off by more than
	// the tolerance.
	ErrInvalidState = errors.New("sampler: invalid state")
)
