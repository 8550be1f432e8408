// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvqsim/matrix"
	"github.com/katalvlaran/lvqsim/state"
)

// Probabilities validates amps and returns |a_i|² for every index, divided
// by their sum so the result adds up to 1.
//
// Errors:
//   - ErrInvalidState for a length that is not 2^N, a NaN/Inf amplitude, or
//     a squared norm outside 1 ± DefaultTolerance (or WithTolerance).
//
// Complexity: O(2^N).
func Probabilities(amps []complex128, opts ...Option) ([]float64, error) {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	probs, _, err := distribution(amps, o.tol)

	return probs, err
}

// Sample draws shots outcomes from amps under the Born rule.
//
// Implementation:
//   - Stage 1: validate shots and the vector (see Probabilities).
//   - Stage 2: build the cumulative table over normalised probabilities.
//   - Stage 3: for each shot, binary-search a uniform draw in the table.
//
// Zero-probability states are never returned: their cumulative entry equals
// the previous one, so the search always lands on an earlier index.
//
// Errors:
//   - ErrInvalidArgument when shots <= 0.
//   - ErrInvalidState as in Probabilities.
//
// Complexity: O(2^N + shots·N) time, O(2^N) space.
func Sample(amps []complex128, shots int, opts ...Option) (Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("sampler.Sample(shots=%d): %w", shots, ErrInvalidArgument)
	}
	o := gatherOptions(opts...)

	probs, n, err := distribution(amps, o.tol)
	if err != nil {
		return nil, err
	}

	cum := make([]float64, len(probs))
	var acc float64
	last := 0 // highest index with non-zero probability
	for i, p := range probs {
		acc += p
		cum[i] = acc
		if p > 0 {
			last = i
		}
	}

	counts := make(Counts)
	var r float64
	var idx int
	for s := 0; s < shots; s++ {
		r = o.rng.Float64() * acc
		idx = sort.Search(len(cum), func(i int) bool { return cum[i] > r })
		if idx > last {
			idx = last // r rounded up to acc
		}
		counts[state.Label(idx, n)]++
	}

	return counts, nil
}

// distribution returns the normalised probabilities and the qubit count.
func distribution(amps []complex128, tol float64) ([]float64, int, error) {
	n, err := state.QubitsForLen(len(amps))
	if err != nil {
		return nil, 0, fmt.Errorf("sampler: %v: %w", err, ErrInvalidState)
	}
	if err = matrix.ValidateFinite(amps); err != nil {
		return nil, 0, fmt.Errorf("sampler: %v: %w", err, ErrInvalidState)
	}

	probs := make([]float64, len(amps))
	var total float64
	for i, a := range amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
		total += probs[i]
	}
	if math.Abs(total-1) > tol {
		return nil, 0, fmt.Errorf("sampler: norm %.12g outside 1±%g: %w", total, tol, ErrInvalidState)
	}
	for i := range probs {
		probs[i] /= total
	}

	return probs, n, nil
}
