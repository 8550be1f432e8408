// SPDX-License-Identifier: MIT

package sampler

import (
	"math"
	"math/rand"
	"time"
)

// DefaultTolerance is the allowed |Σp - 1| before sampling refuses a vector.
const DefaultTolerance = 1e-6

// Option mutates Options before a Sample call.
type Option func(*Options)

// Options holds the resolved sampling configuration.
type Options struct {
	rng *rand.Rand
	tol float64
}

// WithSeed draws from a source seeded with seed; equal seeds on equal
// inputs yield identical Counts.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. The caller keeps ownership; *rand.Rand is not safe
// for concurrent use, so share one only between sequential calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}

	return func(o *Options) {
		o.rng = r
	}
}

// WithTolerance overrides DefaultTolerance.
// Panics if tol is negative, NaN or infinite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("sampler: WithTolerance requires a finite tol >= 0")
	}

	return func(o *Options) {
		o.tol = tol
	}
}

// gatherOptions applies opts over the defaults. The time-seeded fallback
// source is created only when no option supplied one.
func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
