// SPDX-License-Identifier: MIT

package batch

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvqsim/circuit"
)

// Option customises Run.
type Option func(*options)

type options struct {
	workers     int
	logger      *slog.Logger
	circuitOpts []circuit.Option
}

// WithWorkers caps the number of jobs evaluated at once.
// Default runtime.GOMAXPROCS(0). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers requires n >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger receives one Info record per finished job. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithCircuitOptions is passed to circuit.New for every job
// (engine choice, unitarity check, ...).
func WithCircuitOptions(opts ...circuit.Option) Option {
	return func(o *options) { o.circuitOpts = append(o.circuitOpts, opts...) }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
