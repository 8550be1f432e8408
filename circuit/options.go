// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvqsim/matrix"
)

// Engine selects how single-qubit gates and CX are applied.
type Engine uint8

const (
	// EnginePaired updates amplitude pairs in place.
	EnginePaired Engine = iota + 1
	// EngineTensor multiplies by the full 2^N×2^N operator.
	EngineTensor
)

// Defaults.
const (
	DefaultEngine = EnginePaired

	// DefaultUnitarityEpsilon is the tolerance used by WithUnitarityCheck.
	DefaultUnitarityEpsilon = matrix.DefaultEpsilon
)

// String returns "paired", "tensor" or "Engine(<n>)".
func (e Engine) String() string {
	switch e {
	case EnginePaired:
		return "paired"
	case EngineTensor:
		return "tensor"
	default:
		return fmt.Sprintf("Engine(%d)", uint8(e))
	}
}

// ParseEngine accepts "paired" or "tensor" (case-insensitive).
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paired":
		return EnginePaired, nil
	case "tensor":
		return EngineTensor, nil
	}

	return 0, fmt.Errorf("circuit: unknown engine %q: %w", s, ErrInvalidArgument)
}

// Option customises a Circuit at construction.
type Option func(*Options)

// Options is the resolved construction configuration.
type Options struct {
	engine     Engine
	checkUnit  bool
	unitaryEps float64
	logger     *slog.Logger
	initial    int
}

// WithEngine selects the gate engine. Panics on an unknown Engine.
func WithEngine(e Engine) Option {
	if e != EnginePaired && e != EngineTensor {
		panic(fmt.Sprintf("circuit: WithEngine(%s)", e))
	}

	return func(o *Options) { o.engine = e }
}

// WithUnitarityCheck makes ApplyUnitary reject operators for which
// U†U differs from I by more than DefaultUnitarityEpsilon.
func WithUnitarityCheck() Option {
	return func(o *Options) { o.checkUnit = true }
}

// WithLogger routes per-operation Debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("circuit: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithInitialBasis starts (and resets) the register in basis state |index⟩
// instead of |0…0⟩. New returns ErrOutOfRange if index ≥ 2^N.
// Panics on a negative index.
func WithInitialBasis(index int) Option {
	if index < 0 {
		panic("circuit: WithInitialBasis(negative)")
	}

	return func(o *Options) { o.initial = index }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		engine:     DefaultEngine,
		unitaryEps: DefaultUnitarityEpsilon,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
