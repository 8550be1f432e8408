package circuit_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/cmplx"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvqsim/circuit"
	"github.com/katalvlaran/lvqsim/gates"
	"github.com/katalvlaran/lvqsim/matrix"
	"github.com/katalvlaran/lvqsim/sampler"
	"github.com/katalvlaran/lvqsim/state"
	"github.com/stretchr/testify/require"
)

var engines = []circuit.Engine{circuit.EnginePaired, circuit.EngineTensor}

func mustCircuit(t *testing.T, n int, opts ...circuit.Option) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(n, opts...)
	require.NoError(t, err)

	return c
}

func requireAmpsClose(t *testing.T, want, got []complex128, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.LessOrEqualf(t, cmplx.Abs(want[i]-got[i]), eps, "index %d: want %v got %v", i, want[i], got[i])
	}
}

func TestNew_ZeroState(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c := mustCircuit(t, n)
		require.Equal(t, n, c.NumQubits())
		amps := c.Amplitudes()
		require.Len(t, amps, 1<<n)
		require.Equal(t, complex128(1), amps[0])
		for _, a := range amps[1:] {
			require.Equal(t, complex128(0), a)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := circuit.New(0)
	require.ErrorIs(t, err, circuit.ErrInvalidArgument)
	require.ErrorIs(t, err, state.ErrInvalidArgument)

	_, err = circuit.New(-2)
	require.ErrorIs(t, err, circuit.ErrInvalidArgument)

	_, err = circuit.New(state.MaxQubits + 1)
	require.ErrorIs(t, err, state.ErrTooManyQubits)

	_, err = circuit.New(2, circuit.WithInitialBasis(4))
	require.ErrorIs(t, err, circuit.ErrOutOfRange)
}

func TestApplyGate_BasisActions(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	cases := []struct {
		name    string
		gate    gates.Name
		initial int
		want    []complex128
	}{
		{"H|0>", gates.H, 0, []complex128{s, s}},
		{"H|1>", gates.H, 1, []complex128{s, -s}},
		{"X|0>", gates.X, 0, []complex128{0, 1}},
		{"Y|0>", gates.Y, 0, []complex128{0, 1i}},
		{"Y|1>", gates.Y, 1, []complex128{-1i, 0}},
		{"Z|1>", gates.Z, 1, []complex128{0, -1}},
	}
	for _, e := range engines {
		for _, tc := range cases {
			t.Run(e.String()+"/"+tc.name, func(t *testing.T) {
				c := mustCircuit(t, 1, circuit.WithEngine(e), circuit.WithInitialBasis(tc.initial))
				require.NoError(t, c.ApplyGate(tc.gate, 0))
				requireAmpsClose(t, tc.want, c.Amplitudes(), 1e-15)
			})
		}
	}
}

func TestApplyGate_BigEndianQubitOrder(t *testing.T) {
	for _, e := range engines {
		c := mustCircuit(t, 3, circuit.WithEngine(e))
		require.NoError(t, c.ApplyGate(gates.X, 0))
		amps := c.Amplitudes()
		require.Equal(t, complex128(1), amps[4], "X on qubit 0 must reach |100>")

		require.NoError(t, c.ApplyGate(gates.X, 2))
		amps = c.Amplitudes()
		require.Equal(t, complex128(1), amps[5], "then X on qubit 2 must reach |101>")
	}
}

func TestApplyGate_XIsInvolution(t *testing.T) {
	for _, e := range engines {
		for n := 1; n <= 4; n++ {
			for q := 0; q < n; q++ {
				c := mustCircuit(t, n, circuit.WithEngine(e))
				require.NoError(t, c.ApplyGate(gates.H, q))
				before := c.Amplitudes()
				require.NoError(t, c.ApplyGate(gates.X, q))
				require.NoError(t, c.ApplyGate(gates.X, q))
				requireAmpsClose(t, before, c.Amplitudes(), 1e-15)
			}
		}
	}
}

func TestBellState(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	for _, e := range engines {
		c := mustCircuit(t, 2, circuit.WithEngine(e))
		require.NoError(t, c.ApplyGate(gates.H, 0))
		require.NoError(t, c.ApplyCX(0, 1))
		requireAmpsClose(t, []complex128{s, 0, 0, s}, c.Amplitudes(), 1e-12)
	}
}

func TestApplyCX_FlipsTargetWhenControlSet(t *testing.T) {
	for _, e := range engines {
		// |101> with control 0 and target 2 becomes |100>
		c := mustCircuit(t, 3, circuit.WithEngine(e), circuit.WithInitialBasis(5))
		require.NoError(t, c.ApplyCX(0, 2))
		amps := c.Amplitudes()
		require.Equal(t, complex128(1), amps[4])

		// control clear: |001> is untouched by CX(0,2)
		c = mustCircuit(t, 3, circuit.WithEngine(e), circuit.WithInitialBasis(1))
		require.NoError(t, c.ApplyCX(0, 2))
		require.Equal(t, complex128(1), c.Amplitudes()[1])

		// reversed roles: control 2, target 0 on |001> gives |101>
		require.NoError(t, c.ApplyCX(2, 0))
		require.Equal(t, complex128(1), c.Amplitudes()[5])
	}
}

func TestFailedCallsLeaveStateUnchanged(t *testing.T) {
	for _, e := range engines {
		t.Run(e.String(), func(t *testing.T) {
			c := mustCircuit(t, 3, circuit.WithEngine(e), circuit.WithUnitarityCheck())
			require.NoError(t, c.ApplyGate(gates.H, 0))
			require.NoError(t, c.ApplyGate(gates.Y, 2))
			snapshot := c.Amplitudes()

			require.ErrorIs(t, c.ApplyGate(gates.H, -1), circuit.ErrOutOfRange)
			require.ErrorIs(t, c.ApplyGate(gates.X, 3), circuit.ErrOutOfRange)
			require.ErrorIs(t, c.ApplyGate(gates.Name(0), 0), gates.ErrUnknownGate)
			require.ErrorIs(t, c.ApplyGate(gates.Name(42), 1), gates.ErrUnknownGate)
			require.ErrorIs(t, c.ApplyCX(0, 0), circuit.ErrInvalidOperands)
			require.ErrorIs(t, c.ApplyCX(0, 3), circuit.ErrOutOfRange)
			require.ErrorIs(t, c.ApplyCX(-1, 1), circuit.ErrOutOfRange)
			// range is checked before equality
			require.ErrorIs(t, c.ApplyCX(7, 7), circuit.ErrOutOfRange)
			require.ErrorIs(t, c.ApplyUnitary([4]complex128{cmplx.NaN(), 0, 0, 1}, 0), matrix.ErrNaNInf)
			require.ErrorIs(t, c.ApplyUnitary([4]complex128{1, 1, 0, 1}, 0), circuit.ErrNotUnitary)

			require.Equal(t, snapshot, c.Amplitudes())
		})
	}
}

func TestNormPreservedUnderRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	all := gates.All()
	for _, e := range engines {
		for n := 1; n <= 5; n++ {
			c := mustCircuit(t, n, circuit.WithEngine(e))
			for step := 0; step < 60; step++ {
				if n > 1 && rng.Intn(5) == 0 {
					ctl := rng.Intn(n)
					tgt := (ctl + 1 + rng.Intn(n-1)) % n
					require.NoError(t, c.ApplyCX(ctl, tgt))
				} else {
					require.NoError(t, c.ApplyGate(all[rng.Intn(len(all))], rng.Intn(n)))
				}
				require.InDelta(t, 1.0, c.State().Norm(), 1e-9)
			}
		}
	}
}

func TestEnginesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	all := gates.All()
	for n := 1; n <= 5; n++ {
		initial := rng.Intn(1 << n)
		paired := mustCircuit(t, n, circuit.WithInitialBasis(initial))
		tensor := mustCircuit(t, n, circuit.WithEngine(circuit.EngineTensor), circuit.WithInitialBasis(initial))
		require.Equal(t, circuit.EnginePaired, paired.Engine())
		require.Equal(t, circuit.EngineTensor, tensor.Engine())

		for step := 0; step < 40; step++ {
			if n > 1 && step%4 == 3 {
				ctl := rng.Intn(n)
				tgt := (ctl + 1 + rng.Intn(n-1)) % n
				require.NoError(t, paired.ApplyCX(ctl, tgt))
				require.NoError(t, tensor.ApplyCX(ctl, tgt))
			} else {
				g, q := all[rng.Intn(len(all))], rng.Intn(n)
				require.NoError(t, paired.ApplyGate(g, q))
				require.NoError(t, tensor.ApplyGate(g, q))
			}
			require.Equal(t, tensor.Amplitudes(), paired.Amplitudes(), "step %d on %d qubits", step, n)
		}
	}
}

func TestApplyUnitary(t *testing.T) {
	// phase gate S maps |1> to i|1>
	c := mustCircuit(t, 2, circuit.WithInitialBasis(1), circuit.WithUnitarityCheck())
	require.NoError(t, c.ApplyUnitary([4]complex128{1, 0, 0, 1i}, 1))
	require.Equal(t, 1i, c.Amplitudes()[1])

	// without the check a scaling operator is accepted as given
	loose := mustCircuit(t, 1)
	require.NoError(t, loose.ApplyUnitary([4]complex128{2, 0, 0, 2}, 0))
	require.InDelta(t, 4.0, loose.State().Norm(), 0)

	require.ErrorIs(t, loose.ApplyUnitary([4]complex128{1, 0, 0, 1}, 1), circuit.ErrOutOfRange)
}

func TestMeasure_DoesNotCollapse(t *testing.T) {
	c := mustCircuit(t, 2)
	require.NoError(t, c.ApplyGate(gates.H, 0))
	require.NoError(t, c.ApplyCX(0, 1))
	before := c.Amplitudes()

	counts, err := c.Measure(100_000, sampler.WithSeed(11))
	require.NoError(t, err)
	require.InDelta(t, 0.5, counts.Frequency("00"), 0.02)
	require.InDelta(t, 0.5, counts.Frequency("11"), 0.02)
	require.Zero(t, counts["01"])
	require.Zero(t, counts["10"])
	require.Equal(t, before, c.Amplitudes())

	_, err = c.Measure(0)
	require.ErrorIs(t, err, sampler.ErrInvalidArgument)
}

func TestMeasure_RejectsUnnormalisedState(t *testing.T) {
	c := mustCircuit(t, 1)
	require.NoError(t, c.ApplyUnitary([4]complex128{3, 0, 0, 3}, 0))
	_, err := c.Measure(10, sampler.WithSeed(1))
	require.ErrorIs(t, err, sampler.ErrInvalidState)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	c := mustCircuit(t, 1)
	amps := c.Amplitudes()
	st := c.State()
	require.NoError(t, c.ApplyGate(gates.X, 0))

	require.Equal(t, complex128(1), amps[0])
	a0, err := st.At(0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), a0)
}

func TestReset(t *testing.T) {
	c := mustCircuit(t, 2, circuit.WithInitialBasis(2))
	require.NoError(t, c.ApplyGate(gates.H, 1))
	c.Reset()
	require.Equal(t, []complex128{0, 0, 1, 0}, c.Amplitudes())
	require.Equal(t, "(1.0000+0.0000i)|10⟩", c.String())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := mustCircuit(t, 2, circuit.WithLogger(logger))
	require.NoError(t, c.ApplyGate(gates.H, 0))
	require.NoError(t, c.ApplyCX(0, 1))

	out := buf.String()
	require.Contains(t, out, `"msg":"gate applied"`)
	require.Contains(t, out, `"gate":"H"`)
	require.Contains(t, out, `"msg":"cx applied"`)
	require.Contains(t, out, `"engine":"paired"`)
	require.Equal(t, 3, strings.Count(out, "\n"))
}

func TestOptionsAndEngineParsing(t *testing.T) {
	require.Panics(t, func() { circuit.WithEngine(circuit.Engine(0)) })
	require.Panics(t, func() { circuit.WithLogger(nil) })
	require.Panics(t, func() { circuit.WithInitialBasis(-1) })

	e, err := circuit.ParseEngine(" Tensor ")
	require.NoError(t, err)
	require.Equal(t, circuit.EngineTensor, e)
	e, err = circuit.ParseEngine("paired")
	require.NoError(t, err)
	require.Equal(t, circuit.EnginePaired, e)
	_, err = circuit.ParseEngine("gpu")
	require.ErrorIs(t, err, circuit.ErrInvalidArgument)
	require.Equal(t, "Engine(9)", circuit.Engine(9).String())
}
