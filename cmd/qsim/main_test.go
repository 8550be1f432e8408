package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRun_BellText(t *testing.T) {
	out, _, err := execute(t, "run", "--qubits", "2", "--op", "H:0", "--op", "cx:0:1", "--shots", "500", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Gate sequence:\n  H q0\n  CX q0,q1\n")
	require.Contains(t, out, "(0.7071+0.0000i)|00⟩ + (0.7071+0.0000i)|11⟩")
	require.Contains(t, out, "Measurement (500 shots):")
	require.NotContains(t, out, "  01  ")
	require.NotContains(t, out, "  10  ")
}

func TestRun_JSONIsReproducible(t *testing.T) {
	args := []string{"run", "-n", "2", "--op", "H:0", "--op", "CX:0:1", "--shots", "1000", "--seed", "9", "--json", "--engine", "tensor"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	require.Equal(t, first, second)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(first), &rep))
	require.Equal(t, 2, rep.Qubits)
	require.Equal(t, []string{"H q0", "CX q0,q1"}, rep.Ops)
	require.Equal(t, 1000, rep.Counts.Total())
	require.ElementsMatch(t, []string{"00", "11"}, rep.Counts.Keys())
	require.InDelta(t, 0.5, rep.Probabilities["11"], 1e-12)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "--qubits", "6")
	require.ErrorIs(t, err, errTooWide)

	_, _, err = execute(t, "run", "--op", "T:0")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--qubits", "2", "--op", "CX:1:1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "control and target must differ")

	_, _, err = execute(t, "run", "--engine", "gpu")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--shots", "0")
	require.Error(t, err)
}

func TestRun_ConfigFileRaisesCap(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "qsim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_qubits: 8\nshots: 16\n"), 0o600))

	out, _, err := execute(t, "--config", cfgPath, "run", "--qubits", "7", "--op", "X:6", "--seed", "1")
	require.NoError(t, err)
	require.Contains(t, out, "|0000001⟩")
	require.Contains(t, out, "Measurement (16 shots):\n  0000001  16\n")
}

func TestRun_Programs(t *testing.T) {
	dir := t.TempDir()
	bell := filepath.Join(dir, "bell.yaml")
	ghz := filepath.Join(dir, "ghz.yaml")
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(bell, []byte(`
name: bell
qubits: 2
seed: 1
ops:
  - {gate: H, target: 0}
  - {gate: CX, control: 0, target: 1}
`), 0o600))
	require.NoError(t, os.WriteFile(ghz, []byte(`
name: ghz
qubits: 3
shots: 64
seed: 2
ops:
  - {gate: H, target: 0}
  - {gate: CX, control: 0, target: 1}
  - {gate: CX, control: 1, target: 2}
`), 0o600))
	require.NoError(t, os.WriteFile(broken, []byte(`
name: broken
qubits: 1
ops:
  - {gate: X, target: 3}
`), 0o600))

	out, _, err := execute(t, "run", "--program", bell, "--program", ghz, "--json")
	require.NoError(t, err)
	var reps []report
	require.NoError(t, json.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 2)
	require.Equal(t, "bell", reps[0].Name)
	require.Equal(t, 1024, reps[0].Counts.Total())
	require.Equal(t, "ghz", reps[1].Name)
	require.Equal(t, 64, reps[1].Counts.Total())
	require.ElementsMatch(t, []string{"000", "111"}, reps[1].Counts.Keys())

	// reports follow file order even when two programs share a name
	flip := filepath.Join(dir, "flip.yaml")
	spread := filepath.Join(dir, "spread.yaml")
	require.NoError(t, os.WriteFile(flip, []byte(`
name: same
qubits: 1
seed: 4
ops:
  - {gate: X, target: 0}
`), 0o600))
	require.NoError(t, os.WriteFile(spread, []byte(`
name: same
qubits: 1
seed: 4
ops:
  - {gate: Z, target: 0}
  - {gate: hadamard, target: 0}
`), 0o600))
	out, _, err = execute(t, "run", "--program", flip, "--program", spread, "--json")
	require.NoError(t, err)
	reps = nil
	require.NoError(t, json.Unmarshal([]byte(out), &reps))
	require.Len(t, reps, 2)
	require.Equal(t, []string{"X q0"}, reps[0].Ops)
	require.Equal(t, 1024, reps[0].Counts["1"])
	require.Equal(t, []string{"Z q0", "H q0"}, reps[1].Ops)
	require.ElementsMatch(t, []string{"0", "1"}, reps[1].Counts.Keys())

	out, _, err = execute(t, "run", "--program", bell, "--program", broken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 programs failed")
	require.Contains(t, out, "== bell ==")
	require.Contains(t, out, "== broken ==\nerror:")
}

func TestRun_EnvMaxQubitsWithNarrowFlag(t *testing.T) {
	t.Setenv("QSIM_MAX_QUBITS", "1")

	out, _, err := execute(t, "run", "--qubits", "1", "--op", "X:0", "--shots", "8", "--seed", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Measurement (8 shots):\n  1  8\n")

	// the default width of 2 still exceeds the cap
	_, _, err = execute(t, "run", "--op", "X:0")
	require.ErrorIs(t, err, errTooWide)
}

func TestGatesAndVersion(t *testing.T) {
	out, _, err := execute(t, "gates")
	require.NoError(t, err)
	for _, g := range []string{"H\n", "X\n", "Y\n", "Z\n", "CX\n"} {
		require.Contains(t, out, g)
	}
	require.Contains(t, out, "[(0+0i), (0-1i)]")

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "qsim "))
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, "--log-level", "debug", "--log-format", "json", "run", "--op", "H:1", "--seed", "1")
	require.NoError(t, err)
	require.NotContains(t, out, `"msg"`)
	require.Contains(t, errOut, `"msg":"gate applied"`)
}
