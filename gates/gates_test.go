package gates_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvqsim/gates"
	"github.com/katalvlaran/lvqsim/matrix"
	"github.com/stretchr/testify/require"
)

func TestCatalogueEntries(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	want := map[gates.Name]gates.Kernel{
		gates.H: {s, s, s, -s},
		gates.X: {0, 1, 1, 0},
		gates.Y: {0, -1i, 1i, 0},
		gates.Z: {1, 0, 0, -1},
	}
	for _, n := range gates.All() {
		k, err := gates.KernelOf(n)
		require.NoError(t, err)
		require.Equal(t, want[n], k, n.String())
	}
}

func TestEveryGateIsUnitary(t *testing.T) {
	for _, n := range gates.All() {
		k, err := gates.KernelOf(n)
		require.NoError(t, err)
		ok, err := k.IsUnitary(1e-12)
		require.NoError(t, err)
		require.True(t, ok, n.String())
	}
}

func TestKernelIsACopy(t *testing.T) {
	k, err := gates.KernelOf(gates.X)
	require.NoError(t, err)
	k[0] = 42

	again, err := gates.KernelOf(gates.X)
	require.NoError(t, err)
	require.Equal(t, complex128(0), again[0])

	m, err := gates.Matrix(gates.X)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 7))
	again, err = gates.KernelOf(gates.X)
	require.NoError(t, err)
	require.Equal(t, complex128(0), again[0])
}

func TestUnknownName(t *testing.T) {
	var zero gates.Name
	require.False(t, zero.Valid())
	_, err := gates.KernelOf(zero)
	require.ErrorIs(t, err, gates.ErrUnknownGate)
	_, err = gates.Matrix(gates.Name(99))
	require.ErrorIs(t, err, gates.ErrUnknownGate)
	require.Equal(t, "Name(99)", gates.Name(99).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want gates.Name
	}{
		{"H", gates.H},
		{" hadamard ", gates.H},
		{"x", gates.X},
		{"Pauli-X", gates.X},
		{"NOT", gates.X},
		{"y", gates.Y},
		{"PauliZ", gates.Z},
	}
	for _, tc := range tests {
		got, err := gates.Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "cx", "gates.H", "__import__('os')"} {
		_, err := gates.Parse(bad)
		require.ErrorIs(t, err, gates.ErrUnknownGate, bad)
	}
}

func TestIdentityKernel(t *testing.T) {
	d, err := gates.Identity().Dense()
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	ok, err := matrix.AllClose(d, id)
	require.NoError(t, err)
	require.True(t, ok)
}
