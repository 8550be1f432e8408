package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvqsim/matrix"
)

// ExampleKron builds the two-qubit operator X⊗I and applies it to |00⟩.
func ExampleKron() {
	x, _ := matrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
	id, _ := matrix.NewIdentity(2)

	op, _ := matrix.Kron(x, id)
	out, _ := matrix.MatVec(op, []complex128{1, 0, 0, 0})
	fmt.Println(op.Rows(), op.Cols())
	fmt.Println(out)

	// Output:
	// 4 4
	// [(0+0i) (0+0i) (1+0i) (0+0i)]
}

// ExampleIsUnitary checks the Pauli-Y matrix.
func ExampleIsUnitary() {
	y, _ := matrix.NewFromRows([][]complex128{{0, -1i}, {1i, 0}})
	ok, _ := matrix.IsUnitary(y)
	fmt.Println(ok)

	// Output:
	// true
}
