// Package matrix offers dense complex matrices for small linear-algebra
// kernels.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with bounds-checked At/Set and a
//     finite-value numeric policy.
//   - Add, Kron (Kronecker/tensor product), Mul, MatVec and Adjoint kernels with
//     fast paths on *Dense and generic fallbacks on the Matrix interface.
//   - IsUnitary and AllClose structural checks governed by an epsilon option.
//
// Dense storage costs O(r*c) memory, so the tensor kernels are meant for
// small operators: a Kronecker product of n 2×2 factors has 4^n entries.
//
// See the examples in this package for usage patterns.
package matrix
