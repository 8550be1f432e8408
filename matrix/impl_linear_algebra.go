// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise sum, matrix multiplication, Kronecker product, matrix-vector product, conjugate
// transpose and structural checks. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path working on the flat buffer and a
//     generic fallback through At/Set with identical loop order, so both
//     paths produce bit-identical results.
//   - Inputs are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opKron      = "Kron"
	opMatVec    = "MatVec"
	opAdjoint   = "Adjoint"
	opIsUnitary = "IsUnitary"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns the element-wise sum a + b.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: fast path over both flat buffers when both are *Dense.
//   - Stage 3: generic fallback via At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range res.data {
			res.data[idx] = da.data[idx] + db.data[idx]
		}

		return res, nil
	}

	var i, j int
	var av, bv complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Mul computes the matrix product a·b.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: fast path for *Dense×*Dense with i→k→j loop order.
//   - Stage 3: generic fallback via At/Set in the same order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik complex128
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				aik = da.data[i*inner+k]
				if aik == 0 {
					continue // zero row contributions are common in gate matrices
				}
				for j = 0; j < cols; j++ {
					res.data[i*cols+j] += aik * db.data[k*cols+j]
				}
			}
		}

		return res, nil
	}

	var bkj complex128
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if aik == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*cols+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// Kron computes the Kronecker (tensor) product a⊗b.
// The result has shape (ra*rb)×(ca*cb) with
// (a⊗b)[ia*rb+ib, ja*cb+jb] = a[ia,ja]·b[ib,jb].
//
// Implementation:
//   - Stage 1: validate both operands are non-nil.
//   - Stage 2: allocate the result; fast path on *Dense operands.
//   - Stage 3: generic fallback via At with the same ia→ja→ib→jb order.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space O(ra*ca*rb*cb).
//
// Notes:
//   - Chaining n 2×2 factors yields a 2^n×2^n operator (4^n entries);
//     keep n small.
func Kron(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	ra, ca := a.Rows(), a.Cols()
	rb, cb := b.Rows(), b.Cols()
	cols := ca * cb
	res, err := NewDense(ra*rb, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	var ia, ja, ib, jb, rowBase int
	var av, bv complex128
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for ia = 0; ia < ra; ia++ {
			for ja = 0; ja < ca; ja++ {
				av = da.data[ia*ca+ja]
				if av == 0 {
					continue // whole block stays zero
				}
				for ib = 0; ib < rb; ib++ {
					rowBase = (ia*rb+ib)*cols + ja*cb
					for jb = 0; jb < cb; jb++ {
						res.data[rowBase+jb] = av * db.data[ib*cb+jb]
					}
				}
			}
		}

		return res, nil
	}

	for ia = 0; ia < ra; ia++ {
		for ja = 0; ja < ca; ja++ {
			if av, err = a.At(ia, ja); err != nil {
				return nil, matrixErrorf(opKron, err)
			}
			if av == 0 {
				continue
			}
			for ib = 0; ib < rb; ib++ {
				rowBase = (ia*rb+ib)*cols + ja*cb
				for jb = 0; jb < cb; jb++ {
					if bv, err = b.At(ib, jb); err != nil {
						return nil, matrixErrorf(opKron, err)
					}
					res.data[rowBase+jb] = av * bv
				}
			}
		}
	}

	return res, nil
}

// KronAll folds Kron over factors left to right: f0⊗f1⊗…⊗fn-1.
// A single factor is returned as a clone.
//
// Errors:
//   - ErrDimensionMismatch when no factors are given; ErrNilMatrix for any
//     nil factor.
//
// Complexity:
//   - Dominated by the last product: O(Π rows·cols).
func KronAll(factors ...Matrix) (Matrix, error) {
	if len(factors) == 0 {
		return nil, matrixErrorf(opKron, ErrDimensionMismatch)
	}
	if err := ValidateNotNil(factors[0]); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	acc := factors[0].Clone()
	var err error
	for _, f := range factors[1:] {
		if acc, err = Kron(acc, f); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing and skips
// zero matrix entries (tensor operators are mostly zero).
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]complex128, rows)

	var i, j, base int
	var acc, mv complex128
	if d, ok := m.(*Dense); ok {
		for i = 0; i < d.r; i++ {
			acc = 0
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if mv = d.data[base+j]; mv != 0 {
					acc += complex128(mv * x[j]) // no fused multiply-add
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var err error
	for i = 0; i < rows; i++ {
		acc = 0
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if mv != 0 {
				acc += complex128(mv * x[j]) // no fused multiply-add
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Adjoint returns the conjugate transpose m† (shape c×r).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Adjoint(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = cmplx.Conj(d.data[i*cols+j])
			}
		}

		return res, nil
	}

	var v complex128
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAdjoint, err)
			}
			res.data[j*rows+i] = cmplx.Conj(v)
		}
	}

	return res, nil
}

// IsUnitary reports whether U†U equals the identity within eps
// (WithEpsilon, default DefaultEpsilon), compared entry-wise by modulus.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	o := gatherOptions(opts...)

	adj, err := Adjoint(m)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	prod, err := Mul(adj, m)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	n := m.Rows()
	p := prod.(*Dense)

	var i, j int
	var want complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if cmplx.Abs(p.data[i*n+j]-want) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllClose reports whether a and b have equal shapes and every pair of
// entries differs by at most eps in modulus.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	var i, j int
	var av, bv complex128
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if cmplx.Abs(av-bv) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}
