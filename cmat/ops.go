// SPDX-License-Identifier: MIT
// Package cmat: element-wise and operator-level kernels on Dense matrices.
// All functions perform strict fail-fast validation via the central
// validators and return sentinel errors wrapped with an operation tag.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across qlinalg.
//   - Keep loop orders fixed and results freshly allocated (no aliasing).

package cmat

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opDagger    = "Dagger"
	opTranspose = "Transpose"
	opConj      = "Conj"
	opTrace     = "Trace"
	opHSInner   = "HSInner"
	opNKron     = "NKron"
	opDirectSum = "DirectSum"
	opAbsNorm   = "AbsNorm"
)

// cmatErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only with err != nil.
func cmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation.
// Complexity: O(r*c) time and space.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	// Validate operands non-nil, then shapes match
	if a == nil || b == nil {
		return nil, cmatErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, cmatErrorf(opTag, err)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, cmatErrorf(opTag, err)
	}

	// Single flat loop, deterministic 0..n-1
	n := len(a.data)
	for idx := 0; idx < n; idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A, B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Row-major i→k→j triple loop with zero-skip on A[i,k].
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→k→j loop order; stable accumulation.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, cmatErrorf(opMul, err)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, cmatErrorf(opMul, err)
	}

	// Row-major multiplication into res.data
	// a.data layout: i*a.c + k; b.data layout: k*b.c + j
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 complex128
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated; alpha may be any complex scalar.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatErrorf(opScale, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, cmatErrorf(opScale, err)
	}
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Dagger returns the conjugate transpose M†: shape (c×r) from (r×c).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: data[i*c + j] → res.data[j*r + i], conjugated.
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Dagger(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatErrorf(opDagger, err)
	}

	res, err := NewDense(m.c, m.r) // dims flipped
	if err != nil {
		return nil, cmatErrorf(opDagger, err)
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[baseSrc+j])
		}
	}

	return res, nil
}

// Transpose returns Mᵀ without conjugation. Shape (c×r) from (r×c).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatErrorf(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, cmatErrorf(opTranspose, err)
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Conj returns the entrywise complex conjugate of m (same shape).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Conj(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatErrorf(opConj, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, cmatErrorf(opConj, err)
	}
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		res.data[idx] = cmplx.Conj(m.data[idx])
	}

	return res, nil
}

// Trace returns Σ m[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(r).
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, cmatErrorf(opTrace, err)
	}

	var tr complex128
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// HSInner computes the Hilbert–Schmidt inner product ⟨A,B⟩ = Tr(A†·B).
// Conjugate-linear in the first argument, linear in the second — the
// convention under which the Pauli basis is orthonormal.
//
// The sum Σᵢⱼ conj(A[i,j])·B[i,j] is used directly instead of materializing
// A†·B, saving the O(r·c²) product.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func HSInner(a, b *Dense) (complex128, error) {
	if a == nil || b == nil {
		return 0, cmatErrorf(opHSInner, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, cmatErrorf(opHSInner, err)
	}

	var acc complex128
	n := len(a.data)
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		acc += cmplx.Conj(a.data[idx]) * b.data[idx]
	}

	return acc, nil
}
