// SPDX-License-Identifier: MIT
// Package cmat: tensor-structure combinators — Kronecker products and
// direct sums. These are the building blocks for multi-qubit operators.

package cmat

// kron2 computes the Kronecker product A ⊗ B for two non-nil operands.
// Result shape is (a.r*b.r × a.c*b.c); entry ((i1*b.r+i2),(j1*b.c+j2)) is
// A[i1,j1]*B[i2,j2]. Internal kernel: validation happens in NKron.
// Complexity: O(a.r*a.c*b.r*b.c).
func kron2(a, b *Dense) (*Dense, error) {
	res, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, err
	}

	var (
		i1, j1, i2, j2 int
		av             complex128
		baseRow, base  int
	)
	for i1 = 0; i1 < a.r; i1++ {
		for j1 = 0; j1 < a.c; j1++ {
			av = a.data[i1*a.c+j1]
			if av == 0 {
				continue // zero block, skip entirely
			}
			for i2 = 0; i2 < b.r; i2++ {
				// flat offset of block row (i1*b.r+i2), block col j1*b.c
				baseRow = (i1*b.r + i2) * res.c
				base = baseRow + j1*b.c
				for j2 = 0; j2 < b.c; j2++ {
					res.data[base+j2] = av * b.data[i2*b.c+j2]
				}
			}
		}
	}

	return res, nil
}

// NKron left-folds the Kronecker product across its operands:
//
//	NKron(M1, M2, M3, ...) = ((M1 ⊗ M2) ⊗ M3) ⊗ ...
//
// The fold order is fixed (left-to-right) and is part of the contract:
// Kronecker product is associative but not commutative in index layout,
// so callers must treat the order as significant.
//
// A single operand returns a defensive clone. At least one operand is
// required; the canonical multi-operand use passes two or more.
//
// Errors:
//   - ErrTooFewOperands: no operands.
//   - ErrNilMatrix: any nil operand.
//
// Determinism: fixed fold order, fixed loop orders within each product.
// Complexity: O(size of the final result) per fold step; the last step
// dominates, so overall O(Π rowsᵢ · Π colsᵢ).
func NKron(ms ...*Dense) (*Dense, error) {
	// Validate operand count and non-nil operands up front
	if len(ms) == 0 {
		return nil, cmatErrorf(opNKron, ErrTooFewOperands)
	}
	for i := 0; i < len(ms); i++ {
		if ms[i] == nil {
			return nil, cmatErrorf(opNKron, ErrNilMatrix)
		}
	}

	// Fold left-to-right
	acc := ms[0].Clone()
	var err error
	for i := 1; i < len(ms); i++ {
		acc, err = kron2(acc, ms[i])
		if err != nil {
			return nil, cmatErrorf(opNKron, err)
		}
	}

	return acc, nil
}

// DirectSum returns the block-diagonal matrix
//
//	[ A 0 ]
//	[ 0 B ]
//
// of shape (a.r+b.r × a.c+b.c). No shape constraint holds between A and B:
// rectangular blocks are allowed, and the off-diagonal blocks are zero.
//
// Errors: ErrNilMatrix. Complexity: O((a.r+b.r)*(a.c+b.c)).
func DirectSum(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, cmatErrorf(opDirectSum, ErrNilMatrix)
	}

	res, err := NewDense(a.r+b.r, a.c+b.c)
	if err != nil {
		return nil, cmatErrorf(opDirectSum, err)
	}

	// Top-left block: A
	var i int
	for i = 0; i < a.r; i++ {
		copy(res.data[i*res.c:i*res.c+a.c], a.data[i*a.c:(i+1)*a.c])
	}
	// Bottom-right block: B (row offset a.r, column offset a.c)
	for i = 0; i < b.r; i++ {
		copy(res.data[(a.r+i)*res.c+a.c:(a.r+i)*res.c+a.c+b.c], b.data[i*b.c:(i+1)*b.c])
	}

	return res, nil
}
