// SPDX-License-Identifier: MIT
package pauli

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlinalg/cmat"
)

// Operation tags used in wrapped error messages.
const (
	opBasis     = "Basis"
	opDecompose = "Decompose"
)

// pauliErrorf wraps err under a "pauli.<Op>:" prefix for errors.Is chains.
func pauliErrorf(tag string, err error) error {
	return fmt.Errorf("pauli.%s: %w", tag, err)
}

// singleQubit returns the four 2×2 Pauli matrices in index order I, X, Y, Z.
func singleQubit() [4]*cmat.Dense {
	id, _ := cmat.NewDenseFromRows([][]complex128{{1, 0}, {0, 1}})
	x, _ := cmat.NewDenseFromRows([][]complex128{{0, 1}, {1, 0}})
	y, _ := cmat.NewDenseFromRows([][]complex128{{0, -1i}, {1i, 0}})
	z, _ := cmat.NewDenseFromRows([][]complex128{{1, 0}, {0, -1}})
	return [4]*cmat.Dense{id, x, y, z}
}

// Basis returns the 4ⁿ normalized Pauli strings on n qubits.
//
// Element k is the Kronecker product whose factor at tensor position p is
// the single-qubit Pauli selected by the p-th base-4 digit of k (leftmost
// position most significant, digit order I=0, X=1, Y=2, Z=3), scaled by
// 1/√(2ⁿ). Under ⟨A,B⟩ = Tr(A†·B) the returned family is orthonormal.
//
// Inputs:
//   - n : qubit count, n ≥ 0. n = 0 yields the single 1×1 identity.
//
// Returns: slice of 4ⁿ matrices of size 2ⁿ×2ⁿ, or ErrBadQubitCount.
//
// Determinism: the order is fixed by the digit expansion; two calls with
// equal n return element-wise equal slices.
//
// Complexity: O(16ⁿ) time and memory.
func Basis(n int) ([]*cmat.Dense, error) {
	if n < 0 {
		return nil, pauliErrorf(opBasis, ErrBadQubitCount)
	}
	if n == 0 {
		one, err := cmat.Identity(1)
		if err != nil {
			return nil, pauliErrorf(opBasis, err)
		}
		return []*cmat.Dense{one}, nil
	}

	var (
		single  = singleQubit()
		count   = 1
		scale   = complex(1/math.Sqrt(float64(cmat.QubitDim(n))), 0)
		factors = make([]*cmat.Dense, n)
		out     []*cmat.Dense
		k, p    int
		rem     int
		err     error
	)
	for p = 0; p < n; p++ {
		count *= 4
	}
	out = make([]*cmat.Dense, 0, count)

	for k = 0; k < count; k++ {
		// Base-4 digits of k, leftmost tensor position first.
		rem = k
		for p = n - 1; p >= 0; p-- {
			factors[p] = single[rem%4]
			rem /= 4
		}
		prod, kerr := cmat.NKron(factors...)
		if kerr != nil {
			return nil, pauliErrorf(opBasis, kerr)
		}
		prod, err = cmat.Scale(prod, scale)
		if err != nil {
			return nil, pauliErrorf(opBasis, err)
		}
		out = append(out, prod)
	}
	return out, nil
}

// Decompose expands a square power-of-two matrix over the normalized Pauli
// basis of the matching qubit count.
//
// The returned coefficients follow Basis order: c_k = ⟨P_k, M⟩ under the
// Hilbert-Schmidt pairing, and M = Σ c_k·P_k exactly (up to floating-point
// rounding) because the basis is orthonormal and complete.
//
// Errors: ErrBadDimension when the side length is not a power of two;
// shape errors from cmat for nil or non-square input.
func Decompose(m *cmat.Dense) ([]complex128, error) {
	if err := cmat.ValidateSquare(m); err != nil {
		return nil, pauliErrorf(opDecompose, err)
	}
	n, ok := cmat.QubitCountFor(m.Rows())
	if !ok {
		return nil, pauliErrorf(opDecompose, ErrBadDimension)
	}

	basis, err := Basis(n)
	if err != nil {
		return nil, pauliErrorf(opDecompose, err)
	}

	var (
		coeffs = make([]complex128, len(basis))
		k      int
		c      complex128
	)
	for k = 0; k < len(basis); k++ {
		c, err = cmat.HSInner(basis[k], m)
		if err != nil {
			return nil, pauliErrorf(opDecompose, err)
		}
		coeffs[k] = c
	}
	return coeffs, nil
}
