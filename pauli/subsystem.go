// SPDX-License-Identifier: MIT
package pauli

import "github.com/katalvlaran/qlinalg/cmat"

const opSubsystem = "SubsystemDecompose"

// InnerProduct pairs two matrices into a scalar. SubsystemDecompose calls
// it as inner(basisElement, target); implementations choose the convention
// (conjugate-linear in which argument, normalization, and so on).
type InnerProduct func(a, b *cmat.Dense) (complex128, error)

// HSInnerProduct is the canonical Hilbert-Schmidt pairing Tr(A†·B),
// conjugate-linear in the first argument. It is the InnerProduct under
// which Basis is orthonormal.
func HSInnerProduct(a, b *cmat.Dense) (complex128, error) {
	return cmat.HSInner(a, b)
}

// SubsystemDecompose expands a bipartite operator over per-factor bases.
//
// Given bases {eᵢ} for the first factor and {fⱼ} for the second, the
// coefficient matrix holds β[i][j] = inner(eᵢ⊗fⱼ, M). When both bases are
// orthonormal under inner, M = Σ β[i][j]·(eᵢ⊗fⱼ); for arbitrary bases the
// coefficients are whatever the supplied pairing yields — no orthonormality
// is assumed or checked.
//
// Inputs:
//   - m           : target operator of shape (r₁·r₂)×(c₁·c₂).
//   - basis1      : non-empty, all elements r₁×c₁.
//   - basis2      : non-empty, all elements r₂×c₂.
//   - inner       : non-nil pairing, called len(basis1)·len(basis2) times.
//
// Returns: coefficient rows indexed by basis1, columns by basis2.
//
// Errors: ErrEmptyBasis, ErrNilInnerProduct, ErrShapeMismatch, plus any
// error returned by inner itself (wrapped, fail-fast on the first).
func SubsystemDecompose(m *cmat.Dense, basis1, basis2 []*cmat.Dense, inner InnerProduct) ([][]complex128, error) {
	if err := cmat.ValidateNotNil(m); err != nil {
		return nil, pauliErrorf(opSubsystem, err)
	}
	if len(basis1) == 0 || len(basis2) == 0 {
		return nil, pauliErrorf(opSubsystem, ErrEmptyBasis)
	}
	if inner == nil {
		return nil, pauliErrorf(opSubsystem, ErrNilInnerProduct)
	}

	r1, c1, err := uniformShape(basis1)
	if err != nil {
		return nil, pauliErrorf(opSubsystem, err)
	}
	r2, c2, err := uniformShape(basis2)
	if err != nil {
		return nil, pauliErrorf(opSubsystem, err)
	}
	if m.Rows() != r1*r2 || m.Cols() != c1*c2 {
		return nil, pauliErrorf(opSubsystem, ErrShapeMismatch)
	}

	var (
		coeffs = make([][]complex128, len(basis1))
		prod   *cmat.Dense
		i, j   int
	)
	for i = 0; i < len(basis1); i++ {
		coeffs[i] = make([]complex128, len(basis2))
		for j = 0; j < len(basis2); j++ {
			prod, err = cmat.NKron(basis1[i], basis2[j])
			if err != nil {
				return nil, pauliErrorf(opSubsystem, err)
			}
			coeffs[i][j], err = inner(prod, m)
			if err != nil {
				return nil, pauliErrorf(opSubsystem, err)
			}
		}
	}
	return coeffs, nil
}

// uniformShape checks that every element of basis is non-nil and shares one
// shape, returning that shape.
func uniformShape(basis []*cmat.Dense) (rows, cols int, err error) {
	if err = cmat.ValidateNotNil(basis[0]); err != nil {
		return 0, 0, err
	}
	rows, cols = basis[0].Rows(), basis[0].Cols()
	for _, b := range basis[1:] {
		if err = cmat.ValidateNotNil(b); err != nil {
			return 0, 0, err
		}
		if b.Rows() != rows || b.Cols() != cols {
			return 0, 0, ErrShapeMismatch
		}
	}
	return rows, cols, nil
}
