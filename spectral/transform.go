// SPDX-License-Identifier: MIT
// Package spectral: functional calculus on Hermitian operators and the
// operator norm. Everything here is a thin composition over Eigh.

package spectral

import (
	"math"

	"github.com/katalvlaran/qlinalg/cmat"
)

// HermTransform applies a scalar function to the spectrum of a Hermitian
// operator: result = Σ f(λᵢ)·Pᵢ over the clustered eigenspaces of H.
//
// With WithIgnoreZero, eigenspaces whose representative eigenvalue lies
// within the cluster tolerance of zero are excluded from the sum entirely —
// they are not mapped through f. That single switch turns
//
//	f(x) = 1/x   into the Moore–Penrose pseudo-inverse,
//	f(x) = √x    into the PSD principal square root,
//	f(x) = exp x into the matrix exponential of H,
//
// without per-function special-casing.
//
// Inputs:
//   - f: scalar spectrum function (finite on the reachable eigenvalues).
//   - h: Hermitian d×d matrix.
//   - opts: WithIgnoreZero, WithClusterTol, WithHermitianEps.
//
// Returns:
//   - *cmat.Dense: Hermitian result Σ f(λ)·P (Hermitian because every Pᵢ is
//     and f(λ) is real).
//
// Errors:
//   - ErrNilFunc, cmat.ErrNilMatrix / cmat.ErrNonSquare, ErrNotHermitian,
//     ErrEigenFailed.
//
// Complexity: O(d³) — dominated by the eigendecomposition.
func HermTransform(f func(float64) float64, h *cmat.Dense, opts ...Option) (*cmat.Dense, error) {
	if f == nil {
		return nil, spectralErrorf(opTransform, ErrNilFunc)
	}
	o := gatherOptions(opts...)

	dec, err := Eigh(h, opts...)
	if err != nil {
		return nil, spectralErrorf(opTransform, err)
	}

	res, err := cmat.Zeros(dec.Dim, dec.Dim)
	if err != nil {
		return nil, spectralErrorf(opTransform, err)
	}
	out := res.RawData()

	var idx, n int
	var w complex128
	for _, space := range dec.Eigenspaces {
		// Skip the kernel entirely when asked to: excluded, not mapped.
		if o.IgnoreZero && math.Abs(space.Value) <= dec.ClusterTol {
			continue
		}
		w = complex(f(space.Value), 0)
		if w == 0 {
			continue // zero weight adds nothing
		}
		src := space.Projector.RawData()
		n = len(src)
		for idx = 0; idx < n; idx++ {
			out[idx] += w * src[idx]
		}
	}

	return res, nil
}

// SqrtPSD returns the principal square root of a positive-semidefinite
// Hermitian matrix. Negative eigenvalues are clamped to zero before the
// square root, so numerical noise around zero never produces NaNs. The
// contract is PSD input; for an indefinite H the result is the square root
// of the positive part of H.
func SqrtPSD(h *cmat.Dense, opts ...Option) (*cmat.Dense, error) {
	res, err := HermTransform(func(x float64) float64 {
		if x < 0 {
			return 0
		}

		return math.Sqrt(x)
	}, h, opts...)
	if err != nil {
		return nil, spectralErrorf(opSqrtPSD, err)
	}

	return res, nil
}

// OperatorNorm returns the spectral norm ‖M‖ — the largest singular value.
// For (numerically) Hermitian input this is max |λ| computed directly;
// otherwise it is √λmax(M†M). Rectangular input is allowed.
//
// Errors: cmat.ErrNilMatrix, ErrEigenFailed.
// Complexity: O(d³).
func OperatorNorm(m *cmat.Dense) (float64, error) {
	if err := cmat.ValidateNotNil(m); err != nil {
		return 0, spectralErrorf(opOperatorNorm, err)
	}

	// Hermitian fast path: spectrum is real, norm is the extreme modulus.
	if m.IsSquare() && hermDeviation(m) <= DefaultHermEps {
		vals, err := Eigenvalues(m)
		if err != nil {
			return 0, spectralErrorf(opOperatorNorm, err)
		}

		return math.Max(math.Abs(vals[0]), math.Abs(vals[len(vals)-1])), nil
	}

	// General path: top eigenvalue of the Gram matrix M†M.
	md, err := cmat.Dagger(m)
	if err != nil {
		return 0, spectralErrorf(opOperatorNorm, err)
	}
	gram, err := cmat.Mul(md, m)
	if err != nil {
		return 0, spectralErrorf(opOperatorNorm, err)
	}
	vals, err := Eigenvalues(gram)
	if err != nil {
		return 0, spectralErrorf(opOperatorNorm, err)
	}

	top := vals[len(vals)-1]
	if top < 0 {
		top = 0 // Gram spectra are PSD; clamp solver noise
	}

	return math.Sqrt(top), nil
}
