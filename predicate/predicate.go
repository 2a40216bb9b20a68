// SPDX-License-Identifier: MIT
// Package predicate: boolean operator predicates. All functions here are
// pure and total — any input, including nil, yields a boolean; error
// conditions are simply false.

package predicate

import (
	"math"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/spectral"
)

// DefaultEps is the default tolerance for the Hermitian, positive,
// projector, state-vector and density-matrix checks.
const DefaultEps = 1e-6

// DefaultUnitaryEps is the default tolerance for the unitary check.
// Deliberately looser than DefaultEps: unitarity deviation compounds
// quadratically under products, so consumers composing circuits need the
// wider band. Do not unify the two.
const DefaultUnitaryEps = 1e-5

// IsHermitian reports whether ‖M − M†‖_F ≤ eps.
// Nil or non-square input is false. Complexity: O(d²).
func IsHermitian(m *cmat.Dense, eps float64) bool {
	if m == nil || !m.IsSquare() {
		return false
	}

	d := m.Rows()
	data := m.RawData()
	var acc float64
	var i, j int
	var diff complex128
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			diff = data[i*d+j] - conj(data[j*d+i])
			acc += real(diff)*real(diff) + imag(diff)*imag(diff)
			if acc > eps*eps {
				return false // early out once the bound is exceeded
			}
		}
	}

	return math.Sqrt(acc) <= eps
}

// IsProjector reports whether ‖M·M − M‖_F ≤ eps (idempotence).
// Nil or non-square input is false. Complexity: O(d³).
func IsProjector(m *cmat.Dense, eps float64) bool {
	if m == nil || !m.IsSquare() {
		return false
	}

	sq, err := cmat.Mul(m, m)
	if err != nil {
		return false
	}
	diff, err := cmat.Sub(sq, m)
	if err != nil {
		return false
	}
	norm, err := cmat.FrobeniusNorm(diff)
	if err != nil {
		return false
	}

	return norm <= eps
}

// IsUnitary reports whether ‖M·M† − I‖_F ≤ eps.
// Nil or non-square input is false. Complexity: O(d³).
func IsUnitary(m *cmat.Dense, eps float64) bool {
	if m == nil || !m.IsSquare() {
		return false
	}

	md, err := cmat.Dagger(m)
	if err != nil {
		return false
	}
	prod, err := cmat.Mul(m, md)
	if err != nil {
		return false
	}

	// ‖M·M† − I‖ without materializing the identity: subtract 1 in place on
	// the freshly allocated product's diagonal.
	d := prod.Rows()
	data := prod.RawData()
	for i := 0; i < d; i++ {
		data[i*d+i] -= 1
	}
	norm, err := cmat.FrobeniusNorm(prod)
	if err != nil {
		return false
	}

	return norm <= eps
}

// IsPositive reports whether M is Hermitian (within eps) with all
// eigenvalues ≥ −eps, i.e. positive-semidefinite up to tolerance.
// Nil or non-square input is false. Complexity: O(d³).
func IsPositive(m *cmat.Dense, eps float64) bool {
	if !IsHermitian(m, eps) {
		return false
	}

	// The Hermiticity gate above may be looser than the spectral default;
	// forward the wider band so the decomposition accepts what we accepted.
	vals, err := spectral.Eigenvalues(m,
		spectral.WithHermitianEps(math.Max(eps, spectral.DefaultHermEps)))
	if err != nil {
		return false
	}

	// Ascending order: the first value is the minimum.
	return vals[0] >= -eps
}

// conj avoids importing math/cmplx for a one-liner used in a hot loop.
func conj(v complex128) complex128 { return complex(real(v), -imag(v)) }
