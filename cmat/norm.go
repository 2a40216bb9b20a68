// SPDX-License-Identifier: MIT
// Package cmat: scalar norms over Dense matrices with a selectable kind.
// Frobenius is the documented default, and the kind is an explicit
// parameter so call sites that need a different convention say so in code.

package cmat

import (
	"math"
	"math/cmplx"
)

// NormKind selects the scalar norm computed by AbsNorm.
//
//   - NormFrobenius — √(Σ |m[i,j]|²), the default and the convention used by
//     every predicate in package predicate.
//   - NormMaxAbs    — max |m[i,j]|, the entrywise max norm; handy as a cheap
//     upper-bound proxy when a full Frobenius pass is not needed.
//
// The spectral (operator) norm needs an eigensolver and therefore lives in
// package spectral (OperatorNorm), not here.
type NormKind int

const (
	// NormFrobenius selects the Frobenius (Hilbert–Schmidt) norm.
	NormFrobenius NormKind = iota

	// NormMaxAbs selects the entrywise maximum-modulus norm.
	NormMaxAbs
)

// AbsNorm returns a single non-negative scalar norm of m for the given kind.
//
// Errors: ErrNilMatrix, ErrBadNormKind.
// Determinism: single flat pass 0..n-1.
// Complexity: O(r*c).
func AbsNorm(m *Dense, kind NormKind) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, cmatErrorf(opAbsNorm, err)
	}

	n := len(m.data)
	switch kind {
	case NormFrobenius:
		// Accumulate squared moduli; take one square root at the end.
		var acc float64
		for idx := 0; idx < n; idx++ {
			v := m.data[idx]
			acc += real(v)*real(v) + imag(v)*imag(v)
		}

		return math.Sqrt(acc), nil

	case NormMaxAbs:
		var best float64
		for idx := 0; idx < n; idx++ {
			if a := cmplx.Abs(m.data[idx]); a > best {
				best = a
			}
		}

		return best, nil

	default:
		return 0, cmatErrorf(opAbsNorm, ErrBadNormKind)
	}
}

// FrobeniusNorm is shorthand for AbsNorm(m, NormFrobenius). It is the norm
// every tolerance in this library is expressed in.
func FrobeniusNorm(m *Dense) (float64, error) { return AbsNorm(m, NormFrobenius) }
