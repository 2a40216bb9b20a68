// SPDX-License-Identifier: MIT
// Package predicate: report-style checks with tagged status results.
// The numeric values of the status constants ARE the contract — callers
// branch on the negative codes, so they must never be renumbered.

package predicate

import (
	"math"

	"github.com/katalvlaran/qlinalg/cmat"
)

// StateStatus classifies a candidate state vector.
// The zero value is StateValid; the failure variants carry the legacy
// negative codes as their numeric values.
type StateStatus int

const (
	// StateValid: a column/row vector of dimension 2ⁿ (unit norm when an
	// eps was supplied).
	StateValid StateStatus = 0

	// StateNotNormalized: ‖v‖ deviates from 1 beyond the supplied eps.
	StateNotNormalized StateStatus = -1

	// StateBadDimension: vector length is not a power of two.
	StateBadDimension StateStatus = -2

	// StateNotAVector: input is nil or not a single column/row.
	StateNotAVector StateStatus = -3
)

// String implements fmt.Stringer for readable test failures and logs.
func (s StateStatus) String() string {
	switch s {
	case StateValid:
		return "valid state vector"
	case StateNotNormalized:
		return "not normalized"
	case StateBadDimension:
		return "dimension not a power of two"
	case StateNotAVector:
		return "not a vector"
	default:
		return "unknown state status"
	}
}

// DensityStatus classifies a candidate density matrix. Same convention as
// StateStatus: zero is valid, failures carry the legacy negative codes.
type DensityStatus int

const (
	// DensityValid: square, dimension 2ⁿ (trace 1 and PSD when an eps was
	// supplied).
	DensityValid DensityStatus = 0

	// DensityNotPositive: not positive-semidefinite within the supplied eps.
	DensityNotPositive DensityStatus = -1

	// DensityBadTrace: |Tr(ρ) − 1| exceeds the supplied eps.
	DensityBadTrace DensityStatus = -2

	// DensityBadDimension: dimension is not a power of two.
	DensityBadDimension DensityStatus = -3

	// DensityNotSquare: input is nil or not square.
	DensityNotSquare DensityStatus = -4
)

// String implements fmt.Stringer.
func (s DensityStatus) String() string {
	switch s {
	case DensityValid:
		return "valid density matrix"
	case DensityNotPositive:
		return "not positive semidefinite"
	case DensityBadTrace:
		return "trace differs from one"
	case DensityBadDimension:
		return "dimension not a power of two"
	case DensityNotSquare:
		return "not square"
	default:
		return "unknown density status"
	}
}

// Options resolves the report-check knobs. HasEps distinguishes "check
// with eps" from "structural checks only".
type Options struct {
	Eps    float64
	HasEps bool
}

// Option mutates Options; apply via With* constructors only.
type Option func(*Options)

// WithEps enables the quantitative checks (normalization, trace,
// positivity) with the given tolerance.
func WithEps(eps float64) Option {
	return func(o *Options) { o.Eps, o.HasEps = eps, true }
}

// gatherOptions folds user options over the defaults (no eps).
func gatherOptions(user ...Option) Options {
	var o Options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// IsStateVector classifies v as an n-qubit state vector.
//
// Check order (fixed, first failure wins):
//  1. v must be a single column or a single row  → StateNotAVector.
//  2. its length must be a power of two          → StateBadDimension.
//  3. with WithEps: |‖v‖ − 1| ≤ eps              → StateNotNormalized.
//
// Returns the status and the qubit count n (0 unless StateValid).
// Never panics, never errors. Complexity: O(len(v)).
func IsStateVector(v *cmat.Dense, opts ...Option) (StateStatus, int) {
	o := gatherOptions(opts...)

	// 1. structural: a vector at all?
	if v == nil || !v.IsVector() {
		return StateNotAVector, 0
	}

	// 2. structural: power-of-two length?
	dim := v.Rows() * v.Cols()
	n, ok := cmat.QubitCountFor(dim)
	if !ok {
		return StateBadDimension, 0
	}

	// 3. quantitative: unit Euclidean norm (only when eps supplied)
	if o.HasEps {
		norm, err := cmat.FrobeniusNorm(v)
		if err != nil || math.Abs(norm-1) > o.Eps {
			return StateNotNormalized, 0
		}
	}

	return StateValid, n
}

// IsDensityMatrix classifies rho as an n-qubit density matrix.
//
// Check order (fixed, first failure wins):
//  1. rho must be square                  → DensityNotSquare.
//  2. dimension must be a power of two    → DensityBadDimension.
//  3. with WithEps: |Tr(ρ) − 1| ≤ eps     → DensityBadTrace.
//  4. with WithEps: PSD within eps        → DensityNotPositive.
//
// Returns the status and the qubit count n (0 unless DensityValid).
// Never panics, never errors. Complexity: O(d³) with eps (positivity needs
// the spectrum), O(d) without.
func IsDensityMatrix(rho *cmat.Dense, opts ...Option) (DensityStatus, int) {
	o := gatherOptions(opts...)

	// 1. structural: square?
	if rho == nil || !rho.IsSquare() {
		return DensityNotSquare, 0
	}

	// 2. structural: power-of-two dimension?
	n, ok := cmat.QubitCountFor(rho.Rows())
	if !ok {
		return DensityBadDimension, 0
	}

	if o.HasEps {
		// 3. quantitative: unit trace
		tr, err := cmat.Trace(rho)
		if err != nil || math.Abs(real(tr)-1) > o.Eps || math.Abs(imag(tr)) > o.Eps {
			return DensityBadTrace, 0
		}

		// 4. quantitative: positive-semidefinite (implies Hermitian)
		if !IsPositive(rho, o.Eps) {
			return DensityNotPositive, 0
		}
	}

	return DensityValid, n
}
