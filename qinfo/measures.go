// SPDX-License-Identifier: MIT
package qinfo

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/spectral"
)

// Operation tags used in wrapped error messages.
const (
	opPurity          = "Purity"
	opVonNeumann      = "VonNeumannEntropy"
	opRelativeEntropy = "RelativeEntropy"
	opTraceDistance   = "TraceDistance"
	opStateFidelity   = "StateFidelity"
	opGateFidelity    = "GateFidelity"
	opNegativity      = "Negativity"
)

// entropyFloor is the smallest eigenvalue that still contributes to an
// entropy sum; anything below it is treated as exact zero (0·log 0 = 0).
const entropyFloor = 1e-8

// pptEps absorbs factorization round-off when deciding whether a partial
// transpose has a genuinely negative eigenvalue.
const pptEps = 1e-8

// validatePair guards two-operand measures: both non-nil, equal shapes.
// ValidateSameShape dereferences its operands, so the nil check must come
// first.
func validatePair(a, b *cmat.Dense, tag string) error {
	if err := cmat.ValidateNotNil(a); err != nil {
		return qinfoErrorf(tag, err)
	}
	if err := cmat.ValidateNotNil(b); err != nil {
		return qinfoErrorf(tag, err)
	}
	if err := cmat.ValidateSameShape(a, b); err != nil {
		return qinfoErrorf(tag, err)
	}

	return nil
}

// validateLogBase rejects bases for which log_base is undefined.
func validateLogBase(base float64, tag string) error {
	if base <= 0 || base == 1 {
		return qinfoErrorf(tag, ErrBadLogBase)
	}

	return nil
}

// Purity returns Tr(ρ²), which is 1 exactly for pure states and 1/d for
// the maximally mixed state of dimension d.
// Errors: cmat.ErrNonSquare, cmat.ErrNilMatrix.
func Purity(rho *cmat.Dense) (float64, error) {
	if err := cmat.ValidateSquare(rho); err != nil {
		return 0, qinfoErrorf(opPurity, err)
	}
	sq, err := cmat.Mul(rho, rho)
	if err != nil {
		return 0, qinfoErrorf(opPurity, err)
	}
	tr, err := cmat.Trace(sq)
	if err != nil {
		return 0, qinfoErrorf(opPurity, err)
	}

	return real(tr), nil
}

// VonNeumannEntropy returns S(ρ) = −Σ λ·log_base(λ) over the eigenvalues
// of ρ above entropyFloor. base 2 gives the entropy in bits, math.E in
// nats.
// Errors: ErrBadLogBase plus spectral's Hermiticity and shape errors.
func VonNeumannEntropy(rho *cmat.Dense, base float64) (float64, error) {
	if err := validateLogBase(base, opVonNeumann); err != nil {
		return 0, err
	}
	vals, err := spectral.Eigenvalues(rho)
	if err != nil {
		return 0, qinfoErrorf(opVonNeumann, err)
	}

	var (
		entropy float64
		scale   = 1 / math.Log(base)
	)
	for _, v := range vals {
		if v < entropyFloor {
			continue
		}
		entropy -= v * math.Log(v) * scale
	}

	return entropy, nil
}

// RelativeEntropy returns S(ρ‖σ) = Tr ρ(log ρ − log σ) in the given base.
//
// Both logarithms are taken on the support only (zero eigenspaces are
// skipped), the usual convention that keeps the quantity finite whenever
// supp(ρ) ⊆ supp(σ).
// Errors: ErrBadLogBase, shape mismatch, spectral's Hermiticity errors.
func RelativeEntropy(rho, sigma *cmat.Dense, base float64) (float64, error) {
	if err := validateLogBase(base, opRelativeEntropy); err != nil {
		return 0, err
	}
	if err := validatePair(rho, sigma, opRelativeEntropy); err != nil {
		return 0, err
	}

	logRho, err := spectral.HermTransform(math.Log, rho, spectral.WithIgnoreZero())
	if err != nil {
		return 0, qinfoErrorf(opRelativeEntropy, err)
	}
	logSigma, err := spectral.HermTransform(math.Log, sigma, spectral.WithIgnoreZero())
	if err != nil {
		return 0, qinfoErrorf(opRelativeEntropy, err)
	}

	diff, err := cmat.Sub(logRho, logSigma)
	if err != nil {
		return 0, qinfoErrorf(opRelativeEntropy, err)
	}
	prod, err := cmat.Mul(rho, diff)
	if err != nil {
		return 0, qinfoErrorf(opRelativeEntropy, err)
	}
	tr, err := cmat.Trace(prod)
	if err != nil {
		return 0, qinfoErrorf(opRelativeEntropy, err)
	}

	return real(tr) / math.Log(base), nil
}

// TraceDistance returns D(ρ,σ) = ½·Σ|λᵢ(ρ−σ)|, half the trace norm of
// the difference. For density operators it ranges over [0, 1].
// Errors: shape mismatch, spectral's Hermiticity errors.
func TraceDistance(rho, sigma *cmat.Dense) (float64, error) {
	diff, err := cmat.Sub(rho, sigma)
	if err != nil {
		return 0, qinfoErrorf(opTraceDistance, err)
	}
	vals, err := spectral.Eigenvalues(diff)
	if err != nil {
		return 0, qinfoErrorf(opTraceDistance, err)
	}

	var sum float64
	for _, v := range vals {
		sum += math.Abs(v)
	}

	return 0.5 * sum, nil
}

// StateFidelity returns F(ρ,σ) = Tr √(√ρ·σ·√ρ), the Uhlmann fidelity.
// F = 1 iff the states coincide; for commuting inputs it reduces to
// Σ √(λᵢ·μᵢ).
// Errors: shape mismatch, spectral's Hermiticity errors.
func StateFidelity(rho, sigma *cmat.Dense) (float64, error) {
	if err := validatePair(rho, sigma, opStateFidelity); err != nil {
		return 0, err
	}

	sqrtRho, err := spectral.SqrtPSD(rho)
	if err != nil {
		return 0, qinfoErrorf(opStateFidelity, err)
	}
	inner, err := cmat.Mul(sqrtRho, sigma)
	if err != nil {
		return 0, qinfoErrorf(opStateFidelity, err)
	}
	inner, err = cmat.Mul(inner, sqrtRho)
	if err != nil {
		return 0, qinfoErrorf(opStateFidelity, err)
	}

	// Tr √M as the eigenvalue sum, clamping round-off negatives.
	vals, err := spectral.Eigenvalues(inner)
	if err != nil {
		return 0, qinfoErrorf(opStateFidelity, err)
	}
	var f float64
	for _, v := range vals {
		if v > 0 {
			f += math.Sqrt(v)
		}
	}

	return f, nil
}

// GateFidelity returns F(U,V) = |Tr(U·V†)| / d for two same-shaped square
// gates. F = 1 iff the gates agree up to a global phase.
// Errors: cmat.ErrNonSquare, cmat.ErrDimensionMismatch.
func GateFidelity(u, v *cmat.Dense) (float64, error) {
	if err := validatePair(u, v, opGateFidelity); err != nil {
		return 0, err
	}
	if err := cmat.ValidateSquare(u); err != nil {
		return 0, qinfoErrorf(opGateFidelity, err)
	}

	vd, err := cmat.Dagger(v)
	if err != nil {
		return 0, qinfoErrorf(opGateFidelity, err)
	}
	prod, err := cmat.Mul(u, vd)
	if err != nil {
		return 0, qinfoErrorf(opGateFidelity, err)
	}
	tr, err := cmat.Trace(prod)
	if err != nil {
		return 0, qinfoErrorf(opGateFidelity, err)
	}

	return cmplx.Abs(tr) / float64(u.Rows()), nil
}

// balancedTranspose computes ρ^{T_A} for the even split 2^(n/2)×2^(n/2).
func balancedTranspose(rho *cmat.Dense) (*cmat.Dense, error) {
	if err := cmat.ValidateSquare(rho); err != nil {
		return nil, err
	}
	n, ok := cmat.QubitCountFor(rho.Rows())
	if !ok || n%2 != 0 || n == 0 {
		return nil, ErrBadSplit
	}
	half := cmat.QubitDim(n / 2)

	return PartialTranspose(rho, half, half, SystemA)
}

// Negativity returns N(ρ) = Σ|λᵢ⁻|, the absolute sum of the negative
// eigenvalues of the balanced partial transpose ρ^{T_A}. It vanishes on
// every separable state and is positive on distillably entangled ones.
//
// The bipartition is the even qubit split, so the dimension must be 4ᵏ
// for some k ≥ 1.
// Errors: ErrBadSplit plus spectral's errors.
func Negativity(rho *cmat.Dense) (float64, error) {
	pt, err := balancedTranspose(rho)
	if err != nil {
		return 0, qinfoErrorf(opNegativity, err)
	}
	vals, err := spectral.Eigenvalues(pt)
	if err != nil {
		return 0, qinfoErrorf(opNegativity, err)
	}

	var neg float64
	for _, v := range vals {
		if v < -pptEps {
			neg -= v
		}
	}

	return neg, nil
}

// LogarithmicNegativity returns E_N(ρ) = log₂(2·N(ρ) + 1), the log of the
// trace norm of the balanced partial transpose.
// Errors: same as Negativity.
func LogarithmicNegativity(rho *cmat.Dense) (float64, error) {
	neg, err := Negativity(rho)
	if err != nil {
		return 0, err
	}

	return math.Log2(2*neg + 1), nil
}

// IsPPT reports whether the balanced partial transpose of rho is positive
// semidefinite within pptEps. False is also returned when the dimension
// admits no balanced split or the input is not Hermitian.
func IsPPT(rho *cmat.Dense) bool {
	neg, err := Negativity(rho)
	if err != nil {
		return false
	}

	return neg == 0
}
