// SPDX-License-Identifier: MIT
// Package spectral: sentinel error set. Shape violations (nil, non-square)
// surface as the cmat sentinels returned by the central validators; this
// file adds only the spectral-specific conditions. Match via errors.Is.

package spectral

import "errors"

var (
	// ErrNotHermitian signals that an operator required to be Hermitian
	// deviated from its conjugate transpose beyond the configured tolerance
	// (Frobenius norm of H − H†).
	ErrNotHermitian = errors.New("spectral: matrix is not hermitian within eps")

	// ErrEigenFailed indicates that the underlying symmetric eigensolver
	// failed to converge, or that the doubled spectrum of the real embedding
	// could not be consistently paired.
	ErrEigenFailed = errors.New("spectral: eigen decomposition failed")

	// ErrNilFunc signals that HermTransform received a nil spectrum function.
	ErrNilFunc = errors.New("spectral: nil spectrum function")
)
