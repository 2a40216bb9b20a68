// SPDX-License-Identifier: MIT
// Package random: sentinel error set. Shape-level violations surface as
// cmat sentinels; this file adds the generator-specific conditions.

package random

import "errors"

var (
	// ErrBadQubitCount signals a negative qubit count, or a qubit count too
	// small for the requested construction (UnitaryWithHermitianBlock needs
	// at least one qubit to split off as the ancilla).
	ErrBadQubitCount = errors.New("random: invalid qubit count")

	// ErrBadRank signals a HaarDensityOperator rank outside [1, 2ⁿ].
	ErrBadRank = errors.New("random: rank outside [1, 2^n]")
)
