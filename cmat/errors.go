// SPDX-License-Identifier: MIT
// Package cmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the cmat
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package cmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the facade — callers still match via errors.Is.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("cmat: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("cmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Trace, operator-level routines).
	ErrNonSquare = errors.New("cmat: matrix is not square")

	// ErrRaggedRows signals that NewDenseFromRows received rows of unequal
	// length.
	ErrRaggedRows = errors.New("cmat: ragged row lengths")

	// ErrTooFewOperands signals that a variadic combinator (NKron) received
	// fewer operands than it requires.
	ErrTooFewOperands = errors.New("cmat: too few operands")

	// ErrBadNormKind signals an unknown NormKind value passed to AbsNorm.
	ErrBadNormKind = errors.New("cmat: unknown norm kind")
)
