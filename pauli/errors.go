// SPDX-License-Identifier: MIT
package pauli

import "errors"

var (
	// ErrBadQubitCount is returned when a qubit count is negative.
	ErrBadQubitCount = errors.New("pauli: qubit count must be non-negative")

	// ErrBadDimension is returned when a matrix dimension is not a power
	// of two, so no Pauli basis of any qubit count matches it.
	ErrBadDimension = errors.New("pauli: dimension is not a power of two")

	// ErrEmptyBasis is returned when a subsystem basis contains no elements.
	ErrEmptyBasis = errors.New("pauli: subsystem basis is empty")

	// ErrNilInnerProduct is returned when SubsystemDecompose receives a nil
	// inner product function.
	ErrNilInnerProduct = errors.New("pauli: inner product function is nil")

	// ErrShapeMismatch is returned when basis elements disagree on shape,
	// or the target's shape is not the product of the two basis shapes.
	ErrShapeMismatch = errors.New("pauli: operand shapes are incompatible")
)
