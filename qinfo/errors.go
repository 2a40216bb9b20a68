// SPDX-License-Identifier: MIT
package qinfo

import "errors"

var (
	// ErrBadSplit is returned when a matrix dimension cannot be factored as
	// dimA·dimB, or when a balanced bipartition is requested on an odd
	// qubit count.
	ErrBadSplit = errors.New("qinfo: dimension does not match the requested bipartition")

	// ErrBadSystem is returned when a subsystem selector is neither
	// SystemA nor SystemB.
	ErrBadSystem = errors.New("qinfo: unknown subsystem selector")

	// ErrBadLogBase is returned when a logarithm base is not positive or
	// equals 1.
	ErrBadLogBase = errors.New("qinfo: logarithm base must be positive and != 1")

	// ErrBadPermutation is returned when a subsystem permutation is not a
	// bijection on its index range or disagrees with the dimension list.
	ErrBadPermutation = errors.New("qinfo: invalid subsystem permutation")
)
