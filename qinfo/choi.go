// SPDX-License-Identifier: MIT
package qinfo

import (
	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/predicate"
)

// IsChoi reports whether op is the Choi operator of a quantum operation on
// the balanced split: positive semidefinite (complete positivity) with
// Tr_B(op) bounded above by the identity (trace non-increasing). The
// operation is taken to act on the second factor.
//
// False is returned for nil input, a side length that is not an even power
// of two, or either condition failing within predicate.DefaultEps. Like
// the other pure predicates it never errors.
func IsChoi(op *cmat.Dense) bool {
	if op == nil || !op.IsSquare() {
		return false
	}
	n, ok := cmat.QubitCountFor(op.Rows())
	if !ok || n == 0 || n%2 != 0 {
		return false
	}
	if !predicate.IsPositive(op, predicate.DefaultEps) {
		return false
	}

	sysDim := cmat.QubitDim(n / 2)
	reduced, err := PartialTrace(op, sysDim, sysDim, SystemB)
	if err != nil {
		return false
	}
	id, err := cmat.Identity(sysDim)
	if err != nil {
		return false
	}
	slack, err := cmat.Sub(id, reduced)
	if err != nil {
		return false
	}

	return predicate.IsPositive(slack, predicate.DefaultEps)
}
