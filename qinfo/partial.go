// SPDX-License-Identifier: MIT
package qinfo

import (
	"fmt"

	"github.com/katalvlaran/qlinalg/cmat"
)

// System selects one factor of a dimA×dimB bipartition.
type System int

const (
	// SystemA is the first (leftmost) tensor factor.
	SystemA System = 1
	// SystemB is the second (rightmost) tensor factor.
	SystemB System = 2
)

// String implements fmt.Stringer.
func (s System) String() string {
	switch s {
	case SystemA:
		return "SystemA"
	case SystemB:
		return "SystemB"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// Operation tags used in wrapped error messages.
const (
	opPartialTrace     = "PartialTrace"
	opPartialTraceKeep = "PartialTraceKeep"
	opPartialTranspose = "PartialTranspose"
)

// qinfoErrorf wraps err under a "qinfo.<Op>:" prefix for errors.Is chains.
func qinfoErrorf(tag string, err error) error {
	return fmt.Errorf("qinfo.%s: %w", tag, err)
}

// validateSplit checks that m is square of side dimA·dimB and sys names a
// factor.
func validateSplit(m *cmat.Dense, dimA, dimB int, sys System, tag string) error {
	if err := cmat.ValidateSquare(m); err != nil {
		return qinfoErrorf(tag, err)
	}
	if dimA < 1 || dimB < 1 || m.Rows() != dimA*dimB {
		return qinfoErrorf(tag, ErrBadSplit)
	}
	if sys != SystemA && sys != SystemB {
		return qinfoErrorf(tag, ErrBadSystem)
	}

	return nil
}

// PartialTrace traces out one factor of a bipartite operator.
//
// The input is addressed as ρ[(a₁·dimB+b₁), (a₂·dimB+b₂)]. Tracing out
// SystemA sums over a₁ = a₂ and returns the dimB×dimB reduction; SystemB
// sums over b₁ = b₂ and returns the dimA×dimA one.
//
// Inputs:
//   - rho        : square matrix of side dimA·dimB.
//   - dimA, dimB : factor dimensions, both ≥ 1.
//   - sys        : the factor to REMOVE.
//
// Returns: the reduced operator over the remaining factor.
//
// Errors: cmat.ErrNonSquare, ErrBadSplit, ErrBadSystem.
//
// Complexity: O(dimA·dimB·min(dimA,dimB)) ≤ O(d²) with d = dimA·dimB.
func PartialTrace(rho *cmat.Dense, dimA, dimB int, sys System) (*cmat.Dense, error) {
	if err := validateSplit(rho, dimA, dimB, sys, opPartialTrace); err != nil {
		return nil, err
	}

	var (
		data = rho.RawData()
		d    = dimA * dimB
		out  *cmat.Dense
		err  error
	)

	if sys == SystemA {
		out, err = cmat.NewDense(dimB, dimB)
		if err != nil {
			return nil, qinfoErrorf(opPartialTrace, err)
		}
		od := out.RawData()
		var a, b1, b2 int
		for b1 = 0; b1 < dimB; b1++ {
			for b2 = 0; b2 < dimB; b2++ {
				var sum complex128
				for a = 0; a < dimA; a++ {
					sum += data[(a*dimB+b1)*d+(a*dimB+b2)]
				}
				od[b1*dimB+b2] = sum
			}
		}
		return out, nil
	}

	out, err = cmat.NewDense(dimA, dimA)
	if err != nil {
		return nil, qinfoErrorf(opPartialTrace, err)
	}
	od := out.RawData()
	var a1, a2, b int
	for a1 = 0; a1 < dimA; a1++ {
		for a2 = 0; a2 < dimA; a2++ {
			var sum complex128
			for b = 0; b < dimB; b++ {
				sum += data[(a1*dimB+b)*d+(a2*dimB+b)]
			}
			od[a1*dimA+a2] = sum
		}
	}
	return out, nil
}

// PartialTraceKeep traces out every qubit NOT listed in keep, for
// arbitrarily scattered subsystems. The surviving qubits stay in ascending
// index order regardless of the order they appear in keep; an empty keep
// returns a clone of the input untouched.
//
// Inputs:
//   - rho  : square matrix of power-of-two side 2ⁿ.
//   - keep : qubit indices to preserve, each in [0, n), no duplicates.
//
// Errors: cmat.ErrNonSquare, ErrBadSplit (side not a power of two),
// ErrBadSystem (index out of range or repeated).
//
// Complexity: O(d²) per traced qubit, d the current side length.
func PartialTraceKeep(rho *cmat.Dense, keep []int) (*cmat.Dense, error) {
	if err := cmat.ValidateSquare(rho); err != nil {
		return nil, qinfoErrorf(opPartialTraceKeep, err)
	}
	n, ok := cmat.QubitCountFor(rho.Rows())
	if !ok {
		return nil, qinfoErrorf(opPartialTraceKeep, ErrBadSplit)
	}
	if len(keep) == 0 {
		return rho.Clone(), nil
	}

	kept := make(map[int]bool, len(keep))
	for _, q := range keep {
		if q < 0 || q >= n || kept[q] {
			return nil, qinfoErrorf(opPartialTraceKeep, ErrBadSystem)
		}
		kept[q] = true
	}

	// Trace ascending; each removal shifts the later positions down by one.
	var (
		out     = rho
		removed int
		err     error
	)
	for q := 0; q < n; q++ {
		if kept[q] {
			continue
		}
		out, err = traceQubit(out, q-removed, n-removed)
		if err != nil {
			return nil, qinfoErrorf(opPartialTraceKeep, err)
		}
		removed++
	}
	if removed == 0 {
		return rho.Clone(), nil
	}

	return out, nil
}

// traceQubit removes the single qubit at position at from an nq-qubit
// operator, summing over its two branch values.
func traceQubit(rho *cmat.Dense, at, nq int) (*cmat.Dense, error) {
	var (
		d    = rho.Rows()
		lo   = 1 << uint(nq-at-1) // factor dimension below the qubit
		outD = d / 2
		data = rho.RawData()
	)
	out, err := cmat.NewDense(outD, outD)
	if err != nil {
		return nil, err
	}
	od := out.RawData()

	var a1, b1, a2, b2, s, row, col int
	for a1 = 0; a1 < outD/lo; a1++ {
		for b1 = 0; b1 < lo; b1++ {
			for a2 = 0; a2 < outD/lo; a2++ {
				for b2 = 0; b2 < lo; b2++ {
					var sum complex128
					for s = 0; s < 2; s++ {
						row = (a1*2+s)*lo + b1
						col = (a2*2+s)*lo + b2
						sum += data[row*d+col]
					}
					od[(a1*lo+b1)*outD+(a2*lo+b2)] = sum
				}
			}
		}
	}

	return out, nil
}

// PartialTranspose transposes one factor of a bipartite operator.
//
// With row indices split as (a, b), transposing SystemA maps
// ρ[(a₁,b₁),(a₂,b₂)] to ρ[(a₂,b₁),(a₁,b₂)]; SystemB swaps b₁ and b₂
// instead. The output keeps the full dimA·dimB side length. Applied to a
// density operator the result stays Hermitian, which is what Negativity
// relies on.
//
// Errors: cmat.ErrNonSquare, ErrBadSplit, ErrBadSystem.
//
// Complexity: O(d²) with d = dimA·dimB.
func PartialTranspose(rho *cmat.Dense, dimA, dimB int, sys System) (*cmat.Dense, error) {
	if err := validateSplit(rho, dimA, dimB, sys, opPartialTranspose); err != nil {
		return nil, err
	}

	var (
		d    = dimA * dimB
		data = rho.RawData()
		out  *cmat.Dense
		err  error
	)
	out, err = cmat.NewDense(d, d)
	if err != nil {
		return nil, qinfoErrorf(opPartialTranspose, err)
	}
	od := out.RawData()

	var a1, a2, b1, b2 int
	for a1 = 0; a1 < dimA; a1++ {
		for b1 = 0; b1 < dimB; b1++ {
			for a2 = 0; a2 < dimA; a2++ {
				for b2 = 0; b2 < dimB; b2++ {
					src := (a1*dimB+b1)*d + (a2*dimB + b2)
					var dst int
					if sys == SystemA {
						dst = (a2*dimB+b1)*d + (a1*dimB + b2)
					} else {
						dst = (a1*dimB+b2)*d + (a2*dimB + b1)
					}
					od[dst] = data[src]
				}
			}
		}
	}
	return out, nil
}
