// SPDX-License-Identifier: MIT
// Package blockenc: the Hermitian block-encoding constructor.

package blockenc

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/predicate"
	"github.com/katalvlaran/qlinalg/spectral"
)

var (
	// ErrNotHermitian signals that the operator to encode is not Hermitian
	// within the library default tolerance.
	ErrNotHermitian = errors.New("blockenc: matrix is not hermitian within eps")

	// ErrNormTooLarge signals an operator norm beyond 1: no unitary
	// dilation exists. Rescale before encoding.
	ErrNormTooLarge = errors.New("blockenc: operator norm exceeds 1")

	// ErrBadAncillaCount signals a non-positive ancilla qubit count; at
	// least one ancilla qubit is needed to host the dilation.
	ErrBadAncillaCount = errors.New("blockenc: ancilla count must be >= 1")
)

// normSlack absorbs rounding on operators rescaled to norm exactly 1.
const normSlack = 1e-9

// HermBlockEncoding returns a unitary U of shape (d·2^m × d·2^m) whose
// top-left d×d block equals the Hermitian input H exactly, where d is
// H's dimension and m ≥ 1 is the number of ancilla qubits.
//
// Implementation:
//   - Stage 1: Validate — m ≥ 1, H square and Hermitian (DefaultEps),
//     ‖H‖ ≤ 1 (+ rounding slack).
//   - Stage 2: S = √(I − H²) via the PSD spectral square root; assemble
//     the 2d×2d core [[H, S], [S, −H]].
//   - Stage 3: pad with an identity block up to d·2^m via DirectSum.
//
// The core is Hermitian with square H²+S² = I on both diagonal blocks and
// commutators HS − SH = 0 off-diagonal (S is a function of H), hence
// unitary.
//
// Errors: ErrBadAncillaCount, cmat.ErrNilMatrix / cmat.ErrNonSquare,
// ErrNotHermitian, ErrNormTooLarge.
// Complexity: O(d³) time, O((d·2^m)²) space.
func HermBlockEncoding(h *cmat.Dense, m int) (*cmat.Dense, error) {
	const op = "HermBlockEncoding"

	// Stage 1: validation ladder
	if m < 1 {
		return nil, fmt.Errorf("%s: %w", op, ErrBadAncillaCount)
	}
	if err := cmat.ValidateSquare(h); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !predicate.IsHermitian(h, predicate.DefaultEps) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotHermitian)
	}
	norm, err := spectral.OperatorNorm(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if norm > 1+normSlack {
		return nil, fmt.Errorf("%s: %w", op, ErrNormTooLarge)
	}

	// Stage 2: complement block S = √(I − H²)
	d := h.Rows()
	h2, err := cmat.Mul(h, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	id, err := cmat.Identity(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	comp, err := cmat.Sub(id, h2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s, err := spectral.SqrtPSD(comp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Assemble the 2d×2d core [[H, S], [S, −H]]
	core, err := cmat.NewDense(2*d, 2*d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	cd, hd, sd := core.RawData(), h.RawData(), s.RawData()
	var i, j int
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			cd[i*2*d+j] = hd[i*d+j]           // top-left: H
			cd[i*2*d+d+j] = sd[i*d+j]         // top-right: S
			cd[(d+i)*2*d+j] = sd[i*d+j]       // bottom-left: S
			cd[(d+i)*2*d+d+j] = -hd[i*d+j]    // bottom-right: −H
		}
	}

	// Stage 3: identity padding for ancilla dimension beyond the minimum
	pad := d*(1<<uint(m)) - 2*d
	if pad == 0 {
		return core, nil
	}
	tail, err := cmat.Identity(pad)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u, err := cmat.DirectSum(core, tail)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}
