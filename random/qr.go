// SPDX-License-Identifier: MIT
// Package random: complex Householder QR kernel backing the Haar samplers.
//
// Purpose:
//   - Factor a square complex matrix as A = Q·R with Q unitary and R upper
//     triangular, and expose R's diagonal for Mezzadri's phase correction.
//
// Notes:
//   - Column k reflects against α = −e^{i·arg(x_k)}·‖x‖, the stable sign
//     choice; the same code handles the real (orthogonal) case, where the
//     phase degenerates to ±1.

package random

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qlinalg/cmat"
)

// qr computes the Householder factorization A = Q·R of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare(a); clone A into R; init accumulator P = I.
//   - Stage 2: for k = 0..d−1 build the column reflector H_k and apply it
//     to R and to P; afterwards R is upper triangular and P = H_{d−1}···H_0.
//   - Stage 3: Q = P† (each H_k is Hermitian unitary, so P† = P⁻¹).
//
// Determinism: fixed k→j→i visitation, no pivoting.
// Complexity: O(d³) time, O(d²) space.
func qr(a *cmat.Dense) (q, r *cmat.Dense, err error) {
	if err = cmat.ValidateSquare(a); err != nil {
		return nil, nil, err
	}
	d := a.Rows()

	r = a.Clone()
	acc, err := cmat.Identity(d)
	if err != nil {
		return nil, nil, err
	}
	rd, pd := r.RawData(), acc.RawData()

	v := make([]complex128, d) // Householder vector for the current column
	var (
		i, j, k      int
		normx, beta  float64
		alpha, s, xk complex128
	)
	for k = 0; k < d; k++ {
		// column norm ‖R[k:, k]‖
		normx = 0
		for i = k; i < d; i++ {
			xk = rd[i*d+k]
			normx += real(xk)*real(xk) + imag(xk)*imag(xk)
		}
		normx = math.Sqrt(normx)
		if normx == 0 {
			continue // zero column, nothing to reflect
		}

		// α = −phase(R[k,k])·‖x‖; zero pivot degenerates to phase 1
		xk = rd[k*d+k]
		if xk == 0 {
			alpha = complex(-normx, 0)
		} else {
			alpha = -xk / complex(cmplx.Abs(xk), 0) * complex(normx, 0)
		}

		// v = x − α·e_k, β = ‖v‖²
		for i = 0; i < k; i++ {
			v[i] = 0
		}
		for i = k; i < d; i++ {
			v[i] = rd[i*d+k]
		}
		v[k] -= alpha
		beta = 0
		for i = k; i < d; i++ {
			beta += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		if beta == 0 {
			continue // degenerate reflector, column already aligned
		}

		// R ← H_k·R on columns k..d−1: s = (2/β)·v†·R[:,j]; R[:,j] −= s·v
		for j = k; j < d; j++ {
			s = 0
			for i = k; i < d; i++ {
				s += cmplx.Conj(v[i]) * rd[i*d+j]
			}
			s *= complex(2/beta, 0)
			for i = k; i < d; i++ {
				rd[i*d+j] -= s * v[i]
			}
		}

		// P ← H_k·P on all columns
		for j = 0; j < d; j++ {
			s = 0
			for i = k; i < d; i++ {
				s += cmplx.Conj(v[i]) * pd[i*d+j]
			}
			s *= complex(2/beta, 0)
			for i = k; i < d; i++ {
				pd[i*d+j] -= s * v[i]
			}
		}
	}

	q, err = cmat.Dagger(acc)
	if err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

// phaseCorrect scales column j of q by R_jj/|R_jj| (the Mezzadri
// correction). A zero diagonal entry — measure zero for continuous
// ensembles — leaves the column untouched. Mutates q in place.
func phaseCorrect(q, r *cmat.Dense) {
	d := q.Rows()
	qd, rd := q.RawData(), r.RawData()
	var i, j int
	var pivot, phase complex128
	for j = 0; j < d; j++ {
		pivot = rd[j*d+j]
		if pivot == 0 {
			continue
		}
		phase = pivot / complex(cmplx.Abs(pivot), 0)
		for i = 0; i < d; i++ {
			qd[i*d+j] *= phase
		}
	}
}
