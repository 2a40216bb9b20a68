// SPDX-License-Identifier: MIT
// Package random: the Generator facade. Every constructor validates its
// input, draws from the Generator's explicit source, and returns a matrix
// that satisfies the corresponding predicate to well under the library's
// public tolerances.

package random

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/qlinalg/blockenc"
	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/spectral"
)

// Operation name constants for unified error wrapping.
const (
	opGinibre      = "Ginibre"
	opHermitian    = "Hermitian"
	opProjection   = "OrthogonalProjection"
	opDensity      = "DensityMatrix"
	opHaarUnitary  = "HaarUnitary"
	opHaarOrtho    = "HaarOrthogonal"
	opHaarState    = "HaarStateVector"
	opHaarDensity  = "HaarDensityOperator"
	opUnitaryHerm  = "UnitaryHermitian"
	opUnitaryBlock = "UnitaryWithHermitianBlock"
)

// randomErrorf wraps err with an operation tag, preserving errors.Is.
func randomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Generator draws structured random matrices from an explicit, seedable
// source. The zero value is not usable; construct via New or NewFromSource.
// A Generator is deterministic for a given seed and call sequence, and is
// not safe for concurrent use — give each goroutine its own.
type Generator struct {
	norm distuv.Normal
}

// New returns a Generator seeded with the given value. Identical seeds
// yield identical draw sequences.
func New(seed uint64) *Generator {
	return NewFromSource(rand.NewSource(seed))
}

// NewFromSource binds a Generator to an existing rand.Source, letting
// callers share one seeded source across several samplers deliberately.
// A nil src falls back to a fixed-seed source (seed 1) so the Generator
// stays deterministic rather than silently reaching for a global.
func NewFromSource(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(1)
	}

	return &Generator{norm: distuv.Normal{Mu: 0, Sigma: 1, Src: src}}
}

// validQubits guards the common n ≥ 0 precondition.
func validQubits(n int) error {
	if n < 0 {
		return ErrBadQubitCount
	}

	return nil
}

// Ginibre returns a rows×cols matrix with independent standard complex
// Gaussian entries (real and imaginary parts each N(0,1)) — the complex
// Ginibre ensemble, the raw input to every structured construction here.
// Errors: cmat.ErrBadShape. Complexity: O(rows·cols).
func (g *Generator) Ginibre(rows, cols int) (*cmat.Dense, error) {
	m, err := cmat.NewDense(rows, cols)
	if err != nil {
		return nil, randomErrorf(opGinibre, err)
	}
	data := m.RawData()
	for idx := range data {
		data[idx] = complex(g.norm.Rand(), g.norm.Rand())
	}

	return m, nil
}

// GinibreReal returns a rows×cols matrix with independent real N(0,1)
// entries — the real Ginibre ensemble.
// Errors: cmat.ErrBadShape. Complexity: O(rows·cols).
func (g *Generator) GinibreReal(rows, cols int) (*cmat.Dense, error) {
	m, err := cmat.NewDense(rows, cols)
	if err != nil {
		return nil, randomErrorf(opGinibre, err)
	}
	data := m.RawData()
	for idx := range data {
		data[idx] = complex(g.norm.Rand(), 0)
	}

	return m, nil
}

// Hermitian returns a random 2ⁿ×2ⁿ Hermitian matrix: a complex Ginibre
// draw symmetrized as (A + A†)/2.
// Errors: ErrBadQubitCount. Complexity: O(d²), d = 2ⁿ.
func (g *Generator) Hermitian(n int) (*cmat.Dense, error) {
	if err := validQubits(n); err != nil {
		return nil, randomErrorf(opHermitian, err)
	}
	d := cmat.QubitDim(n)

	a, err := g.Ginibre(d, d)
	if err != nil {
		return nil, randomErrorf(opHermitian, err)
	}
	ad, err := cmat.Dagger(a)
	if err != nil {
		return nil, randomErrorf(opHermitian, err)
	}
	sum, err := cmat.Add(a, ad)
	if err != nil {
		return nil, randomErrorf(opHermitian, err)
	}

	return cmat.Scale(sum, 0.5)
}

// OrthogonalProjection returns the rank-1 projector v·v† of a random unit
// vector v of dimension 2ⁿ.
// Errors: ErrBadQubitCount. Complexity: O(d²).
func (g *Generator) OrthogonalProjection(n int) (*cmat.Dense, error) {
	if err := validQubits(n); err != nil {
		return nil, randomErrorf(opProjection, err)
	}
	d := cmat.QubitDim(n)

	v, err := g.Ginibre(d, 1)
	if err != nil {
		return nil, randomErrorf(opProjection, err)
	}
	norm, err := cmat.FrobeniusNorm(v)
	if err != nil {
		return nil, randomErrorf(opProjection, err)
	}
	// a Gaussian draw is zero with probability zero; guard regardless
	if norm == 0 {
		return g.OrthogonalProjection(n)
	}
	v, err = cmat.Scale(v, complex(1/norm, 0))
	if err != nil {
		return nil, randomErrorf(opProjection, err)
	}

	vd, err := cmat.Dagger(v)
	if err != nil {
		return nil, randomErrorf(opProjection, err)
	}

	return cmat.Mul(v, vd)
}

// DensityMatrix returns a random full-rank density matrix from the Ginibre
// ensemble: G·G† normalized to unit trace. Hermitian and PSD by
// construction; trace exactly 1 up to rounding.
// Errors: ErrBadQubitCount. Complexity: O(d³).
func (g *Generator) DensityMatrix(n int) (*cmat.Dense, error) {
	if err := validQubits(n); err != nil {
		return nil, randomErrorf(opDensity, err)
	}

	return g.ginibreDensity(cmat.QubitDim(n), cmat.QubitDim(n), false, opDensity)
}

// ginibreDensity is the shared purification kernel: draw G of shape
// d×rank (complex or real), return G·G†/Tr(G·G†).
func (g *Generator) ginibreDensity(d, rank int, isReal bool, opTag string) (*cmat.Dense, error) {
	var gin *cmat.Dense
	var err error
	if isReal {
		gin, err = g.GinibreReal(d, rank)
	} else {
		gin, err = g.Ginibre(d, rank)
	}
	if err != nil {
		return nil, randomErrorf(opTag, err)
	}

	gd, err := cmat.Dagger(gin)
	if err != nil {
		return nil, randomErrorf(opTag, err)
	}
	rho, err := cmat.Mul(gin, gd)
	if err != nil {
		return nil, randomErrorf(opTag, err)
	}
	tr, err := cmat.Trace(rho)
	if err != nil {
		return nil, randomErrorf(opTag, err)
	}
	// Tr(G·G†) = ‖G‖²_F > 0 almost surely; re-draw the measure-zero case
	if real(tr) == 0 {
		return g.ginibreDensity(d, rank, isReal, opTag)
	}

	return cmat.Scale(rho, complex(1/real(tr), 0))
}

// HaarUnitary returns a 2ⁿ×2ⁿ unitary distributed with the Haar measure
// on U(2ⁿ): QR-factorize a complex Ginibre draw and multiply Q by the
// diagonal phase correction Λ_jj = R_jj/|R_jj| (Mezzadri). The correction
// is required — raw QR output is not Haar-distributed without it.
// Errors: ErrBadQubitCount. Complexity: O(d³).
func (g *Generator) HaarUnitary(n int) (*cmat.Dense, error) {
	if err := validQubits(n); err != nil {
		return nil, randomErrorf(opHaarUnitary, err)
	}
	d := cmat.QubitDim(n)

	z, err := g.Ginibre(d, d)
	if err != nil {
		return nil, randomErrorf(opHaarUnitary, err)
	}
	q, r, err := qr(z)
	if err != nil {
		return nil, randomErrorf(opHaarUnitary, err)
	}
	phaseCorrect(q, r)

	return q, nil
}

// Unitary is an alias for HaarUnitary; the distribution is Haar-uniform
// either way.
func (g *Generator) Unitary(n int) (*cmat.Dense, error) { return g.HaarUnitary(n) }

// HaarOrthogonal returns a 2ⁿ×2ⁿ real orthogonal matrix distributed with
// the Haar measure on O(2ⁿ): same QR construction from a real Ginibre
// draw, with the phase correction degenerating to the sign of R_jj.
// Errors: ErrBadQubitCount. Complexity: O(d³).
func (g *Generator) HaarOrthogonal(n int) (*cmat.Dense, error) {
	if err := validQubits(n); err != nil {
		return nil, randomErrorf(opHaarOrtho, err)
	}
	d := cmat.QubitDim(n)

	z, err := g.GinibreReal(d, d)
	if err != nil {
		return nil, randomErrorf(opHaarOrtho, err)
	}
	q, r, err := qr(z)
	if err != nil {
		return nil, randomErrorf(opHaarOrtho, err)
	}
	phaseCorrect(q, r)

	return q, nil
}

// HaarStateVector returns a Haar-random state vector of dimension 2ⁿ: the
// first column of a Haar unitary (orthogonal when isReal), uniformly
// distributed on the unit sphere.
// Errors: ErrBadQubitCount. Complexity: O(d³).
func (g *Generator) HaarStateVector(n int, isReal bool) (*cmat.Dense, error) {
	var u *cmat.Dense
	var err error
	if isReal {
		u, err = g.HaarOrthogonal(n)
	} else {
		u, err = g.HaarUnitary(n)
	}
	if err != nil {
		return nil, randomErrorf(opHaarState, err)
	}

	d := u.Rows()
	v, err := cmat.NewDense(d, 1)
	if err != nil {
		return nil, randomErrorf(opHaarState, err)
	}
	src, dst := u.RawData(), v.RawData()
	for i := 0; i < d; i++ {
		dst[i] = src[i*d] // column 0
	}

	return v, nil
}

// HaarDensityOperator returns a random rank-constrained density operator:
// draw a 2ⁿ×rank Ginibre matrix G (real when isReal) and normalize G·G† to
// unit trace — the partial-trace-of-purification construction. rank 0
// selects the full rank 2ⁿ, generalizing DensityMatrix.
//
// Errors: ErrBadQubitCount (n < 0), ErrBadRank (rank outside [1, 2ⁿ]).
// Complexity: O(d²·rank).
func (g *Generator) HaarDensityOperator(n, rank int, isReal bool) (*cmat.Dense, error) {
	if err := validQubits(n); err != nil {
		return nil, randomErrorf(opHaarDensity, err)
	}
	d := cmat.QubitDim(n)
	if rank == 0 {
		rank = d // default: full rank
	}
	if rank < 1 || rank > d {
		return nil, randomErrorf(opHaarDensity, ErrBadRank)
	}

	return g.ginibreDensity(d, rank, isReal, opHaarDensity)
}

// UnitaryHermitian returns an operator that is simultaneously Hermitian
// and unitary: draw a random Hermitian matrix and snap every eigenvalue to
// its sign, so the spectrum is exactly {−1, +1}.
// Errors: ErrBadQubitCount. Complexity: O(d³).
func (g *Generator) UnitaryHermitian(n int) (*cmat.Dense, error) {
	if err := validQubits(n); err != nil {
		return nil, randomErrorf(opUnitaryHerm, err)
	}

	h, err := g.Hermitian(n)
	if err != nil {
		return nil, randomErrorf(opUnitaryHerm, err)
	}
	u, err := spectral.HermTransform(func(x float64) float64 {
		if x < 0 {
			return -1
		}

		return 1 // a zero eigenvalue (measure zero) maps to +1
	}, h)
	if err != nil {
		return nil, randomErrorf(opUnitaryHerm, err)
	}

	return u, nil
}

// UnitaryWithHermitianBlock returns a 2ⁿ×2ⁿ unitary whose top-left
// 2ⁿ⁻¹×2ⁿ⁻¹ block is a Hermitian operator — the canonical fixture for
// exercising block-encoding consumers. The block is drawn on n−1 qubits:
// Hermitian-unitary (±1 spectrum) when isUnitary, otherwise a random
// Hermitian rescaled to operator norm 1 so the dilation exists.
//
// Errors: ErrBadQubitCount (n < 1 — one qubit is consumed as the ancilla).
// Complexity: O(d³).
func (g *Generator) UnitaryWithHermitianBlock(n int, isUnitary bool) (*cmat.Dense, error) {
	if n < 1 {
		return nil, randomErrorf(opUnitaryBlock, ErrBadQubitCount)
	}

	var h *cmat.Dense
	var err error
	if isUnitary {
		h, err = g.UnitaryHermitian(n - 1)
	} else {
		h, err = g.Hermitian(n - 1)
		if err == nil {
			var norm float64
			norm, err = spectral.OperatorNorm(h)
			if err == nil && norm > 0 {
				h, err = cmat.Scale(h, complex(1/norm, 0))
			}
		}
	}
	if err != nil {
		return nil, randomErrorf(opUnitaryBlock, err)
	}

	u, err := blockenc.HermBlockEncoding(h, 1)
	if err != nil {
		return nil, randomErrorf(opUnitaryBlock, err)
	}

	return u, nil
}
