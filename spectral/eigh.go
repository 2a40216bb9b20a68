// SPDX-License-Identifier: MIT
// Package spectral: Hermitian eigendecomposition via the real symmetric
// embedding, with tolerance-based eigenvalue clustering.
//
// Purpose:
//   - Turn a complex Hermitian operator into (eigenvalue, projector) pairs
//     robust against degenerate spectra.
//   - Back every functional-calculus and positivity routine in qlinalg.

package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qlinalg/cmat"
)

// Operation name constants for unified error wrapping.
const (
	opEigh         = "Eigh"
	opEigenvalues  = "Eigenvalues"
	opTransform    = "HermTransform"
	opSqrtPSD      = "SqrtPSD"
	opOperatorNorm = "OperatorNorm"
)

// spectralErrorf wraps err with an operation tag, preserving errors.Is.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Eigenspace is one (possibly degenerate) eigenspace of a Hermitian
// operator: a representative eigenvalue, the complex dimension of the
// space, and its orthogonal projector (Hermitian, idempotent, trace Dim).
type Eigenspace struct {
	Value     float64
	Dim       int
	Projector *cmat.Dense
}

// Decomposition is a clustered spectral decomposition H = Σ λᵢ·Pᵢ.
// Eigenspaces are ordered by ascending eigenvalue; projectors sum to the
// identity and their Dims sum to Dim. ClusterTol records the grouping
// tolerance actually used (resolved from options).
type Decomposition struct {
	Dim         int
	ClusterTol  float64
	Eigenspaces []Eigenspace
}

// hermDeviation returns ‖H − H†‖_F, the Frobenius distance to the nearest
// measurement of Hermiticity this package accepts. O(d²).
func hermDeviation(h *cmat.Dense) float64 {
	d := h.Rows()
	data := h.RawData()
	var acc float64
	var i, j int
	var diff complex128
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			diff = data[i*d+j] - cmplx.Conj(data[j*d+i])
			acc += real(diff)*real(diff) + imag(diff)*imag(diff)
		}
	}

	return math.Sqrt(acc)
}

// validateHermitian runs the fixed NotNil → Square → Hermitian sequence.
// Shape violations surface as cmat sentinels; ErrNotHermitian otherwise.
func validateHermitian(h *cmat.Dense, eps float64) error {
	if err := cmat.ValidateSquare(h); err != nil {
		return err
	}
	if hermDeviation(h) > eps {
		return ErrNotHermitian
	}

	return nil
}

// embed maps H = X + iY (d×d Hermitian) to the 2d×2d real symmetric
//
//	S = [ X  −Y ]
//	    [ Y   X ]
//
// The map is an algebra homomorphism commuting with multiplication by i,
// which is what makes the spectrum doubling and projector read-back below
// exact. O(d²).
func embed(h *cmat.Dense) *mat.SymDense {
	d := h.Rows()
	data := h.RawData()
	n := 2 * d
	flat := make([]float64, n*n)
	var i, j int
	var re, im float64
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			re, im = real(data[i*d+j]), imag(data[i*d+j])
			flat[i*n+j] = re        // X block
			flat[i*n+d+j] = -im     // −Y block
			flat[(d+i)*n+j] = im    // Y block
			flat[(d+i)*n+d+j] = re  // X block
		}
	}

	return mat.NewSymDense(n, flat)
}

// resolveClusterTol picks the grouping tolerance: the explicit option when
// positive, otherwise defaultClusterScale * max(1, max|λ|).
func resolveClusterTol(opt float64, paired []float64) float64 {
	if opt > 0 {
		return opt
	}
	maxAbs := 0.0
	if n := len(paired); n > 0 {
		// ascending order: extremes carry the largest moduli
		maxAbs = math.Max(math.Abs(paired[0]), math.Abs(paired[n-1]))
	}

	return defaultClusterScale * math.Max(1, maxAbs)
}

// factorize embeds h, runs gonum's symmetric eigensolver, and collapses the
// doubled spectrum into d paired eigenvalues (ascending). When withVectors
// is set the real eigenvector matrix is returned as well.
//
// Errors: ErrEigenFailed when the solver does not converge or when two
// supposedly identical copies of an eigenvalue land further apart than the
// cluster tolerance (inconsistent pairing).
func factorize(h *cmat.Dense, o Options, withVectors bool) ([]float64, *mat.Dense, float64, error) {
	var es mat.EigenSym
	if ok := es.Factorize(embed(h), withVectors); !ok {
		return nil, nil, 0, ErrEigenFailed
	}

	// Ascending real eigenvalues, each complex eigenvalue appearing twice.
	raw := es.Values(nil)
	d := h.Rows()
	paired := make([]float64, d)
	for i := 0; i < d; i++ {
		paired[i] = (raw[2*i] + raw[2*i+1]) / 2
	}

	tol := resolveClusterTol(o.ClusterTol, paired)
	for i := 0; i < d; i++ {
		if raw[2*i+1]-raw[2*i] > tol {
			return nil, nil, 0, ErrEigenFailed
		}
	}

	if !withVectors {
		return paired, nil, tol, nil
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return paired, &vecs, tol, nil
}

// Eigenvalues returns the spectrum of a Hermitian matrix: d real values in
// ascending order, degenerate values repeated per multiplicity.
//
// Inputs:
//   - h: Hermitian d×d matrix.
//   - opts: WithHermitianEps, WithClusterTol (pairing tolerance only).
//
// Errors:
//   - cmat.ErrNilMatrix / cmat.ErrNonSquare (shape), ErrNotHermitian,
//     ErrEigenFailed.
//
// Complexity: O(d³) time, O(d²) space.
func Eigenvalues(h *cmat.Dense, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := validateHermitian(h, o.HermEps); err != nil {
		return nil, spectralErrorf(opEigenvalues, err)
	}

	vals, _, _, err := factorize(h, o, false)
	if err != nil {
		return nil, spectralErrorf(opEigenvalues, err)
	}

	return vals, nil
}

// Eigh computes the clustered spectral decomposition of a Hermitian matrix.
//
// Implementation:
//   - Stage 1: Validate (NotNil → Square → Hermitian within HermEps).
//   - Stage 2: Factorize the real embedding with mat.EigenSym; pair the
//     doubled spectrum; resolve the cluster tolerance.
//   - Stage 3: Group ascending eigenvalues whose gaps stay within the
//     tolerance; for each group, accumulate the real projector from the
//     group's embedded eigenvectors and read the complex projector off its
//     (top-left, bottom-left) blocks.
//
// Behavior highlights:
//   - Projectors are exactly Hermitian by construction (symmetric real
//     accumulation), sum to the identity, and have trace ≈ group dimension.
//   - Grouping first, mapping later is what keeps degenerate spectra stable;
//     see the package comment.
//
// Inputs:
//   - h: Hermitian d×d matrix.
//   - opts: WithClusterTol, WithHermitianEps.
//
// Returns:
//   - *Decomposition: eigenspaces ascending by eigenvalue.
//
// Errors:
//   - cmat.ErrNilMatrix / cmat.ErrNonSquare, ErrNotHermitian, ErrEigenFailed.
//
// Determinism:
//   - Fixed traversal orders; gonum's symmetric solver is deterministic for
//     identical input bits.
//
// Complexity:
//   - Time O(d³), Space O(d²).
func Eigh(h *cmat.Dense, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)
	if err := validateHermitian(h, o.HermEps); err != nil {
		return nil, spectralErrorf(opEigh, err)
	}

	vals, vecs, tol, err := factorize(h, o, true)
	if err != nil {
		return nil, spectralErrorf(opEigh, err)
	}

	d := h.Rows()
	dec := &Decomposition{Dim: d, ClusterTol: tol}

	// Group maximal runs of eigenvalues with consecutive gaps ≤ tol.
	start := 0
	for start < d {
		end := start + 1
		for end < d && vals[end]-vals[end-1] <= tol {
			end++
		}

		// Representative value: mean over the group (stable for noise-split
		// degenerate eigenvalues).
		rep := 0.0
		for i := start; i < end; i++ {
			rep += vals[i]
		}
		rep /= float64(end - start)

		proj, perr := groupProjector(vecs, d, start, end)
		if perr != nil {
			return nil, spectralErrorf(opEigh, perr)
		}
		dec.Eigenspaces = append(dec.Eigenspaces, Eigenspace{
			Value:     rep,
			Dim:       end - start,
			Projector: proj,
		})

		start = end
	}

	return dec, nil
}

// groupProjector reassembles the complex orthogonal projector for the
// paired eigenvalue group [start, end): the embedded eigenvectors are real
// columns [2*start, 2*end) of vecs, their outer-product sum is the embedded
// projector ρ(P), and P is read off the real blocks
// P[j,k] = ρ(P)[j,k] + i·ρ(P)[d+j,k]. O(d²·groupSize).
func groupProjector(vecs *mat.Dense, d, start, end int) (*cmat.Dense, error) {
	proj, err := cmat.Zeros(d, d)
	if err != nil {
		return nil, err
	}
	out := proj.RawData()

	u := make([]float64, 2*d) // one embedded eigenvector at a time
	var col, r, j, k int
	var uj float64
	for col = 2 * start; col < 2*end; col++ {
		for r = 0; r < 2*d; r++ {
			u[r] = vecs.At(r, col)
		}
		for j = 0; j < d; j++ {
			uj = u[j]
			for k = 0; k < d; k++ {
				// real part from the top block, imaginary from the bottom
				out[j*d+k] += complex(uj*u[k], u[d+j]*u[k])
			}
		}
	}

	return proj, nil
}
