// Package spectral provides Hermitian eigendecomposition and the functional
// calculus built on it: apply any scalar function to a Hermitian operator's
// spectrum, with eigenvalue clustering that keeps degenerate eigenspaces
// stable under floating-point noise.
//
// 🚀 What is spectral?
//
//	The eigendecomposition backend of qlinalg:
//	  • Eigh        — eigenvalues + orthogonal eigenspace projectors
//	  • Eigenvalues — just the (ascending, multiplicity-repeated) spectrum
//	  • HermTransform — Σ f(λᵢ)·Pᵢ for an arbitrary f: ℝ → ℝ
//	  • SqrtPSD     — principal square root of a positive-semidefinite input
//	  • OperatorNorm — largest singular value (largest |λ| when Hermitian)
//
// 🧮 How it works:
//
//	A d×d Hermitian H = X + iY is embedded as the 2d×2d real symmetric
//	S = [[X, −Y], [Y, X]] and factorized with gonum's mat.EigenSym. The
//	embedding is an algebra homomorphism that commutes with multiplication
//	by i, so every eigenvalue of H shows up exactly twice in S and every
//	eigenspace projector of S is the embedded image of the complex
//	projector — which is read straight off the real blocks, no complex
//	Gram–Schmidt required.
//
// ⚠️ Why clustering is not optional:
//
//	Mapping nearly-equal eigenvalues through f independently turns floating
//	noise into spurious discontinuities (think f(x)=1/x near a degenerate
//	eigenvalue). Eigenvalues are therefore grouped within a cluster
//	tolerance first, and f is applied once per group to a representative
//	value. The same tolerance pairs up the doubled spectrum of the
//	embedding. Tune it with WithClusterTol when the default (relative,
//	1e-8-scaled) does not fit.
//
// ⚙️ Usage:
//
//	inv, err := spectral.HermTransform(func(x float64) float64 { return 1 / x },
//	    h, spectral.WithIgnoreZero())   // Moore–Penrose pseudo-inverse
//
// Complexity: O(d³) time, O(d²) memory per decomposition — the scaling
// limit of the whole library.
package spectral
