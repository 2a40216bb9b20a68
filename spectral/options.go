// SPDX-License-Identifier: MIT
// Package spectral: functional options for the decomposition facades.
// Mirrors the package-wide convention: Options holds resolved knobs,
// With* constructors mutate them, DefaultOptions documents the defaults.

package spectral

// DefaultHermEps is the Frobenius tolerance within which an input must
// match its conjugate transpose to be accepted as Hermitian. It matches
// the library-wide Hermitian predicate default.
const DefaultHermEps = 1e-6

// defaultClusterScale sets the automatic cluster tolerance:
// tol = defaultClusterScale * max(1, max|λ|). Relative scaling keeps the
// grouping meaningful for spectra far from unit magnitude; the max(1, ...)
// floor keeps it sane for near-zero spectra.
const defaultClusterScale = 1e-8

// Options collects the resolved spectral knobs.
//
// Fields:
//   - ClusterTol — eigenvalue grouping tolerance. 0 (the default) selects
//     the automatic relative tolerance described above.
//   - HermEps    — Hermiticity acceptance tolerance (Frobenius).
//   - IgnoreZero — HermTransform only: eigenspaces with |λ| ≤ cluster
//     tolerance are excluded from the sum entirely (not mapped through f).
type Options struct {
	ClusterTol float64
	HermEps    float64
	IgnoreZero bool
}

// Option mutates Options. Apply via the With* constructors only.
type Option func(*Options)

// DefaultOptions returns the documented defaults: automatic cluster
// tolerance, HermEps = DefaultHermEps, IgnoreZero = false.
func DefaultOptions() Options {
	return Options{ClusterTol: 0, HermEps: DefaultHermEps, IgnoreZero: false}
}

// WithClusterTol overrides the eigenvalue grouping tolerance with an
// absolute value. Non-positive values fall back to the automatic choice.
func WithClusterTol(tol float64) Option {
	return func(o *Options) { o.ClusterTol = tol }
}

// WithHermitianEps overrides the Hermiticity acceptance tolerance.
func WithHermitianEps(eps float64) Option {
	return func(o *Options) { o.HermEps = eps }
}

// WithIgnoreZero makes HermTransform skip (near-)zero eigenspaces instead
// of mapping them through f. This is what turns f(x)=1/x into the
// Moore–Penrose pseudo-inverse rather than a division by zero.
func WithIgnoreZero() Option {
	return func(o *Options) { o.IgnoreZero = true }
}

// gatherOptions folds user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
