// Package qlinalg is a dense complex linear-algebra toolbox for quantum
// computing — operator predicates, Haar-uniform sampling, spectral
// transforms and basis decompositions, all on plain complex matrices.
//
// 🚀 What is qlinalg?
//
//	A stateless, call/return numeric library that brings together:
//		• Operator algebra: dagger, Kronecker products, direct sums, norms
//		• Predicates: Hermitian, unitary, projector, PSD, state & density checks
//		• Spectral transforms: f(H) via eigendecomposition with degeneracy-safe
//		  eigenvalue clustering (matrix sqrt, exp, pseudo-inverse, ...)
//		• Random matrices: Ginibre, Haar unitary/orthogonal (Mezzadri QR),
//		  Haar states & density operators — all from an explicit seedable source
//		• Pauli & subsystem basis decomposition
//		• Block encoding of norm-bounded Hermitian operators
//		• Quantum information: partial trace/transpose, fidelities, entropies
//
// ✨ Why choose qlinalg?
//
//   - Explicit tolerances – every predicate takes its eps, defaults documented
//   - Deterministic – seedable random sources, fixed loop orders, no globals
//   - Pure Go surface – gonum under the hood, dense matrices in and out
//   - Honest errors – sentinel errors via errors.Is, predicates never panic
//
// Everything is organized under topic subpackages:
//
//	cmat/      — complex Dense matrix type + algebraic combinators
//	spectral/  — Hermitian eigendecomposition & functional calculus
//	predicate/ — structural validators with tagged status results
//	random/    — structured random matrix & state generators
//	pauli/     — Pauli and two-subsystem basis decomposition
//	blockenc/  — unitary block encodings
//	qinfo/     — quantum-information functionals on density operators
//
// Quick sketch:
//
//	    g := random.New(42)
//	    u, _ := g.HaarUnitary(2)               // 4×4 Haar-uniform unitary
//	    predicate.IsUnitary(u, 1e-9)           // true
//	    c, _ := pauli.Decompose(u)             // 16 Pauli coefficients
//
// Dominant costs are eigendecomposition and QR, both O(d³) with d = 2ⁿ;
// the cubic scaling — not concurrency — bounds the practical qubit count.
//
//	go get github.com/katalvlaran/qlinalg
package qlinalg
