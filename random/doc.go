// Package random provides structured random matrix and state generators:
// Ginibre ensembles, random Hermitian operators, Haar-uniform unitary and
// orthogonal matrices, Haar states and random density operators.
//
// 🚀 What is random?
//
//	The sampling side of qlinalg. Every constructor guarantees — not merely
//	assumes — the structural property in its name:
//	  • Hermitian            — (A + A†)/2 symmetrization of a Ginibre draw
//	  • OrthogonalProjection — v·v† for a random unit vector (rank 1)
//	  • DensityMatrix        — G·G†/Tr(G·G†), the Ginibre density ensemble
//	  • HaarUnitary / HaarOrthogonal — Mezzadri's QR algorithm with the
//	    diagonal phase (resp. sign) correction; raw QR output is NOT
//	    Haar-distributed without it
//	  • HaarStateVector      — first column of a Haar draw: uniform on the
//	    unit sphere
//	  • HaarDensityOperator  — d×rank Ginibre purification, any rank
//	  • UnitaryHermitian     — spectrum snapped to ±1, so simultaneously
//	    Hermitian and unitary
//	  • UnitaryWithHermitianBlock — a unitary whose top-left block is a
//	    Hermitian operator, for exercising block-encoding consumers
//
// 🎲 Explicit randomness:
//
//	There is no package-level generator and no hidden global state. A
//	Generator is bound to an explicit, seedable rand.Source
//	(golang.org/x/exp/rand) feeding a gonum distuv.Normal sampler; two
//	Generators with the same seed produce bit-identical streams, and
//	distinct Generators may run on distinct goroutines with no
//	coordination. A single Generator is NOT safe for concurrent use —
//	sources are stateful by nature.
//
// ⚙️ Usage:
//
//	g := random.New(42)
//	u, err := g.HaarUnitary(3)        // 8×8, ‖U·U† − I‖ ~ 1e-15
//	rho, err := g.HaarDensityOperator(2, 1, false) // random pure state
//
// All generators fail fast on malformed input (negative qubit count, rank
// outside [1, 2ⁿ]) with sentinel errors. Costs are dominated by the O(d³)
// QR / eigendecomposition steps, d = 2ⁿ.
package random
