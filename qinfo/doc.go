// Package qinfo computes standard information measures of density
// operators: subsystem reductions, entropies, distances, fidelities, and
// entanglement monotones.
//
// 🚀 What is qinfo?
//
//	• Reductions   — PartialTrace and PartialTranspose on an explicit
//	  dimA×dimB bipartition, acting on either factor (SystemA / SystemB);
//	  PartialTraceKeep for scattered qubit subsets; PermuteSystems for
//	  reordering tensor factors of mixed dimensions.
//	• Scalars      — Purity Tr(ρ²), VonNeumannEntropy, RelativeEntropy,
//	  TraceDistance ½‖ρ−σ‖₁, StateFidelity Tr√(√ρ·σ·√ρ), GateFidelity
//	  |Tr(U·V†)|/d.
//	• Entanglement — Negativity and LogarithmicNegativity of the balanced
//	  bipartition, and the IsPPT positivity check built on them.
//	• Channels     — IsChoi gates a candidate Choi operator on complete
//	  positivity and the trace-non-increasing marginal.
//
// Every spectral quantity routes through the spectral package, so the
// Hermiticity preconditions and eigenvalue clustering documented there
// apply here too. Inputs are taken at face value: callers who need a
// genuine density operator should gate with predicate.IsDensityMatrix
// first — qinfo validates shapes and splits, not physicality.
//
// ⚙️ Usage:
//
//	rhoB, err := qinfo.PartialTrace(rho, 2, 4, qinfo.SystemA)
//	s, err := qinfo.VonNeumannEntropy(rho, 2)
//	d, err := qinfo.TraceDistance(rho, sigma)
//
// Complexity: the reductions are O(d²)–O(d³); every eigenvalue-backed
// measure inherits the O(d³) factorization cost.
package qinfo
