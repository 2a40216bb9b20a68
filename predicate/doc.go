// Package predicate provides the structural validators of qlinalg:
// pure, side-effect-free checks that classify a matrix as Hermitian,
// unitary, projector, positive-semidefinite, a valid state vector, or a
// valid density matrix — always with an explicit tolerance.
//
// 🚀 Two families:
//
//	Boolean predicates — IsHermitian, IsUnitary, IsProjector, IsPositive.
//	  Take (matrix, eps), return bool. Nil or ill-shaped input yields
//	  false, never a panic and never an error.
//
//	Report predicates — IsStateVector, IsDensityMatrix.
//	  Return a tagged status plus the inferred qubit count. The status
//	  constants carry the legacy negative codes as their numeric values,
//	  so callers can pattern-match exhaustively on the named variants and
//	  still interoperate with code that branches on the raw integers:
//
//	    StateValid(0) StateNotNormalized(−1) StateBadDimension(−2) StateNotAVector(−3)
//	    DensityValid(0) DensityNotPositive(−1) DensityBadTrace(−2)
//	    DensityBadDimension(−3) DensityNotSquare(−4)
//
//	  Without WithEps the quantitative checks (normalization, trace,
//	  positivity) are skipped; structural checks (vector shape, squareness,
//	  power-of-two dimension) always run.
//
// ⚖️ Default tolerances:
//
//	DefaultEps        = 1e-6  (Hermitian / positive / projector / state / density)
//	DefaultUnitaryEps = 1e-5  (unitary)
//
// The two defaults are intentionally distinct and must stay so: unitarity
// deviation compounds quadratically under matrix products, so its
// acceptance band is wider.
//
// ⚙️ Usage:
//
//	if predicate.IsUnitary(u, predicate.DefaultUnitaryEps) { ... }
//
//	status, n := predicate.IsStateVector(v, predicate.WithEps(1e-6))
//	switch status {
//	case predicate.StateValid:         // n qubits
//	case predicate.StateNotNormalized: // ‖v‖ off unit
//	case predicate.StateBadDimension:  // not a power of two
//	case predicate.StateNotAVector:    // not a column/row vector
//	}
//
// All norms are Frobenius. Complexity: O(d²) for the product-free checks,
// O(d³) where a product or an eigendecomposition is needed (IsProjector,
// IsUnitary, IsPositive, density positivity).
package predicate
