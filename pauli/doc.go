// Package pauli generates the Pauli operator basis and decomposes
// operators over it — plus a generic two-subsystem decomposition under a
// caller-supplied inner product.
//
// 🚀 What is pauli?
//
//	• Basis(n)      — all 4ⁿ n-fold Kronecker products of {I, X, Y, Z} in
//	  fixed lexicographic order (I=0, X=1, Y=2, Z=3 per tensor position,
//	  leftmost position most significant), each scaled by 1/√(2ⁿ) so the
//	  family is orthonormal under ⟨A,B⟩ = Tr(A†·B).
//	• Decompose(M)  — coefficients c_k = ⟨P_k, M⟩ in basis order, with the
//	  exact reconstruction M = Σ c_k·P_k (orthonormal basis, no residual).
//	• SubsystemDecompose(M, {eᵢ}, {fⱼ}, inner) — the coefficient matrix
//	  β_ij = inner(eᵢ⊗fⱼ, M) for arbitrary bases of two factors, under
//	  whatever pairing the caller supplies (HSInnerProduct is the canonical
//	  choice for orthonormal bases).
//
// The basis order is part of the contract: coefficient positions are only
// meaningful against Basis(n) of the same n, and the left-to-right tensor
// fold of cmat.NKron fixes the index layout.
//
// ⚙️ Usage:
//
//	basis, _ := pauli.Basis(2)            // 16 elements, 4×4 each
//	coeffs, _ := pauli.Decompose(m)       // ⟨P_k, m⟩ for each k
//
// Complexity: Basis(n) materializes 4ⁿ matrices of 4ⁿ entries each —
// O(16ⁿ) memory — so basis-level work is practical only for small n.
package pauli
