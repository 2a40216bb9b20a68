// Package cmat provides the dense complex matrix type and the algebraic
// combinators every other qlinalg package is built on.
//
// 🚀 What is cmat?
//
//	A row-major complex128 Dense matrix with the operator algebra needed
//	for quantum linear algebra:
//	  • Dagger (conjugate transpose), Transpose, Conj
//	  • Add / Sub / Mul / Scale / Trace
//	  • NKron — n-ary Kronecker product (fixed left-to-right fold)
//	  • DirectSum — block-diagonal composition, rectangular blocks allowed
//	  • AbsNorm — selectable norm kind, Frobenius by default
//	  • HSInner — Hilbert–Schmidt inner product ⟨A,B⟩ = Tr(A†B)
//
// ✨ Key properties:
//   - Value semantics: no combinator mutates its operands; every result is
//     a freshly allocated Dense.
//   - Fail-fast: malformed shapes return sentinel errors (errors.Is), never
//     a partial result.
//   - Deterministic: fixed loop orders, flat row-major traversal, no hidden
//     global state. Safe for unsynchronized concurrent use.
//
// ⚙️ Usage:
//
//	a, _ := cmat.NewDenseFromRows([][]complex128{{1, 2}, {3, 4}})
//	b, _ := cmat.Identity(2)
//	k, _ := cmat.NKron(a, b)            // 4×4 Kronecker product
//	n, _ := cmat.AbsNorm(k, cmat.NormFrobenius)
//
// AbsNorm defaults to Frobenius; the spectral (operator) norm requires an
// eigensolver and lives in package spectral.
//
// Shapes are plain (rows, cols); qubit semantics (dimension 2ⁿ) are only
// enforced where a qubit count must be inferred — see QubitCountFor.
package cmat
