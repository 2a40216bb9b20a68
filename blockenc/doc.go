// Package blockenc embeds norm-bounded Hermitian operators into larger
// unitaries — block encodings — so they can be manipulated by consumers
// that only speak unitary operations.
//
// For a Hermitian H with operator norm ≤ 1 and one ancilla qubit, the
// canonical dilation
//
//	U = [ H        √(I−H²) ]
//	    [ √(I−H²)  −H      ]
//
// is simultaneously Hermitian and unitary, and its top-left block is H
// exactly. √(I−H²) is the PSD principal square root taken on H's spectrum
// (spectral.SqrtPSD), so it commutes with H and the 2×2 block algebra
// closes. Ancilla dimension beyond the minimal factor of two is padded
// with an identity block.
//
// Callers are responsible for rescaling: an H with ‖H‖ > 1 has no unitary
// dilation and is rejected, not normalized silently.
package blockenc
