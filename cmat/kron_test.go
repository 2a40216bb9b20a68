package cmat_test

import (
	"testing"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDirectSum_Exact pins the documented example:
// A = [[1,2],[3,4]], B = [[5]] → [[1,2,0],[3,4,0],[0,0,5]] exactly.
func TestDirectSum_Exact(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustRows(t, [][]complex128{{5}})

	got, err := cmat.DirectSum(a, b)
	require.NoError(t, err)

	want := mustRows(t, [][]complex128{
		{1, 2, 0},
		{3, 4, 0},
		{0, 0, 5},
	})
	assert.True(t, got.Equal(want, 0), "direct sum must be exact, got %v", got)
}

// TestDirectSum_Rectangular verifies rectangular blocks are allowed and the
// result shape is (rA+rB)×(cA+cB).
func TestDirectSum_Rectangular(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2, 3}})       // 1×3
	b := mustRows(t, [][]complex128{{4i}, {5}, {6i}}) // 3×1

	got, err := cmat.DirectSum(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rows())
	assert.Equal(t, 4, got.Cols())

	v, err := got.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 4i, v, "B block starts at (rA, cA)")
	v, err = got.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v, "off-diagonal blocks are zero")
}

// TestNKron_PauliXX checks X ⊗ X against its known 4×4 form.
func TestNKron_PauliXX(t *testing.T) {
	x := mustRows(t, [][]complex128{{0, 1}, {1, 0}})

	got, err := cmat.NKron(x, x)
	require.NoError(t, err)

	want := mustRows(t, [][]complex128{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	})
	assert.True(t, got.Equal(want, 0))
}

// TestNKron_Associativity verifies NKron(A,B,C) == NKron(NKron(A,B),C)
// elementwise within 1e-9 for fixed 2×2 complex matrices.
func TestNKron_Associativity(t *testing.T) {
	a := mustRows(t, [][]complex128{{0.3 + 0.1i, -1.2}, {0.5i, 0.7}})
	b := mustRows(t, [][]complex128{{1.1, 0.4i}, {-0.2, 0.9 - 0.3i}})
	c := mustRows(t, [][]complex128{{0.6, -0.8i}, {1.3i, 0.2}})

	all, err := cmat.NKron(a, b, c)
	require.NoError(t, err)

	ab, err := cmat.NKron(a, b)
	require.NoError(t, err)
	paired, err := cmat.NKron(ab, c)
	require.NoError(t, err)

	assert.Equal(t, 8, all.Rows())
	assert.True(t, all.Equal(paired, 1e-9), "left fold must match explicit pairing")
}

// TestNKron_SingleAndErrors covers the one-operand clone and the guards.
func TestNKron_SingleAndErrors(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2}})

	single, err := cmat.NKron(a)
	require.NoError(t, err)
	assert.True(t, single.Equal(a, 0))
	require.NoError(t, single.Set(0, 0, 9))
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v, "single-operand result must be a copy")

	_, err = cmat.NKron()
	assert.ErrorIs(t, err, cmat.ErrTooFewOperands)
	_, err = cmat.NKron(a, nil)
	assert.ErrorIs(t, err, cmat.ErrNilMatrix)
}

// TestNKron_MulHomomorphism checks (A⊗B)(C⊗D) == (AC)⊗(BD), the identity
// every multi-qubit gate construction relies on.
func TestNKron_MulHomomorphism(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 1i}, {0, 2}})
	b := mustRows(t, [][]complex128{{0, 1}, {1, 0}})
	c := mustRows(t, [][]complex128{{2, 0}, {1i, 1}})
	d := mustRows(t, [][]complex128{{1, -1i}, {0, 1}})

	ab, err := cmat.NKron(a, b)
	require.NoError(t, err)
	cd, err := cmat.NKron(c, d)
	require.NoError(t, err)
	left, err := cmat.Mul(ab, cd)
	require.NoError(t, err)

	ac, err := cmat.Mul(a, c)
	require.NoError(t, err)
	bd, err := cmat.Mul(b, d)
	require.NoError(t, err)
	right, err := cmat.NKron(ac, bd)
	require.NoError(t, err)

	assert.True(t, left.Equal(right, 1e-9))
}
