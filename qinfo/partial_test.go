package qinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/qinfo"
)

func mustRows(t *testing.T, rows [][]complex128) *cmat.Dense {
	t.Helper()
	m, err := cmat.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// bellState returns |Φ⁺⟩⟨Φ⁺| on two qubits.
func bellState(t *testing.T) *cmat.Dense {
	t.Helper()
	return mustRows(t, [][]complex128{
		{0.5, 0, 0, 0.5},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0.5, 0, 0, 0.5},
	})
}

func TestPartialTrace_ProductState(t *testing.T) {
	rhoA := mustRows(t, [][]complex128{{0.25, 0}, {0, 0.75}})
	rhoB := mustRows(t, [][]complex128{{0.5, 0.2}, {0.2, 0.5}})
	joint, err := cmat.NKron(rhoA, rhoB)
	require.NoError(t, err)

	// Tracing out one factor of a product state recovers the other.
	gotB, err := qinfo.PartialTrace(joint, 2, 2, qinfo.SystemA)
	require.NoError(t, err)
	assert.True(t, gotB.Equal(rhoB, 1e-12))

	gotA, err := qinfo.PartialTrace(joint, 2, 2, qinfo.SystemB)
	require.NoError(t, err)
	assert.True(t, gotA.Equal(rhoA, 1e-12))
}

func TestPartialTrace_BellIsMaximallyMixed(t *testing.T) {
	reduced, err := qinfo.PartialTrace(bellState(t), 2, 2, qinfo.SystemB)
	require.NoError(t, err)

	half := mustRows(t, [][]complex128{{0.5, 0}, {0, 0.5}})
	assert.True(t, reduced.Equal(half, 1e-12))
}

func TestPartialTrace_UnevenSplit(t *testing.T) {
	// 2⊗3 system: trace out the qutrit.
	rhoA := mustRows(t, [][]complex128{{0.3, 0.1i}, {-0.1i, 0.7}})
	rhoB := mustRows(t, [][]complex128{
		{0.2, 0, 0}, {0, 0.3, 0}, {0, 0, 0.5},
	})
	joint, err := cmat.NKron(rhoA, rhoB)
	require.NoError(t, err)

	got, err := qinfo.PartialTrace(joint, 2, 3, qinfo.SystemB)
	require.NoError(t, err)
	assert.True(t, got.Equal(rhoA, 1e-12))
}

func TestPartialTrace_Rejections(t *testing.T) {
	rho := bellState(t)

	_, err := qinfo.PartialTrace(rho, 3, 2, qinfo.SystemA)
	require.ErrorIs(t, err, qinfo.ErrBadSplit)

	_, err = qinfo.PartialTrace(rho, 2, 2, qinfo.System(7))
	require.ErrorIs(t, err, qinfo.ErrBadSystem)

	rect := mustRows(t, [][]complex128{{1, 0, 0}, {0, 1, 0}})
	_, err = qinfo.PartialTrace(rect, 1, 3, qinfo.SystemA)
	require.ErrorIs(t, err, cmat.ErrNonSquare)
}

func TestPartialTraceKeep_ScatteredQubits(t *testing.T) {
	a := mustRows(t, [][]complex128{{0.25, 0}, {0, 0.75}})
	b := mustRows(t, [][]complex128{{0.5, 0.2}, {0.2, 0.5}})
	c := mustRows(t, [][]complex128{{0.9, 0.1i}, {-0.1i, 0.1}})
	ab, err := cmat.NKron(a, b)
	require.NoError(t, err)
	joint, err := cmat.NKron(ab, c)
	require.NoError(t, err)

	// Keeping {0, 2} traces out the middle factor.
	ac, err := cmat.NKron(a, c)
	require.NoError(t, err)
	got, err := qinfo.PartialTraceKeep(joint, []int{0, 2})
	require.NoError(t, err)
	assert.True(t, got.Equal(ac, 1e-12))

	// Keep order does not matter: the surviving qubits stay ascending.
	swapped, err := qinfo.PartialTraceKeep(joint, []int{2, 0})
	require.NoError(t, err)
	assert.True(t, swapped.Equal(ac, 1e-12))

	// A single survivor reduces to that factor.
	mid, err := qinfo.PartialTraceKeep(joint, []int{1})
	require.NoError(t, err)
	assert.True(t, mid.Equal(b, 1e-12))
}

func TestPartialTraceKeep_EmptyAndErrors(t *testing.T) {
	rho := bellState(t)

	// Empty keep leaves the state untouched.
	same, err := qinfo.PartialTraceKeep(rho, nil)
	require.NoError(t, err)
	assert.True(t, same.Equal(rho, 0))

	_, err = qinfo.PartialTraceKeep(rho, []int{2})
	require.ErrorIs(t, err, qinfo.ErrBadSystem)
	_, err = qinfo.PartialTraceKeep(rho, []int{0, 0})
	require.ErrorIs(t, err, qinfo.ErrBadSystem)

	odd := mustRows(t, [][]complex128{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	})
	_, err = qinfo.PartialTraceKeep(odd, []int{0})
	require.ErrorIs(t, err, qinfo.ErrBadSplit)
}

func TestPermuteSystems_SwapFactors(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2i}, {-2i, 3}})
	b := mustRows(t, [][]complex128{{0, 1 + 1i}, {1 - 1i, -2}})
	ab, err := cmat.NKron(a, b)
	require.NoError(t, err)

	// Swapping the two factors turns A⊗B into B⊗A.
	got, err := qinfo.PermuteSystems(ab, []int{1, 0}, []int{2, 2})
	require.NoError(t, err)
	ba, err := cmat.NKron(b, a)
	require.NoError(t, err)
	assert.True(t, got.Equal(ba, 0))

	// The identity permutation is a no-op.
	same, err := qinfo.PermuteSystems(ab, []int{0, 1}, []int{2, 2})
	require.NoError(t, err)
	assert.True(t, same.Equal(ab, 0))
}

func TestPermuteSystems_MixedDimensions(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 0}, {0, -1}})
	b := mustRows(t, [][]complex128{
		{2, 0, 0}, {0, 3, 0}, {0, 0, 5},
	})
	ab, err := cmat.NKron(a, b)
	require.NoError(t, err)

	got, err := qinfo.PermuteSystems(ab, []int{1, 0}, []int{2, 3})
	require.NoError(t, err)
	ba, err := cmat.NKron(b, a)
	require.NoError(t, err)
	assert.True(t, got.Equal(ba, 0))
}

func TestPermuteSystems_Rejections(t *testing.T) {
	rho := bellState(t)

	_, err := qinfo.PermuteSystems(rho, []int{0}, []int{2, 2})
	require.ErrorIs(t, err, qinfo.ErrBadPermutation)
	_, err = qinfo.PermuteSystems(rho, []int{0, 0}, []int{2, 2})
	require.ErrorIs(t, err, qinfo.ErrBadPermutation)
	_, err = qinfo.PermuteSystems(rho, []int{1, 0}, []int{2, 3})
	require.ErrorIs(t, err, qinfo.ErrBadSplit)
}

func TestPartialTranspose_KnownLayout(t *testing.T) {
	rho := mustRows(t, [][]complex128{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	got, err := qinfo.PartialTranspose(rho, 2, 2, qinfo.SystemA)
	require.NoError(t, err)

	want := mustRows(t, [][]complex128{
		{1, 2, 9, 10},
		{5, 6, 13, 14},
		{3, 4, 11, 12},
		{7, 8, 15, 16},
	})
	assert.True(t, got.Equal(want, 0))
}

func TestPartialTranspose_Involution(t *testing.T) {
	rho := bellState(t)
	once, err := qinfo.PartialTranspose(rho, 2, 2, qinfo.SystemB)
	require.NoError(t, err)
	twice, err := qinfo.PartialTranspose(once, 2, 2, qinfo.SystemB)
	require.NoError(t, err)
	assert.True(t, twice.Equal(rho, 0))
}

func TestPartialTranspose_ProductFactorizes(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2i}, {3, 4}})
	b := mustRows(t, [][]complex128{{0, 1}, {-1i, 2}})
	joint, err := cmat.NKron(a, b)
	require.NoError(t, err)

	// (A⊗B)^{T_B} = A ⊗ Bᵀ.
	got, err := qinfo.PartialTranspose(joint, 2, 2, qinfo.SystemB)
	require.NoError(t, err)
	bt, err := cmat.Transpose(b)
	require.NoError(t, err)
	want, err := cmat.NKron(a, bt)
	require.NoError(t, err)
	assert.True(t, got.Equal(want, 0))
}
