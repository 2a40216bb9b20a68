package pauli_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/pauli"
)

func mustRows(t *testing.T, rows [][]complex128) *cmat.Dense {
	t.Helper()
	m, err := cmat.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestBasis_CountAndShape(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 4, 2: 16, 3: 64} {
		basis, err := pauli.Basis(n)
		require.NoError(t, err)
		assert.Len(t, basis, want, "4^%d elements", n)
		for _, p := range basis {
			assert.Equal(t, cmat.QubitDim(n), p.Rows())
			assert.Equal(t, cmat.QubitDim(n), p.Cols())
		}
	}
}

func TestBasis_NegativeQubitCount(t *testing.T) {
	_, err := pauli.Basis(-1)
	require.ErrorIs(t, err, pauli.ErrBadQubitCount)
}

func TestBasis_OrderSingleQubit(t *testing.T) {
	basis, err := pauli.Basis(1)
	require.NoError(t, err)

	s := complex(1/math.Sqrt2, 0)
	want := []*cmat.Dense{
		mustRows(t, [][]complex128{{s, 0}, {0, s}}),   // I
		mustRows(t, [][]complex128{{0, s}, {s, 0}}),   // X
		mustRows(t, [][]complex128{{0, -1i * s}, {1i * s, 0}}), // Y
		mustRows(t, [][]complex128{{s, 0}, {0, -s}}),  // Z
	}
	for k := range want {
		assert.True(t, basis[k].Equal(want[k], 1e-12), "element %d", k)
	}
}

func TestBasis_OrderTwoQubit(t *testing.T) {
	basis, err := pauli.Basis(2)
	require.NoError(t, err)

	// Index 6 is "12" in base 4, so X at the leftmost position, Y at the
	// rightmost; the product carries the 1/2 normalization.
	x := mustRows(t, [][]complex128{{0, 1}, {1, 0}})
	y := mustRows(t, [][]complex128{{0, -1i}, {1i, 0}})
	xy, err := cmat.NKron(x, y)
	require.NoError(t, err)
	xy, err = cmat.Scale(xy, 0.5)
	require.NoError(t, err)

	assert.True(t, basis[6].Equal(xy, 1e-12))
}

func TestBasis_Orthonormal(t *testing.T) {
	for _, n := range []int{1, 2} {
		basis, err := pauli.Basis(n)
		require.NoError(t, err)
		for j := range basis {
			for k := range basis {
				got, err := cmat.HSInner(basis[j], basis[k])
				require.NoError(t, err)
				want := complex128(0)
				if j == k {
					want = 1
				}
				assert.InDelta(t, 0, cmplx.Abs(got-want), 1e-12, "n=%d ⟨P%d,P%d⟩", n, j, k)
			}
		}
	}
}

func TestDecompose_Roundtrip(t *testing.T) {
	m := mustRows(t, [][]complex128{
		{1 + 2i, -0.5, 3i, 0.25 - 1i},
		{0.75i, 2, -1 + 1i, 4},
		{-2i, 0.5 + 0.5i, -3, 1i},
		{1, -1, 2 - 2i, 0.125},
	})

	coeffs, err := pauli.Decompose(m)
	require.NoError(t, err)
	require.Len(t, coeffs, 16)

	basis, err := pauli.Basis(2)
	require.NoError(t, err)

	rebuilt, err := cmat.Zeros(4, 4)
	require.NoError(t, err)
	for k := range basis {
		term, err := cmat.Scale(basis[k], coeffs[k])
		require.NoError(t, err)
		rebuilt, err = cmat.Add(rebuilt, term)
		require.NoError(t, err)
	}
	assert.True(t, m.Equal(rebuilt, 1e-9))
}

func TestDecompose_KnownCoefficients(t *testing.T) {
	// Z/√2 is itself a basis element, so exactly one coefficient is 1.
	z := mustRows(t, [][]complex128{{1 / math.Sqrt2, 0}, {0, -1 / math.Sqrt2}})
	coeffs, err := pauli.Decompose(z)
	require.NoError(t, err)
	require.Len(t, coeffs, 4)
	assert.InDelta(t, 0, cmplx.Abs(coeffs[0]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(coeffs[1]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(coeffs[2]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(coeffs[3]-1), 1e-12)
}

func TestDecompose_BadShapes(t *testing.T) {
	rect := mustRows(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})
	_, err := pauli.Decompose(rect)
	require.ErrorIs(t, err, cmat.ErrNonSquare)

	odd := mustRows(t, [][]complex128{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	_, err = pauli.Decompose(odd)
	require.ErrorIs(t, err, pauli.ErrBadDimension)
}

func TestSubsystemDecompose_FactorsProduct(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2i}, {-2i, 3}})
	b := mustRows(t, [][]complex128{{0, 1 + 1i}, {1 - 1i, -2}})
	m, err := cmat.NKron(a, b)
	require.NoError(t, err)

	basis, err := pauli.Basis(1)
	require.NoError(t, err)

	coeffs, err := pauli.SubsystemDecompose(m, basis, basis, pauli.HSInnerProduct)
	require.NoError(t, err)
	require.Len(t, coeffs, 4)

	// ⟨eᵢ⊗fⱼ, A⊗B⟩ factorizes into ⟨eᵢ,A⟩·⟨fⱼ,B⟩.
	ca, err := pauli.Decompose(a)
	require.NoError(t, err)
	cb, err := pauli.Decompose(b)
	require.NoError(t, err)
	for i := range coeffs {
		require.Len(t, coeffs[i], 4)
		for j := range coeffs[i] {
			assert.InDelta(t, 0, cmplx.Abs(coeffs[i][j]-ca[i]*cb[j]), 1e-10, "β[%d][%d]", i, j)
		}
	}
}

func TestSubsystemDecompose_Errors(t *testing.T) {
	basis, err := pauli.Basis(1)
	require.NoError(t, err)
	m := mustRows(t, [][]complex128{
		{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1},
	})

	_, err = pauli.SubsystemDecompose(m, nil, basis, pauli.HSInnerProduct)
	require.ErrorIs(t, err, pauli.ErrEmptyBasis)

	_, err = pauli.SubsystemDecompose(m, basis, basis, nil)
	require.ErrorIs(t, err, pauli.ErrNilInnerProduct)

	small := mustRows(t, [][]complex128{{1, 0}, {0, 1}})
	_, err = pauli.SubsystemDecompose(small, basis, basis, pauli.HSInnerProduct)
	require.ErrorIs(t, err, pauli.ErrShapeMismatch)

	ragged := []*cmat.Dense{basis[0], mustRows(t, [][]complex128{{1, 0, 0}, {0, 1, 0}})}
	_, err = pauli.SubsystemDecompose(m, ragged, basis, pauli.HSInnerProduct)
	require.ErrorIs(t, err, pauli.ErrShapeMismatch)
}
