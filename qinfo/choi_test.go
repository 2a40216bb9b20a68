package qinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/qinfo"
)

// identityChoi returns Σᵢⱼ |ii⟩⟨jj|, the Choi operator of the one-qubit
// identity channel.
func identityChoi(t *testing.T) *cmat.Dense {
	t.Helper()
	return mustRows(t, [][]complex128{
		{1, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 1},
	})
}

func TestIsChoi_IdentityChannel(t *testing.T) {
	assert.True(t, qinfo.IsChoi(identityChoi(t)))
}

func TestIsChoi_FullyDepolarizing(t *testing.T) {
	// Choi of the fully depolarizing channel is I/2 ⊗ ... = I₄/2: PSD with
	// input marginal exactly I.
	depol, err := cmat.Identity(4)
	require.NoError(t, err)
	depol, err = cmat.Scale(depol, 0.5)
	require.NoError(t, err)
	assert.True(t, qinfo.IsChoi(depol))
}

func TestIsChoi_Rejections(t *testing.T) {
	// Doubling the Choi operator pushes the input marginal above I.
	inflated, err := cmat.Scale(identityChoi(t), 2)
	require.NoError(t, err)
	assert.False(t, qinfo.IsChoi(inflated))

	// Negating it breaks positivity.
	negated, err := cmat.Scale(identityChoi(t), -1)
	require.NoError(t, err)
	assert.False(t, qinfo.IsChoi(negated))

	// Odd qubit counts admit no balanced input/output split.
	single := mustRows(t, [][]complex128{{1, 0}, {0, 0}})
	assert.False(t, qinfo.IsChoi(single))
	assert.False(t, qinfo.IsChoi(nil))
}
