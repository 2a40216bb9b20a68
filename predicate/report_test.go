package predicate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qlinalg/cmat"
	"github.com/katalvlaran/qlinalg/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsStateVector_Codes pins the exact status codes of the contract:
// norm-2 length-4 vector with eps → −1; length-3 vector → −2; a 2×2
// matrix → −3.
func TestIsStateVector_Codes(t *testing.T) {
	// length-4 column with norm 2
	v4 := mustRows(t, [][]complex128{{1}, {1}, {1}, {1}})
	status, n := predicate.IsStateVector(v4, predicate.WithEps(1e-6))
	assert.Equal(t, predicate.StateNotNormalized, status)
	assert.Equal(t, -1, int(status), "numeric code is part of the contract")
	assert.Zero(t, n)

	// length-3 column: not a power of two
	v3 := mustRows(t, [][]complex128{{1}, {0}, {0}})
	status, n = predicate.IsStateVector(v3, predicate.WithEps(1e-6))
	assert.Equal(t, predicate.StateBadDimension, status)
	assert.Equal(t, -2, int(status))
	assert.Zero(t, n)

	// 2×2 matrix: not a vector at all
	m := mustRows(t, [][]complex128{{1, 0}, {0, 1}})
	status, n = predicate.IsStateVector(m, predicate.WithEps(1e-6))
	assert.Equal(t, predicate.StateNotAVector, status)
	assert.Equal(t, -3, int(status))
	assert.Zero(t, n)

	assert.Equal(t, -4, int(predicate.DensityNotSquare), "density codes too")
}

// TestIsStateVector_Valid accepts a normalized 2-qubit state and reports
// the qubit count.
func TestIsStateVector_Valid(t *testing.T) {
	inv := complex(1/math.Sqrt(4), 0)
	v := mustRows(t, [][]complex128{{inv}, {inv}, {inv}, {inv}})

	status, n := predicate.IsStateVector(v, predicate.WithEps(1e-9))
	assert.Equal(t, predicate.StateValid, status)
	assert.Equal(t, 2, n)

	// a row vector is a vector too
	row, err := cmat.Dagger(v)
	require.NoError(t, err)
	status, n = predicate.IsStateVector(row, predicate.WithEps(1e-9))
	assert.Equal(t, predicate.StateValid, status)
	assert.Equal(t, 2, n)
}

// TestIsStateVector_NoEps verifies eps-less calls skip normalization but
// keep structural checks.
func TestIsStateVector_NoEps(t *testing.T) {
	// norm 2, but no eps supplied: structurally fine
	v := mustRows(t, [][]complex128{{1}, {1}, {1}, {1}})
	status, n := predicate.IsStateVector(v)
	assert.Equal(t, predicate.StateValid, status)
	assert.Equal(t, 2, n)

	// structural failure still reported without eps
	v3 := mustRows(t, [][]complex128{{1}, {1}, {1}})
	status, _ = predicate.IsStateVector(v3)
	assert.Equal(t, predicate.StateBadDimension, status)
}

// TestIsDensityMatrix_Valid accepts the maximally mixed single-qubit state.
func TestIsDensityMatrix_Valid(t *testing.T) {
	rho := mustRows(t, [][]complex128{{0.5, 0}, {0, 0.5}})
	status, n := predicate.IsDensityMatrix(rho, predicate.WithEps(1e-9))
	assert.Equal(t, predicate.DensityValid, status)
	assert.Equal(t, 1, n)
}

// TestIsDensityMatrix_FailureLadder walks every failure variant in the
// documented check order.
func TestIsDensityMatrix_FailureLadder(t *testing.T) {
	// not square → −4
	rect := mustRows(t, [][]complex128{{1, 0}})
	status, _ := predicate.IsDensityMatrix(rect, predicate.WithEps(1e-6))
	assert.Equal(t, predicate.DensityNotSquare, status)

	// 3×3 → −3
	odd, err := cmat.Identity(3)
	require.NoError(t, err)
	status, _ = predicate.IsDensityMatrix(odd, predicate.WithEps(1e-6))
	assert.Equal(t, predicate.DensityBadDimension, status)

	// trace 2 → −2
	id2, err := cmat.Identity(2)
	require.NoError(t, err)
	status, _ = predicate.IsDensityMatrix(id2, predicate.WithEps(1e-6))
	assert.Equal(t, predicate.DensityBadTrace, status)

	// unit trace but indefinite → −1
	indef := mustRows(t, [][]complex128{{1.5, 0}, {0, -0.5}})
	status, _ = predicate.IsDensityMatrix(indef, predicate.WithEps(1e-6))
	assert.Equal(t, predicate.DensityNotPositive, status)
}

// TestIsDensityMatrix_NoEps verifies structural-only acceptance when no
// eps is supplied: trace and positivity are not examined.
func TestIsDensityMatrix_NoEps(t *testing.T) {
	id2, err := cmat.Identity(2)
	require.NoError(t, err)

	status, n := predicate.IsDensityMatrix(id2)
	assert.Equal(t, predicate.DensityValid, status, "trace-2 accepted without eps")
	assert.Equal(t, 1, n)
}
