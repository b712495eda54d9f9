// Package matrix_test contains unit tests for the IsDiag predicate.
package matrix_test

import (
	"testing"

	"github.com/jiang13/numgo/matrix"
	"github.com/stretchr/testify/require"
)

// TestIsDiagNonSquare returns false for any rectangular input.
func TestIsDiagNonSquare(t *testing.T) {
	m := MustDense(t, 2, 3)

	ok, err := matrix.IsDiag(m)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIsDiagDiagonal accepts a clean diagonal matrix.
func TestIsDiagDiagonal(t *testing.T) {
	d, err := matrix.NewDiag([]float32{1, 2, 3})
	require.NoError(t, err)

	ok, err := matrix.IsDiag(d)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestIsDiagOffDiagonalPerturbation rejects the same matrix once one
// off-diagonal entry is bumped to 0.1, well above the 1e-5 tolerance.
func TestIsDiagOffDiagonalPerturbation(t *testing.T) {
	d, err := matrix.NewDiag([]float32{1, 2, 3})
	require.NoError(t, err)
	MustSet(t, d, 0, 1, 0.1)

	ok, err := matrix.IsDiag(d)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIsDiagTinyDeviation keeps a deviation safely below the tolerance
// acceptable (1e-6 < 1e-5; stay away from the threshold itself).
func TestIsDiagTinyDeviation(t *testing.T) {
	d, err := matrix.NewDiag([]float32{1, 2, 3})
	require.NoError(t, err)
	MustSet(t, d, 2, 0, 1e-6)

	ok, err := matrix.IsDiag(d)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestIsDiagAggregateCancellation documents the aggregate-sum behavior:
// two large off-diagonal entries of opposite sign cancel in the signed
// sum, so the matrix still passes. This mirrors the single-precision
// reference formulation; use AllClose for an element-wise check.
func TestIsDiagAggregateCancellation(t *testing.T) {
	d, err := matrix.NewDiag([]float32{1, 2, 3})
	require.NoError(t, err)
	MustSet(t, d, 0, 1, 0.5)
	MustSet(t, d, 1, 0, -0.5)

	ok, err := matrix.IsDiag(d)
	require.NoError(t, err)
	require.True(t, ok) // |0.5 + (-0.5)| < 1e-5
}

// TestIsDiagWithEpsilon widens the tolerance via the functional option.
func TestIsDiagWithEpsilon(t *testing.T) {
	d, err := matrix.NewDiag([]float32{1, 2, 3})
	require.NoError(t, err)
	MustSet(t, d, 0, 2, 0.01)

	ok, err := matrix.IsDiag(d) // default 1e-5 rejects
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.IsDiag(d, matrix.WithEpsilon(0.1)) // relaxed accepts
	require.NoError(t, err)
	require.True(t, ok)
}

// TestIsDiagFallbackPath drives the generic path through a hidden operand.
func TestIsDiagFallbackPath(t *testing.T) {
	d, err := matrix.NewDiag([]float32{4, 5, 6})
	require.NoError(t, err)

	ok, err := matrix.IsDiag(hide{d})
	require.NoError(t, err)
	require.True(t, ok)

	MustSet(t, d, 1, 2, 0.2)
	ok, err = matrix.IsDiag(hide{d})
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIsDiagNilInput surfaces ErrNilMatrix instead of panicking.
func TestIsDiagNilInput(t *testing.T) {
	_, err := matrix.IsDiag(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
