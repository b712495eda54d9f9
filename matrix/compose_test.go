// Package matrix_test contains unit tests for the composition kernels:
// BlockDiag and Kron.
package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jiang13/numgo/matrix"
	"github.com/stretchr/testify/require"
)

// TestBlockDiagTwoIdentities composes I₂ and I₃ and verifies every
// in-block entry matches its source and every off-block entry is exactly
// zero.
func TestBlockDiagTwoIdentities(t *testing.T) {
	a := IdentityDense(t, 2)
	b := IdentityDense(t, 3)

	out, err := matrix.BlockDiag(a, b)
	require.NoError(t, err)
	require.Equal(t, 5, out.Rows())
	require.Equal(t, 5, out.Cols())
	CompareExact(t, [][]float32{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1},
	}, out)
}

// TestBlockDiagThreeInputs checks the cumulative offsets with three
// rectangular blocks.
func TestBlockDiagThreeInputs(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float32{1, 2})
	b := NewFilledDense(t, 2, 1, []float32{3, 4})
	c := NewFilledDense(t, 2, 2, []float32{5, 6, 7, 8})

	out, err := matrix.BlockDiag(a, b, c)
	require.NoError(t, err)
	require.Equal(t, 5, out.Rows()) // 1+2+2
	require.Equal(t, 5, out.Cols()) // 2+1+2
	CompareExact(t, [][]float32{
		{1, 2, 0, 0, 0},
		{0, 0, 3, 0, 0},
		{0, 0, 4, 0, 0},
		{0, 0, 0, 5, 6},
		{0, 0, 0, 7, 8},
	}, out)
}

// TestBlockDiagDegenerate covers the no-input and single-input forms.
func TestBlockDiagDegenerate(t *testing.T) {
	out, err := matrix.BlockDiag() // empty composition
	require.NoError(t, err)
	require.Equal(t, 0, out.Rows())
	require.Equal(t, 0, out.Cols())

	a := NewFilledDense(t, 2, 2, []float32{1, 2, 3, 4})
	out, err = matrix.BlockDiag(a) // single input → plain copy
	require.NoError(t, err)
	CompareExact(t, [][]float32{{1, 2}, {3, 4}}, out)

	// The single-input result is independent of a.
	MustSet(t, out, 0, 0, 42)
	require.Equal(t, float32(1), MustAt(t, a, 0, 0))
}

// TestBlockDiagNilInput rejects nil operands at any position.
func TestBlockDiagNilInput(t *testing.T) {
	a := MustDense(t, 2, 2)

	_, err := matrix.BlockDiag(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKronAgainstIdentity computes A ⊗ I₂ for A = [[1,2],[3,4]] and
// verifies the four scaled identity blocks, including the [2:4,2:4]==4·B
// spot check.
func TestKronAgainstIdentity(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float32{1, 2, 3, 4})
	b := IdentityDense(t, 2)

	out, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, out.Rows())
	require.Equal(t, 4, out.Cols())
	CompareExact(t, [][]float32{
		{1, 0, 2, 0},
		{0, 1, 0, 2},
		{3, 0, 4, 0},
		{0, 3, 0, 4},
	}, out)

	// Spot check: the bottom-right block equals 4·B.
	scaled, err := matrix.Scale(b, 4)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			require.Equal(t, MustAt(t, scaled, i, j), MustAt(t, out, 2+i, 2+j))
		}
	}
}

// TestKronRectangular checks the shape arithmetic on non-square operands.
func TestKronRectangular(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float32{1, 2, 3})
	b := NewFilledDense(t, 2, 1, []float32{10, 20})

	out, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows()) // 1·2
	require.Equal(t, 3, out.Cols()) // 3·1
	CompareExact(t, [][]float32{
		{10, 20, 30},
		{20, 40, 60},
	}, out)
}

// TestKronFallbackMatchesFastPath drives the generic path through hidden
// operands and compares against the flat-buffer path.
func TestKronFallbackMatchesFastPath(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float32{1, -2, 3, 0, 5, -6})
	b := NewFilledDense(t, 3, 2, []float32{1, 2, 3, 4, 5, 6})

	fast, err := matrix.Kron(a, b)
	require.NoError(t, err)
	slow, err := matrix.Kron(hide{a}, hide{b})
	require.NoError(t, err)

	if diff := cmp.Diff(DumpRows(t, fast), DumpRows(t, slow)); diff != "" {
		t.Fatalf("Kron fast vs fallback mismatch (-fast +fallback):\n%s", diff)
	}
}

// TestKronZeroScalarNonFinite pins the IEEE product semantics: a zero
// entry of m1 still multiplies its block, so 0·Inf lands as NaN rather
// than a silently zero block, and both paths agree on it.
func TestKronZeroScalarNonFinite(t *testing.T) {
	a := NewFilledDense(t, 1, 2, []float32{0, 2})
	b, err := matrix.FromRows(
		[][]float32{{float32(math.Inf(1))}},
		matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	fast, err := matrix.Kron(a, b)
	require.NoError(t, err)
	slow, err := matrix.Kron(hide{a}, hide{b})
	require.NoError(t, err)

	// cmp.Diff treats NaN as unequal to itself, so assert elementwise.
	for _, out := range []*matrix.Dense{fast, slow} {
		require.True(t, math.IsNaN(float64(MustAt(t, out, 0, 0))))    // 0·Inf
		require.True(t, math.IsInf(float64(MustAt(t, out, 0, 1)), 1)) // 2·Inf
	}
}

// TestKronNilInput rejects nil operands.
func TestKronNilInput(t *testing.T) {
	a := MustDense(t, 2, 2)

	_, err := matrix.Kron(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Kron(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
