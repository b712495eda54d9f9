// SPDX-License-Identifier: MIT

// Package matrix — companion linear-algebra kernels: Transpose, Scale,
// DiagOf and the numeric comparison AllClose. These round out the shaping
// surface; all follow the same validate → allocate → fast-path/fallback
// discipline as the shaping kernels and perform strict fail-fast
// validation with sentinel errors.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDiag      = "DiagOf"
	opAllClose  = "AllClose"
)

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated. Fast-path copies *Dense data via
// flat indexing; fallback uses At.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseLike(m, cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int // loop iterators

	// Fast path: data[i*cols + j] → res.data[j*rows + i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Generic path with the same fixed order.
	var v float32
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha · m[i,j].
// The original matrix is never mutated; NaN/Inf produced by the scaling
// propagate into the result (the policy guards Set, not kernel buffers).
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func Scale(m Matrix, alpha float32) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result of the same shape.
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseLike(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: single flat loop over the backing slice.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Generic path.
	var (
		i, j int
		v    float32
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// DiagOf extracts the main diagonal of a square matrix as a slice of
// length n = m.Rows().
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n) time after O(1) validation.
func DiagOf(m Matrix) ([]float32, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}

	n := m.Rows()
	out := make([]float32, n)

	// Fast path: stride through the flat buffer.
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = dm.data[i*n+i]
		}

		return out, nil
	}

	// Generic path.
	var (
		v   float32
		err error
	)
	for i := 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opDiag, err)
		}
		out[i] = v
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol·|b| for identical
// shapes. Returns (true, nil) if every element satisfies the relation;
// (false, nil) otherwise. NaN never equals anything; the arithmetic runs
// in float64 for headroom. Negative tolerances are normalized to their
// absolute values; non-finite tolerances are rejected.
//
// Errors: ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(1) space.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// Normalize tolerances to non-negative finite values.
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	// Validate presence and shape equality via central validators.
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	rows, cols := a.Rows(), a.Cols()

	// Fast path: both flat buffers, single loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			var av, bv float64
			for idx := 0; idx < n; idx++ {
				av, bv = float64(da.data[idx]), float64(db.data[idx])
				if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) { // NaN fails the comparison
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic path with fixed i→j order.
	var (
		i, j   int
		af, bf float32
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			af, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bf, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(float64(af)-float64(bf)) <= atol+rtol*math.Abs(float64(bf))) {
				return false, nil
			}
		}
	}

	return true, nil
}
