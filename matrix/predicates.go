// SPDX-License-Identifier: MIT

// Package matrix — structural predicates. Currently: IsDiag, the
// MATLAB-style diagonality test.

package matrix

import "math"

// Operation name constant for unified error wrapping.
const opIsDiag = "IsDiag"

// IsDiag reports whether x is a square, diagonal matrix.
//
// A non-square input is immediately not diagonal (false, nil). Otherwise
// the kernel builds the diagonal-only matrix t (x's diagonal, zeros
// elsewhere) and accumulates the signed sum Σ(t[i,j]-x[i,j]) over all
// entries; x is diagonal iff |Σ| is strictly below the tolerance
// (DefaultEpsilon = 1e-5, override via WithEpsilon).
//
// Note the test is an aggregate, not element-wise: off-diagonal entries of
// opposite sign can cancel in the sum and a matrix with
// compensating-but-nonzero off-diagonal mass still passes. This matches
// the classic single-precision formulation the predicate mirrors; use
// AllClose against NewDiag(DiagOf(x)) for an element-wise check.
//
// Implementation:
//   - Stage 1: ValidateNotNil; square check (predicate branch, not error).
//   - Stage 2: accumulate the signed difference sum in float64, skipping
//     the diagonal where t and x agree (fast path on the flat buffer,
//     fallback via At).
//   - Stage 3: compare |sum| < eps.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²) time, O(1) extra space.
func IsDiag(x Matrix, opts ...Option) (bool, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(x); err != nil {
		return false, matrixErrorf(opIsDiag, err)
	}

	// Not square ⇒ not diagonal. A branch, not an error.
	if x.Rows() != x.Cols() {
		return false, nil
	}

	o := gatherOptions(opts...)
	n := x.Rows()

	// t differs from x only off the diagonal, where t is zero, so the
	// signed sum Σ(t-x) reduces to -Σ of x's off-diagonal entries.
	// Accumulate in float64; single-precision inputs, double headroom.
	var sum float64

	// Fast path: walk the flat buffer, skipping the diagonal.
	if dx, ok := x.(*Dense); ok {
		var i, j, base int
		for i = 0; i < n; i++ {
			base = i * n
			for j = 0; j < n; j++ {
				if i == j {
					continue // t and x agree on the diagonal
				}
				sum -= float64(dx.data[base+j])
			}
		}

		return math.Abs(sum) < o.eps, nil
	}

	// Generic path with fixed i→j order.
	var (
		i, j int
		v    float32
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err = x.At(i, j)
			if err != nil {
				return false, matrixErrorf(opIsDiag, err)
			}
			sum -= float64(v)
		}
	}

	return math.Abs(sum) < o.eps, nil
}
