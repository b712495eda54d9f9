// SPDX-License-Identifier: MIT

// Package matrix — composition kernels: BlockDiag and Kron.
//
// Purpose:
//   - Build larger matrices out of smaller ones: block-diagonal layout
//     (scipy.linalg.block_diag) and the Kronecker product (numpy.kron).
//   - BlockDiag is variadic: the classic 2- and 3-input forms are the
//     N=2 and N=3 instances of one general fold over the input sequence.
//
// Notes:
//   - Both kernels allocate exactly one result and never alias an input.
//   - Block placement order is fixed (input order / row-major over m1), but
//     blocks are disjoint, so order has no observable effect.

package matrix

// Operation name constants for unified error wrapping.
const (
	opBlockDiag = "BlockDiag"
	opKron      = "Kron"
)

// BlockDiag creates a block-diagonal matrix from the provided matrices:
// input k occupies the sub-block whose top-left corner is (Σ rows of
// inputs before k, Σ cols of inputs before k); every off-block entry is
// exactly zero.
//
// Implementation:
//   - Stage 1: validate every input non-nil; sum row and column counts.
//   - Stage 2: allocate the zero-filled (Σr)×(Σc) result (0×0 for no
//     inputs — the empty composition is legal).
//   - Stage 3: place each block at its cumulative offsets in input order.
//
// Errors: ErrNilMatrix.
// Complexity: O(Σr · Σc) time and memory (dominated by zero-init).
func BlockDiag(ms ...Matrix) (*Dense, error) {
	// Validate all operands and accumulate the result shape.
	var totalRows, totalCols int
	for _, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opBlockDiag, err)
		}
		totalRows += m.Rows()
		totalCols += m.Cols()
	}

	// Zero-filled result; NewEmpty keeps the degenerate 0×0 case legal.
	res, err := NewEmpty(totalRows, totalCols)
	if err != nil {
		return nil, matrixErrorf(opBlockDiag, err)
	}

	// March the blocks down the main diagonal at cumulative offsets.
	var rowOff, colOff int
	for _, m := range ms {
		if err = placeBlock(res, m, rowOff, colOff); err != nil {
			return nil, matrixErrorf(opBlockDiag, err)
		}
		rowOff += m.Rows()
		colOff += m.Cols()
	}

	return res, nil
}

// Kron computes the Kronecker product m1 ⊗ m2: a composite matrix made of
// blocks of m2 scaled by the entries of m1. For every (i,j) the sub-block
// whose top-left corner is (i·m2.Rows(), j·m2.Cols()) equals m1(i,j)·m2.
//
// Implementation:
//   - Stage 1: ValidateBinaryNotNil; allocate the product-shaped result
//     (zero-sized inputs yield a legal empty result).
//   - Stage 2: fast path for two *Dense operands — quadruple loop over
//     flat buffers with m1(i,j) hoisted per block; generic fallback reads
//     through At with the same fixed i→j→p→q order.
//
// Behavior highlights:
//   - Pure: neither input is mutated or aliased by the result.
//   - Every block is materialized by multiplication, zero scalars included,
//     so IEEE-754 products such as 0·Inf = NaN survive into the result and
//     the two paths always agree.
//
// Inputs:
//   - m1: left operand; its entries scale the blocks.
//   - m2: right operand; the block stencil.
//
// Returns:
//   - *Dense of shape (m1.Rows()·m2.Rows())×(m1.Cols()·m2.Cols()).
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//
// Determinism:
//   - Fixed loop order; identical inputs always produce identical buffers.
//
// Complexity:
//   - Time O(r1·c1·r2·c2); memory O(r1·r2·c1·c2) for the result.
//
// AI-Hints:
//   - Prefer *Dense operands: the fast path multiplies straight between
//     flat buffers without interface calls.
//   - Kron(I_n, m) builds a block-diagonal of n copies of m; compare
//     BlockDiag when the blocks differ.
func Kron(m1, m2 Matrix) (*Dense, error) {
	// Validate both operands non-nil.
	if err := ValidateBinaryNotNil(m1, m2); err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	r1, c1 := m1.Rows(), m1.Cols()
	r2, c2 := m2.Rows(), m2.Cols()

	// Allocate the (r1·r2)×(c1·c2) result.
	res, err := newDenseLike(m1, r1*r2, c1*c2)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	resCols := c1 * c2

	var i, j, p, q int // loop iterators (fixed order: i→j over m1, p→q over m2)

	// Fast path: both operands flat row-major buffers.
	if d1, ok1 := m1.(*Dense); ok1 {
		if d2, ok2 := m2.(*Dense); ok2 {
			var scalar float32
			for i = 0; i < r1; i++ {
				for j = 0; j < c1; j++ {
					// Every block is written, including zero scalars: under
					// IEEE-754, 0·Inf and 0·NaN are NaN, not 0, and the fast
					// path must agree with the At-based fallback bit-for-bit.
					scalar = d1.data[i*c1+j]
					for p = 0; p < r2; p++ {
						for q = 0; q < c2; q++ {
							res.data[(i*r2+p)*resCols+(j*c2+q)] = scalar * d2.data[p*c2+q]
						}
					}
				}
			}

			return res, nil
		}
	}

	// Generic path: interface reads with identical block layout.
	var sv, bv float32
	for i = 0; i < r1; i++ {
		for j = 0; j < c1; j++ {
			sv, err = m1.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opKron, err)
			}
			for p = 0; p < r2; p++ {
				for q = 0; q < c2; q++ {
					bv, err = m2.At(p, q)
					if err != nil {
						return nil, matrixErrorf(opKron, err)
					}
					res.data[(i*r2+p)*resCols+(j*c2+q)] = sv * bv
				}
			}
		}
	}

	return res, nil
}
