// SPDX-License-Identifier: MIT

// Package matrix — shaping kernels: Flatten, Reshape, VStack, HStack.
//
// Purpose:
//   - Reinterpret and concatenate dense matrices the way numpy's reshape,
//     vstack and hstack do, with fail-fast validation and pure results.
//   - Element order for Flatten/Reshape is column-major, matching the
//     storage order of the Eigen/Fortran lineage these helpers mirror, so
//     Reshape(Reshape(x, r, c), x.Rows(), x.Cols()) recovers x exactly.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.
//   - Stacking follows the empty-operand pass-through policy: a zero-row
//     (VStack) or zero-column (HStack) input flows through as a fresh copy
//     of the other operand, m1 checked first.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFlatten = "Flatten"
	opReshape = "Reshape"
	opVStack  = "VStack"
	opHStack  = "HStack"
)

// denseCopyOf materializes any Matrix as an independent *Dense.
// Fast-path clones a *Dense buffer directly; the generic path walks At in
// fixed i→j order.
// Complexity: O(r*c) time and memory.
func denseCopyOf(m Matrix) (*Dense, error) {
	// Fast path: Clone already produces an independent *Dense.
	if dm, ok := m.(*Dense); ok {
		return dm.Clone().(*Dense), nil
	}

	// Generic path: allocate and copy element-wise.
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseLike(m, rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int     // loop iterators (deterministic order)
		v    float32 // element temporary
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			res.data[i*cols+j] = v // direct flat write; shape is ours
		}
	}

	return res, nil
}

// placeBlock copies src into dst with its top-left corner at (rowOff, colOff).
// The caller guarantees the window fits inside dst; dst is always *Dense,
// so writes go straight to the flat buffer.
// Complexity: O(src.Rows()*src.Cols()).
func placeBlock(dst *Dense, src Matrix, rowOff, colOff int) error {
	rows, cols := src.Rows(), src.Cols()

	// Fast path: row-wise copy between flat buffers.
	if ds, ok := src.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(dst.data[(rowOff+i)*dst.c+colOff:(rowOff+i)*dst.c+colOff+cols], ds.data[i*cols:(i+1)*cols])
		}

		return nil
	}

	// Generic path: element-wise with fixed i→j order.
	var (
		i, j int
		v    float32
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = src.At(i, j)
			if err != nil {
				return err
			}
			dst.data[(rowOff+i)*dst.c+(colOff+j)] = v
		}
	}

	return nil
}

// Flatten returns the elements of m as a single column-major sequence:
// index k maps to (i,j) = (k mod rows, k div rows). This is exactly the
// order Reshape preserves.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func Flatten(m Matrix) ([]float32, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float32, rows*cols)

	// Fast path: flat row-major buffer → column-major sequence.
	if dm, ok := m.(*Dense); ok {
		var i, j int
		for j = 0; j < cols; j++ { // column-major: columns outermost
			for i = 0; i < rows; i++ {
				out[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return out, nil
	}

	// Generic path via At, same fixed j→i order.
	var (
		i, j int
		v    float32
		err  error
	)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opFlatten, err)
			}
			out[j*rows+i] = v
		}
	}

	return out, nil
}

// Reshape gives a new shape to a matrix without changing its data: the
// column-major element sequence of x is laid out as a rows×cols matrix,
// again column-major.
//
// Implementation:
//   - Stage 1: ValidateNotNil(x); ValidateReshapeCount (rows*cols must
//     equal x.Rows()*x.Cols(); negative targets are ErrBadShape).
//   - Stage 2: allocate rows×cols (zero shapes legal when the count is 0).
//   - Stage 3: single pass over the column-major sequence; fast path maps
//     flat offsets directly, fallback reads through At.
//
// Behavior highlights:
//   - The result is a fresh copy, never a view over x's storage, so later
//     mutations of either side stay independent.
//   - Round trip identity: Reshape(Reshape(x, r, c), x.Rows(), x.Cols())
//     reproduces x exactly.
//
// Inputs:
//   - x: source matrix (any Matrix implementation).
//   - rows, cols: target shape; must preserve the total element count.
//
// Returns:
//   - *Dense of shape rows×cols holding x's elements in column-major order.
//
// Errors:
//   - ErrNilMatrix for a nil source; ErrBadShape for negative targets;
//     ErrShapeMismatch when rows*cols ≠ x.Rows()*x.Cols().
//
// Determinism:
//   - Single fixed-order pass; no data-dependent branching.
//
// Complexity:
//   - Time O(r*c); memory O(r*c) for the fresh result.
//
// AI-Hints:
//   - Reshape(x, x.Rows()*x.Cols(), 1) is the column-vector form of
//     Flatten; use Flatten when a plain slice is enough.
//   - Prefer a *Dense source: the fast path remaps flat offsets without
//     interface calls.
func Reshape(x Matrix, rows, cols int) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	// Validate element-count preservation.
	if err := ValidateReshapeCount(x, rows, cols); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}

	// Allocate the result; zero-sized shapes are legal when count is zero.
	res, err := newDenseLike(x, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opReshape, err)
	}

	srcRows, srcCols := x.Rows(), x.Cols()
	n := srcRows * srcCols

	// Fast path: both flat buffers; walk the column-major sequence once.
	if dx, ok := x.(*Dense); ok {
		var k int
		for k = 0; k < n; k++ {
			// source (i,j) at column-major position k
			// destination (p,q) at the same column-major position
			res.data[(k%rows)*cols+k/rows] = dx.data[(k%srcRows)*srcCols+k/srcRows]
		}

		return res, nil
	}

	// Generic path: read through At in the same sequence order.
	var (
		k   int
		v   float32
		rdE error
	)
	for k = 0; k < n; k++ {
		v, rdE = x.At(k%srcRows, k/srcRows)
		if rdE != nil {
			return nil, matrixErrorf(opReshape, rdE)
		}
		res.data[(k%rows)*cols+k/rows] = v
	}

	return res, nil
}

// VStack stacks m1 on top of m2 (row axis).
//
// Policy (checked in this order):
//   - m1 has zero rows → fresh copy of m2;
//   - m2 has zero rows → fresh copy of m1;
//   - otherwise the result column count is m1.Cols(), falling back to
//     m2.Cols() when m1 has zero columns, and both non-zero column counts
//     must agree (ErrDimensionMismatch).
//
// The result has shape (m1.Rows()+m2.Rows())×ncol with m1 occupying the
// top rows. Inputs are never aliased by the result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O((r1+r2)*ncol) time and memory.
func VStack(m1, m2 Matrix) (*Dense, error) {
	// Validate both operands non-nil.
	if err := ValidateBinaryNotNil(m1, m2); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}

	// Empty pass-through, m1 first.
	if m1.Rows() == 0 {
		out, err := denseCopyOf(m2)
		if err != nil {
			return nil, matrixErrorf(opVStack, err)
		}

		return out, nil
	}
	if m2.Rows() == 0 {
		out, err := denseCopyOf(m1)
		if err != nil {
			return nil, matrixErrorf(opVStack, err)
		}

		return out, nil
	}

	// Non-zero column counts must agree.
	if err := ValidateConformableCols(m1, m2); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}

	// Result column count: m1's, falling back to m2's when m1 has none.
	ncol := m1.Cols()
	if ncol == 0 {
		ncol = m2.Cols()
	}

	// Allocate and lay out top/bottom blocks.
	res, err := newDenseLike(m1, m1.Rows()+m2.Rows(), ncol)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err = placeBlock(res, m1, 0, 0); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err = placeBlock(res, m2, m1.Rows(), 0); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}

	return res, nil
}

// HStack stacks m1 to the left of m2 (column axis), structurally symmetric
// to VStack: zero-column inputs pass through (m1 checked first), the result
// row count is m1.Rows() falling back to m2.Rows(), and both non-zero row
// counts must agree.
//
// The result has shape nrow×(m1.Cols()+m2.Cols()) with m1's columns first.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nrow*(c1+c2)) time and memory.
func HStack(m1, m2 Matrix) (*Dense, error) {
	// Validate both operands non-nil.
	if err := ValidateBinaryNotNil(m1, m2); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}

	// Empty pass-through, m1 first.
	if m1.Cols() == 0 {
		out, err := denseCopyOf(m2)
		if err != nil {
			return nil, matrixErrorf(opHStack, err)
		}

		return out, nil
	}
	if m2.Cols() == 0 {
		out, err := denseCopyOf(m1)
		if err != nil {
			return nil, matrixErrorf(opHStack, err)
		}

		return out, nil
	}

	// Non-zero row counts must agree.
	if err := ValidateConformableRows(m1, m2); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}

	// Result row count: m1's, falling back to m2's when m1 has none.
	nrow := m1.Rows()
	if nrow == 0 {
		nrow = m2.Rows()
	}

	// Allocate and lay out left/right blocks.
	res, err := newDenseLike(m1, nrow, m1.Cols()+m2.Cols())
	if err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if err = placeBlock(res, m1, 0, 0); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}
	if err = placeBlock(res, m2, 0, m1.Cols()); err != nil {
		return nil, matrixErrorf(opHStack, err)
	}

	return res, nil
}
