// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package, plus the single wrapping helper. All kernels MUST return
// these sentinels and tests MUST check them via errors.Is. No kernel panics
// on user-triggered error conditions; panics are reserved for programmer
// errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf(tag, ErrX) at
// the kernel boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative (NewEmpty) or non-positive (NewDense).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. non-conforming column counts in VStack or ragged input
	// rows in FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch is returned by Reshape when rows*cols does not equal
	// the total element count of the input.
	ErrShapeMismatch = errors.New("matrix: element count mismatch")

	// ErrBadShape is returned when a requested shape is structurally invalid
	// for the operation (e.g. a negative target dimension).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, Apply, FromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. The wrapper keeps a stable "Op: underlying" shape for
// uniform reporting across kernels. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
