// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Conformable* validators encode the stacking policy: a zero-sized side
//    is never a mismatch, only two non-zero unequal sides are.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateBinaryNotNil – Composite: NotNil(a) → NotNil(b).
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateBinaryNotNil(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
//
// Errors: ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateReshapeCount checks that rows*cols preserves the total element
// count of m, the invariant Reshape must hold. Negative target dimensions
// are rejected first with ErrBadShape.
// Assumes m is not nil (caller must ensure).
//
// Errors: ErrBadShape, ErrShapeMismatch.
// Complexity: O(1).
func ValidateReshapeCount(m Matrix, rows, cols int) error {
	// Negative dimensions can never describe a rectangle.
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateReshapeCount", ErrBadShape)
	}
	// The reshape contract: same number of elements before and after.
	if rows*cols != m.Rows()*m.Cols() {
		return validatorErrorf("ValidateReshapeCount", ErrShapeMismatch)
	}

	return nil
}

// ValidateConformableCols checks that a and b can share one column count
// in a vertical layout: only two non-zero, unequal column counts conflict.
// A zero-column operand always conforms (it contributes no columns).
// Assumes a and b are not nil (caller must ensure).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateConformableCols(a, b Matrix) error {
	if a.Cols() != 0 && b.Cols() != 0 && a.Cols() != b.Cols() {
		return validatorErrorf("ValidateConformableCols", ErrDimensionMismatch)
	}

	return nil
}

// ValidateConformableRows is the horizontal-layout analog of
// ValidateConformableCols: only two non-zero, unequal row counts conflict.
// Assumes a and b are not nil (caller must ensure).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateConformableRows(a, b Matrix) error {
	if a.Rows() != 0 && b.Rows() != 0 && a.Rows() != b.Rows() {
		return validatorErrorf("ValidateConformableRows", ErrDimensionMismatch)
	}

	return nil
}
