// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// This file intentionally contains ONLY the interface; errors and options
// live in dedicated files (errors.go, options.go) per the package
// conventions. The element type is float32 throughout: the package mirrors
// single-precision numeric code, and every kernel that needs extra headroom
// accumulates in float64 internally.
package matrix

// Matrix represents a two-dimensional mutable array of float32 values.
// Kernels accept Matrix and return concrete *Dense results; passing *Dense
// operands unlocks flat-slice fast paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float32) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
