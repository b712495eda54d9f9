// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Do/Apply: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite
// indices: "Dense.<method>(row,col): <underlying>". The sentinel stays
// matchable via errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Dense is a concrete row-major matrix of float32 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only via NewEmpty)
	data           []float32 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply the default numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices; use
//     NewEmpty when zero-row/zero-column shapes are intended.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float32, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewEmpty creates an r×c matrix where rows==0 or cols==0 are legal shapes.
// The stacking kernels rely on such values for their pass-through policy
// (an empty operand flows through VStack/HStack unchanged), so the
// constructor is public here, unlike the strict NewDense.
//
// Returns ErrInvalidDimensions on negative dimensions.
// Complexity: O(r*c) time and memory (zero for empty shapes).
func NewEmpty(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Zero-length buffer is legal when rows==0 or cols==0 (len == rows*cols).
	buf := make([]float32, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseLike allocates an r×c zero matrix carrying the numeric policy of
// the given source when it is a *Dense, or the package default otherwise.
// Kernels use it so results inherit the policy of their primary operand.
// Complexity: O(r*c).
func newDenseLike(src Matrix, rows, cols int) (*Dense, error) {
	res, err := NewEmpty(rows, cols)
	if err != nil {
		return nil, err
	}
	if ds, ok := src.(*Dense); ok {
		res.validateNaNInf = ds.validateNaNInf // preserve guard policy
	}

	return res, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method
// name; the helper itself returns the plain sentinel.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel error instead.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors: ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(float64(v)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape, same numeric policy).
// Mutations of the copy never affect the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float32, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders matrix rows as lines with comma-separated %g values.
// Intended for logs and debugging, not for hot paths.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. No allocations,
// deterministic i→j order.
// Complexity: O(r*c) time, O(1) space.
func (m *Dense) Do(f func(i, j int, v float32) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Respects validateNaNInf (rejects NaN/±Inf when enabled). Early error
// aborts; elements written before the error remain updated. For
// all-or-nothing semantics, transform a clone and swap on success.
// Complexity: O(r*c) time, O(1) space.
func (m *Dense) Apply(f func(i, j int, v float32) float32) error {
	var i, j, base int // predeclare loop counters and base offset
	var nv float32     // new value

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			nv = f(i, j, m.data[base+j]) // compute new value
			if m.validateNaNInf && isNonFinite(float64(nv)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			m.data[base+j] = nv // write back new value
		}
	}

	return nil // success
}
