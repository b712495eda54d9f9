// SPDX-License-Identifier: MIT
// Package matrix — public API facades and convenience constructors.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere). Fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		_ = I.Set(i, i, 1) // bounds-safe after shape validation
	}

	return I, nil
}

// NewDiag builds the n×n diagonal matrix whose main diagonal holds vals,
// zeros elsewhere (n = len(vals)). The inverse of DiagOf on diagonal
// matrices. Zero-length input yields the legal 0×0 matrix. Values flow
// through Set, so non-finite entries are rejected with ErrNaNInf under
// the default strict policy, same as FromRows ingestion.
//
// Errors: ErrNaNInf.
// Complexity: O(n²) zeroing + O(n) writes.
func NewDiag(vals []float32) (*Dense, error) {
	n := len(vals)
	// NewEmpty keeps the degenerate 0×0 case legal.
	d, err := NewEmpty(n, n)
	if err != nil {
		return nil, err
	}
	// One policy-checked write per diagonal cell.
	for i := 0; i < n; i++ {
		if err = d.Set(i, i, vals[i]); err != nil {
			return nil, matrixErrorf("NewDiag", err)
		}
	}

	return d, nil
}

// FromRows builds a *Dense from a rectangular 2D slice of row data and
// applies the option-resolved numeric policy. Every row must have the
// same length; ragged input is ErrDimensionMismatch. Values flow through
// Set, so under WithValidateNaNInf (the default) non-finite entries are
// rejected with ErrNaNInf.
//
// Errors: ErrInvalidDimensions (negative shapes are impossible here, but
// zero rows/cols are accepted as legal empty values), ErrDimensionMismatch,
// ErrNaNInf.
// Complexity: O(r*c).
func FromRows(rows [][]float32, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Shape discovery: zero rows ⇒ 0×0; column count from the first row.
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	// Allocate with the zero-tolerant constructor and resolved policy.
	d, err := NewEmpty(r, c)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	d.validateNaNInf = o.validateNaNInf

	// Ingest row by row; reject ragged input before writing the row.
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf("FromRows", err) // ErrNaNInf under policy
			}
		}
	}

	return d, nil
}

// CloneMatrix returns a structural clone of m (same concrete type if m is
// *Dense). Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers. Zero-sized shapes are preserved.
// Complexity: O(r*c) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and allocate with the zero-tolerant constructor.
	return NewEmpty(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity(m.Rows())
}

// ---------- Shaping aliases (1:1 to kernels) ----------

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(r*c).
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α·m.
// Complexity: O(r*c).
func ScaleBy(m Matrix, alpha float32) (*Dense, error) { return Scale(m, alpha) }

// ConcatRows is an alias for VStack: m1 on top of m2.
// Complexity: O((r1+r2)*c).
func ConcatRows(m1, m2 Matrix) (*Dense, error) { return VStack(m1, m2) }

// ConcatCols is an alias for HStack: m1 to the left of m2.
// Complexity: O(r*(c1+c2)).
func ConcatCols(m1, m2 Matrix) (*Dense, error) { return HStack(m1, m2) }
