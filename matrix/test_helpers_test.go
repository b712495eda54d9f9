// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/jiang13/numgo/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths in kernels
// and assert fast-path == fallback results.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustEmpty ALLOCATES an r×c *Dense where zero dimensions are legal.
func MustEmpty(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEmpty(r, c)
	if err != nil {
		t.Fatalf("NewEmpty(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
//
// Prefer for small exact-equality tests.
func NewFilledDense(t *testing.T, r, c int, vals []float32) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustEmpty(t, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// IdentityDense RETURNS an n×n identity matrix or fails the test.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float32) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// DumpRows MATERIALIZES m as a [][]float32 row slice for structural diffs
// (pairs with cmp.Diff in tests).
func DumpRows(t *testing.T, m matrix.Matrix) [][]float32 {
	t.Helper()
	out := make([][]float32, m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		out[i] = make([]float32, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Fails with the exact mismatch location. Use only for integer-like or
// carefully crafted small matrices; for floats prefer matrix.AllClose.
func CompareExact(t *testing.T, want [][]float32, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float32
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// ---------- bench helpers ----------

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewZeros(r, c)
	if err != nil {
		b.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}

	return d
}

func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := d.Rows(), d.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = d.Set(i, j, float32(rng.Float64()*2-1)) // [-1,1]
		}
	}
}
