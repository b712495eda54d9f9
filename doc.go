// Package numgo is a small toolbox of numpy/scipy/MATLAB-style matrix
// conveniences for Go — reshape, stacking, block-diagonal composition and
// Kronecker products over dense single-precision matrices.
//
// 🚀 What is numgo?
//
//	A compact, zero-surprise library that brings together:
//		• Dense storage: row-major float32 matrices with safe accessors
//		• Shaping: Reshape (column-major order), Flatten
//		• Stacking: VStack / HStack with empty-input pass-through
//		• Composition: variadic BlockDiag, Kronecker product Kron
//		• Predicates: IsDiag with a configurable tolerance
//		• Companions: Transpose, Scale, AllClose, diagonal helpers
//
// ✨ Why choose numgo?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, reproducible results
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Dense type, shaping/stacking/composition kernels,
//	          validators, functional options and API facades
//
// Quick ASCII example:
//
//	    ⎡A 0⎤
//	    ⎣0 B⎦
//
//	is BlockDiag(A, B): inputs marched down the main diagonal,
//	zeros everywhere else.
//
// Dive into examples/ for runnable demos of reshaping, stacking and
// Kronecker-product workflows.
//
//	go get github.com/jiang13/numgo/matrix
package numgo
