// SPDX-License-Identifier: MIT

// Package matrix provides dense single-precision matrices and the
// numpy/scipy/MATLAB-style shaping conveniences built on top of them:
// Reshape, IsDiag, VStack, HStack, BlockDiag and Kron.
//
// All kernels are pure: inputs are never mutated and every result is a
// freshly allocated *Dense. Shapes are validated fail-fast with sentinel
// errors; no function panics on user input. Loop orders are fixed, so
// every operation is deterministic and trivially safe to call from
// multiple goroutines on shared read-only inputs.
package matrix
