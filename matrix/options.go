// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural
	// checks, most notably IsDiag's aggregate off-diagonal test. The value
	// matches the classic MATLAB-style 1e-5 threshold for single-precision
	// data.
	DefaultEpsilon = 1e-5

	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// Apply and FromRows ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - Larger eps relaxes IsDiag; use judiciously.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on matrices
// created through option-aware constructors (FromRows). This is the
// default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only on creation; existing matrices keep their
// policy.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Internal resolution ----------

// gatherOptions materializes the defaults and applies user setters in
// order (last-writer-wins semantics).
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
