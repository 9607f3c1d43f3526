// SPDX-License-Identifier: MIT

// Package linear: functional configuration for tolerance-based comparison
// and text parsing.
//
// Defaults:
//   - DefaultEpsilon is used by every ApproxEqual when no WithEpsilon is given.
//   - DefaultStrict=false: Parse* accept any mix of brackets, commas and
//     whitespace as separators.
package linear

import "math"

const (
	// DefaultEpsilon is the absolute per-element tolerance of ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultStrict selects the best-effort parser.
	DefaultStrict = false
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration; fields are unexported and only
// reachable through Option setters.
type Options struct {
	eps    float64
	strict bool
}

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or infinite.
//
// AI-Hints:
//   - 1e-5 is a sensible tolerance for float32 data; the default suits float64.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithStrict makes Parse* require the canonical bracketed, comma-separated
// form produced by String.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, strict: DefaultStrict}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
