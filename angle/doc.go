// SPDX-License-Identifier: MIT

// Package angle provides unit-typed angles: Radian[T] and Degree[T].
//
// The two units are distinct static types over the same element type, so a
// degree value can never be passed where radians are expected by accident.
// The only bridge between them is explicit:
//
//	r := angle.Deg(180.0).Radians() // Radian[float64] ≈ π
//	d := r.Degrees()                // Degree[float64] ≈ 180
//
// Within one unit, construction from a bare scalar is implicit (Rad, Deg) and
// conversion to another element type goes through ConvertRadian / ConvertDegree.
//
// Normalization convention:
//
//   - Normalize wraps into [0, period), period being 2π or 360°.
//   - NormalizeFrom(lo) wraps into [lo, lo+period).
//
// Both are computed from the IEEE remainder, so large inputs do not lose the
// fractional part through repeated subtraction.
//
// Trigonometry is dispatched through package numeric, which evaluates
// float32 angles in single precision.
package angle
