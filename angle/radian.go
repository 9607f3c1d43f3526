// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

const (
	radToDeg = 180 / 3.14159265358979323846264338327950288419716939937510582097494459
	degToRad = 3.14159265358979323846264338327950288419716939937510582097494459 / 180
)

// Radian is an angle measured in radians.
type Radian[T numeric.Number] struct {
	value T
}

// Rad wraps v as radians.
func Rad[T numeric.Number](v T) Radian[T] { return Radian[T]{value: v} }

// ConvertRadian changes the element type of r.
func ConvertRadian[U, T numeric.Number](r Radian[T]) Radian[U] {
	return Radian[U]{value: U(r.value)}
}

// Zero is the empty angle.
func Zero[T numeric.Number]() Radian[T] { return Radian[T]{} }

// QuarterCircle is π/2.
func QuarterCircle[T numeric.Number]() Radian[T] { return Radian[T]{value: numeric.HalfPi[T]()} }

// HalfCircle is π.
func HalfCircle[T numeric.Number]() Radian[T] { return Radian[T]{value: numeric.Pi[T]()} }

// ThreeQuarterCircle is 3π/2.
func ThreeQuarterCircle[T numeric.Number]() Radian[T] {
	return Radian[T]{value: numeric.Pi[T]() + numeric.HalfPi[T]()}
}

// Circle is 2π.
func Circle[T numeric.Number]() Radian[T] { return Radian[T]{value: numeric.TwoPi[T]()} }

// Value returns the raw scalar in radians.
func (r Radian[T]) Value() T { return r.value }

// Degrees converts r into degrees.
func (r Radian[T]) Degrees() Degree[T] {
	k := float64(radToDeg)

	return Degree[T]{value: T(float64(r.value) * k)}
}

// Sin returns the sine of r.
func (r Radian[T]) Sin() T { return numeric.Sin(r.value) }

// Cos returns the cosine of r.
func (r Radian[T]) Cos() T { return numeric.Cos(r.value) }

// Tan returns the tangent of r.
func (r Radian[T]) Tan() T { return numeric.Tan(r.value) }

// SinCos returns Sin and Cos in one call.
func (r Radian[T]) SinCos() (sin, cos T) { return numeric.SinCos(r.value) }

// Normalize wraps r in place into [0, 2π).
func (r *Radian[T]) Normalize() { r.NormalizeFrom(Radian[T]{}) }

// NormalizeFrom wraps r in place into [lo, lo+2π).
func (r *Radian[T]) NormalizeFrom(lo Radian[T]) {
	r.value = wrap(r.value, lo.value, numeric.TwoPi[T]())
}

// Normalized returns a copy of r wrapped into [0, 2π).
func (r Radian[T]) Normalized() Radian[T] {
	r.Normalize()

	return r
}

// NormalOf returns r wrapped into [0, 2π).
func NormalOf[T numeric.Number](r Radian[T]) Radian[T] { return r.Normalized() }

// Add returns r+o.
func (r Radian[T]) Add(o Radian[T]) Radian[T] { return Radian[T]{value: r.value + o.value} }

// Sub returns r-o.
func (r Radian[T]) Sub(o Radian[T]) Radian[T] { return Radian[T]{value: r.value - o.value} }

// Mul scales r by s.
func (r Radian[T]) Mul(s T) Radian[T] { return Radian[T]{value: r.value * s} }

// Div divides r by s.
func (r Radian[T]) Div(s T) Radian[T] { return Radian[T]{value: r.value / s} }

// Neg returns -r.
func (r Radian[T]) Neg() Radian[T] { return Radian[T]{value: -r.value} }

// Less reports r < o.
func (r Radian[T]) Less(o Radian[T]) bool { return r.value < o.value }

// Greater reports r > o.
func (r Radian[T]) Greater(o Radian[T]) bool { return r.value > o.value }

// Equal reports r == o by raw value, without wrapping.
func (r Radian[T]) Equal(o Radian[T]) bool { return r.value == o.value }

// Compare returns -1, 0 or +1.
func (r Radian[T]) Compare(o Radian[T]) int { return compare(r.value, o.value) }

// String formats r as "<value>rad".
func (r Radian[T]) String() string { return fmt.Sprintf("%vrad", r.value) }

// wrap maps v into [lo, lo+period).
func wrap[T numeric.Number](v, lo, period T) T {
	w := numeric.Remainder(v-lo, period)
	if w < 0 {
		w += period
	}
	// float rounding of -tiny+period can land exactly on period
	if w >= period {
		w -= period
	}

	return w + lo
}

func compare[T numeric.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
