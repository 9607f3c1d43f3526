// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// Degree is an angle measured in degrees.
type Degree[T numeric.Number] struct {
	value T
}

// Deg wraps v as degrees.
func Deg[T numeric.Number](v T) Degree[T] { return Degree[T]{value: v} }

// ConvertDegree changes the element type of d.
func ConvertDegree[U, T numeric.Number](d Degree[T]) Degree[U] {
	return Degree[U]{value: U(d.value)}
}

// Value returns the raw scalar in degrees.
func (d Degree[T]) Value() T { return d.value }

// Radians converts d into radians.
func (d Degree[T]) Radians() Radian[T] {
	k := float64(degToRad)

	return Radian[T]{value: T(float64(d.value) * k)}
}

// Sin returns the sine of d.
func (d Degree[T]) Sin() T { return d.Radians().Sin() }

// Cos returns the cosine of d.
func (d Degree[T]) Cos() T { return d.Radians().Cos() }

// Tan returns the tangent of d.
func (d Degree[T]) Tan() T { return d.Radians().Tan() }

// SinCos returns Sin and Cos in one call.
func (d Degree[T]) SinCos() (sin, cos T) { return d.Radians().SinCos() }

// Normalize wraps d in place into [0, 360).
func (d *Degree[T]) Normalize() { d.NormalizeFrom(Degree[T]{}) }

// NormalizeFrom wraps d in place into [lo, lo+360).
func (d *Degree[T]) NormalizeFrom(lo Degree[T]) {
	full := 360

	d.value = wrap(d.value, lo.value, T(full))
}

// Normalized returns a copy of d wrapped into [0, 360).
func (d Degree[T]) Normalized() Degree[T] {
	d.Normalize()

	return d
}

func (d Degree[T]) Add(o Degree[T]) Degree[T] { return Degree[T]{value: d.value + o.value} }
func (d Degree[T]) Sub(o Degree[T]) Degree[T] { return Degree[T]{value: d.value - o.value} }
func (d Degree[T]) Mul(s T) Degree[T]         { return Degree[T]{value: d.value * s} }
func (d Degree[T]) Div(s T) Degree[T]         { return Degree[T]{value: d.value / s} }
func (d Degree[T]) Neg() Degree[T]            { return Degree[T]{value: -d.value} }

func (d Degree[T]) Less(o Degree[T]) bool    { return d.value < o.value }
func (d Degree[T]) Greater(o Degree[T]) bool { return d.value > o.value }
func (d Degree[T]) Equal(o Degree[T]) bool   { return d.value == o.value }
func (d Degree[T]) Compare(o Degree[T]) int  { return compare(d.value, o.value) }

// String formats d as "<value>°".
func (d Degree[T]) String() string { return fmt.Sprintf("%v°", d.value) }
