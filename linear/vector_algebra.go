// SPDX-License-Identifier: MIT

package linear

import (
	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/numeric"
)

// Dot returns Σ v[i]*o[i]. Orders 1 through 4 are unrolled.
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	switch len(v.e) {
	case 1:
		return v.e[0] * o.e[0]
	case 2:
		// Constant indices above 0 fail to compile for the [1]T member of
		// Array; variable indices are checked at run time instead.
		y := 1
		return v.e[0]*o.e[0] + v.e[y]*o.e[y]
	case 3:
		y, z := 1, 2
		return v.e[0]*o.e[0] + v.e[y]*o.e[y] + v.e[z]*o.e[z]
	case 4:
		y, z, w := 1, 2, 3
		return v.e[0]*o.e[0] + v.e[y]*o.e[y] + v.e[z]*o.e[z] + v.e[w]*o.e[w]
	}
	var s T
	for i := 0; i < len(v.e); i++ {
		s += v.e[i] * o.e[i]
	}

	return s
}

// MagnitudeSq returns v·v.
func (v Vector[T, A]) MagnitudeSq() T { return v.Dot(v) }

// Magnitude returns |v|.
func (v Vector[T, A]) Magnitude() T { return numeric.Sqrt(v.Dot(v)) }

// ProjectionMagnitude returns the signed length of v along axis.
func (v Vector[T, A]) ProjectionMagnitude(axis Vector[T, A]) T {
	return v.Dot(axis) / axis.Magnitude()
}

// Normalize scales v to unit length in place. A zero vector becomes all NaN
// (floating kinds); use NormalizeSafe when zero is a legal input.
func (v *Vector[T, A]) Normalize() {
	m := v.Magnitude()
	for i := 0; i < len(v.e); i++ {
		v.e[i] /= m
	}
}

// NormalizeSafe is Normalize that leaves an exactly-zero vector untouched.
func (v *Vector[T, A]) NormalizeSafe() {
	m := v.Magnitude()
	if m == 0 {
		return
	}
	for i := 0; i < len(v.e); i++ {
		v.e[i] /= m
	}
}

// Clamp limits every element to [lo, hi] in place.
func (v *Vector[T, A]) Clamp(lo, hi T) {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = numeric.Clamp(v.e[i], lo, hi)
	}
}

// ClampV limits every element to [lo[i], hi[i]] in place.
func (v *Vector[T, A]) ClampV(lo, hi Vector[T, A]) {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = numeric.Clamp(v.e[i], lo.e[i], hi.e[i])
	}
}

// Power raises every element to exp in place. Invalid combinations such as
// a negative base with a fractional exponent produce NaN.
func (v *Vector[T, A]) Power(exp T) {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = numeric.Pow(v.e[i], exp)
	}
}

// PowerV raises element i to exps[i] in place.
func (v *Vector[T, A]) PowerV(exps Vector[T, A]) {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = numeric.Pow(v.e[i], exps.e[i])
	}
}

// Cross returns the 3D cross product of the first three components. Any
// components past the third are copied from v unchanged.
//
// Errors:
//   - Panics for N < 3; see Cross2 for the planar form.
func (v Vector[T, A]) Cross(o Vector[T, A]) Vector[T, A] {
	if len(v.e) < 3 {
		panic(panicCross1D)
	}
	x, y, z := 0, 1, 2 // variables, not constants; see Dot
	r := v
	r.e[x] = v.e[y]*o.e[z] - v.e[z]*o.e[y]
	r.e[y] = v.e[z]*o.e[x] - v.e[x]*o.e[z]
	r.e[z] = v.e[x]*o.e[y] - v.e[y]*o.e[x]

	return r
}

// Cross2 returns the z component of the cross product of two planar vectors.
//
// Errors:
//   - Panics unless N == 2.
func (v Vector[T, A]) Cross2(o Vector[T, A]) T {
	if len(v.e) != 2 {
		panic(panicCross2)
	}
	y := 1 // see Dot

	return v.e[0]*o.e[y] - v.e[y]*o.e[0]
}

// Project returns the projection of v onto axis; axis need not be unit length.
func (v Vector[T, A]) Project(axis Vector[T, A]) Vector[T, A] {
	return axis.Scale(v.Dot(axis) / axis.MagnitudeSq())
}

// ProjectN normalizes axis and projects v onto it.
func (v Vector[T, A]) ProjectN(axis Vector[T, A]) Vector[T, A] {
	axis.Normalize()

	return axis.Scale(v.Dot(axis))
}

// Reflect returns 2·(v·n)·n − v.
func (v Vector[T, A]) Reflect(n Vector[T, A]) Vector[T, A] {
	return n.Scale(2 * v.Dot(n)).Sub(v)
}

// Refract bends v through a surface with unit normal n and ratio of
// indices eta, following Snell's law. v is normalized first. Total internal
// reflection yields the zero vector.
func (v Vector[T, A]) Refract(n Vector[T, A], eta T) Vector[T, A] {
	v.Normalize()
	d := n.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vector[T, A]{}
	}

	return v.Scale(eta).Sub(n.Scale(eta*d + numeric.Sqrt(k)))
}

// Rotate applies q to the first three components of v in place.
//
// Errors:
//   - Panics unless N is 3 or 4.
func (v *Vector[T, A]) Rotate(q Quaternion[T]) {
	if n := len(v.e); n != 3 && n != 4 {
		panic(panicVector3or4)
	}
	y, z := 1, 2
	r := q.Transform(Vec3(v.e[0], v.e[y], v.e[z]))
	v.e[0], v.e[y], v.e[z] = r.e[0], r.e[1], r.e[2]
}

// NormalOf returns v scaled to unit length (NaN for a zero vector).
func NormalOf[T numeric.Number, A Array[T]](v Vector[T, A]) Vector[T, A] {
	v.Normalize()

	return v
}

// SafeNormalOf returns v scaled to unit length, or v itself when zero.
func SafeNormalOf[T numeric.Number, A Array[T]](v Vector[T, A]) Vector[T, A] {
	v.NormalizeSafe()

	return v
}

// MixOf linearly interpolates a→b; t outside [0, 1] extrapolates.
func MixOf[T numeric.Number, A Array[T]](a, b Vector[T, A], t T) Vector[T, A] {
	return a.Add(b.Sub(a).Scale(t))
}

// OrthoNormalOf removes from a its component along unit b and normalizes
// the rest: one Gram-Schmidt step.
func OrthoNormalOf[T numeric.Number, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	return NormalOf(a.Sub(b.Scale(b.Dot(a))))
}

// Distance returns |a−b|.
func Distance[T numeric.Number, A Array[T]](a, b Vector[T, A]) T {
	return a.Sub(b).Magnitude()
}

// Mean returns the arithmetic mean of the components of v.
func Mean[T numeric.Number, A Array[T]](v Vector[T, A]) T {
	return v.Sum() / T(len(v.e))
}

// WeightedMean returns Σ v[i]·w[i] / Σ w[i].
//
// Errors:
//   - Panics when Σ w[i] == 0.
func WeightedMean[T numeric.Number, A Array[T]](v, w Vector[T, A]) T {
	total := w.Sum()
	if total == 0 {
		panic(panicZeroWeight)
	}

	return v.Mul(w).Sum() / total
}

// Negative returns ceil − v per component, e.g. the photographic negative
// of a color with ceil = 1.
func Negative[T numeric.Number, A Array[T]](v Vector[T, A], ceil T) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = ceil - v.e[i]
	}

	return v
}

// AngleOf returns acos(a·b). Both inputs are expected to be unit length;
// the dot is clamped to [-1, 1], so a zero-length operand yields π/2.
func AngleOf[T numeric.Number, A Array[T]](a, b Vector[T, A]) angle.Radian[T] {
	one := T(1)

	return angle.Rad(numeric.Acos(numeric.Clamp(a.Dot(b), -one, one)))
}
