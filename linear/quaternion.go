// SPDX-License-Identifier: MIT
// Package: lvmath/linear
//
// quaternion.go: rotation quaternions stored as (x, y, z, w).
//
// Conventions:
//   - Vector rotation is q·v·q⁻¹ (Transform), matching MakeQuaternionRotation
//     and Matrix.ToQuaternion exactly, so matrix↔quaternion round-trips hold.
//   - Concatenate is the Hamilton product q := q∘o: applying the result rotates
//     by o first, then by q.
//   - Euler angles are (pitch about X, heading about Y, roll about Z) for the
//     rotation Rz(roll)·Ry(heading)·Rx(pitch).
//   - Unit length is expected but not enforced; Normalize restores it.

package linear

import (
	"reflect"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/numeric"
)

const (
	// slerpEpsilon is the distance of the cosine from 1 under which Slerp
	// degrades to normalized Lerp.
	slerpEpsilon = 1e-6

	// gimbalEpsilon is the distance of |r31| from 1 beyond which Euler
	// extraction takes the gimbal-lock branch.
	gimbalEpsilon = 1e-6
)

// Quaternion is (x, y, z, w) with w the scalar part.
type Quaternion[T numeric.Number] [4]T

// IdentityQuaternion returns (0, 0, 0, 1).
func IdentityQuaternion[T numeric.Number]() Quaternion[T] { return Quaternion[T]{0, 0, 0, 1} }

// Quat builds a quaternion from its components.
func Quat[T numeric.Number](x, y, z, w T) Quaternion[T] { return Quaternion[T]{x, y, z, w} }

// QuaternionFromAxisAngle rotates by a around axis; axis need not be unit
// length and a zero axis yields the identity.
func QuaternionFromAxisAngle[T numeric.Number](axis Vector3[T], a angle.Radian[T]) Quaternion[T] {
	var q Quaternion[T]
	q.MakeAxisRotation(axis, a)

	return q
}

// QuaternionFromEuler composes Rz(roll)·Ry(heading)·Rx(pitch).
func QuaternionFromEuler[T numeric.Number](pitch, heading, roll angle.Radian[T]) Quaternion[T] {
	var q Quaternion[T]
	q.MakeEulerRotation(pitch, heading, roll)

	return q
}

func (q Quaternion[T]) X() T { return q[0] }
func (q Quaternion[T]) Y() T { return q[1] }
func (q Quaternion[T]) Z() T { return q[2] }
func (q Quaternion[T]) W() T { return q[3] }

// Span returns 4; with At it makes Quaternion a Source.
func (q Quaternion[T]) Span() int { return 4 }

// At returns component i.
func (q Quaternion[T]) At(i int) T { return q[i] }

// Float64At returns component i as float64.
func (q Quaternion[T]) Float64At(i int) float64 { return float64(q[i]) }

// ElementKind reports the reflect kind of T.
func (q Quaternion[T]) ElementKind() reflect.Kind { return elementKind[T]() }

// Vector returns the imaginary part (x, y, z).
func (q Quaternion[T]) Vector() Vector3[T] { return Vec3(q[0], q[1], q[2]) }

// MakeIdentity sets q to (0, 0, 0, 1).
func (q *Quaternion[T]) MakeIdentity() { *q = IdentityQuaternion[T]() }

// MakeXRotation sets q to a rotation by a about X.
func (q *Quaternion[T]) MakeXRotation(a angle.Radian[T]) {
	s, c := a.Div(2).SinCos()
	*q = Quaternion[T]{s, 0, 0, c}
}

// MakeYRotation sets q to a rotation by a about Y.
func (q *Quaternion[T]) MakeYRotation(a angle.Radian[T]) {
	s, c := a.Div(2).SinCos()
	*q = Quaternion[T]{0, s, 0, c}
}

// MakeZRotation sets q to a rotation by a about Z.
func (q *Quaternion[T]) MakeZRotation(a angle.Radian[T]) {
	s, c := a.Div(2).SinCos()
	*q = Quaternion[T]{0, 0, s, c}
}

// MakeAxisRotation sets q to a rotation by a about axis. A zero axis gives
// the identity.
func (q *Quaternion[T]) MakeAxisRotation(axis Vector3[T], a angle.Radian[T]) {
	m := axis.Magnitude()
	if m == 0 {
		q.MakeIdentity()
		return
	}
	s, c := a.Div(2).SinCos()
	k := s / m
	*q = Quaternion[T]{axis.e[0] * k, axis.e[1] * k, axis.e[2] * k, c}
}

// MakeEulerRotation sets q to Rz(roll)·Ry(heading)·Rx(pitch).
func (q *Quaternion[T]) MakeEulerRotation(pitch, heading, roll angle.Radian[T]) {
	sp, cp := pitch.Div(2).SinCos()
	sh, ch := heading.Div(2).SinCos()
	sr, cr := roll.Div(2).SinCos()
	*q = Quaternion[T]{
		sp*ch*cr - cp*sh*sr,
		cp*sh*cr + sp*ch*sr,
		cp*ch*sr - sp*sh*cr,
		cp*ch*cr + sp*sh*sr,
	}
}

// Dot returns the 4D dot product.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q[0]*o[0] + q[1]*o[1] + q[2]*o[2] + q[3]*o[3]
}

// MagnitudeSq returns q·q.
func (q Quaternion[T]) MagnitudeSq() T { return q.Dot(q) }

// Magnitude returns |q|.
func (q Quaternion[T]) Magnitude() T { return numeric.Sqrt(q.Dot(q)) }

// Normalize scales q to unit length in place (NaN for a zero quaternion).
func (q *Quaternion[T]) Normalize() {
	m := q.Magnitude()
	q[0], q[1], q[2], q[3] = q[0]/m, q[1]/m, q[2]/m, q[3]/m
}

// NormalizeSafe is Normalize that leaves a zero quaternion untouched.
func (q *Quaternion[T]) NormalizeSafe() {
	if q.MagnitudeSq() == 0 {
		return
	}
	q.Normalize()
}

// Normalized returns q scaled to unit length.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	q.Normalize()

	return q
}

// Concatenate sets q to the Hamilton product q∘o.
func (q *Quaternion[T]) Concatenate(o Quaternion[T]) {
	*q = q.Mul(o)
}

// Mul returns the Hamilton product q∘o.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		q[1]*o[2] - q[2]*o[1] + q[3]*o[0] + q[0]*o[3],
		q[2]*o[0] - q[0]*o[2] + q[3]*o[1] + q[1]*o[3],
		q[0]*o[1] - q[1]*o[0] + q[3]*o[2] + q[2]*o[3],
		q[3]*o[3] - q[0]*o[0] - q[1]*o[1] - q[2]*o[2],
	}
}

// Conjugate negates the imaginary part in place.
func (q *Quaternion[T]) Conjugate() {
	q[0], q[1], q[2] = -q[0], -q[1], -q[2]
}

// Conjugated returns (-x, -y, -z, w).
func (q Quaternion[T]) Conjugated() Quaternion[T] {
	q.Conjugate()

	return q
}

// Invert sets q to conjugate/|q|² in place.
func (q *Quaternion[T]) Invert() {
	m := q.MagnitudeSq()
	q.Conjugate()
	q[0], q[1], q[2], q[3] = q[0]/m, q[1]/m, q[2]/m, q[3]/m
}

// Inverse returns conjugate/|q|².
func (q Quaternion[T]) Inverse() Quaternion[T] {
	q.Invert()

	return q
}

// Divide sets q to q∘o⁻¹ in place.
func (q *Quaternion[T]) Divide(o Quaternion[T]) {
	*q = q.Mul(o.Inverse())
}

// Add returns the component-wise sum.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q[0] + o[0], q[1] + o[1], q[2] + o[2], q[3] + o[3]}
}

// Sub returns the component-wise difference.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q[0] - o[0], q[1] - o[1], q[2] - o[2], q[3] - o[3]}
}

// Scale returns q*s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q[0] * s, q[1] * s, q[2] * s, q[3] * s}
}

// Neg returns -q, which encodes the same rotation.
func (q Quaternion[T]) Neg() Quaternion[T] { return q.Scale(T(0) - 1) }

// Equal reports exact component equality.
func (q Quaternion[T]) Equal(o Quaternion[T]) bool { return q == o }

// ApproxEqual reports component-wise equality within eps (WithEpsilon).
func (q Quaternion[T]) ApproxEqual(o Quaternion[T], opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for i := range q {
		if !numeric.ApproxEqual(q[i], o[i], eps) {
			return false
		}
	}

	return true
}

// Log returns the logarithm of a unit quaternion: (θ·axis, 0) with
// q = (sin θ·axis, cos θ).
func (q Quaternion[T]) Log() Quaternion[T] {
	one := T(1)
	theta := numeric.Acos(numeric.Clamp(q[3], -one, one))
	s := numeric.Sin(theta)
	k := one
	if numeric.Abs(s) > numeric.Epsilon[T]() {
		k = theta / s
	}

	return Quaternion[T]{q[0] * k, q[1] * k, q[2] * k, 0}
}

// Exp is the inverse of Log for a pure quaternion (x, y, z, 0).
func (q Quaternion[T]) Exp() Quaternion[T] {
	theta := numeric.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2])
	s, c := numeric.SinCos(theta)
	k := T(1)
	if theta > numeric.Epsilon[T]() {
		k = s / theta
	}

	return Quaternion[T]{q[0] * k, q[1] * k, q[2] * k, c}
}

// Angle returns the rotation angle, in [0, 2π].
func (q Quaternion[T]) Angle() angle.Radian[T] {
	one := T(1)

	return angle.Rad(2 * numeric.Acos(numeric.Clamp(q[3], -one, one)))
}

// Axis returns the unit rotation axis; the identity has no axis and yields
// (1, 0, 0).
func (q Quaternion[T]) Axis() Vector3[T] {
	v := q.Vector()
	if v.MagnitudeSq() == 0 {
		return Vec3[T](1, 0, 0)
	}

	return NormalOf(v)
}

// Euler returns (pitch, heading, roll) such that QuaternionFromEuler of the
// result reproduces q's rotation.
//
// Behavior highlights:
//   - When |r31| > 1−1e-6 pitch and roll share an axis (gimbal lock). Pitch
//     is then reported as 0, heading as ∓π/2, and the whole remaining
//     rotation is attributed to roll.
func (q Quaternion[T]) Euler() (pitch, heading, roll angle.Radian[T]) {
	x, y, z, w := q[0], q[1], q[2], q[3]
	one := T(1)
	r31 := 2 * (x*z - w*y)
	if float64(numeric.Abs(r31)) > 1-gimbalEpsilon {
		r12 := 2 * (x*y - w*z)
		r13 := 2 * (x*z + w*y)
		half := numeric.HalfPi[T]()
		heading = angle.Rad(-half * numeric.Sign(r31))
		roll = angle.Rad(numeric.Atan2(-r12, -r31*r13))

		return angle.Rad[T](0), heading, roll
	}
	r32 := 2 * (y*z + w*x)
	r33 := one - 2*(x*x+y*y)
	r21 := 2 * (x*y + w*z)
	r11 := one - 2*(y*y+z*z)

	return angle.Rad(numeric.Atan2(r32, r33)), angle.Rad(numeric.Asin(-r31)), angle.Rad(numeric.Atan2(r21, r11))
}

// Pitch returns the rotation about X from Euler.
func (q Quaternion[T]) Pitch() angle.Radian[T] {
	p, _, _ := q.Euler()

	return p
}

// Heading returns the rotation about Y from Euler.
func (q Quaternion[T]) Heading() angle.Radian[T] {
	_, h, _ := q.Euler()

	return h
}

// Roll returns the rotation about Z from Euler.
func (q Quaternion[T]) Roll() angle.Radian[T] {
	_, _, r := q.Euler()

	return r
}

// Transform rotates v by q: q·v·q⁻¹ for a unit q.
func (q Quaternion[T]) Transform(v Vector3[T]) Vector3[T] {
	u := q.Vector()
	t := u.Cross(v).Scale(2)

	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// Transform4 rotates the xyz part of v and keeps w.
func (q Quaternion[T]) Transform4(v Vector4[T]) Vector4[T] {
	r := q.Transform(Vec3(v.e[0], v.e[1], v.e[2]))

	return Vec4(r.e[0], r.e[1], r.e[2], v.e[3])
}

// Lerp interpolates component-wise and normalizes the result.
func Lerp[T numeric.Number](from, to Quaternion[T], t T) Quaternion[T] {
	return from.Scale(1 - t).Add(to.Scale(t)).Normalized()
}

// Slerp interpolates along the great arc from → to. Equal endpoints return
// from unchanged; nearly parallel endpoints fall back to Lerp.
func Slerp[T numeric.Number](from, to Quaternion[T], t T) Quaternion[T] {
	if from == to {
		return from
	}

	return slerp(from, to, from.Dot(to), t)
}

// SlerpSR is Slerp along the shorter of the two arcs (spin-reduced): when
// the endpoints lie in opposite hemispheres, to is negated first.
func SlerpSR[T numeric.Number](from, to Quaternion[T], t T) Quaternion[T] {
	if from == to {
		return from
	}
	d := from.Dot(to)
	if d < 0 {
		to, d = to.Neg(), -d
	}

	return slerp(from, to, d, t)
}

func slerp[T numeric.Number](from, to Quaternion[T], d, t T) Quaternion[T] {
	if float64(d) > 1-slerpEpsilon {
		return Lerp(from, to, t)
	}
	one := T(1)
	theta := numeric.Acos(numeric.Clamp(d, -one, one))
	s := numeric.Sin(theta)
	a := numeric.Sin((1-t)*theta) / s
	b := numeric.Sin(t*theta) / s

	return from.Scale(a).Add(to.Scale(b))
}

// Squad is spherical cubic interpolation from → to with inner control
// points a and b.
func Squad[T numeric.Number](from, to, a, b Quaternion[T], t T) Quaternion[T] {
	return Slerp(Slerp(from, to, t), Slerp(a, b, t), 2*t*(1-t))
}
