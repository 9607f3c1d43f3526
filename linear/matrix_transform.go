// SPDX-License-Identifier: MIT
// Package: lvmath/linear
//
// matrix_transform.go: transform synthesis and decomposition.
//
// All Make* methods overwrite the whole matrix: they start from the identity
// and fill the block they own, so an order-4 rotation is a homogeneous
// rotation with (0, 0, 0, 1) in the last row and column.
//
// Order requirements (panic otherwise):
//   - MakeZRotation, MakeRotation, MakeShear: N ≥ 2.
//   - MakeXRotation, MakeYRotation, MakeAxisRotation,
//     MakeQuaternionRotation, MakeEulerRotation, ToQuaternion: N ≥ 3.
//   - MakeTRS2D: N = 3.   MakeTRS, LookAt: N = 4.

package linear

import (
	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/numeric"
)

func (m Matrix[T, A, G]) atLeast(k int, msg string) int {
	n := m.Order()
	if n < k {
		panic(msg)
	}

	return n
}

func (m Matrix[T, A, G]) exactly(k int, msg string) {
	if m.Order() != k {
		panic(msg)
	}
}

// MakeXRotation sets m to a rotation by a about X.
func (m *Matrix[T, A, G]) MakeXRotation(a angle.Radian[T]) {
	m.atLeast(3, panicOrderAtLeast3)
	s, c := a.SinCos()
	m.MakeIdentity()
	m.Set(1, 1, c)
	m.Set(1, 2, s)
	m.Set(2, 1, -s)
	m.Set(2, 2, c)
}

// MakeYRotation sets m to a rotation by a about Y.
func (m *Matrix[T, A, G]) MakeYRotation(a angle.Radian[T]) {
	m.atLeast(3, panicOrderAtLeast3)
	s, c := a.SinCos()
	m.MakeIdentity()
	m.Set(0, 0, c)
	m.Set(0, 2, -s)
	m.Set(2, 0, s)
	m.Set(2, 2, c)
}

// MakeZRotation sets m to a rotation by a about Z (the plane rotation for N = 2).
func (m *Matrix[T, A, G]) MakeZRotation(a angle.Radian[T]) {
	m.atLeast(2, panicOrderAtLeast2)
	s, c := a.SinCos()
	m.MakeIdentity()
	m.Set(0, 0, c)
	m.Set(0, 1, s)
	m.Set(1, 0, -s)
	m.Set(1, 1, c)
}

// MakeRotation is MakeZRotation, the natural rotation of the plane.
func (m *Matrix[T, A, G]) MakeRotation(a angle.Radian[T]) { m.MakeZRotation(a) }

// MakeAxisRotation sets m to a rotation by a about axis (Rodrigues'
// formula). axis need not be unit length; a zero axis gives the identity.
func (m *Matrix[T, A, G]) MakeAxisRotation(axis Vector3[T], a angle.Radian[T]) {
	m.atLeast(3, panicOrderAtLeast3)
	m.MakeIdentity()
	if axis.MagnitudeSq() == 0 {
		return
	}
	axis.Normalize()
	x, y, z := axis.e[0], axis.e[1], axis.e[2]
	s, c := a.SinCos()
	t := 1 - c
	m.setBlock3([9]T{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
	})
}

// MakeQuaternionRotation sets m to the rotation encoded by the unit
// quaternion q; the inverse of ToQuaternion.
func (m *Matrix[T, A, G]) MakeQuaternionRotation(q Quaternion[T]) {
	m.atLeast(3, panicOrderAtLeast3)
	m.MakeIdentity()
	m.setBlock3(rotationBlock(q))
}

// MakeEulerRotation sets m to Rz(roll)·Ry(heading)·Rx(pitch).
func (m *Matrix[T, A, G]) MakeEulerRotation(pitch, heading, roll angle.Radian[T]) {
	m.MakeQuaternionRotation(QuaternionFromEuler(pitch, heading, roll))
}

// rotationBlock returns the column-major 3×3 rotation of q.
func rotationBlock[T numeric.Number](q Quaternion[T]) [9]T {
	x, y, z, w := q[0], q[1], q[2], q[3]
	one := T(1)

	return [9]T{
		one - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y),
		2 * (x*y - w*z), one - 2*(x*x+z*z), 2 * (y*z + w*x),
		2 * (x*z + w*y), 2 * (y*z - w*x), one - 2*(x*x+y*y),
	}
}

// setBlock3 writes a column-major 3×3 block at the top-left corner.
func (m *Matrix[T, A, G]) setBlock3(b [9]T) {
	n := m.Order()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m.e[c*n+r] = b[c*3+r]
		}
	}
}

// MakeTranslation sets m to the identity with the flattened args (span ≤ N)
// written down the last column, e.g. MakeTranslation(1, 2, 3) for N = 4.
//
// Errors:
//   - ErrSpanOverflow, ErrUnsupportedArgument; m is left unchanged.
func (m *Matrix[T, A, G]) MakeTranslation(args ...any) error {
	n := m.Order()
	var b Builder[T, A]
	b.Any(args...)
	if err := spanAtMost(&b); err != nil {
		return linearErrorf(opMakeTranslation, err)
	}
	m.MakeIdentity()
	for r := 0; r < b.Len(); r++ {
		m.e[(n-1)*n+r] = b.buf[r]
	}

	return nil
}

// MakeScale sets m to the identity with the flattened args (span ≤ N)
// written down the diagonal.
//
// Errors:
//   - ErrSpanOverflow, ErrUnsupportedArgument; m is left unchanged.
func (m *Matrix[T, A, G]) MakeScale(args ...any) error {
	n := m.Order()
	var b Builder[T, A]
	b.Any(args...)
	if err := spanAtMost(&b); err != nil {
		return linearErrorf(opMakeScale, err)
	}
	m.MakeIdentity()
	for d := 0; d < b.Len(); d++ {
		m.e[d*n+d] = b.buf[d]
	}

	return nil
}

func spanAtMost[T numeric.Number, S Array[T]](b *Builder[T, S]) error {
	if err := b.Err(); err != nil {
		return err
	}
	if b.Remaining() < 0 {
		return checkSpan(b.Len(), b.Cap())
	}

	return nil
}

// MakeShear sets m to the identity plus k in column src, row dst, so that
// Transform adds k·v[src] to v[dst].
//
// Errors:
//   - Panics when dst == src or either is outside [0, N).
func (m *Matrix[T, A, G]) MakeShear(dst, src int, k T) {
	n := m.atLeast(2, panicOrderAtLeast2)
	if dst == src || dst < 0 || src < 0 || dst >= n || src >= n {
		panic(panicShearIndex)
	}
	m.MakeIdentity()
	m.e[src*n+dst] = k
}

// MakeTRS2D sets the 3×3 m to translate(t)·rotate(r)·scale(s).
func (m *Matrix[T, A, G]) MakeTRS2D(t Vector2[T], r angle.Radian[T], s Vector2[T]) {
	m.exactly(3, panicOrder3)
	sn, cs := r.SinCos()
	store(&m.e, []T{
		cs * s.e[0], sn * s.e[0], 0,
		-sn * s.e[1], cs * s.e[1], 0,
		t.e[0], t.e[1], 1,
	})
}

// MakeTRS sets the 4×4 m to translate(t)·rotate(q)·scale(s).
func (m *Matrix[T, A, G]) MakeTRS(t Vector3[T], q Quaternion[T], s Vector3[T]) {
	m.exactly(4, panicOrder4)
	b := rotationBlock(q)
	store(&m.e, []T{
		b[0] * s.e[0], b[1] * s.e[0], b[2] * s.e[0], 0,
		b[3] * s.e[1], b[4] * s.e[1], b[5] * s.e[1], 0,
		b[6] * s.e[2], b[7] * s.e[2], b[8] * s.e[2], 0,
		t.e[0], t.e[1], t.e[2], 1,
	})
}

// LookAt sets the 4×4 m to a right-handed view matrix looking from eye
// toward target. The basis is z = normalize(target−eye),
// x = normalize(z×up), y = x×z; every normalization is the safe one, so
// degenerate input never divides by zero.
func (m *Matrix[T, A, G]) LookAt(target, eye, up Vector3[T]) {
	m.exactly(4, panicOrder4)
	z := SafeNormalOf(target.Sub(eye))
	x := SafeNormalOf(z.Cross(up))
	y := x.Cross(z)
	store(&m.e, []T{
		x.e[0], y.e[0], -z.e[0], 0,
		x.e[1], y.e[1], -z.e[1], 0,
		x.e[2], y.e[2], -z.e[2], 0,
		-x.Dot(eye), -y.Dot(eye), z.Dot(eye), 1,
	})
}

// ToQuaternion extracts the rotation of the upper-left 3×3 block.
//
// Implementation:
//   - Stage 1: positive trace → w is the largest component; derive the rest
//     from the off-diagonal differences.
//   - Stage 2: otherwise pick the largest diagonal entry and derive from the
//     matching component, avoiding division by a small number.
//
// Notes:
//   - Exactly inverts MakeQuaternionRotation up to the sign of q.
func (m Matrix[T, A, G]) ToQuaternion() Quaternion[T] {
	m.atLeast(3, panicOrderAtLeast3)
	r := func(row, col int) T { return m.At(col, row) }
	one := T(1)
	trace := r(0, 0) + r(1, 1) + r(2, 2)
	switch {
	case trace > 0:
		s := numeric.Sqrt(trace+one) * 2
		return Quaternion[T]{(r(2, 1) - r(1, 2)) / s, (r(0, 2) - r(2, 0)) / s, (r(1, 0) - r(0, 1)) / s, s / 4}
	case r(0, 0) > r(1, 1) && r(0, 0) > r(2, 2):
		s := numeric.Sqrt(one+r(0, 0)-r(1, 1)-r(2, 2)) * 2
		return Quaternion[T]{s / 4, (r(0, 1) + r(1, 0)) / s, (r(0, 2) + r(2, 0)) / s, (r(2, 1) - r(1, 2)) / s}
	case r(1, 1) > r(2, 2):
		s := numeric.Sqrt(one+r(1, 1)-r(0, 0)-r(2, 2)) * 2
		return Quaternion[T]{(r(0, 1) + r(1, 0)) / s, s / 4, (r(1, 2) + r(2, 1)) / s, (r(0, 2) - r(2, 0)) / s}
	default:
		s := numeric.Sqrt(one+r(2, 2)-r(0, 0)-r(1, 1)) * 2
		return Quaternion[T]{(r(0, 2) + r(2, 0)) / s, (r(1, 2) + r(2, 1)) / s, s / 4, (r(1, 0) - r(0, 1)) / s}
	}
}

// Slice returns the order-len(B) block of m whose top-left corner sits on
// the diagonal at offset, e.g. Slice[[3]float64, [9]float64](m4, 1).
//
// Errors:
//   - Panics when the block does not fit inside m.
func Slice[B Array[T], H Array[T], T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G], offset int) Matrix[T, B, H] {
	n := m.Order()
	var out Matrix[T, B, H]
	k := out.Order()
	if offset < 0 || offset+k > n {
		panic(panicResize)
	}
	for c := 0; c < k; c++ {
		for r := 0; r < k; r++ {
			out.e[c*k+r] = m.e[(c+offset)*n+r+offset]
		}
	}

	return out
}

// Contract returns the top-left order-len(B) block of m.
func Contract[B Array[T], H Array[T], T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) Matrix[T, B, H] {
	return Slice[B, H](m, 0)
}

// Expand embeds m in the top-left corner of a larger identity.
//
// Errors:
//   - Panics when len(B) < N.
func Expand[B Array[T], H Array[T], T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) Matrix[T, B, H] {
	n := m.Order()
	var out Matrix[T, B, H]
	k := out.Order()
	if k < n {
		panic(panicResize)
	}
	out.MakeIdentity()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			out.e[c*k+r] = m.e[c*n+r]
		}
	}

	return out
}
