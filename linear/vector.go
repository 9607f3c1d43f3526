// SPDX-License-Identifier: MIT

package linear

import (
	"reflect"

	"github.com/katalvlaran/lvmath/numeric"
)

// Vector is an N-component value type, N = len(A).
//
// Storage is the inline array A, so copies are deep and nothing is heap
// allocated. Pure operations (Add, Dot, Cross, Reflect, …) use value
// receivers and return new vectors; in-place mutators (Set, Normalize,
// Clamp, Reset, …) use pointer receivers.
//
// Element access out of range panics with the runtime's index error.
type Vector[T numeric.Number, A Array[T]] struct {
	e A
}

// NewVector flattens args into a vector; see span.go for accepted kinds.
// A single Tag argument selects tagged construction and no arguments yield
// the zero vector.
//
// Errors:
//   - Panics when the span of args differs from N or an argument cannot be
//     flattened. Use TryVector to receive the error instead.
func NewVector[T numeric.Number, A Array[T]](args ...any) Vector[T, A] {
	v, err := TryVector[T, A](args...)
	if err != nil {
		panic(err.Error())
	}

	return v
}

// TryVector is NewVector returning ErrSpanMismatch, ErrSpanOverflow or
// ErrUnsupportedArgument instead of panicking.
func TryVector[T numeric.Number, A Array[T]](args ...any) (Vector[T, A], error) {
	var v Vector[T, A]
	if err := v.reset(args); err != nil {
		return Vector[T, A]{}, linearErrorf(opTryVector, err)
	}

	return v, nil
}

// TaggedVector returns the vector selected by tag.
func TaggedVector[T numeric.Number, A Array[T]](tag Tag) Vector[T, A] {
	var v Vector[T, A]
	v.SetTag(tag)

	return v
}

// FromArray wraps a.
func FromArray[T numeric.Number, A Array[T]](a A) Vector[T, A] { return Vector[T, A]{e: a} }

// Vec2 builds a 2-component vector.
func Vec2[T numeric.Number](x, y T) Vector2[T] {
	var v Vector2[T]
	v.e[0], v.e[1] = x, y

	return v
}

// Vec3 builds a 3-component vector.
func Vec3[T numeric.Number](x, y, z T) Vector3[T] {
	var v Vector3[T]
	v.e[0], v.e[1], v.e[2] = x, y, z

	return v
}

// Vec4 builds a 4-component vector.
func Vec4[T numeric.Number](x, y, z, w T) Vector4[T] {
	var v Vector4[T]
	v.e[0], v.e[1], v.e[2], v.e[3] = x, y, z, w

	return v
}

// Reset overwrites v with the flattened args (same rules as NewVector).
// On error v is left unchanged.
func (v *Vector[T, A]) Reset(args ...any) error {
	if err := v.reset(args); err != nil {
		return linearErrorf(opVectorReset, err)
	}

	return nil
}

func (v *Vector[T, A]) reset(args []any) error {
	switch len(args) {
	case 0:
		*v = Vector[T, A]{}
		return nil
	case 1:
		if tag, ok := args[0].(Tag); ok {
			v.SetTag(tag)
			return nil
		}
	}
	var b Builder[T, A]
	e, err := b.Any(args...).Build()
	if err != nil {
		return err
	}
	v.e = e

	return nil
}

// SetTag applies tag in place: Zero → all 0, One → all 1,
// Identity → (0, …, 0, 1).
func (v *Vector[T, A]) SetTag(tag Tag) {
	switch tag {
	case One:
		v.Fill(1)
	case Identity:
		v.Fill(0)
		v.e[len(v.e)-1] = 1
	default:
		v.Fill(0)
	}
}

// Len returns N.
func (v Vector[T, A]) Len() int { return len(v.e) }

// Span returns N; with At it makes Vector a Source.
func (v Vector[T, A]) Span() int { return len(v.e) }

// At returns element i.
func (v Vector[T, A]) At(i int) T { return v.e[i] }

// Float64At returns element i as float64; with ElementKind it makes Vector
// a Spanner.
func (v Vector[T, A]) Float64At(i int) float64 { return float64(v.e[i]) }

// ElementKind reports the reflect kind of T.
func (v Vector[T, A]) ElementKind() reflect.Kind { return elementKind[T]() }

// Set assigns element i.
func (v *Vector[T, A]) Set(i int, x T) { v.e[i] = x }

// Ptr returns the address of element i.
func (v *Vector[T, A]) Ptr(i int) *T { return &v.e[i] }

// Array returns a copy of the storage.
func (v Vector[T, A]) Array() A { return v.e }

// Slice returns the elements in a new slice.
func (v Vector[T, A]) Slice() []T {
	out := make([]T, len(v.e))
	for i := range out {
		out[i] = v.e[i]
	}

	return out
}

// Component accessors. Y, Z and W panic when N is too small.
func (v Vector[T, A]) X() T { return v.e[0] }
func (v Vector[T, A]) Y() T { return v.At(1) }
func (v Vector[T, A]) Z() T { return v.At(2) }
func (v Vector[T, A]) W() T { return v.At(3) }

func (v *Vector[T, A]) SetX(x T) { v.e[0] = x }
func (v *Vector[T, A]) SetY(y T) { v.Set(1, y) }
func (v *Vector[T, A]) SetZ(z T) { v.Set(2, z) }
func (v *Vector[T, A]) SetW(w T) { v.Set(3, w) }

// Fill sets every element to x.
func (v *Vector[T, A]) Fill(x T) {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = x
	}
}

// Equal reports exact element-wise equality.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	for i := 0; i < len(v.e); i++ {
		if v.e[i] != o.e[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports |v[i]-o[i]| <= eps for every i (WithEpsilon,
// default DefaultEpsilon).
func (v Vector[T, A]) ApproxEqual(o Vector[T, A], opts ...Option) bool {
	eps := gatherOptions(opts...).eps
	for i := 0; i < len(v.e); i++ {
		if !numeric.ApproxEqual(v.e[i], o.e[i], eps) {
			return false
		}
	}

	return true
}

// IsZero reports whether every element is exactly 0.
func (v Vector[T, A]) IsZero() bool {
	for i := 0; i < len(v.e); i++ {
		if v.e[i] != 0 {
			return false
		}
	}

	return true
}

// Add returns v+o.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] += o.e[i]
	}

	return v
}

// Sub returns v-o.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] -= o.e[i]
	}

	return v
}

// Mul returns the element-wise product.
func (v Vector[T, A]) Mul(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] *= o.e[i]
	}

	return v
}

// Div returns the element-wise quotient.
func (v Vector[T, A]) Div(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] /= o.e[i]
	}

	return v
}

// AddScalar returns v with s added to every element.
func (v Vector[T, A]) AddScalar(s T) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] += s
	}

	return v
}

// SubScalar returns v with s subtracted from every element.
func (v Vector[T, A]) SubScalar(s T) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] -= s
	}

	return v
}

// Scale returns v*s.
func (v Vector[T, A]) Scale(s T) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] *= s
	}

	return v
}

// DivScalar returns v/s.
func (v Vector[T, A]) DivScalar(s T) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] /= s
	}

	return v
}

// Neg returns -v.
func (v Vector[T, A]) Neg() Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = -v.e[i]
	}

	return v
}

// Sum returns the sum of the elements.
func (v Vector[T, A]) Sum() T {
	var s T
	for i := 0; i < len(v.e); i++ {
		s += v.e[i]
	}

	return s
}
