// SPDX-License-Identifier: MIT
// Package: lvmath/linear
//
// span.go: the construction-deduction layer.
//
// Every variadic constructor in this package (NewVector, Vector.Reset,
// NewMatrix, Swizzle.Assign, MakeTranslation, MakeScale) accepts a
// heterogeneous argument list and flattens it, in order, into fixed-size
// destination storage. The number of scalars an argument list contributes is
// its span; construction succeeds only when the span equals the destination
// size exactly.
//
// Accepted argument kinds, in dispatch order:
//   - T itself and every Go numeric scalar kind (converted to T);
//   - []T;
//   - Source[T]: a same-element-type producer (Vector, Swizzle, Quaternion);
//   - Spanner: a producer of another element type, converted through float64;
//   - any Go array or slice whose elements are numeric or themselves
//     flattenable (resolved through reflect, e.g. [2]float32 or []Vector3d).
//
// Tags, strings, maps, nil and everything else are rejected with
// ErrUnsupportedArgument.

package linear

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvmath/numeric"
)

// Source yields Span() scalars of element type T by index. Vector, Swizzle
// and Quaternion implement it, so they flatten without conversion.
type Source[T numeric.Number] interface {
	Span() int
	At(i int) T
}

// Spanner yields Span() scalars of an arbitrary element type through float64.
// It is the conversion path when a source's element type differs from the
// destination's.
type Spanner interface {
	Span() int
	Float64At(i int) float64
	ElementKind() reflect.Kind
}

// sink receives flattened scalars one by one.
type sink[T numeric.Number] interface {
	emit(x T)
}

// flatten writes every scalar of arg into dst, in order.
func flatten[T numeric.Number](dst sink[T], arg any) error {
	switch a := arg.(type) {
	case nil, Tag:
		return fmt.Errorf("%w: %T", ErrUnsupportedArgument, arg)
	case T:
		dst.emit(a)
	case float64:
		dst.emit(T(a))
	case float32:
		dst.emit(T(a))
	case int:
		dst.emit(T(a))
	case int8:
		dst.emit(T(a))
	case int16:
		dst.emit(T(a))
	case int32:
		dst.emit(T(a))
	case int64:
		dst.emit(T(a))
	case uint:
		dst.emit(T(a))
	case uint8:
		dst.emit(T(a))
	case uint16:
		dst.emit(T(a))
	case uint32:
		dst.emit(T(a))
	case uint64:
		dst.emit(T(a))
	case uintptr:
		dst.emit(T(a))
	case []T:
		for _, x := range a {
			dst.emit(x)
		}
	case Source[T]:
		for i, n := 0, a.Span(); i < n; i++ {
			dst.emit(a.At(i))
		}
	case Spanner:
		for i, n := 0, a.Span(); i < n; i++ {
			dst.emit(T(a.Float64At(i)))
		}
	default:
		return flattenReflect(dst, reflect.ValueOf(arg))
	}

	return nil
}

// flattenReflect handles named numeric scalars and arbitrary arrays/slices.
func flattenReflect[T numeric.Number](dst sink[T], rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dst.emit(T(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		dst.emit(T(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		dst.emit(T(rv.Float()))
	case reflect.Array, reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			if err := flatten(dst, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedArgument, rv.Kind())
	}

	return nil
}

// counter is a sink that only counts.
type counter[T numeric.Number] struct{ n int }

func (c *counter[T]) emit(T) { c.n++ }

// SpanOf returns the number of scalars args flatten into.
//
// Errors:
//   - ErrUnsupportedArgument for an argument that cannot be flattened.
//
// Complexity:
//   - O(span), no allocation beyond boxing of args.
func SpanOf(args ...any) (int, error) {
	var c counter[float64]
	for _, a := range args {
		if err := flatten[float64](&c, a); err != nil {
			return 0, err
		}
	}

	return c.n, nil
}

// KindOf returns the widest element kind across args: Float64 beats Float32,
// which beats every integer kind; among integers the widest wins and a
// signed argument makes the result signed.
//
// Errors:
//   - ErrUnsupportedArgument for an argument that cannot be flattened.
func KindOf(args ...any) (reflect.Kind, error) {
	best := reflect.Invalid
	for _, a := range args {
		k, err := kindOf(a)
		if err != nil {
			return reflect.Invalid, err
		}
		best = widerKind(best, k)
	}

	return best, nil
}

func kindOf(arg any) (reflect.Kind, error) {
	switch a := arg.(type) {
	case nil, Tag:
		return reflect.Invalid, fmt.Errorf("%w: %T", ErrUnsupportedArgument, arg)
	case Spanner:
		return a.ElementKind(), nil
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		best := reflect.Invalid
		for i := 0; i < rv.Len(); i++ {
			k, err := kindOf(rv.Index(i).Interface())
			if err != nil {
				return reflect.Invalid, err
			}
			best = widerKind(best, k)
		}
		if rv.Len() == 0 {
			return kindOfType(rv.Type().Elem()), nil
		}

		return best, nil
	}
	if k := rv.Kind(); kindRank(k) > 0 {
		return k, nil
	}

	return reflect.Invalid, fmt.Errorf("%w: %s", ErrUnsupportedArgument, rv.Kind())
}

func kindOfType(t reflect.Type) reflect.Kind {
	if kindRank(t.Kind()) > 0 {
		return t.Kind()
	}

	return reflect.Invalid
}

// kindRank orders numeric kinds by how much they can represent; 0 means
// not numeric.
func kindRank(k reflect.Kind) int {
	switch k {
	case reflect.Uint8:
		return 1
	case reflect.Int8:
		return 2
	case reflect.Uint16:
		return 3
	case reflect.Int16:
		return 4
	case reflect.Uint32:
		return 5
	case reflect.Int32:
		return 6
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return 7
	case reflect.Int, reflect.Int64:
		return 8
	case reflect.Float32:
		return 9
	case reflect.Float64:
		return 10
	}

	return 0
}

func widerKind(a, b reflect.Kind) reflect.Kind {
	ra, rb := kindRank(a), kindRank(b)
	switch {
	case ra == 0:
		return b
	case rb == 0:
		return a
	case ra >= 9 || rb >= 9:
		if ra > rb {
			return a
		}
		return b
	}
	// integers: widest wins, signedness is sticky
	wa, wb := intWidth(a), intWidth(b)
	signed := isSigned(a) || isSigned(b)
	w := max(wa, wb)

	return intKind(w, signed)
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}

	return false
}

func intWidth(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32:
		return 32
	}

	return 64
}

func intKind(width int, signed bool) reflect.Kind {
	switch width {
	case 8:
		if signed {
			return reflect.Int8
		}
		return reflect.Uint8
	case 16:
		if signed {
			return reflect.Int16
		}
		return reflect.Uint16
	case 32:
		if signed {
			return reflect.Int32
		}
		return reflect.Uint32
	}
	if signed {
		return reflect.Int64
	}

	return reflect.Uint64
}

// elementKind reports the reflect kind of T.
func elementKind[T numeric.Number]() reflect.Kind {
	var z T

	return reflect.TypeOf(z).Kind()
}

// Builder accumulates scalars into the fixed-size array S.
//
// Implementation:
//   - Stage 1: Scalar/Slice/Source/Span/Any append in call order; the cursor
//     keeps counting past capacity so the final size is always known.
//   - Stage 2: Build validates the count against len(S) and returns the array.
//
// Behavior highlights:
//   - The first flattening error is sticky; later appends are ignored.
//   - The zero value is ready to use.
//
// Errors (from Build):
//   - ErrUnsupportedArgument, ErrSpanOverflow, ErrSpanMismatch.
//
// Complexity:
//   - O(span) time; no heap allocation for typed appends.
type Builder[T numeric.Number, S Array[T]] struct {
	buf S
	n   int
	err error
}

func (b *Builder[T, S]) emit(x T) {
	if b.n < len(b.buf) {
		b.buf[b.n] = x
	}
	b.n++
}

// Scalar appends vs.
func (b *Builder[T, S]) Scalar(vs ...T) *Builder[T, S] {
	if b.err == nil {
		for _, x := range vs {
			b.emit(x)
		}
	}

	return b
}

// Slice appends every element of s.
func (b *Builder[T, S]) Slice(s []T) *Builder[T, S] { return b.Scalar(s...) }

// Source appends every scalar of src without conversion.
func (b *Builder[T, S]) Source(src Source[T]) *Builder[T, S] {
	if b.err == nil {
		for i, n := 0, src.Span(); i < n; i++ {
			b.emit(src.At(i))
		}
	}

	return b
}

// Span appends every scalar of sp, converted to T.
func (b *Builder[T, S]) Span(sp Spanner) *Builder[T, S] {
	if b.err == nil {
		for i, n := 0, sp.Span(); i < n; i++ {
			b.emit(T(sp.Float64At(i)))
		}
	}

	return b
}

// Any dispatches each argument by kind; see the file header for the list.
func (b *Builder[T, S]) Any(args ...any) *Builder[T, S] {
	for _, a := range args {
		if b.err != nil {
			break
		}
		b.err = flatten[T](b, a)
	}

	return b
}

// Len returns the number of scalars appended so far.
func (b *Builder[T, S]) Len() int { return b.n }

// Cap returns len(S).
func (b *Builder[T, S]) Cap() int { return len(b.buf) }

// Remaining returns how many scalars are still needed; negative on overflow.
func (b *Builder[T, S]) Remaining() int { return len(b.buf) - b.n }

// Err returns the sticky flattening error, if any.
func (b *Builder[T, S]) Err() error { return b.err }

// Reset clears the builder for reuse.
func (b *Builder[T, S]) Reset() { *b = Builder[T, S]{} }

// Build returns the filled array.
func (b *Builder[T, S]) Build() (S, error) {
	switch {
	case b.err != nil:
		return b.buf, linearErrorf(opBuild, b.err)
	case b.n > len(b.buf):
		return b.buf, linearErrorf(opBuild, fmt.Errorf("%w: got %d, want %d", ErrSpanOverflow, b.n, len(b.buf)))
	case b.n < len(b.buf):
		return b.buf, linearErrorf(opBuild, fmt.Errorf("%w: got %d, want %d", ErrSpanMismatch, b.n, len(b.buf)))
	}

	return b.buf, nil
}

// sliceSink writes into a caller-provided slice, counting past its end.
type sliceSink[T numeric.Number] struct {
	dst []T
	n   int
}

func (s *sliceSink[T]) emit(x T) {
	if s.n < len(s.dst) {
		s.dst[s.n] = x
	}
	s.n++
}

// fill flattens args into dst and reports how many scalars they held.
func fill[T numeric.Number](dst []T, args ...any) (int, error) {
	s := sliceSink[T]{dst: dst}
	for _, a := range args {
		if err := flatten[T](&s, a); err != nil {
			return s.n, err
		}
	}

	return s.n, nil
}

// checkSpan converts a fill count into the sentinel matching want.
func checkSpan(got, want int) error {
	switch {
	case got > want:
		return fmt.Errorf("%w: got %d, want %d", ErrSpanOverflow, got, want)
	case got < want:
		return fmt.Errorf("%w: got %d, want %d", ErrSpanMismatch, got, want)
	}

	return nil
}
