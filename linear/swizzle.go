// SPDX-License-Identifier: MIT

package linear

import (
	"reflect"
	"strings"

	"github.com/katalvlaran/lvmath/numeric"
)

// Swizzle is a re-indexing view over a parent vector. It holds a pointer to
// the parent, so reads observe and writes mutate the parent's storage.
//
// Any index sequence may be read, repeats included ("xx", "zyx", "wwww").
// Writes are valid only when every index is distinct; writing through a
// repeated-index view panics. Assignable reports which kind a view is.
//
// A view must not outlive its parent's intended lifetime; it is as cheap to
// recreate as it is to keep.
type Swizzle[T numeric.Number, A Array[T]] struct {
	v      *Vector[T, A]
	idx    []int
	unique bool
}

// swizzleSets are the accepted component alphabets; a name must use exactly one.
var swizzleSets = [...]string{"xyzw", "rgba", "uvst"}

// Swizzle returns a view selecting components by name, one letter per
// component from one of the alphabets xyzw, rgba or uvst.
//
// Errors:
//   - Panics on an empty name, a letter outside the alphabets, mixed
//     alphabets, or a letter addressing a component ≥ N.
func (v *Vector[T, A]) Swizzle(name string) Swizzle[T, A] {
	if name == "" {
		panic(panicSwizzleName)
	}
	set := ""
	for _, s := range swizzleSets {
		if strings.IndexByte(s, name[0]) >= 0 {
			set = s
			break
		}
	}
	if set == "" {
		panic(panicSwizzleName)
	}
	idx := make([]int, len(name))
	for i := 0; i < len(name); i++ {
		k := strings.IndexByte(set, name[i])
		if k < 0 {
			panic(panicSwizzleName)
		}
		idx[i] = k
	}

	return newSwizzle(v, idx)
}

// SwizzleIndices returns a view selecting components by index.
//
// Errors:
//   - Panics when an index is outside [0, N).
func (v *Vector[T, A]) SwizzleIndices(idx ...int) Swizzle[T, A] {
	return newSwizzle(v, append([]int(nil), idx...))
}

// Common named views.
func (v *Vector[T, A]) XY() Swizzle[T, A]  { return v.SwizzleIndices(0, 1) }
func (v *Vector[T, A]) XZ() Swizzle[T, A]  { return v.SwizzleIndices(0, 2) }
func (v *Vector[T, A]) YZ() Swizzle[T, A]  { return v.SwizzleIndices(1, 2) }
func (v *Vector[T, A]) XYZ() Swizzle[T, A] { return v.SwizzleIndices(0, 1, 2) }
func (v *Vector[T, A]) ZYX() Swizzle[T, A] { return v.SwizzleIndices(2, 1, 0) }

func newSwizzle[T numeric.Number, A Array[T]](v *Vector[T, A], idx []int) Swizzle[T, A] {
	n := len(v.e)
	var seen uint64
	unique := true
	for _, k := range idx {
		if k < 0 || k >= n {
			panic(panicSwizzleIndex)
		}
		if seen&(1<<k) != 0 {
			unique = false
		}
		seen |= 1 << k
	}

	return Swizzle[T, A]{v: v, idx: idx, unique: unique}
}

// Len returns the number of selected components, M.
func (s Swizzle[T, A]) Len() int { return len(s.idx) }

// Span returns M; with At it makes Swizzle a Source.
func (s Swizzle[T, A]) Span() int { return len(s.idx) }

// At returns the parent component selected by position i.
func (s Swizzle[T, A]) At(i int) T { return s.v.e[s.idx[i]] }

// Float64At returns At(i) as float64.
func (s Swizzle[T, A]) Float64At(i int) float64 { return float64(s.At(i)) }

// ElementKind reports the reflect kind of T.
func (s Swizzle[T, A]) ElementKind() reflect.Kind { return elementKind[T]() }

// Indices returns a copy of the selected parent indices.
func (s Swizzle[T, A]) Indices() []int { return append([]int(nil), s.idx...) }

// Assignable reports whether the selected indices are pairwise distinct.
func (s Swizzle[T, A]) Assignable() bool { return s.unique }

// Values gathers the selected components into a new slice.
func (s Swizzle[T, A]) Values() []T {
	out := make([]T, len(s.idx))
	for i, k := range s.idx {
		out[i] = s.v.e[k]
	}

	return out
}

// Gather copies the selected components into an owned vector of order
// len(B) == M, e.g. Gather[[2]float64](v.Swizzle("zx")).
//
// Errors:
//   - Panics when len(B) != M.
func Gather[B Array[T], T numeric.Number, A Array[T]](s Swizzle[T, A]) Vector[T, B] {
	var out Vector[T, B]
	if len(out.e) != len(s.idx) {
		panic(panicGatherLen)
	}
	for i, k := range s.idx {
		out.e[i] = s.v.e[k]
	}

	return out
}

func (s Swizzle[T, A]) mustAssignable() {
	if !s.unique {
		panic(panicSwizzleUnique)
	}
}

// Set writes values[i] into the parent at the i-th selected index.
//
// Errors:
//   - Panics on a repeated-index view or when len(values) != M.
func (s Swizzle[T, A]) Set(values ...T) {
	s.mustAssignable()
	if len(values) != len(s.idx) {
		panic(panicSwizzleLen)
	}
	for i, k := range s.idx {
		s.v.e[k] = values[i]
	}
}

// Assign flattens args (same rules as NewVector) into the selected
// components. On error the parent is left unchanged.
//
// Errors:
//   - Panics on a repeated-index view.
//   - ErrSpanMismatch, ErrSpanOverflow, ErrUnsupportedArgument.
func (s Swizzle[T, A]) Assign(args ...any) error {
	s.mustAssignable()
	buf := make([]T, len(s.idx))
	n, err := fill(buf, args...)
	if err == nil {
		err = checkSpan(n, len(s.idx))
	}
	if err != nil {
		return linearErrorf(opSwizzleAssign, err)
	}
	for i, k := range s.idx {
		s.v.e[k] = buf[i]
	}

	return nil
}

// Fill writes x into every selected component.
func (s Swizzle[T, A]) Fill(x T) {
	s.mustAssignable()
	for _, k := range s.idx {
		s.v.e[k] = x
	}
}

// AddScalar adds x to every selected component.
func (s Swizzle[T, A]) AddScalar(x T) {
	s.mustAssignable()
	for _, k := range s.idx {
		s.v.e[k] += x
	}
}

// SubScalar subtracts x from every selected component.
func (s Swizzle[T, A]) SubScalar(x T) {
	s.mustAssignable()
	for _, k := range s.idx {
		s.v.e[k] -= x
	}
}

// Scale multiplies every selected component by x.
func (s Swizzle[T, A]) Scale(x T) {
	s.mustAssignable()
	for _, k := range s.idx {
		s.v.e[k] *= x
	}
}

// DivScalar divides every selected component by x.
func (s Swizzle[T, A]) DivScalar(x T) {
	s.mustAssignable()
	for _, k := range s.idx {
		s.v.e[k] /= x
	}
}

// Add adds values[i] to the i-th selected component.
func (s Swizzle[T, A]) Add(values ...T) { s.apply(values, func(a, b T) T { return a + b }) }

// Sub subtracts values[i] from the i-th selected component.
func (s Swizzle[T, A]) Sub(values ...T) { s.apply(values, func(a, b T) T { return a - b }) }

// Mul multiplies the i-th selected component by values[i].
func (s Swizzle[T, A]) Mul(values ...T) { s.apply(values, func(a, b T) T { return a * b }) }

// Div divides the i-th selected component by values[i].
func (s Swizzle[T, A]) Div(values ...T) { s.apply(values, func(a, b T) T { return a / b }) }

func (s Swizzle[T, A]) apply(values []T, op func(a, b T) T) {
	s.mustAssignable()
	if len(values) != len(s.idx) {
		panic(panicSwizzleLen)
	}
	for i, k := range s.idx {
		s.v.e[k] = op(s.v.e[k], values[i])
	}
}

// String formats the selected components like a vector.
func (s Swizzle[T, A]) String() string {
	return string(appendList(nil, s.Values()...))
}
