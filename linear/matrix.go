// SPDX-License-Identifier: MIT
// Package: lvmath/linear
//
// matrix.go: the square column-major matrix value type.
//
// Layout:
//   - Order N = len(A); the flat storage G holds N² elements.
//   - Column c, row r lives at flat index c*N + r.
//   - Transform(v) computes M·v (column vector); TransformRM(v) computes
//     vᵀ·M (row vector), i.e. Mᵀ·v.
//
// Contract:
//   - Every method checks len(G) == N² on entry and panics otherwise, so a
//     hand-written inconsistent instantiation fails fast. The MatrixN
//     aliases cannot be inconsistent.
//   - Pure value type: copies are deep; no heap allocation on any path
//     except text formatting.

package linear

import (
	"reflect"

	"github.com/katalvlaran/lvmath/numeric"
)

// Matrix is an N×N column-major matrix; A is the column type [N]T and G the
// flat storage type [N*N]T.
type Matrix[T numeric.Number, A Array[T], G Array[T]] struct {
	e G
}

// NewMatrix flattens args column-major into a matrix (span N²). A single
// Tag selects tagged construction; no arguments yield the zero matrix.
//
// Errors:
//   - Panics on a span mismatch; TryMatrix returns the error instead.
func NewMatrix[T numeric.Number, A Array[T], G Array[T]](args ...any) Matrix[T, A, G] {
	m, err := TryMatrix[T, A, G](args...)
	if err != nil {
		panic(err.Error())
	}

	return m
}

// TryMatrix is NewMatrix returning ErrSpanMismatch, ErrSpanOverflow or
// ErrUnsupportedArgument.
func TryMatrix[T numeric.Number, A Array[T], G Array[T]](args ...any) (Matrix[T, A, G], error) {
	var m Matrix[T, A, G]
	m.Order()
	if err := m.reset(args); err != nil {
		return Matrix[T, A, G]{}, linearErrorf(opTryMatrix, err)
	}

	return m, nil
}

// TaggedMatrix returns the matrix selected by tag.
func TaggedMatrix[T numeric.Number, A Array[T], G Array[T]](tag Tag) Matrix[T, A, G] {
	var m Matrix[T, A, G]
	m.SetTag(tag)

	return m
}

// IdentityOf returns the N×N identity.
func IdentityOf[T numeric.Number, A Array[T], G Array[T]]() Matrix[T, A, G] {
	return TaggedMatrix[T, A, G](Identity)
}

// FromColumns builds a matrix from N column vectors.
//
// Errors:
//   - Panics unless len(cols) == N.
func FromColumns[T numeric.Number, A Array[T], G Array[T]](cols ...Vector[T, A]) Matrix[T, A, G] {
	var m Matrix[T, A, G]
	n := m.Order()
	if len(cols) != n {
		panic(panicMatrixShape)
	}
	for c := range cols {
		m.SetCol(c, cols[c])
	}

	return m
}

// Order returns N.
func (m Matrix[T, A, G]) Order() int {
	var col A
	n := len(col)
	if len(m.e) != n*n {
		panic(panicMatrixShape)
	}

	return n
}

// ElementCount returns N².
func (m Matrix[T, A, G]) ElementCount() int { return len(m.e) }

// Span returns N²; with Float64At and ElementKind it makes Matrix a Spanner.
func (m Matrix[T, A, G]) Span() int { return len(m.e) }

// Float64At returns flat element i as float64.
func (m Matrix[T, A, G]) Float64At(i int) float64 { return float64(m.e[i]) }

// ElementKind reports the reflect kind of T.
func (m Matrix[T, A, G]) ElementKind() reflect.Kind { return elementKind[T]() }

// Element returns flat element i (column-major).
func (m Matrix[T, A, G]) Element(i int) T { return m.e[i] }

// SetElement assigns flat element i.
func (m *Matrix[T, A, G]) SetElement(i int, x T) { m.e[i] = x }

// Array returns a copy of the flat storage.
func (m Matrix[T, A, G]) Array() G { return m.e }

// At returns the element in column c, row r.
func (m Matrix[T, A, G]) At(c, r int) T { return m.e[c*m.Order()+r] }

// Set assigns the element in column c, row r.
func (m *Matrix[T, A, G]) Set(c, r int, x T) { m.e[c*m.Order()+r] = x }

// Col returns column c.
func (m Matrix[T, A, G]) Col(c int) Vector[T, A] {
	n := m.Order()
	var v Vector[T, A]
	for r := 0; r < n; r++ {
		v.e[r] = m.e[c*n+r]
	}

	return v
}

// SetCol replaces column c.
func (m *Matrix[T, A, G]) SetCol(c int, v Vector[T, A]) {
	n := m.Order()
	for r := 0; r < n; r++ {
		m.e[c*n+r] = v.e[r]
	}
}

// Row returns row r.
func (m Matrix[T, A, G]) Row(r int) Vector[T, A] {
	n := m.Order()
	var v Vector[T, A]
	for c := 0; c < n; c++ {
		v.e[c] = m.e[c*n+r]
	}

	return v
}

// SetRow replaces row r.
func (m *Matrix[T, A, G]) SetRow(r int, v Vector[T, A]) {
	n := m.Order()
	for c := 0; c < n; c++ {
		m.e[c*n+r] = v.e[c]
	}
}

// Reset overwrites m with the flattened args (same rules as NewMatrix).
// On error m is left unchanged.
func (m *Matrix[T, A, G]) Reset(args ...any) error {
	if err := m.reset(args); err != nil {
		return linearErrorf(opMatrixReset, err)
	}

	return nil
}

func (m *Matrix[T, A, G]) reset(args []any) error {
	switch len(args) {
	case 0:
		*m = Matrix[T, A, G]{}
		return nil
	case 1:
		if tag, ok := args[0].(Tag); ok {
			m.SetTag(tag)
			return nil
		}
	}
	var b Builder[T, G]
	e, err := b.Any(args...).Build()
	if err != nil {
		return err
	}
	m.e = e

	return nil
}

// SetTag applies tag in place: Zero, One (all ones) or Identity.
func (m *Matrix[T, A, G]) SetTag(tag Tag) {
	switch tag {
	case One:
		m.Fill(1)
	case Identity:
		m.MakeIdentity()
	default:
		m.Fill(0)
	}
}

// Fill sets every element to x.
func (m *Matrix[T, A, G]) Fill(x T) {
	m.Order()
	for i := 0; i < len(m.e); i++ {
		m.e[i] = x
	}
}

// MakeIdentity sets m to the identity.
func (m *Matrix[T, A, G]) MakeIdentity() {
	n := m.Order()
	for i := 0; i < len(m.e); i++ {
		m.e[i] = 0
	}
	for d := 0; d < n; d++ {
		m.e[d*n+d] = 1
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix[T, A, G]) IsIdentity() bool {
	return m.Equal(IdentityOf[T, A, G]())
}

// Equal reports exact element-wise equality.
func (m Matrix[T, A, G]) Equal(o Matrix[T, A, G]) bool {
	m.Order()
	for i := 0; i < len(m.e); i++ {
		if m.e[i] != o.e[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports element-wise equality within eps (WithEpsilon).
func (m Matrix[T, A, G]) ApproxEqual(o Matrix[T, A, G], opts ...Option) bool {
	m.Order()
	eps := gatherOptions(opts...).eps
	for i := 0; i < len(m.e); i++ {
		if !numeric.ApproxEqual(m.e[i], o.e[i], eps) {
			return false
		}
	}

	return true
}

// Add returns m+o.
func (m Matrix[T, A, G]) Add(o Matrix[T, A, G]) Matrix[T, A, G] {
	m.Order()
	for i := 0; i < len(m.e); i++ {
		m.e[i] += o.e[i]
	}

	return m
}

// Sub returns m-o.
func (m Matrix[T, A, G]) Sub(o Matrix[T, A, G]) Matrix[T, A, G] {
	m.Order()
	for i := 0; i < len(m.e); i++ {
		m.e[i] -= o.e[i]
	}

	return m
}

// Scale returns m*s.
func (m Matrix[T, A, G]) Scale(s T) Matrix[T, A, G] {
	m.Order()
	for i := 0; i < len(m.e); i++ {
		m.e[i] *= s
	}

	return m
}

// Neg returns -m.
func (m Matrix[T, A, G]) Neg() Matrix[T, A, G] {
	m.Order()
	for i := 0; i < len(m.e); i++ {
		m.e[i] = -m.e[i]
	}

	return m
}

// Transform returns M·v.
func (m Matrix[T, A, G]) Transform(v Vector[T, A]) Vector[T, A] {
	n := m.Order()
	var out Vector[T, A]
	for c := 0; c < n; c++ {
		x := v.e[c]
		for r := 0; r < n; r++ {
			out.e[r] += m.e[c*n+r] * x
		}
	}

	return out
}

// TransformRM returns vᵀ·M, the row-vector convention (equivalently Mᵀ·v).
func (m Matrix[T, A, G]) TransformRM(v Vector[T, A]) Vector[T, A] {
	n := m.Order()
	var out Vector[T, A]
	for c := 0; c < n; c++ {
		var s T
		for r := 0; r < n; r++ {
			s += m.e[c*n+r] * v.e[r]
		}
		out.e[c] = s
	}

	return out
}

// Divide returns M⁻¹·v, undoing Transform. A singular m is applied as is,
// following the Invert policy.
func (m Matrix[T, A, G]) Divide(v Vector[T, A]) Vector[T, A] {
	return InverseOf(m).Transform(v)
}

// TransformPoint applies m as an affine map to an order-(N−1) vector: the
// input is extended with a homogeneous 1 and the last output row dropped.
//
// Errors:
//   - Panics unless len(B) == N−1.
func TransformPoint[T numeric.Number, A Array[T], G Array[T], B Array[T]](m Matrix[T, A, G], v Vector[T, B]) Vector[T, B] {
	n := m.Order()
	k := len(v.e)
	if k != n-1 {
		panic(panicAffineLen)
	}
	var out Vector[T, B]
	for r := 0; r < k; r++ {
		s := m.e[k*n+r]
		for c := 0; c < k; c++ {
			s += m.e[c*n+r] * v.e[c]
		}
		out.e[r] = s
	}

	return out
}

// TransformPointRM is TransformPoint under the row-vector convention.
func TransformPointRM[T numeric.Number, A Array[T], G Array[T], B Array[T]](m Matrix[T, A, G], v Vector[T, B]) Vector[T, B] {
	n := m.Order()
	k := len(v.e)
	if k != n-1 {
		panic(panicAffineLen)
	}
	var out Vector[T, B]
	for c := 0; c < k; c++ {
		s := m.e[c*n+k]
		for r := 0; r < k; r++ {
			s += m.e[c*n+r] * v.e[r]
		}
		out.e[c] = s
	}

	return out
}

// Compose sets m to m·o in place: column i of the result is
// Σ_j column_j(m)·o[i][j].
func (m *Matrix[T, A, G]) Compose(o Matrix[T, A, G]) {
	n := m.Order()
	var out G
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := o.e[i*n+j]
			for r := 0; r < n; r++ {
				out[i*n+r] += m.e[j*n+r] * k
			}
		}
	}
	m.e = out
}

// CompositeOf returns a·b.
func CompositeOf[T numeric.Number, A Array[T], G Array[T]](a, b Matrix[T, A, G]) Matrix[T, A, G] {
	a.Compose(b)

	return a
}

// Transpose transposes m in place.
func (m *Matrix[T, A, G]) Transpose() {
	n := m.Order()
	for c := 1; c < n; c++ {
		for r := 0; r < c; r++ {
			i, j := c*n+r, r*n+c
			m.e[i], m.e[j] = m.e[j], m.e[i]
		}
	}
}

// TransposeOf returns mᵀ.
func TransposeOf[T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) Matrix[T, A, G] {
	m.Transpose()

	return m
}

// Trace returns the sum of the diagonal.
func (m Matrix[T, A, G]) Trace() T {
	n := m.Order()
	var s T
	for d := 0; d < n; d++ {
		s += m.e[d*n+d]
	}

	return s
}
