// SPDX-License-Identifier: MIT

package linear

import "github.com/katalvlaran/lvmath/numeric"

// Determinant returns det(m).
//
// Implementation:
//   - Orders 1, 2 and 3 use the closed forms (order 3 as a0·(a1×a2) over
//     the columns).
//   - Order ≥ 4 expands recursively along the first column with alternating
//     signs (cofactorDeterminant).
//
// Complexity:
//   - O(1) for N ≤ 3, O(N!) time otherwise. Minors live in fixed stack
//     buffers, one per recursion level.
func (m Matrix[T, A, G]) Determinant() T {
	switch n := m.Order(); n {
	case 1:
		return m.e[0]
	case 2:
		a := load4[T](m.e)
		return a[0]*a[3] - a[2]*a[1]
	case 3:
		return det3(load9[T](m.e))
	default:
		var e [maxElements]T
		m.flatInto(&e)
		return cofactorDeterminant(&e, n)
	}
}

// Invert replaces m by its inverse and reports success. A singular m is
// left untouched and Invert returns false; callers that must tell the two
// apart without the flag check Determinant first.
//
// Implementation:
//   - Orders 1–3: adjugate over the closed-form determinant; det == 0 is
//     the singular case.
//   - Order ≥ 4: Gauss-Jordan on the pair (upper = m, lower = I). For each
//     column i the row with the largest |upper[r][i]|, r ≥ i, is swapped
//     into place (partial pivoting), row i is scaled to a unit pivot and
//     eliminated from the rows below; back-substitution then clears the
//     rows above. lower ends as m⁻¹. det == 0 is the singular case,
//     checked before elimination; a zero pivot is a second guard.
//
// Complexity:
//   - O(N³) elimination after the O(N!) determinant check; O(1) extra
//     space (both work matrices live in G values).
func (m *Matrix[T, A, G]) Invert() bool {
	switch n := m.Order(); n {
	case 1:
		if m.e[0] == 0 {
			return false
		}
		m.e[0] = 1 / m.e[0]
	case 2:
		a := load4[T](m.e)
		det := a[0]*a[3] - a[2]*a[1]
		if det == 0 {
			return false
		}
		store(&m.e, []T{a[3] / det, -a[1] / det, -a[2] / det, a[0] / det})
	case 3:
		a := load9[T](m.e)
		det := det3(a)
		if det == 0 {
			return false
		}
		inv := [9]T{
			a[4]*a[8] - a[5]*a[7], a[7]*a[2] - a[8]*a[1], a[1]*a[5] - a[2]*a[4],
			a[5]*a[6] - a[3]*a[8], a[8]*a[0] - a[6]*a[2], a[2]*a[3] - a[0]*a[5],
			a[3]*a[7] - a[4]*a[6], a[6]*a[1] - a[7]*a[0], a[0]*a[4] - a[1]*a[3],
		}
		for i := range inv {
			inv[i] /= det
		}
		store(&m.e, inv[:])
	default:
		if m.Determinant() == 0 {
			return false
		}
		return m.gaussJordan(n)
	}

	return true
}

func (m *Matrix[T, A, G]) gaussJordan(n int) bool {
	upper := m.e
	var lower G
	for d := 0; d < n; d++ {
		lower[d*n+d] = 1
	}

	for i := 0; i < n; i++ {
		p, best := i, numeric.Abs(upper[i*n+i])
		for r := i + 1; r < n; r++ {
			if a := numeric.Abs(upper[i*n+r]); a > best {
				p, best = r, a
			}
		}
		if best == 0 {
			return false
		}
		if p != i {
			for c := 0; c < n; c++ {
				upper[c*n+i], upper[c*n+p] = upper[c*n+p], upper[c*n+i]
				lower[c*n+i], lower[c*n+p] = lower[c*n+p], lower[c*n+i]
			}
		}
		pivot := upper[i*n+i]
		for c := 0; c < n; c++ {
			upper[c*n+i] /= pivot
			lower[c*n+i] /= pivot
		}
		for r := i + 1; r < n; r++ {
			f := upper[i*n+r]
			for c := 0; c < n; c++ {
				upper[c*n+r] -= f * upper[c*n+i]
				lower[c*n+r] -= f * lower[c*n+i]
			}
		}
	}

	for i := n - 1; i > 0; i-- {
		for r := 0; r < i; r++ {
			f := upper[i*n+r]
			for c := 0; c < n; c++ {
				upper[c*n+r] -= f * upper[c*n+i]
				lower[c*n+r] -= f * lower[c*n+i]
			}
		}
	}
	m.e = lower

	return true
}

// InverseOf returns m⁻¹, or m itself when singular.
func InverseOf[T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) Matrix[T, A, G] {
	m.Invert()

	return m
}

// TransposeInvert replaces m by (m⁻¹)ᵀ, the normal matrix of m.
func (m *Matrix[T, A, G]) TransposeInvert() bool {
	ok := m.Invert()
	m.Transpose()

	return ok
}

// TransposedInverseOf returns (m⁻¹)ᵀ.
func TransposedInverseOf[T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) Matrix[T, A, G] {
	m.TransposeInvert()

	return m
}

// TransposeInvertRigid replaces a rigid transform (orthonormal rotation
// block plus translation column) by the transpose of its inverse without
// elimination: the rotation block stays, the last row receives −Rᵀt and
// the last column becomes (0, …, 0, 1).
//
// Notes:
//   - Scale or shear in m silently produce a wrong result.
func (m *Matrix[T, A, G]) TransposeInvertRigid() {
	n := m.Order()
	last := n - 1
	for c := 0; c < last; c++ {
		var d T
		for r := 0; r < last; r++ {
			d += m.e[c*n+r] * m.e[last*n+r]
		}
		m.e[c*n+last] = -d
	}
	for r := 0; r < last; r++ {
		m.e[last*n+r] = 0
	}
	m.e[last*n+last] = 1
}

// InvertRigid replaces a rigid transform by its inverse.
func (m *Matrix[T, A, G]) InvertRigid() {
	m.TransposeInvertRigid()
	m.Transpose()
}

// RigidInverseOf returns the inverse of the rigid transform m.
func RigidInverseOf[T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) Matrix[T, A, G] {
	m.InvertRigid()

	return m
}

// TransposedRigidInverseOf returns the transpose of the inverse of the
// rigid transform m.
func TransposedRigidInverseOf[T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) Matrix[T, A, G] {
	m.TransposeInvertRigid()

	return m
}

// maxElements is the storage size of the largest supported order (8×8).
const maxElements = 64

// cofactorDeterminant expands e (order n, column-major) along its first
// column: Σ_r (−1)^r · e[0][r] · det(minor(0, r)).
func cofactorDeterminant[T numeric.Number](e *[maxElements]T, n int) T {
	switch n {
	case 1:
		return e[0]
	case 2:
		return e[0]*e[3] - e[2]*e[1]
	}
	var minor [maxElements]T
	var det T
	sign := T(1)
	for r := 0; r < n; r++ {
		k := 0
		for c := 1; c < n; c++ {
			for rr := 0; rr < n; rr++ {
				if rr == r {
					continue
				}
				minor[k] = e[c*n+rr]
				k++
			}
		}
		det += sign * e[r] * cofactorDeterminant(&minor, n-1)
		sign = -sign
	}

	return det
}

// det3 is a0·(a1×a2) for column-major a.
func det3[T numeric.Number](a [9]T) T {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) +
		a[1]*(a[5]*a[6]-a[3]*a[8]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// flatInto copies the storage into the front of out.
func (m Matrix[T, A, G]) flatInto(out *[maxElements]T) {
	for i := 0; i < len(m.e); i++ {
		out[i] = m.e[i]
	}
}

// load4 and load9 copy fixed-order storage into concrete arrays so the
// closed forms can use constant indices.
func load4[T numeric.Number, G Array[T]](e G) (a [4]T) {
	for i := range a {
		a[i] = e[i]
	}

	return a
}

func load9[T numeric.Number, G Array[T]](e G) (a [9]T) {
	for i := range a {
		a[i] = e[i]
	}

	return a
}

func load16[T numeric.Number, G Array[T]](e G) (a [16]T) {
	for i := range a {
		a[i] = e[i]
	}

	return a
}

func store[T numeric.Number, G Array[T]](e *G, a []T) {
	for i := range a {
		(*e)[i] = a[i]
	}
}
