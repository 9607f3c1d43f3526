// SPDX-License-Identifier: MIT

// Package linear: storage constraint, construction tags and the named
// instantiations of Vector, Matrix and Quaternion.
//
// The dimension of every type lives in a fixed-size array type parameter.
// Array admits orders 1 through 16 for vectors and columns, and the squares
// 1..64 for flat matrix storage, so N is a per-instantiation constant and
// storage is always inline.
package linear

import "github.com/katalvlaran/lvmath/numeric"

// Array is the storage constraint for vectors and flat matrix elements.
// Order-n matrices need the column array [n]T and the flat array [n*n]T.
type Array[T numeric.Number] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[25]T | ~[36]T | ~[49]T | ~[64]T
}

// Tag selects one of the stateless construction patterns.
type Tag uint8

const (
	// Zero fills every element with 0.
	Zero Tag = iota
	// One fills every element with 1.
	One
	// Identity sets a vector to (0, …, 0, 1) and a matrix to the identity.
	Identity
)

// String implements fmt.Stringer.
func (t Tag) String() string {
	switch t {
	case Zero:
		return "Zero"
	case One:
		return "One"
	case Identity:
		return "Identity"
	}

	return "Tag(?)"
}

// Dimension-fixed vector aliases.
type (
	Vector1[T numeric.Number] = Vector[T, [1]T]
	Vector2[T numeric.Number] = Vector[T, [2]T]
	Vector3[T numeric.Number] = Vector[T, [3]T]
	Vector4[T numeric.Number] = Vector[T, [4]T]
)

// Dimension-fixed matrix aliases. Each pairs the column array with its
// matching flat storage so an inconsistent order cannot be spelled.
type (
	Matrix2[T numeric.Number] = Matrix[T, [2]T, [4]T]
	Matrix3[T numeric.Number] = Matrix[T, [3]T, [9]T]
	Matrix4[T numeric.Number] = Matrix[T, [4]T, [16]T]
	Matrix5[T numeric.Number] = Matrix[T, [5]T, [25]T]
	Matrix6[T numeric.Number] = Matrix[T, [6]T, [36]T]
	Matrix7[T numeric.Number] = Matrix[T, [7]T, [49]T]
	Matrix8[T numeric.Number] = Matrix[T, [8]T, [64]T]
)

// Concrete single- and double-precision names.
type (
	Vector1f = Vector1[float32]
	Vector2f = Vector2[float32]
	Vector3f = Vector3[float32]
	Vector4f = Vector4[float32]
	Vector1d = Vector1[float64]
	Vector2d = Vector2[float64]
	Vector3d = Vector3[float64]
	Vector4d = Vector4[float64]

	Matrix2f = Matrix2[float32]
	Matrix3f = Matrix3[float32]
	Matrix4f = Matrix4[float32]
	Matrix2d = Matrix2[float64]
	Matrix3d = Matrix3[float64]
	Matrix4d = Matrix4[float64]

	Quaternionf = Quaternion[float32]
	Quaterniond = Quaternion[float64]
)
