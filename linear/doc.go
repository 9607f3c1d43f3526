// SPDX-License-Identifier: MIT

// Package linear provides fixed-dimension vectors, square matrices and
// rotation quaternions, generic over element type and order.
//
// What is inside:
//
//   - Vector[T, A]: N-component value type (N = len(A)) with dot/cross
//     products, normalization, projection, reflection and refraction.
//   - Swizzle: an aliasing re-indexing view over a vector ("xy", "zyx",
//     "xx"); repeated-index views are read-only.
//   - Matrix[T, A, G]: N×N column-major matrix with closed-form
//     determinant/inverse for N ≤ 3, cofactor determinant and pivoting
//     Gauss-Jordan inversion above, rotation/TRS/look-at synthesis and
//     quaternion extraction.
//   - Quaternion[T]: Hamilton product, inverse, Euler conversion with a
//     gimbal-lock branch, Lerp/Slerp/SlerpSR/Squad.
//   - Projection factories: Frustum, Perspective, Ortho, Ortho2D, Picking,
//     Shadow.
//   - Builder and the span rules behind every variadic constructor.
//
// Dimension as a type:
//
// Go generics have no integer parameters, so the order travels in a
// fixed-size array type. The aliases keep call sites short:
//
//	v := linear.Vec3(1.0, 2.0, 3.0)                      // Vector3[float64]
//	w := linear.NewVector[float64, [4]float64](v, 1.0)   // span 3+1
//	m := linear.IdentityOf[float64, [4]float64, [16]float64]()
//	var r linear.Matrix3d
//	r.MakeZRotation(angle.Deg(90.0).Radians())
//
// Functions that change the order take the output arrays first so the input
// types are inferred: Gather[[2]float64](sw), Slice[[3]T, [9]T](m4, 0),
// Expand[[4]T, [16]T](m3).
//
// Error model:
//
// Degenerate numbers are values (NaN, the unchanged matrix, the zero
// vector); misuse that the caller controls statically panics; only text
// parsing and Try*/Reset/Assign span checks return errors (see errors.go).
//
// Concurrency: every type is a plain value with no shared state. A Swizzle
// holds a pointer to its parent and must not be used concurrently with
// writes to that parent.
package linear
