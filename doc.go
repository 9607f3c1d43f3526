// Package lvmath is a small, allocation-free linear algebra toolkit for
// graphics and simulation code: vectors, square matrices, rotation
// quaternions and typed angles, generic over element type and dimension.
//
// What is inside?
//
//	A pure-value library built from three subpackages:
//		• numeric: the Number constraint, per-type constants and scalar math
//		  (float32 through math32, everything else through math)
//		• angle: Radian and Degree, distinct types with trig and wrapping
//		• linear: Vector, Swizzle, Matrix, Quaternion, projection factories,
//		  the span Builder behind every variadic constructor, and text I/O
//
// Why lvmath?
//
//   - Dimension is part of the type: a Vector[float64, [3]float64] can never
//     be added to a 4-vector, and every value lives inline with no heap.
//   - Mixed construction: NewVector[float64, [8]float64](1.0, xy, xyz, 2)
//     flattens scalars, vectors, arrays and swizzle views in order.
//   - Closed forms for small orders, cofactor expansion and pivoting
//     Gauss-Jordan above, with one column-major convention throughout.
//
// Layout:
//
//	numeric/: Number, Pi/TwoPi/HalfPi/Epsilon, Sqrt/Sin/Cos/Atan2…, ApproxEqual
//	angle/: Radian[T], Degree[T], Normalize/NormalizeFrom
//	linear/: Vector, Swizzle, Matrix, Quaternion, Frustum/Perspective/Ortho
//
// Quick example:
//
//	var r linear.Matrix3d
//	r.MakeZRotation(angle.Deg(90.0).Radians())
//	v := r.Transform(linear.Vec3(1.0, 0, 0)) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/lvmath
package lvmath
