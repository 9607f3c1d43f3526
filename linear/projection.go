// SPDX-License-Identifier: MIT

package linear

import (
	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/numeric"
)

// Projection factories. All produce 4×4 column-major matrices in the
// OpenGL clip-space convention (right-handed eye space, camera looking down
// −Z, depth mapped to [−1, 1]). Each panics when an extent it divides by is
// zero.

// Frustum returns the perspective projection of the view volume bounded by
// left/right, bottom/top on the near plane and by near/far in depth.
func Frustum[T numeric.Number](left, right, bottom, top, near, far T) Matrix4[T] {
	w, h, d := right-left, top-bottom, far-near
	if w == 0 || h == 0 || d == 0 {
		panic(panicFrustumExtent)
	}
	var m Matrix4[T]
	m.e = [16]T{
		2 * near / w, 0, 0, 0,
		0, 2 * near / h, 0, 0,
		(right + left) / w, (top + bottom) / h, -(far + near) / d, T(0) - 1,
		0, 0, -(2 * far * near) / d, 0,
	}

	return m
}

// Perspective returns the symmetric perspective projection with vertical
// field of view fovy and aspect ratio width/height.
func Perspective[T numeric.Number](fovy angle.Radian[T], aspect, near, far T) Matrix4[T] {
	t := fovy.Div(2).Tan()
	d := near - far
	if aspect == 0 || t == 0 || d == 0 {
		panic(panicPerspective)
	}
	f := 1 / t
	var m Matrix4[T]
	m.e = [16]T{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / d, T(0) - 1,
		0, 0, 2 * far * near / d, 0,
	}

	return m
}

// PerspectiveDeg is Perspective with the field of view in degrees.
func PerspectiveDeg[T numeric.Number](fovy angle.Degree[T], aspect, near, far T) Matrix4[T] {
	return Perspective(fovy.Radians(), aspect, near, far)
}

// Ortho returns the orthographic projection of the given box.
func Ortho[T numeric.Number](left, right, bottom, top, near, far T) Matrix4[T] {
	w, h, d := right-left, top-bottom, far-near
	if w == 0 || h == 0 || d == 0 {
		panic(panicOrthoExtent)
	}
	var m Matrix4[T]
	m.e = [16]T{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, -(2 / d), 0,
		-(right + left) / w, -(top + bottom) / h, -(far + near) / d, 1,
	}

	return m
}

// Ortho2D is Ortho with near = −1 and far = 1.
func Ortho2D[T numeric.Number](left, right, bottom, top T) Matrix4[T] {
	one := T(1)

	return Ortho(left, right, bottom, top, -one, one)
}

// Picking returns the matrix that zooms the region of size (w, h) centered
// at window position (x, y) to fill the viewport (vx, vy, vw, vh); compose it
// before the projection to restrict rendering to a pick region.
func Picking[T numeric.Number](x, y, w, h T, viewport Vector4[T]) Matrix4[T] {
	if w == 0 || h == 0 {
		panic(panicPickingRegion)
	}
	vx, vy, vw, vh := viewport.e[0], viewport.e[1], viewport.e[2], viewport.e[3]
	var m Matrix4[T]
	m.e = [16]T{
		vw / w, 0, 0, 0,
		0, vh / h, 0, 0,
		0, 0, 1, 0,
		(vw + 2*(vx-x)) / w, (vh + 2*(vy-y)) / h, 0, 1,
	}

	return m
}

// Shadow returns the matrix flattening geometry onto plane (a, b, c, d with
// ax+by+cz+d = 0) along rays from light (w = 0 for a directional light,
// w = 1 for a point light): (plane·light)·I − light⊗plane.
func Shadow[T numeric.Number](light, plane Vector4[T]) Matrix4[T] {
	d := plane.Dot(light)
	var m Matrix4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			x := -light.e[r] * plane.e[c]
			if r == c {
				x += d
			}
			m.e[c*4+r] = x
		}
	}

	return m
}
