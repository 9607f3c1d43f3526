// SPDX-License-Identifier: MIT
// Package linear_test contains shared fixtures and assertions.
//
// Purpose:
//   • Deterministic, well-conditioned matrices for the inverse and
//     determinant laws.
//   • Element-wise InDelta assertions with readable failure output.

package linear_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/linear"
	"github.com/katalvlaran/lvmath/numeric"
)

// tol is the float64 tolerance used across the package tests.
const tol = 1e-9

// requireVectorInDelta fails unless every component of got is within delta
// of want.
func requireVectorInDelta[T numeric.Number, A linear.Array[T]](t testing.TB, want, got linear.Vector[T, A], delta float64) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	for i := 0; i < want.Len(); i++ {
		require.InDelta(t, float64(want.At(i)), float64(got.At(i)), delta, "component %d: want %v got %v", i, want, got)
	}
}

// requireMatrixInDelta fails unless every element of got is within delta of want.
func requireMatrixInDelta[T numeric.Number, A, G linear.Array[T]](t testing.TB, want, got linear.Matrix[T, A, G], delta float64) {
	t.Helper()
	for i := 0; i < want.ElementCount(); i++ {
		require.InDelta(t, float64(want.Element(i)), float64(got.Element(i)), delta, "element %d:\nwant %v\ngot  %v", i, want, got)
	}
}

// requireQuatInDelta compares quaternions component-wise.
func requireQuatInDelta[T numeric.Number](t testing.TB, want, got linear.Quaternion[T], delta float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		require.InDelta(t, float64(want[i]), float64(got[i]), delta, "component %d: want %v got %v", i, want, got)
	}
}

// randomWellConditioned fills an order-n matrix with values in [-1, 1) and
// adds n to the diagonal, which makes it strictly diagonally dominant and
// therefore invertible.
func randomWellConditioned[A, G linear.Array[float64]](seed int64) linear.Matrix[float64, A, G] {
	rng := rand.New(rand.NewSource(seed))
	var m linear.Matrix[float64, A, G]
	n := m.Order()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			x := rng.Float64()*2 - 1
			if c == r {
				x += float64(n)
			}
			m.Set(c, r, x)
		}
	}

	return m
}

// angleDeg is shorthand for a float64 angle given in degrees.
func angleDeg(d float64) angle.Radian[float64] { return angle.Deg(d).Radians() }
