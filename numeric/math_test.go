// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/numeric"
)

func TestEpsilonPerKind(t *testing.T) {
	type meters float32

	require.Equal(t, float32(numeric.Epsilon32), numeric.Epsilon[float32]())
	require.Equal(t, float64(numeric.Epsilon64), numeric.Epsilon[float64]())
	require.Equal(t, meters(numeric.Epsilon32), numeric.Epsilon[meters]())
	require.Zero(t, numeric.Epsilon[int]())
	require.Zero(t, numeric.Epsilon[uint8]())
}

func TestIsFloat(t *testing.T) {
	require.True(t, numeric.IsFloat[float32]())
	require.True(t, numeric.IsFloat[float64]())
	require.False(t, numeric.IsFloat[int64]())
	require.False(t, numeric.IsFloat[uint]())
}

func TestCircleConstants(t *testing.T) {
	require.InDelta(t, math.Pi, numeric.Pi[float64](), 1e-15)
	require.InDelta(t, math.Pi, float64(numeric.Pi[float32]()), 1e-6)
	require.Equal(t, 3, numeric.Pi[int]())
	require.Equal(t, 6, numeric.TwoPi[int]())
	require.InDelta(t, math.Pi/2, numeric.HalfPi[float64](), 1e-15)
	require.InDelta(t, 1/math.Pi, numeric.InvPi[float64](), 1e-15)
}

func TestDispatchMatchesStdlib(t *testing.T) {
	cases := []float64{-2.5, -1, -0.25, 0, 0.3, 1, 2.75}
	for _, x := range cases {
		require.InDelta(t, math.Sin(x), float64(numeric.Sin(float32(x))), 1e-6)
		require.InDelta(t, math.Cos(x), float64(numeric.Cos(float32(x))), 1e-6)
		require.Equal(t, math.Sin(x), numeric.Sin(x))
		require.Equal(t, math.Cos(x), numeric.Cos(x))
		require.Equal(t, math.Atan2(x, 1.5), numeric.Atan2(x, 1.5))

		s, c := numeric.SinCos(float32(x))
		require.InDelta(t, math.Sin(x), float64(s), 1e-6)
		require.InDelta(t, math.Cos(x), float64(c), 1e-6)
	}
	require.Equal(t, 3, numeric.Sqrt(10))
	require.InDelta(t, 1.4142135, float64(numeric.Sqrt(float32(2))), 1e-6)
	require.True(t, numeric.IsNaN(numeric.Pow(-8.0, 0.5)))
	require.Equal(t, 8.0, numeric.Pow(2.0, 3.0))
}

func TestRemainderWrap(t *testing.T) {
	require.InDelta(t, -math.Pi/2, numeric.Remainder(3*math.Pi/2, 2*math.Pi), 1e-12)
	require.InDelta(t, float32(0.5), numeric.Remainder(float32(4.5), float32(2)), 1e-6)
}

func TestScalarHelpers(t *testing.T) {
	require.Equal(t, 3, numeric.Abs(-3))
	require.Equal(t, uint(3), numeric.Abs(uint(3)))
	require.Equal(t, -1.0, numeric.Sign(-0.1))
	require.Equal(t, 0, numeric.Sign(0))
	require.Equal(t, 5, numeric.Clamp(9, 0, 5))
	require.Equal(t, 0.0, numeric.Clamp(-9.0, 0, 5))
	require.Equal(t, 15.0, numeric.Lerp(10.0, 20.0, 0.5))
	require.Equal(t, 30.0, numeric.Lerp(10.0, 20.0, 2))

	require.True(t, numeric.IsNaN(math.NaN()))
	require.False(t, numeric.IsNaN(1.0))
	require.True(t, numeric.IsInf(float32(math.Inf(-1))))
	require.False(t, numeric.IsFinite(math.Inf(1)))
	require.True(t, numeric.IsFinite(7))

	require.True(t, numeric.ApproxEqual(1.0, 1.0+1e-10, 1e-9))
	require.False(t, numeric.ApproxEqual(1.0, 1.1, 1e-9))
	require.False(t, numeric.ApproxEqual(math.NaN(), math.NaN(), 1))
}
