// SPDX-License-Identifier: MIT

package angle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/angle"
)

func TestHalfTurnIsPi(t *testing.T) {
	r := angle.Deg[float32](180).Radians()
	require.InDelta(t, 3.141593, float64(r.Value()), 1e-5)

	require.InDelta(t, math.Pi, angle.Deg(180.0).Radians().Value(), 1e-12)
	require.InDelta(t, 180.0, angle.HalfCircle[float64]().Degrees().Value(), 1e-12)
}

func TestDegreeRadianRoundTrip(t *testing.T) {
	for _, d := range []float64{-1080.5, -90, -1e-3, 0, 1, 45, 90, 359.999, 7200.25} {
		got := angle.Deg(d).Radians().Degrees().Value()
		require.InDelta(t, d, got, 1e-9*math.Max(1, math.Abs(d)), "d=%v", d)
	}
}

func TestConvertElementType(t *testing.T) {
	r := angle.ConvertRadian[float32](angle.Rad(1.5))
	require.Equal(t, float32(1.5), r.Value())

	d := angle.ConvertDegree[int](angle.Deg(90.7))
	require.Equal(t, 90, d.Value())
}

func TestRadianNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 1, 1},
		{"negative", -math.Pi / 2, 3 * math.Pi / 2},
		{"above", 5 * math.Pi, math.Pi},
		{"exactly full", 2 * math.Pi, 0},
		{"far negative", -7 * math.Pi / 2, math.Pi / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := angle.Rad(tc.in)
			r.Normalize()
			require.InDelta(t, tc.want, r.Value(), 1e-12)
			require.GreaterOrEqual(t, r.Value(), 0.0)
			require.Less(t, r.Value(), 2*math.Pi)
		})
	}
}

func TestRadianNormalizeFrom(t *testing.T) {
	r := angle.Rad(3 * math.Pi / 2)
	r.NormalizeFrom(angle.Rad(-math.Pi))
	require.InDelta(t, -math.Pi/2, r.Value(), 1e-12)

	n := angle.NormalOf(angle.Rad(-0.5))
	require.InDelta(t, 2*math.Pi-0.5, n.Value(), 1e-12)
}

func TestRadianNormalizeFloat32StaysInRange(t *testing.T) {
	r := angle.Rad[float32](-1e-9)
	r.Normalize()
	require.GreaterOrEqual(t, r.Value(), float32(0))
	require.Less(t, r.Value(), float32(2*math.Pi))
}

func TestDegreeNormalize(t *testing.T) {
	d := angle.Deg(-90.0)
	d.Normalize()
	require.InDelta(t, 270.0, d.Value(), 1e-12)

	i := angle.Deg(725)
	i.Normalize()
	require.Equal(t, 5, i.Value())

	w := angle.Deg(270.0)
	w.NormalizeFrom(angle.Deg(-180.0))
	require.InDelta(t, -90.0, w.Value(), 1e-12)
	require.InDelta(t, 10.0, angle.Deg(370.0).Normalized().Value(), 1e-12)
}

func TestTrig(t *testing.T) {
	s, c := angle.QuarterCircle[float64]().SinCos()
	require.InDelta(t, 1.0, s, 1e-15)
	require.InDelta(t, 0.0, c, 1e-15)

	require.InDelta(t, 0.5, angle.Deg(30.0).Sin(), 1e-15)
	require.InDelta(t, 0.5, angle.Deg(60.0).Cos(), 1e-15)
	require.InDelta(t, 1.0, angle.Deg(45.0).Tan(), 1e-15)
	require.InDelta(t, -1.0, angle.HalfCircle[float32]().Cos(), 1e-6)
}

func TestArithmeticAndCompare(t *testing.T) {
	a, b := angle.Rad(1.0), angle.Rad(0.25)
	require.Equal(t, 1.25, a.Add(b).Value())
	require.Equal(t, 0.75, a.Sub(b).Value())
	require.Equal(t, 3.0, a.Mul(3).Value())
	require.Equal(t, 0.5, a.Div(2).Value())
	require.Equal(t, -1.0, a.Neg().Value())
	require.True(t, b.Less(a))
	require.True(t, a.Greater(b))
	require.Equal(t, 0, a.Compare(angle.Rad(1.0)))
	require.Equal(t, -1, b.Compare(a))
	require.True(t, angle.Circle[float64]().Equal(angle.Rad(2*math.Pi)))

	d := angle.Deg(10).Add(angle.Deg(20)).Sub(angle.Deg(5)).Mul(2).Div(5)
	require.Equal(t, 10, d.Value())
	require.True(t, angle.Deg(1).Less(angle.Deg(2)))
	require.Equal(t, 1, angle.Deg(3).Compare(angle.Deg(2)))
	require.Equal(t, -7, angle.Deg(7).Neg().Value())
}

func TestString(t *testing.T) {
	require.Equal(t, "1.5rad", angle.Rad(1.5).String())
	require.Equal(t, "90°", angle.Deg(90).String())
	require.Equal(t, "0rad", angle.Zero[float32]().String())
	require.InDelta(t, 3*math.Pi/2, angle.ThreeQuarterCircle[float64]().Value(), 1e-15)
}
