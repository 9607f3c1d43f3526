// SPDX-License-Identifier: MIT

package linear_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/linear"
)

type meters float64

func TestMixedArgumentConstruction(t *testing.T) {
	v2 := linear.Vec2(1.0, 2)
	v3 := linear.Vec3[float32](3, 4, 5)

	v := linear.NewVector[float64, [8]float64](0.5, v2, v3, [2]int{7, 8})
	require.Equal(t, []float64{0.5, 1, 2, 3, 4, 5, 7, 8}, v.Slice())

	u := linear.NewVector[float64, [9]float64](0.5, v2, v3, 6, [2]int{7, 8})
	require.Equal(t, []float64{0.5, 1, 2, 3, 4, 5, 6, 7, 8}, u.Slice())

	q := linear.IdentityQuaternion[float64]()
	w := linear.NewVector[float64, [6]float64](q, meters(2.5), []float64{9})
	require.Equal(t, []float64{0, 0, 0, 1, 2.5, 9}, w.Slice())

	nested := linear.NewVector[int, [6]int]([]linear.Vector3[int]{linear.Vec3(1, 2, 3), linear.Vec3(4, 5, 6)})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, nested.Slice())
}

func TestConstructionFromSwizzle(t *testing.T) {
	src := linear.Vec4(1.0, 2, 3, 4)
	v := linear.NewVector[float64, [3]float64](src.Swizzle("wzy"))
	require.Equal(t, linear.Vec3(4.0, 3, 2), v)

	// swizzles of another element type convert through float64
	f := linear.Vec3[float32](1, 2, 3)
	d := linear.NewVector[float64, [4]float64](f.Swizzle("zz"), 0.0, 1.0)
	require.Equal(t, linear.Vec4(3.0, 3, 0, 1), d)
}

func TestTryVectorErrors(t *testing.T) {
	_, err := linear.TryVector[float64, [3]float64](1.0, 2.0)
	require.ErrorIs(t, err, linear.ErrSpanMismatch)

	_, err = linear.TryVector[float64, [3]float64](linear.Vec4(1.0, 2, 3, 4))
	require.ErrorIs(t, err, linear.ErrSpanOverflow)

	_, err = linear.TryVector[float64, [3]float64]("1, 2, 3")
	require.ErrorIs(t, err, linear.ErrUnsupportedArgument)

	_, err = linear.TryVector[float64, [3]float64](1.0, linear.One, 2.0)
	require.ErrorIs(t, err, linear.ErrUnsupportedArgument)

	_, err = linear.TryVector[float64, [2]float64](nil, 1.0)
	require.ErrorIs(t, err, linear.ErrUnsupportedArgument)

	require.Panics(t, func() { linear.NewVector[float64, [3]float64](1.0) })

	z, err := linear.TryVector[float64, [3]float64]()
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestVectorResetKeepsValueOnError(t *testing.T) {
	v := linear.Vec3(1.0, 2, 3)
	err := v.Reset(7.0)
	require.ErrorIs(t, err, linear.ErrSpanMismatch)
	require.Equal(t, linear.Vec3(1.0, 2, 3), v)

	require.NoError(t, v.Reset(linear.Vec2(7.0, 8), 9))
	require.Equal(t, linear.Vec3(7.0, 8, 9), v)

	require.NoError(t, v.Reset(linear.Identity))
	require.Equal(t, linear.Vec3(0.0, 0, 1), v)
}

func TestBuilder(t *testing.T) {
	var b linear.Builder[float32, [4]float32]
	require.Equal(t, 4, b.Cap())
	b.Scalar(1).Slice([]float32{2}).Source(linear.Vec2[float32](3, 4))
	require.Equal(t, 4, b.Len())
	require.Zero(t, b.Remaining())
	arr, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, [4]float32{1, 2, 3, 4}, arr)

	b.Reset()
	b.Span(linear.Vec3(1.0, 2, 3)).Scalar(4, 5)
	require.Equal(t, -1, b.Remaining())
	_, err = b.Build()
	require.ErrorIs(t, err, linear.ErrSpanOverflow)

	b.Reset()
	b.Any(1.0, struct{}{}, 2.0)
	require.ErrorIs(t, b.Err(), linear.ErrUnsupportedArgument)
	require.Equal(t, 1, b.Len(), "appends after the first error are ignored")
	_, err = b.Build()
	require.True(t, errors.Is(err, linear.ErrUnsupportedArgument))
}

func TestSpanOf(t *testing.T) {
	n, err := linear.SpanOf(1, linear.Vec3(1.0, 2, 3), [2]float32{}, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 10, n)

	m := linear.IdentityOf[float64, [3]float64, [9]float64]()
	n, err = linear.SpanOf(m, linear.Quat(0.0, 0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, 13, n)

	_, err = linear.SpanOf(map[int]int{})
	require.ErrorIs(t, err, linear.ErrUnsupportedArgument)
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		args []any
		want reflect.Kind
	}{
		{"float64 wins", []any{1, float32(2), 3.0}, reflect.Float64},
		{"float32 beats int64", []any{int64(1), linear.Vec2[float32](1, 2)}, reflect.Float32},
		{"widest int", []any{int8(1), int32(2)}, reflect.Int32},
		{"signed is sticky", []any{uint16(1), int8(2)}, reflect.Int16},
		{"unsigned only", []any{uint8(1), [3]uint32{}}, reflect.Uint32},
		{"named scalar", []any{meters(1)}, reflect.Float64},
		{"vector element", []any{linear.Vec3(1, 2, 3)}, reflect.Int},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := linear.KindOf(tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, k)
		})
	}

	_, err := linear.KindOf("x")
	require.ErrorIs(t, err, linear.ErrUnsupportedArgument)
}
