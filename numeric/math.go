// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"github.com/chewxy/math32"
)

// Sqrt returns the square root of x.
func Sqrt[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}

	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}

	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}

	return T(math.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[T Number](x T) (sin, cos T) {
	if v, ok := any(x).(float32); ok {
		s, c := math32.Sincos(v)
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))

	return T(s), T(c)
}

// Tan returns the tangent of the radian argument x.
func Tan[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Tan(v))
	}

	return T(math.Tan(float64(x)))
}

// Asin returns the arcsine, in radians, of x.
func Asin[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Asin(v))
	}

	return T(math.Asin(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
func Acos[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}

	return T(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[T Number](y, x T) T {
	if v, ok := any(y).(float32); ok {
		return T(math32.Atan2(v, any(x).(float32)))
	}

	return T(math.Atan2(float64(y), float64(x)))
}

// Pow returns x**y. Invalid combinations (negative base, fractional
// exponent) yield NaN for floating kinds.
func Pow[T Number](x, y T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Pow(v, any(y).(float32)))
	}

	return T(math.Pow(float64(x), float64(y)))
}

// Exp returns e**x.
func Exp[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Exp(v))
	}

	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Log(v))
	}

	return T(math.Log(float64(x)))
}

// Remainder returns the IEEE 754 floating-point remainder of x/y.
func Remainder[T Number](x, y T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Remainder(v, any(y).(float32)))
	}

	return T(math.Remainder(float64(x), float64(y)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Floor(v))
	}

	return T(math.Floor(float64(x)))
}

// Abs returns the absolute value of x. Unsigned values are returned as is.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sign returns -1, 0 or +1 following the sign of x.
func Sign[T Number](x T) T {
	switch {
	case x < 0:
		return T(0) - 1
	case x > 0:
		return 1
	}

	return 0
}

// Clamp limits x to [lo, hi].
func Clamp[T Number](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Lerp returns a + (b-a)*t. t outside [0, 1] extrapolates.
func Lerp[T Number](a, b, t T) T {
	return a + (b-a)*t
}

// IsNaN reports whether x is an IEEE 754 not-a-number value.
func IsNaN[T Number](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Number](x T) bool {
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Number](x T) bool {
	return !IsNaN(x) && !IsInf(x)
}

// ApproxEqual reports |a-b| <= eps, evaluated in float64. NaN never
// compares equal.
func ApproxEqual[T Number](a, b T, eps float64) bool {
	d := float64(a) - float64(b)

	return math.Abs(d) <= eps
}
