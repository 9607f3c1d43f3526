// SPDX-License-Identifier: MIT

// Package numeric holds the element-type constraint shared by every lvmath
// package together with per-type constants and scalar math dispatch.
//
// Scalar functions are generic over Number. float32 arguments are evaluated
// with github.com/chewxy/math32 so that single-precision code never pays for
// a round trip through float64; every other element type (float64 and all
// integer kinds) is evaluated with the standard math package and converted
// back, which truncates for integers.
package numeric

import "golang.org/x/exp/constraints"

// Number is the element constraint for vectors, matrices, quaternions and angles.
type Number interface {
	constraints.Integer | constraints.Float
}

// Machine epsilon per floating width.
const (
	Epsilon32 = 1.1920929e-07
	Epsilon64 = 2.220446049250313e-16
)

// Circle constants as float64 sources. They are variables on purpose:
// converting an untyped float constant to a type parameter that admits
// integers does not compile.
var (
	pi       = 3.14159265358979323846264338327950288419716939937510582097494459
	twoPi    = 2 * pi
	halfPi   = pi / 2
	piSq     = pi * pi
	invPi    = 1 / pi
	invTwoPi = 1 / twoPi
)

// Pi returns π converted to T.
func Pi[T Number]() T { return T(pi) }

// TwoPi returns 2π converted to T.
func TwoPi[T Number]() T { return T(twoPi) }

// HalfPi returns π/2 converted to T.
func HalfPi[T Number]() T { return T(halfPi) }

// PiSq returns π² converted to T.
func PiSq[T Number]() T { return T(piSq) }

// InvPi returns 1/π converted to T.
func InvPi[T Number]() T { return T(invPi) }

// InvTwoPi returns 1/(2π) converted to T.
func InvTwoPi[T Number]() T { return T(invTwoPi) }

// Epsilon returns the machine epsilon of T: Epsilon32 for single-precision
// kinds, Epsilon64 for double-precision kinds and 0 for integer kinds.
func Epsilon[T Number]() T {
	if !IsFloat[T]() {
		return 0
	}
	e64, one := Epsilon64, T(1)
	if one+T(e64) == one {
		e32 := Epsilon32
		return T(e32)
	}

	return T(e64)
}

// IsFloat reports whether T is a floating-point kind, including named
// types whose underlying type is float32 or float64.
func IsFloat[T Number]() bool {
	h := 0.5

	return T(h) != 0
}
