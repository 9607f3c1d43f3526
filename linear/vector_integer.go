// SPDX-License-Identifier: MIT

package linear

import "golang.org/x/exp/constraints"

// Element-wise integer operators. They are free functions because Go
// methods cannot narrow the receiver's element constraint.

// Mod returns a % b per component.
func Mod[T constraints.Integer, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(a.e); i++ {
		a.e[i] %= b.e[i]
	}

	return a
}

// And returns a & b per component.
func And[T constraints.Integer, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(a.e); i++ {
		a.e[i] &= b.e[i]
	}

	return a
}

// Or returns a | b per component.
func Or[T constraints.Integer, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(a.e); i++ {
		a.e[i] |= b.e[i]
	}

	return a
}

// Xor returns a ^ b per component.
func Xor[T constraints.Integer, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(a.e); i++ {
		a.e[i] ^= b.e[i]
	}

	return a
}

// Not returns ^a per component.
func Not[T constraints.Integer, A Array[T]](a Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(a.e); i++ {
		a.e[i] = ^a.e[i]
	}

	return a
}

// Shl returns a << n per component. Panics on a negative n.
func Shl[T constraints.Integer, A Array[T]](a Vector[T, A], n int) Vector[T, A] {
	if n < 0 {
		panic(panicBitwiseOperation)
	}
	for i := 0; i < len(a.e); i++ {
		a.e[i] <<= n
	}

	return a
}

// Shr returns a >> n per component. Panics on a negative n.
func Shr[T constraints.Integer, A Array[T]](a Vector[T, A], n int) Vector[T, A] {
	if n < 0 {
		panic(panicBitwiseOperation)
	}
	for i := 0; i < len(a.e); i++ {
		a.e[i] >>= n
	}

	return a
}
