// SPDX-License-Identifier: MIT

package linear

import "github.com/katalvlaran/lvmath/numeric"

// Test-only bridge to private kernels and panic messages.

// CofactorDeterminant_TestOnly runs the general cofactor expansion on any
// order, bypassing the closed forms.
func CofactorDeterminant_TestOnly[T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) T {
	var e [maxElements]T
	m.flatInto(&e)

	return cofactorDeterminant(&e, m.Order())
}

// GaussJordan_TestOnly runs pivoting elimination on any order, bypassing
// the closed forms.
func GaussJordan_TestOnly[T numeric.Number, A Array[T], G Array[T]](m Matrix[T, A, G]) (Matrix[T, A, G], bool) {
	ok := m.gaussJordan(m.Order())

	return m, ok
}

const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
	PanicMatrixShape_TestOnly    = panicMatrixShape
	PanicCross1D_TestOnly        = panicCross1D
	PanicCross2_TestOnly         = panicCross2
	PanicSwizzleUnique_TestOnly  = panicSwizzleUnique
	PanicSwizzleName_TestOnly    = panicSwizzleName
	PanicSwizzleIndex_TestOnly   = panicSwizzleIndex
	PanicSwizzleLen_TestOnly     = panicSwizzleLen
	PanicGatherLen_TestOnly      = panicGatherLen
	PanicZeroWeight_TestOnly     = panicZeroWeight
	PanicOrderAtLeast3_TestOnly  = panicOrderAtLeast3
	PanicOrder4_TestOnly         = panicOrder4
	PanicVector3or4_TestOnly     = panicVector3or4
	PanicAffineLen_TestOnly      = panicAffineLen
	PanicResize_TestOnly         = panicResize
	PanicFrustumExtent_TestOnly  = panicFrustumExtent
	PanicPerspective_TestOnly    = panicPerspective
	PanicOrthoExtent_TestOnly    = panicOrthoExtent
	PanicPickingRegion_TestOnly  = panicPickingRegion
	PanicShearIndex_TestOnly     = panicShearIndex
	PanicBitwise_TestOnly        = panicBitwiseOperation
)
