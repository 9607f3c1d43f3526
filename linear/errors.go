// SPDX-License-Identifier: MIT
// Package: lvmath/linear
//
// errors.go: sentinel errors and stable panic messages for the linear package.
//
// Error policy:
//   • Runtime-recoverable failures (span flattening with Try*, text parsing)
//     return one of the sentinels below; callers branch with errors.Is.
//   • Precondition violations that the caller fully controls (cross product of
//     a 1-D vector, writes through a repeated-index swizzle, zero projection
//     extents, dimension-specific synthesis on the wrong order) panic with one
//     of the panic* messages. These mirror out-of-range indexing: programmer
//     error, not data error.
//   • Degenerate numeric results are values, never errors: NaN for Normalize
//     of a zero vector, the unchanged matrix for a singular Invert, the zero
//     vector for total internal reflection in Refract.
//
// AI-Hints:
//   • Wrap at the facade only: linearErrorf(opX, err).
//   • Never stringify parameters into the sentinel definitions.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrSpanMismatch indicates that the flattened argument list is shorter
	// than the destination (N for a vector, N² for a matrix, M for a swizzle).
	ErrSpanMismatch = errors.New("linear: span does not match destination size")

	// ErrSpanOverflow indicates that the flattened argument list is longer
	// than the destination.
	ErrSpanOverflow = errors.New("linear: span exceeds destination size")

	// ErrUnsupportedArgument indicates an argument that cannot be flattened
	// into scalars (strings, maps, tags inside a span list, nil).
	ErrUnsupportedArgument = errors.New("linear: unsupported span argument")

	// ErrParse indicates malformed text handed to a Parse* function or to
	// UnmarshalText.
	ErrParse = errors.New("linear: malformed text")
)

// Operation tags used to wrap errors at the public boundary.
const (
	opTryVector       = "TryVector"
	opTryMatrix       = "TryMatrix"
	opVectorReset     = "Vector.Reset"
	opMatrixReset     = "Matrix.Reset"
	opSwizzleAssign   = "Swizzle.Assign"
	opMakeTranslation = "Matrix.MakeTranslation"
	opMakeScale       = "Matrix.MakeScale"
	opParseVector     = "ParseVector"
	opParseMatrix     = "ParseMatrix"
	opParseQuaternion = "ParseQuaternion"
	opBuild           = "Builder.Build"
)

// Panic messages. Kept as constants so tests can match them exactly.
const (
	panicEpsilonInvalid   = "linear: WithEpsilon: eps must be finite, non-negative"
	panicMatrixShape      = "linear: matrix storage must hold order² elements"
	panicCross1D          = "linear: Cross requires at least 3 components"
	panicCross2           = "linear: Cross2 requires exactly 2 components"
	panicSwizzleUnique    = "linear: all swizzled indices must be unique"
	panicSwizzleName      = "linear: invalid swizzle name"
	panicSwizzleIndex     = "linear: swizzle index out of range"
	panicSwizzleLen       = "linear: swizzle value count mismatch"
	panicGatherLen        = "linear: Gather destination size must equal swizzle length"
	panicZeroWeight       = "linear: WeightedMean total weight is zero"
	panicOrderAtLeast2    = "linear: operation requires order >= 2"
	panicOrderAtLeast3    = "linear: operation requires order >= 3"
	panicOrder3           = "linear: operation requires order 3"
	panicOrder4           = "linear: operation requires order 4"
	panicVector3or4       = "linear: operation requires a 3- or 4-component vector"
	panicAffineLen        = "linear: affine transform requires a vector of order N-1"
	panicResize           = "linear: resize target out of bounds"
	panicFrustumExtent    = "linear: Frustum requires non-zero extents"
	panicPerspective      = "linear: Perspective requires non-zero aspect, fovy and depth range"
	panicOrthoExtent      = "linear: Ortho requires non-zero extents"
	panicPickingRegion    = "linear: Picking requires a non-zero pick region"
	panicShearIndex       = "linear: MakeShear axes must be distinct and in range"
	panicBitwiseOperation = "linear: shift count must be non-negative"
)

// linearErrorf wraps err with an operation tag, preserving it for errors.Is.
func linearErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
