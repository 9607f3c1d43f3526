// SPDX-License-Identifier: MIT

package linear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmath/linear"
)

// QuaternionSuite covers rotation algebra, Euler extraction and interpolation.
type QuaternionSuite struct {
	suite.Suite
}

func TestQuaternionSuite(t *testing.T) {
	suite.Run(t, new(QuaternionSuite))
}

// sameRotation compares two unit quaternions up to sign.
func (s *QuaternionSuite) sameRotation(want, got linear.Quaterniond) {
	s.T().Helper()
	require.InDelta(s.T(), 1.0, math.Abs(want.Dot(got)), 1e-9, "want %v got %v", want, got)
}

// TestAxisRotations checks the half-angle encoding and vector rotation.
func (s *QuaternionSuite) TestAxisRotations() {
	t := s.T()
	var q linear.Quaterniond
	q.MakeZRotation(angleDeg(90))
	h := math.Sqrt2 / 2
	requireQuatInDelta(t, linear.Quat(0, 0, h, h), q, tol)
	requireVectorInDelta(t, linear.Vec3(0.0, 1, 0), q.Transform(linear.Vec3(1.0, 0, 0)), tol)

	q.MakeXRotation(angleDeg(90))
	requireVectorInDelta(t, linear.Vec3(0.0, 0, 1), q.Transform(linear.Vec3(0.0, 1, 0)), tol)

	q.MakeYRotation(angleDeg(90))
	requireVectorInDelta(t, linear.Vec3(1.0, 0, 0), q.Transform(linear.Vec3(0.0, 0, 1)), tol)
	requireVectorInDelta(t, linear.Vec4(1.0, 0, 0, 7), q.Transform4(linear.Vec4(0.0, 0, 1, 7)), tol)

	// axis length does not matter; a zero axis is the identity
	a := linear.QuaternionFromAxisAngle(linear.Vec3(0.0, 0, 5), angleDeg(90))
	requireQuatInDelta(t, linear.Quat(0, 0, h, h), a, tol)
	require.Equal(t, linear.IdentityQuaternion[float64](), linear.QuaternionFromAxisAngle(linear.Vec3(0.0, 0, 0), angleDeg(90)))

	require.InDelta(t, math.Pi/2, a.Angle().Value(), tol)
	requireVectorInDelta(t, linear.Vec3(0.0, 0, 1), a.Axis(), tol)
	require.Equal(t, linear.Vec3(1.0, 0, 0), linear.IdentityQuaternion[float64]().Axis())
}

// TestConcatenateMatchesMatrices checks that quaternion products compose
// like the matrices they encode.
func (s *QuaternionSuite) TestConcatenateMatchesMatrices() {
	t := s.T()
	a := linear.QuaternionFromAxisAngle(linear.Vec3(1.0, 2, 3), angleDeg(50))
	b := linear.QuaternionFromAxisAngle(linear.Vec3(-1.0, 0.5, 0), angleDeg(-120))

	ab := a
	ab.Concatenate(b)
	require.Equal(t, a.Mul(b), ab)

	var ma, mb, mab linear.Matrix3d
	ma.MakeQuaternionRotation(a)
	mb.MakeQuaternionRotation(b)
	mab.MakeQuaternionRotation(ab)
	requireMatrixInDelta(t, linear.CompositeOf(ma, mb), mab, tol)

	v := linear.Vec3(0.3, -0.7, 2)
	requireVectorInDelta(t, a.Transform(b.Transform(v)), ab.Transform(v), tol)
	requireVectorInDelta(t, mab.Transform(v), ab.Transform(v), tol)
}

// TestAlgebra covers conjugation, inversion and normalization.
func (s *QuaternionSuite) TestAlgebra() {
	t := s.T()
	q := linear.Quat(1.0, 2, 3, 4)

	require.Equal(t, 30.0, q.MagnitudeSq())
	require.Equal(t, linear.Quat(-1.0, -2, -3, 4), q.Conjugated())
	requireQuatInDelta(t, linear.IdentityQuaternion[float64](), q.Mul(q.Inverse()), tol)

	d := q
	d.Divide(q)
	requireQuatInDelta(t, linear.IdentityQuaternion[float64](), d, tol)

	require.InDelta(t, 1.0, q.Normalized().Magnitude(), tol)
	require.Equal(t, linear.Quat(2.0, 4, 6, 8), q.Add(q))
	require.Equal(t, linear.Quat(0.0, 0, 0, 0), q.Sub(q))
	require.Equal(t, linear.Quat(-1.0, -2, -3, -4), q.Neg())
	require.True(t, q.Equal(linear.Quat(1.0, 2, 3, 4)))
	require.True(t, q.ApproxEqual(linear.Quat(1.0, 2, 3, 4+1e-12)))
	require.False(t, q.ApproxEqual(linear.Quat(1.0, 2, 3, 4.1)))
	require.True(t, q.ApproxEqual(linear.Quat(1.0, 2, 3, 4.1), linear.WithEpsilon(0.2)))

	var z linear.Quaterniond
	z.NormalizeSafe()
	require.Equal(t, linear.Quaterniond{}, z)
	z.Normalize()
	require.True(t, math.IsNaN(z.W()))

	require.Equal(t, linear.Vec3(1.0, 2, 3), q.Vector())
	require.Equal(t, 4, q.Span())
	require.Equal(t, 3.0, q.At(2))
}

// TestEulerRoundTrip extracts the angles a rotation was built from.
func (s *QuaternionSuite) TestEulerRoundTrip() {
	t := s.T()
	cases := [][3]float64{
		{0, 0, 0},
		{20, -35, 110},
		{-170, 80, -5},
		{45, 10, 179},
	}
	for _, c := range cases {
		q := linear.QuaternionFromEuler(angleDeg(c[0]), angleDeg(c[1]), angleDeg(c[2]))
		p, h, r := q.Euler()
		require.InDelta(t, c[0], p.Degrees().Value(), 1e-7, "pitch of %v", c)
		require.InDelta(t, c[1], h.Degrees().Value(), 1e-7, "heading of %v", c)
		require.InDelta(t, c[2], r.Degrees().Value(), 1e-7, "roll of %v", c)
		require.Equal(t, p, q.Pitch())
		require.Equal(t, h, q.Heading())
		require.Equal(t, r, q.Roll())
	}
}

// TestEulerGimbalLock checks that the lock branch still reproduces the
// rotation.
func (s *QuaternionSuite) TestEulerGimbalLock() {
	for _, heading := range []float64{90, -90} {
		q := linear.QuaternionFromEuler(angleDeg(25), angleDeg(heading), angleDeg(70))
		p, h, r := q.Euler()
		require.Zero(s.T(), p.Value())
		require.InDelta(s.T(), heading, h.Degrees().Value(), 1e-6)
		s.sameRotation(q, linear.QuaternionFromEuler(p, h, r))
	}
}

// TestLogExp checks that Exp inverts Log.
func (s *QuaternionSuite) TestLogExp() {
	t := s.T()
	q := linear.QuaternionFromAxisAngle(linear.Vec3(1.0, 1, 0), angleDeg(100))
	l := q.Log()
	require.Zero(t, l.W())
	require.InDelta(t, math.Pi*100/360, linear.Vec3(l.X(), l.Y(), l.Z()).Magnitude(), tol)
	requireQuatInDelta(t, q, l.Exp(), tol)

	id := linear.IdentityQuaternion[float64]()
	require.Equal(t, linear.Quaterniond{}, id.Log())
	require.Equal(t, id, id.Log().Exp())
}

// TestSlerp covers the endpoints, the midpoint and the degenerate cases.
func (s *QuaternionSuite) TestSlerp() {
	t := s.T()
	id := linear.IdentityQuaternion[float64]()
	var z90, z45 linear.Quaterniond
	z90.MakeZRotation(angleDeg(90))
	z45.MakeZRotation(angleDeg(45))

	q := linear.QuaternionFromEuler(angleDeg(10), angleDeg(20), angleDeg(30))
	for _, tt := range []float64{0, 0.25, 1} {
		require.Equal(t, q, linear.Slerp(q, q, tt))
		require.Equal(t, q, linear.SlerpSR(q, q, tt))
	}

	requireQuatInDelta(t, z45, linear.Slerp(id, z90, 0.5), tol)
	requireQuatInDelta(t, id, linear.Slerp(id, z90, 0), tol)
	requireQuatInDelta(t, z90, linear.Slerp(id, z90, 1), tol)

	// -z90 is the same rotation; SlerpSR takes the short way round
	s.sameRotation(z45, linear.SlerpSR(id, z90.Neg(), 0.5))

	// nearly parallel endpoints fall back to normalized Lerp
	var tiny linear.Quaterniond
	tiny.MakeZRotation(angleDeg(1e-5))
	mid := linear.Slerp(id, tiny, 0.5)
	require.InDelta(t, 1.0, mid.Magnitude(), tol)
	requireQuatInDelta(t, linear.Lerp(id, tiny, 0.5), mid, 0)

	// Squad with control points on the arc stays on the arc
	requireQuatInDelta(t, z45, linear.Squad(id, z90, id, z90, 0.5), tol)
}
