package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRotationFromAxisAngle(t *testing.T) {
	_, err := RotationFromAxisAngle(r3.Vector{}, 1)
	test.That(t, err, test.ShouldNotBeNil)

	ident, err := RotationFromAxisAngle(r3.Vector{X: 1}, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rotationAlmostIdentity(ident), test.ShouldBeTrue)

	// 90 degrees about z takes x̂ to ŷ
	r, err := RotationFromAxisAngle(r3.Vector{Z: 2}, math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	rotated := mat3MulVec(r, r3.Vector{X: 1})
	test.That(t, rotated.X, test.ShouldAlmostEqual, 0, 1e-8)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, 1, 1e-8)
	test.That(t, rotated.Z, test.ShouldAlmostEqual, 0, 1e-8)
}

func TestAxisAngleFromRotation(t *testing.T) {
	ident, err := RotationFromAxisAngle(r3.Vector{Y: 1}, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, AxisAngleFromRotation(ident).Norm(), test.ShouldAlmostEqual, 0)

	axis := r3.Vector{X: 1, Y: 2, Z: -1}.Normalize()
	theta := 1.2
	r, err := RotationFromAxisAngle(axis, theta)
	test.That(t, err, test.ShouldBeNil)
	aa := AxisAngleFromRotation(r)
	test.That(t, aa.Norm(), test.ShouldAlmostEqual, theta, 1e-8)
	test.That(t, R3VectorAlmostEqual(aa.Normalize(), axis, 1e-8), test.ShouldBeTrue)
}

func TestRotationRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		axis  r3.Vector
		theta float64
	}{
		{r3.Vector{Z: 1}, math.Pi / 2},
		{r3.Vector{X: 1, Y: 1, Z: 1}, 0.3},
		{r3.Vector{Y: -1, Z: 2}, 2.5},
	} {
		r, err := RotationFromAxisAngle(tc.axis, tc.theta)
		test.That(t, err, test.ShouldBeNil)
		aa := AxisAngleFromRotation(r)
		r2, err := RotationFromAxisAngle(aa, aa.Norm())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, Mat4AlmostEqual(r.Mat4(), r2.Mat4(), 1e-8), test.ShouldBeTrue)
	}
}

func TestTransformPacking(t *testing.T) {
	r, err := RotationFromAxisAngle(r3.Vector{Z: 1}, 0.7)
	test.That(t, err, test.ShouldBeNil)
	trans := r3.Vector{X: 1, Y: -2, Z: 3}
	m := TransformFromRotationTranslation(r, trans)

	test.That(t, Mat4AlmostEqual(RotationOf(m).Mat4(), r.Mat4(), 1e-12), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(TranslationOf(m), trans, 1e-12), test.ShouldBeTrue)
	test.That(t, m.At(3, 3), test.ShouldEqual, 1)
	test.That(t, m.At(3, 0), test.ShouldEqual, 0)
}
