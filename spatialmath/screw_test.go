package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func mustAxis(t *testing.T, point, direction r3.Vector) Axis {
	t.Helper()
	a, err := NewAxis(point, direction)
	test.That(t, err, test.ShouldBeNil)
	return a
}

func TestNewScrew(t *testing.T) {
	axis := mustAxis(t, r3.Vector{}, r3.Vector{Z: 1})
	_, err := NewScrew(axis, 0, -1)
	test.That(t, err, test.ShouldNotBeNil)

	s, err := NewScrew(axis, 0, math.Pi)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.IsPureRotation(), test.ShouldBeTrue)
	test.That(t, s.IsPureTranslation(), test.ShouldBeFalse)

	trans, err := NewScrew(axis, PitchPureTranslation, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, trans.IsPureTranslation(), test.ShouldBeTrue)
	test.That(t, trans.IsPureRotation(), test.ShouldBeFalse)
}

func TestScrewUnitTwist(t *testing.T) {
	// pure translation: linear = direction, no angular part
	axis := mustAxis(t, r3.Vector{X: 3}, r3.Vector{Z: 1})
	s, err := NewScrew(axis, PitchPureTranslation, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, R3VectorAlmostEqual(s.UnitTwist().Linear, r3.Vector{Z: 1}, 1e-12), test.ShouldBeTrue)
	test.That(t, s.UnitTwist().Angular.Norm(), test.ShouldAlmostEqual, 0)

	// general screw: angular = direction, linear = dir·pitch − dir×point
	s, err = NewScrew(axis, 0.5, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, R3VectorAlmostEqual(s.UnitTwist().Angular, r3.Vector{Z: 1}, 1e-12), test.ShouldBeTrue)
	want := r3.Vector{Z: 0.5}.Sub(r3.Vector{Z: 1}.Cross(r3.Vector{X: 3}))
	test.That(t, R3VectorAlmostEqual(s.UnitTwist().Linear, want, 1e-12), test.ShouldBeTrue)
}

func TestTransformAtMagnitude(t *testing.T) {
	axis := mustAxis(t, r3.Vector{}, r3.Vector{Z: 1})
	s, err := NewScrew(axis, PitchPureTranslation, 1)
	test.That(t, err, test.ShouldBeNil)

	_, err = s.TransformAtMagnitude(-0.1)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = s.TransformAtMagnitude(1.1)
	test.That(t, err, test.ShouldNotBeNil)

	m, err := s.TransformAtMagnitude(0.25)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, TranslationOf(m).Z, test.ShouldAlmostEqual, 0.25)

	zero, err := s.TransformAtMagnitude(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, Mat4AlmostEqual(zero, NewIdentityTransform(), 1e-12), test.ShouldBeTrue)
}

func TestTwistAtMagnitude(t *testing.T) {
	axis := mustAxis(t, r3.Vector{}, r3.Vector{Z: 1})
	s, err := NewScrew(axis, 0, math.Pi)
	test.That(t, err, test.ShouldBeNil)

	_, err = s.TwistAtMagnitude(-1)
	test.That(t, err, test.ShouldNotBeNil)

	tw, err := s.TwistAtMagnitude(math.Pi / 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tw.Norm(), test.ShouldAlmostEqual, math.Pi/2)
}

func TestScrewValuesEqualTo(t *testing.T) {
	a := mustAxis(t, r3.Vector{X: 1}, r3.Vector{Z: 1})
	s1, err := NewScrew(a, 0.5, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s1.ValuesEqualTo(s1), test.ShouldBeTrue)

	// same line, different stored point
	b := mustAxis(t, r3.Vector{X: 1, Z: 4}, r3.Vector{Z: 1})
	s2, err := NewScrew(b, 0.5, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s1.ValuesEqualTo(s2), test.ShouldBeTrue)

	s3, err := NewScrew(a, 0.5, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s1.ValuesEqualTo(s3), test.ShouldBeFalse)

	s4, err := NewScrew(a, 0.6, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s1.ValuesEqualTo(s4), test.ShouldBeFalse)

	// pure translations compare equal on pitch despite Inf arithmetic
	t1, err := NewScrew(a, PitchPureTranslation, 1)
	test.That(t, err, test.ShouldBeNil)
	t2, err := NewScrew(b, PitchPureTranslation, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, t1.ValuesEqualTo(t2), test.ShouldBeTrue)
	test.That(t, t1.ValuesEqualTo(s1), test.ShouldBeFalse)
}

func TestScrewFromTwistDegenerate(t *testing.T) {
	s := ScrewFromTwist(NewTwist(r3.Vector{}, r3.Vector{}))
	test.That(t, s.Magnitude(), test.ShouldAlmostEqual, 0)
	test.That(t, s.IsPureTranslation(), test.ShouldBeTrue)
	// zero magnitude means no motion regardless of the conventional axis
	test.That(t, Mat4AlmostEqual(s.EndTransform(), NewIdentityTransform(), 1e-12), test.ShouldBeTrue)
}

func TestScrewFromTwistPureTranslation(t *testing.T) {
	s := ScrewFromTwist(NewTwist(r3.Vector{X: 3, Y: 4}, r3.Vector{}))
	test.That(t, s.IsPureTranslation(), test.ShouldBeTrue)
	test.That(t, s.Magnitude(), test.ShouldAlmostEqual, 5)
	test.That(t, R3VectorAlmostEqual(s.Axis().Direction(), r3.Vector{X: 0.6, Y: 0.8}, 1e-12), test.ShouldBeTrue)
	test.That(t, s.Axis().PassesThroughOrigin(), test.ShouldBeTrue)
}

func TestScrewFromTwistGeneral(t *testing.T) {
	axis := mustAxis(t, r3.Vector{X: 0.5, Y: 0.5}, r3.Vector{Z: 1})
	orig, err := NewScrew(axis, 0.5, 1)
	test.That(t, err, test.ShouldBeNil)

	back := ScrewFromTwist(orig.Twist())
	test.That(t, back.ValuesEqualTo(orig), test.ShouldBeTrue)
}

func TestTransformScrewRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name             string
		point, dir       r3.Vector
		pitch, magnitude float64
	}{
		{"general", r3.Vector{X: 0.5, Y: 0.5}, r3.Vector{Z: 1}, 0.5, 1},
		{"pure rotation", r3.Vector{X: 1, Y: -1, Z: 2}, r3.Vector{X: 1, Y: 1}, 0, math.Pi / 3},
		{"pure translation", r3.Vector{}, r3.Vector{X: 1, Z: 1}, PitchPureTranslation, 2},
		{"steep pitch", r3.Vector{Y: 2}, r3.Vector{X: 1}, 3, 1.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			axis := mustAxis(t, tc.point, tc.dir)
			s, err := NewScrew(axis, tc.pitch, tc.magnitude)
			test.That(t, err, test.ShouldBeNil)
			m := s.EndTransform()
			back := ScrewFromTransform(m)
			test.That(t, Mat4AlmostEqual(back.EndTransform(), m, 1e-8), test.ShouldBeTrue)
		})
	}
}

func TestDistanceTravelled(t *testing.T) {
	// pure translation: distance equals magnitude
	axis := mustAxis(t, r3.Vector{}, r3.Vector{Z: 1})
	trans, err := NewScrew(axis, PitchPureTranslation, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, trans.DistanceTravelled(r3.Vector{X: 5}), test.ShouldAlmostEqual, 2)

	// pure rotation at radius 1: arc length equals angle
	rot, err := NewScrew(axis, 0, math.Pi)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rot.DistanceTravelled(r3.Vector{X: 1}), test.ShouldAlmostEqual, math.Pi)

	// general screw: ‖(radius, pitch)‖·m
	gen, err := NewScrew(axis, 0.5, 1)
	test.That(t, err, test.ShouldBeNil)
	d, err := gen.DistanceTravelledAt(r3.Vector{X: 2}, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d, test.ShouldAlmostEqual, math.Hypot(2, 0.5)*0.5)

	_, err = gen.DistanceTravelledAt(r3.Vector{}, -1)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = gen.DistanceTravelledAt(r3.Vector{}, 2)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestScrewTiming(t *testing.T) {
	axis := mustAxis(t, r3.Vector{}, r3.Vector{Z: 1})
	s, err := NewScrew(axis, 0, 2)
	test.That(t, err, test.ShouldBeNil)

	_, err = s.TimeToComplete(0)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = s.TimeToComplete(-1)
	test.That(t, err, test.ShouldNotBeNil)
	tt, err := s.TimeToComplete(0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tt, test.ShouldAlmostEqual, 4)

	_, err = s.MagnitudeAfter(1, -0.5)
	test.That(t, err, test.ShouldNotBeNil)
	m, err := s.MagnitudeAfter(1, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldAlmostEqual, 0.5)
	m, err = s.MagnitudeAfter(1, 10)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m, test.ShouldAlmostEqual, 2)
}
