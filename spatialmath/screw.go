package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// PitchPureTranslation marks a screw with no rotational component: the motion
// is a translation along the axis direction and the magnitude is a distance.
var PitchPureTranslation = math.Inf(1)

// defaultScrewDirection is the conventional axis direction assigned to the
// zero twist. The choice is arbitrary but deterministic; a zero-magnitude
// screw produces no motion regardless.
var defaultScrewDirection = r3.Vector{Z: 1}

// Screw is a rigid displacement in axis + pitch + magnitude form. A pitch of
// zero is a pure rotation about the axis; PitchPureTranslation is a pure
// translation along it. The screw's unit twist is derived once at
// construction so transform queries do not recompute it. Immutable.
type Screw struct {
	axis      Axis
	pitch     float64
	magnitude float64
	unitTwist Twist
}

// NewScrew returns a screw over the given axis. A negative magnitude is a
// construction error.
func NewScrew(axis Axis, pitch, magnitude float64) (Screw, error) {
	if magnitude < 0 {
		return Screw{}, errors.Errorf("screw magnitude must be non-negative, got %f", magnitude)
	}
	return newScrew(axis, pitch, magnitude), nil
}

func newScrew(axis Axis, pitch, magnitude float64) Screw {
	return Screw{axis: axis, pitch: pitch, magnitude: magnitude, unitTwist: unitTwistOf(axis, pitch)}
}

// unitTwistOf derives the unit-magnitude twist generating the screw motion.
func unitTwistOf(axis Axis, pitch float64) Twist {
	dir := axis.Direction()
	if math.IsInf(pitch, 1) {
		return Twist{Linear: dir}
	}
	return Twist{
		Linear:  dir.Mul(pitch).Sub(dir.Cross(axis.Point())),
		Angular: dir,
	}
}

// Axis returns the screw axis.
func (s Screw) Axis() Axis {
	return s.axis
}

// Pitch returns translation per unit rotation, or PitchPureTranslation.
func (s Screw) Pitch() float64 {
	return s.pitch
}

// Magnitude returns the total amount of motion: radians of rotation, or
// distance for a pure translation.
func (s Screw) Magnitude() float64 {
	return s.magnitude
}

// IsPureTranslation reports whether the screw has no rotational component.
func (s Screw) IsPureTranslation() bool {
	return math.IsInf(s.pitch, 1)
}

// IsPureRotation reports whether the screw has no translational component.
func (s Screw) IsPureRotation() bool {
	return s.pitch == 0
}

// UnitTwist returns the cached twist of unit magnitude generating this screw.
func (s Screw) UnitTwist() Twist {
	return s.unitTwist
}

// Twist returns the screw's full twist, the unit twist scaled by magnitude.
func (s Screw) Twist() Twist {
	return s.unitTwist.Mul(s.magnitude)
}

// TwistAtMagnitude returns the twist after m units of motion. A negative m is
// an error.
func (s Screw) TwistAtMagnitude(m float64) (Twist, error) {
	if m < 0 {
		return Twist{}, errors.Errorf("magnitude must be non-negative, got %f", m)
	}
	return s.unitTwist.Mul(m), nil
}

// TransformAtMagnitude returns the pose reached after m units of motion.
// m must lie within [0, Magnitude].
func (s Screw) TransformAtMagnitude(m float64) (mgl64.Mat4, error) {
	if m < 0 {
		return mgl64.Mat4{}, errors.Errorf("magnitude must be non-negative, got %f", m)
	}
	if m > s.magnitude {
		return mgl64.Mat4{}, errors.Errorf("magnitude %f exceeds screw magnitude %f", m, s.magnitude)
	}
	return s.unitTwist.Mul(m).Exp(), nil
}

// EndTransform returns the pose reached at the screw's full magnitude.
func (s Screw) EndTransform() mgl64.Mat4 {
	return s.Twist().Exp()
}

// ValuesEqualTo reports whether two screws describe the same motion: equal
// axes (collinear points count), equal magnitudes, and equal pitches, where
// two pure translations compare equal regardless of the stored infinities'
// arithmetic.
func (s Screw) ValuesEqualTo(other Screw) bool {
	if !s.axis.EqualTo(other.axis) {
		return false
	}
	if !Float64AlmostEqual(s.magnitude, other.magnitude, defaultEpsilon) {
		return false
	}
	if s.IsPureTranslation() || other.IsPureTranslation() {
		return s.IsPureTranslation() && other.IsPureTranslation()
	}
	return Float64AlmostEqual(s.pitch, other.pitch, defaultEpsilon)
}

// ScrewFromTwist converts a twist to screw coordinates (MLS Eqs. 2.42-2.44).
// The zero twist maps to the conventional degenerate screw: zero magnitude,
// pure-translation pitch, axis through the origin along the default direction.
func ScrewFromTwist(tw Twist) Screw {
	if tw.IsZero() {
		return newScrew(newAxis(r3.Vector{}, defaultScrewDirection), PitchPureTranslation, 0)
	}
	if tw.IsPureTranslation() {
		return newScrew(newAxis(r3.Vector{}, tw.Linear.Normalize()), PitchPureTranslation, tw.Norm())
	}
	normSq := tw.Angular.Norm2()
	pitch := tw.Angular.Dot(tw.Linear) / normSq
	point := tw.Angular.Cross(tw.Linear).Mul(1 / normSq)
	return newScrew(newAxis(point, tw.Angular.Normalize()), pitch, tw.Norm())
}

// ScrewFromTransform converts a homogeneous transform to the minimal screw
// motion realizing it.
func ScrewFromTransform(m mgl64.Mat4) Screw {
	return ScrewFromTwist(TwistFromTransform(m))
}

// DistanceTravelled returns the arc length traced by point over the full
// screw motion.
func (s Screw) DistanceTravelled(point r3.Vector) float64 {
	d, err := s.DistanceTravelledAt(point, s.magnitude)
	if err != nil {
		// the screw's own magnitude is always in range
		return 0
	}
	return d
}

// DistanceTravelledAt returns the arc length traced by point after m units of
// motion. For a pure translation this is m itself; otherwise the point moves
// along a helix of radius equal to its distance to the axis, so the length is
// ‖(radius, pitch)‖·m.
func (s Screw) DistanceTravelledAt(point r3.Vector, m float64) (float64, error) {
	if m < 0 {
		return 0, errors.Errorf("magnitude must be non-negative, got %f", m)
	}
	if m > s.magnitude {
		return 0, errors.Errorf("magnitude %f exceeds screw magnitude %f", m, s.magnitude)
	}
	if s.IsPureTranslation() {
		return m, nil
	}
	return math.Hypot(s.axis.DistanceToPoint(point), s.pitch) * m, nil
}

// TimeToComplete returns how long the full motion takes at the given rate of
// magnitude per unit time. A non-positive speed is an error.
func (s Screw) TimeToComplete(speed float64) (float64, error) {
	if speed <= 0 {
		return 0, errors.Errorf("speed must be positive, got %f", speed)
	}
	return s.magnitude / speed, nil
}

// MagnitudeAfter returns the magnitude reached after elapsed time at the
// given speed, capped at the screw's full magnitude.
func (s Screw) MagnitudeAfter(speed, elapsed float64) (float64, error) {
	if speed <= 0 {
		return 0, errors.Errorf("speed must be positive, got %f", speed)
	}
	if elapsed < 0 {
		return 0, errors.Errorf("elapsed time must be non-negative, got %f", elapsed)
	}
	m := speed * elapsed
	if m > s.magnitude {
		m = s.magnitude
	}
	return m, nil
}
