package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Geometric queries consumed by an external renderer. These are pure
// functions of the screw parameters; the renderer owns any geometry it
// builds from them.

// AxisHalfLength returns half the length of the axis line drawn for this
// screw. The policy is a drawing convention, not a physical quantity: a pure
// rotation gets a fixed-length line, a pure translation a line covering the
// travel, and a general screw a line covering the axial advance.
func (s Screw) AxisHalfLength() float64 {
	switch {
	case s.IsPureRotation():
		return 1
	case s.IsPureTranslation():
		return s.magnitude
	default:
		return math.Abs(s.pitch)*s.magnitude + 1
	}
}

// HelixRadius is the distance from the origin of the moving frame, which
// starts at the identity pose, to the screw axis.
func (s Screw) HelixRadius() float64 {
	return s.axis.DistanceToPoint(r3.Vector{})
}

// HelixPoints samples the path traced by the moving frame's origin,
// expressed in the frame returned by VizTransform (z along the axis, x
// toward the traced point's start). Samples are angularStep radians apart; a
// pure translation degenerates to a two-point segment.
func (s Screw) HelixPoints(angularStep float64) ([]r3.Vector, error) {
	if angularStep <= 0 {
		return nil, errors.Errorf("angular step must be positive, got %f", angularStep)
	}
	radius := s.HelixRadius()
	if s.IsPureTranslation() {
		return []r3.Vector{{X: radius}, {X: radius, Z: s.magnitude}}, nil
	}
	var pts []r3.Vector
	for phi := 0.0; phi < s.magnitude; phi += angularStep {
		pts = append(pts, helixPoint(radius, s.pitch, phi))
	}
	return append(pts, helixPoint(radius, s.pitch, s.magnitude)), nil
}

func helixPoint(radius, pitch, phi float64) r3.Vector {
	return r3.Vector{
		X: radius * math.Cos(phi),
		Y: radius * math.Sin(phi),
		Z: pitch * phi,
	}
}

// VizTransform returns a frame for anchoring auxiliary geometry: origin at
// the axis's closest point to the origin, z along the axis direction, and x
// pointing from the anchor toward the origin. When the axis passes through
// the origin that direction is undefined, so a deterministic in-plane basis
// is chosen instead; callers must not read meaning into it.
func (s Screw) VizTransform() mgl64.Mat4 {
	anchor := s.axis.ClosestPointToOrigin()
	z := s.axis.Direction()
	var x r3.Vector
	if s.axis.PassesThroughOrigin() {
		ref := r3.Vector{X: -1}
		if ref.Cross(z).Norm() < defaultEpsilon {
			// axis is x-aligned, pick the other fallback
			ref = r3.Vector{Y: -1}
		}
		x = ref.Sub(z.Mul(ref.Dot(z))).Normalize()
	} else {
		x = anchor.Mul(-1).Normalize()
	}
	y := z.Cross(x)
	rot := mgl64.Mat3FromCols(
		mgl64.Vec3{x.X, x.Y, x.Z},
		mgl64.Vec3{y.X, y.Y, y.Z},
		mgl64.Vec3{z.X, z.Y, z.Z},
	)
	return TransformFromRotationTranslation(rot, anchor)
}
