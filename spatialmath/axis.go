// Package spatialmath implements the rigid-body math needed to convert
// between homogeneous transforms, twists, and screws.
package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Axis is a line in 3-space, stored as a point on the line and a unit
// direction. Immutable after construction.
type Axis struct {
	point     r3.Vector
	direction r3.Vector
}

// NewAxis returns an axis through point along direction. The direction is
// normalized; a zero direction is a construction error.
func NewAxis(point, direction r3.Vector) (Axis, error) {
	if direction.Norm() == 0 {
		return Axis{}, errors.New("axis direction must have nonzero length")
	}
	return newAxis(point, direction), nil
}

// newAxis skips validation for callers that already hold a nonzero direction.
func newAxis(point, direction r3.Vector) Axis {
	return Axis{point: point, direction: direction.Normalize()}
}

// Point returns a point on the line.
func (a Axis) Point() r3.Vector {
	return a.point
}

// Direction returns the unit direction of the line.
func (a Axis) Direction() r3.Vector {
	return a.direction
}

// DistanceToPoint returns the perpendicular distance from p to the line.
func (a Axis) DistanceToPoint(p r3.Vector) float64 {
	rel := p.Sub(a.point)
	proj := a.direction.Mul(rel.Dot(a.direction))
	return rel.Sub(proj).Norm()
}

// ContainsPoint reports whether p lies on the line.
func (a Axis) ContainsPoint(p r3.Vector) bool {
	return a.DistanceToPoint(p) < defaultEpsilon
}

// EqualTo reports whether two axes describe the same oriented line. The
// stored points need not match; the other axis's point only has to lie on
// this line.
func (a Axis) EqualTo(other Axis) bool {
	return R3VectorAlmostEqual(a.direction, other.direction, defaultEpsilon) &&
		a.ContainsPoint(other.point)
}

// ClosestPointToOrigin returns the foot of the perpendicular dropped from
// the origin onto the line.
func (a Axis) ClosestPointToOrigin() r3.Vector {
	t := -a.point.Dot(a.direction)
	return a.point.Add(a.direction.Mul(t))
}

// PassesThroughOrigin reports whether the line contains the origin.
func (a Axis) PassesThroughOrigin() bool {
	return a.DistanceToPoint(r3.Vector{}) < defaultEpsilon
}
