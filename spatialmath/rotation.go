package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// skewSymmetric returns [v]ₓ, the matrix form of the cross product with v.
func skewSymmetric(v r3.Vector) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -v.Z, v.Y},
		mgl64.Vec3{v.Z, 0, -v.X},
		mgl64.Vec3{-v.Y, v.X, 0},
	)
}

// rodrigues builds a rotation matrix from a unit axis and an angle:
// I + sin(θ)[k]ₓ + (1−cos θ)[k]ₓ².
func rodrigues(unitAxis r3.Vector, theta float64) mgl64.Mat3 {
	if theta == 0 {
		return mgl64.Ident3()
	}
	k := skewSymmetric(unitAxis)
	k2 := k.Mul3(k)
	return mgl64.Ident3().Add(k.Mul(math.Sin(theta))).Add(k2.Mul(1 - math.Cos(theta)))
}

// RotationFromAxisAngle is the SO(3) exponential map: it builds the rotation
// of theta radians about the given axis via Rodrigues' formula. The axis is
// normalized; a zero axis is an error.
func RotationFromAxisAngle(axis r3.Vector, theta float64) (mgl64.Mat3, error) {
	if axis.Norm() == 0 {
		return mgl64.Mat3{}, errors.New("rotation axis must have nonzero length")
	}
	return rodrigues(axis.Normalize(), theta), nil
}

// rotationAlmostIdentity reports whether r is the identity rotation within tolerance.
func rotationAlmostIdentity(r mgl64.Mat3) bool {
	ident := mgl64.Ident3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(r.At(i, j)-ident.At(i, j)) >= defaultEpsilon {
				return false
			}
		}
	}
	return true
}

// AxisAngleFromRotation is the SO(3) logarithm map: it returns a vector along
// the rotation axis whose norm is the rotation angle. The identity rotation
// maps to the zero vector.
//
// The extraction divides by sin θ and so is ill-conditioned as θ approaches π.
func AxisAngleFromRotation(r mgl64.Mat3) r3.Vector {
	if rotationAlmostIdentity(r) {
		return r3.Vector{}
	}
	cosTheta := (r.Trace() - 1) / 2
	// Account for floating point error
	if cosTheta > 1 {
		cosTheta = 1
	}
	if cosTheta < -1 {
		cosTheta = -1
	}
	theta := math.Acos(cosTheta)
	axis := r3.Vector{
		X: r.At(2, 1) - r.At(1, 2),
		Y: r.At(0, 2) - r.At(2, 0),
		Z: r.At(1, 0) - r.At(0, 1),
	}
	return axis.Mul(theta / (2 * math.Sin(theta)))
}

// NewIdentityTransform returns the identity element of SE(3).
func NewIdentityTransform() mgl64.Mat4 {
	return mgl64.Ident4()
}

// TransformFromRotationTranslation packs a rotation block and a translation
// column into a homogeneous transform.
func TransformFromRotationTranslation(r mgl64.Mat3, t r3.Vector) mgl64.Mat4 {
	m := r.Mat4()
	m.Set(0, 3, t.X)
	m.Set(1, 3, t.Y)
	m.Set(2, 3, t.Z)
	return m
}

// RotationOf extracts the 3x3 rotation block of a homogeneous transform.
func RotationOf(m mgl64.Mat4) mgl64.Mat3 {
	return m.Mat3()
}

// TranslationOf extracts the translation column of a homogeneous transform.
func TranslationOf(m mgl64.Mat4) r3.Vector {
	col := m.Col(3).Vec3()
	return r3.Vector{X: col.X(), Y: col.Y(), Z: col.Z()}
}
