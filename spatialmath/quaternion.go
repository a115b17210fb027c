package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RotationFromQuaternion converts a quaternion to its rotation matrix. The
// quaternion is normalized first; the zero quaternion is an error. This is
// the only orientation input path the input layer exposes.
func RotationFromQuaternion(q quat.Number) (mgl64.Mat3, error) {
	mq := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}
	if mq.Len() == 0 {
		return mgl64.Mat3{}, errors.New("cannot build a rotation from the zero quaternion")
	}
	return mq.Normalize().Mat4().Mat3(), nil
}

// QuaternionFromRotation converts a rotation matrix to a unit quaternion.
func QuaternionFromRotation(r mgl64.Mat3) quat.Number {
	mq := mgl64.Mat4ToQuat(r.Mat4())
	return quat.Number{Real: mq.W, Imag: mq.X(), Jmag: mq.Y(), Kmag: mq.Z()}
}
