package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// defaultEpsilon is the tolerance used for geometric coincidence checks.
const defaultEpsilon = 1e-8

// Float64AlmostEqual reports whether two floats are within epsilon of each other.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// R3VectorAlmostEqual reports whether two vectors agree component-wise within epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

// Mat4AlmostEqual reports whether two transforms agree entry-wise within epsilon.
func Mat4AlmostEqual(a, b mgl64.Mat4, epsilon float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(a.At(i, j)-b.At(i, j)) >= epsilon {
				return false
			}
		}
	}
	return true
}

// mat3MulVec applies a 3x3 matrix to an r3 vector.
func mat3MulVec(m mgl64.Mat3, v r3.Vector) r3.Vector {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return r3.Vector{X: out.X(), Y: out.Y(), Z: out.Z()}
}

// outerProduct returns a bᵀ as a 3x3 matrix.
func outerProduct(a, b r3.Vector) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{a.X * b.X, a.X * b.Y, a.X * b.Z},
		mgl64.Vec3{a.Y * b.X, a.Y * b.Y, a.Y * b.Z},
		mgl64.Vec3{a.Z * b.X, a.Z * b.Y, a.Z * b.Z},
	)
}
