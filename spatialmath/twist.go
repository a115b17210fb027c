package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Twist is an element of se(3): a linear and an angular velocity pair, the
// instantaneous generator of a rigid motion. Immutable value type.
type Twist struct {
	Linear  r3.Vector
	Angular r3.Vector
}

// NewTwist returns the twist with the given linear and angular parts.
func NewTwist(linear, angular r3.Vector) Twist {
	return Twist{Linear: linear, Angular: angular}
}

// IsPureTranslation reports whether the twist has no angular part.
func (tw Twist) IsPureTranslation() bool {
	return tw.Angular.Norm() < defaultEpsilon
}

// IsPureRotation reports whether the twist has no linear part.
func (tw Twist) IsPureRotation() bool {
	return tw.Linear.Norm() < defaultEpsilon
}

// IsZero reports whether both parts vanish.
func (tw Twist) IsZero() bool {
	return tw.IsPureTranslation() && tw.IsPureRotation()
}

// Norm is the total magnitude of the motion: the rotation angle, unless the
// twist is a pure translation, in which case the translation distance.
func (tw Twist) Norm() float64 {
	if tw.IsPureTranslation() {
		return tw.Linear.Norm()
	}
	return tw.Angular.Norm()
}

// Unit returns the twist scaled to unit norm. The zero twist is returned unchanged.
func (tw Twist) Unit() Twist {
	n := tw.Norm()
	if n == 0 {
		return tw
	}
	return tw.Mul(1 / n)
}

// Mul returns the twist scaled by the given factor.
func (tw Twist) Mul(scale float64) Twist {
	return Twist{Linear: tw.Linear.Mul(scale), Angular: tw.Angular.Mul(scale)}
}

// Exp is the se(3) exponential map (MLS Eq. 2.36): the transform reached by
// following the twist for unit time.
func (tw Twist) Exp() mgl64.Mat4 {
	if tw.IsPureTranslation() {
		return TransformFromRotationTranslation(mgl64.Ident3(), tw.Linear)
	}
	theta := tw.Norm()
	unit := tw.Unit()
	w := unit.Angular
	rot := rodrigues(w, theta)
	if tw.IsPureRotation() {
		return TransformFromRotationTranslation(rot, r3.Vector{})
	}
	// p = (I−R)(ω×v) + ωωᵀvθ
	v := unit.Linear
	wxv := w.Cross(v)
	p := wxv.Sub(mat3MulVec(rot, wxv)).Add(w.Mul(w.Dot(v) * theta))
	return TransformFromRotationTranslation(rot, p)
}

// TwistFromTransform is the SE(3) logarithm map (MLS Prop. 2.9), the inverse
// of Exp. The returned twist carries the motion's magnitude: its angular part
// is the full axis-angle vector, and its linear part is the velocity scaled
// by the rotation angle.
func TwistFromTransform(m mgl64.Mat4) Twist {
	rot := RotationOf(m)
	trans := TranslationOf(m)
	if rotationAlmostIdentity(rot) {
		return Twist{Linear: trans}
	}
	aa := AxisAngleFromRotation(rot)
	theta := aa.Norm()
	if trans.Norm() < defaultEpsilon {
		return Twist{Angular: aa}
	}
	// Solve A·v = p for the unit linear velocity, A = (I−R)[ω]ₓ + ωωᵀθ.
	w := aa.Mul(1 / theta)
	a := mgl64.Ident3().Sub(rot).Mul3(skewSymmetric(w)).Add(outerProduct(w, w).Mul(theta))
	v := mat3MulVec(a.Inv(), trans)
	return Twist{Linear: v.Mul(theta), Angular: aa}
}
