package motion

import "github.com/go-gl/mathgl/mgl64"

// AxisViz describes the axis line a renderer should draw: a segment of
// 2*HalfLength centered on the origin of Pose, along its z basis.
type AxisViz struct {
	HalfLength float64
	Pose       mgl64.Mat4
}

// HelixViz describes the helical path a renderer should draw in the frame of
// Pose. The renderer samples it however it likes; AngularStep is the
// suggested sampling density.
type HelixViz struct {
	Pitch       float64
	Radius      float64
	Magnitude   float64
	AngularStep float64
	Pose        mgl64.Mat4
}

// Renderer receives pose updates and visualization signals from the
// controller. It owns whatever drawable geometry it creates in response and
// is responsible for disposing it; the controller holds only parameters.
type Renderer interface {
	// SetPose applies a new pose to the moving reference frame.
	SetPose(pose mgl64.Mat4)
	// ShowAxis and ShowHelix (re)create auxiliary geometry.
	ShowAxis(viz AxisViz)
	ShowHelix(viz HelixViz)
	// HideAxis and HideHelix dispose it.
	HideAxis()
	HideHelix()
	// ResetView restores the renderer's camera/view to its home state.
	ResetView()
}

// InputEnabler gates the editing surface while a motion is in progress.
type InputEnabler interface {
	SetInputsEnabled(enabled bool)
}
