// Package gui is the headless core of the input layer: it keeps the three
// editable representations of a displacement (transform, twist, screw)
// mutually consistent and forwards commands to the motion controller.
package gui

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"github.com/screwtheory/screwmotion/motion"
	"github.com/screwtheory/screwmotion/spatialmath"
)

// Names of the representations a panel exposes.
const (
	RepTransform = "transform"
	RepTwist     = "twist"
	RepScrew     = "screw"
)

// TransformRepresentation is the position + quaternion form of the current
// displacement. Quaternions are the only orientation input path.
type TransformRepresentation struct {
	Position    r3.Vector
	Orientation quat.Number
}

// TwistRepresentation is the linear + angular form.
type TwistRepresentation struct {
	Linear  r3.Vector
	Angular r3.Vector
}

// ScrewRepresentation is the axis + pitch + magnitude form.
type ScrewRepresentation struct {
	AxisPoint     r3.Vector
	AxisDirection r3.Vector
	Pitch         float64
	Magnitude     float64
}

// Panel holds the current displacement in screw form and derives the other
// representations on demand. Every edit converts through Screw and is pushed
// to the controller via UpdateScrew. Like the controller, it is
// single-threaded.
type Panel struct {
	logger  golog.Logger
	ctrl    *motion.Controller
	enabled bool
	screw   spatialmath.Screw
}

// NewPanel returns an unattached panel with inputs enabled.
func NewPanel(logger golog.Logger) *Panel {
	if logger == nil {
		logger = golog.Global()
	}
	return &Panel{logger: logger, enabled: true}
}

// Attach wires the panel to its controller and adopts the controller's
// current screw. Attaching twice is a programming error.
func (p *Panel) Attach(ctrl *motion.Controller) error {
	if p.ctrl != nil {
		return errors.New("panel is already attached to a controller")
	}
	if ctrl == nil {
		return errors.New("controller is required")
	}
	p.ctrl = ctrl
	p.screw = ctrl.CurrentScrew()
	return nil
}

func (p *Panel) editable() error {
	if p.ctrl == nil {
		return errors.New("panel is not attached to a controller")
	}
	if !p.enabled {
		return errors.New("inputs are disabled while a motion is in progress")
	}
	return nil
}

// SetTransform updates all representations from a position and quaternion.
func (p *Panel) SetTransform(position r3.Vector, orientation quat.Number) error {
	if err := p.editable(); err != nil {
		return err
	}
	rot, err := spatialmath.RotationFromQuaternion(orientation)
	if err != nil {
		return err
	}
	p.apply(spatialmath.ScrewFromTransform(spatialmath.TransformFromRotationTranslation(rot, position)))
	return nil
}

// SetTwist updates all representations from a twist's linear and angular parts.
func (p *Panel) SetTwist(linear, angular r3.Vector) error {
	if err := p.editable(); err != nil {
		return err
	}
	p.apply(spatialmath.ScrewFromTwist(spatialmath.NewTwist(linear, angular)))
	return nil
}

// SetScrew updates all representations from raw screw parameters.
func (p *Panel) SetScrew(point, direction r3.Vector, pitch, magnitude float64) error {
	if err := p.editable(); err != nil {
		return err
	}
	axis, err := spatialmath.NewAxis(point, direction)
	if err != nil {
		return err
	}
	s, err := spatialmath.NewScrew(axis, pitch, magnitude)
	if err != nil {
		return err
	}
	p.apply(s)
	return nil
}

func (p *Panel) apply(s spatialmath.Screw) {
	p.screw = s
	p.ctrl.UpdateScrew(s)
}

// Transform returns the transform representation of the current displacement.
func (p *Panel) Transform() TransformRepresentation {
	m := p.screw.EndTransform()
	return TransformRepresentation{
		Position:    spatialmath.TranslationOf(m),
		Orientation: spatialmath.QuaternionFromRotation(spatialmath.RotationOf(m)),
	}
}

// Twist returns the twist representation of the current displacement.
func (p *Panel) Twist() TwistRepresentation {
	tw := p.screw.Twist()
	return TwistRepresentation{Linear: tw.Linear, Angular: tw.Angular}
}

// Screw returns the screw representation of the current displacement.
func (p *Panel) Screw() ScrewRepresentation {
	return ScrewRepresentation{
		AxisPoint:     p.screw.Axis().Point(),
		AxisDirection: p.screw.Axis().Direction(),
		Pitch:         p.screw.Pitch(),
		Magnitude:     p.screw.Magnitude(),
	}
}

// Representation returns the named representation. An unknown name is a
// programming error.
func (p *Panel) Representation(name string) (interface{}, error) {
	switch name {
	case RepTransform:
		return p.Transform(), nil
	case RepTwist:
		return p.Twist(), nil
	case RepScrew:
		return p.Screw(), nil
	default:
		return nil, errors.Errorf("unknown representation %q", name)
	}
}

// Move forwards a move command to the controller.
func (p *Panel) Move() error {
	if err := p.editable(); err != nil {
		return err
	}
	p.ctrl.Move()
	return nil
}

// Reset forwards a reset and adopts the controller's restored default screw.
// Unlike edits, a reset is allowed while a motion is in progress.
func (p *Panel) Reset() error {
	if p.ctrl == nil {
		return errors.New("panel is not attached to a controller")
	}
	p.ctrl.Reset()
	p.screw = p.ctrl.CurrentScrew()
	return nil
}

// SetInputsEnabled implements motion.InputEnabler.
func (p *Panel) SetInputsEnabled(enabled bool) {
	p.enabled = enabled
	p.logger.Debugw("inputs toggled", "enabled", enabled)
}
