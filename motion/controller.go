// Package motion drives a moving reference frame along screw motions, one
// pose update per render tick.
package motion

import (
	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/screwtheory/screwmotion/spatialmath"
)

// Controller owns the live pose of the moving reference frame and the
// command/state machine advancing it. It is single-threaded and cooperative:
// Move, Reset, and UpdateScrew only set state consumed by the next Animate
// call, and Animate must be called once per tick with non-decreasing time.
// Commands issued between two ticks coalesce; only the state at the next
// tick matters.
type Controller struct {
	cfg      Config
	logger   golog.Logger
	renderer Renderer
	inputs   InputEnabler

	currentScrew spatialmath.Screw
	// previousScrew is the last screw for which visualization was generated.
	previousScrew spatialmath.Screw
	requested     bool
	done          bool
	moveStart     float64
	// speed is the rate at which magnitude advances per unit time, derived
	// from currentScrew on every UpdateScrew.
	speed float64
	pose  mgl64.Mat4
}

// NewController wires a controller to its collaborators and puts it in the
// idle state at the default screw's zero-magnitude pose.
func NewController(cfg Config, renderer Renderer, inputs InputEnabler, logger golog.Logger) (*Controller, error) {
	if renderer == nil {
		return nil, errors.New("renderer is required")
	}
	if inputs == nil {
		return nil, errors.New("input enabler is required")
	}
	if logger == nil {
		logger = golog.Global()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:           cfg,
		logger:        logger,
		renderer:      renderer,
		inputs:        inputs,
		currentScrew:  cfg.DefaultScrew,
		previousScrew: cfg.DefaultScrew,
		done:          true,
		pose:          spatialmath.NewIdentityTransform(),
	}
	c.speed = c.speedFor(cfg.DefaultScrew)
	c.renderer.SetPose(c.pose)
	return c, nil
}

// speedFor clamps the nominal time to complete (one magnitude unit per
// second) into the configured window and returns magnitude over that time.
func (c *Controller) speedFor(s spatialmath.Screw) float64 {
	if s.Magnitude() == 0 {
		return 0
	}
	t := s.Magnitude()
	if t < c.cfg.MinMoveDuration {
		t = c.cfg.MinMoveDuration
	}
	if t > c.cfg.MaxMoveDuration {
		t = c.cfg.MaxMoveDuration
	}
	return s.Magnitude() / t
}

// Pose returns the live pose of the moving frame.
func (c *Controller) Pose() mgl64.Mat4 {
	return c.pose
}

// Done reports whether no motion is in progress.
func (c *Controller) Done() bool {
	return c.done
}

// Moving reports whether a motion is in progress or has been requested.
func (c *Controller) Moving() bool {
	return c.requested || !c.done
}

// CurrentScrew returns the screw the next move will follow.
func (c *Controller) CurrentScrew() spatialmath.Screw {
	return c.currentScrew
}

// UpdateScrew replaces the target screw, rederives the motion speed, and
// previews the screw's zero-magnitude pose without committing a move.
func (c *Controller) UpdateScrew(s spatialmath.Screw) {
	c.currentScrew = s
	c.speed = c.speedFor(s)
	c.pose = spatialmath.NewIdentityTransform()
	c.renderer.SetPose(c.pose)
	c.logger.Debugw("screw updated", "pitch", s.Pitch(), "magnitude", s.Magnitude(), "speed", c.speed)
}

// Move requests that the next Animate tick start the motion. Calling it again
// before that tick is a no-op; the request is edge-triggered and debounced.
func (c *Controller) Move() {
	c.requested = true
}

// Reset unconditionally returns the controller to the idle state at the
// default screw, discarding any motion in progress, and signals the renderer
// to drop all auxiliary geometry and reset its view.
func (c *Controller) Reset() {
	c.currentScrew = c.cfg.DefaultScrew
	c.previousScrew = c.cfg.DefaultScrew
	c.speed = c.speedFor(c.cfg.DefaultScrew)
	c.requested = false
	c.done = true
	c.moveStart = 0
	c.pose = spatialmath.NewIdentityTransform()
	c.renderer.SetPose(c.pose)
	c.renderer.HideAxis()
	c.renderer.HideHelix()
	c.renderer.ResetView()
	c.inputs.SetInputsEnabled(true)
	c.logger.Debug("reset to default screw")
}

// Animate advances the controller by one tick. now must be monotonically
// non-decreasing across calls. A pending move request is consumed exactly
// once here, regardless of how many Move calls preceded the tick.
func (c *Controller) Animate(now float64) {
	switch {
	case c.requested:
		c.requested = false
		c.done = false
		c.pose = spatialmath.NewIdentityTransform()
		c.renderer.SetPose(c.pose)
		c.inputs.SetInputsEnabled(false)
		// Regenerate visualization only for a screw that is new by value and
		// actually moves; re-triggering the same motion keeps the geometry.
		if !c.currentScrew.ValuesEqualTo(c.previousScrew) && c.currentScrew.Magnitude() != 0 {
			c.renderer.ShowAxis(AxisViz{
				HalfLength: c.currentScrew.AxisHalfLength(),
				Pose:       c.currentScrew.VizTransform(),
			})
			if !c.currentScrew.Axis().PassesThroughOrigin() {
				c.renderer.ShowHelix(HelixViz{
					Pitch:       c.currentScrew.Pitch(),
					Radius:      c.currentScrew.HelixRadius(),
					Magnitude:   c.currentScrew.Magnitude(),
					AngularStep: c.cfg.HelixAngularStep,
					Pose:        c.currentScrew.VizTransform(),
				})
			}
		}
		c.previousScrew = c.currentScrew
		c.moveStart = now
		c.logger.Debugw("move started", "time", now)
	case !c.done:
		advanced := c.speed * (now - c.moveStart)
		if advanced >= c.currentScrew.Magnitude() {
			c.finish(now)
			return
		}
		pose, err := c.currentScrew.TransformAtMagnitude(advanced)
		if err != nil {
			c.logger.Errorw("pose evaluation failed", "error", err)
			return
		}
		c.pose = pose
		c.renderer.SetPose(c.pose)
	default:
	}
}

func (c *Controller) finish(now float64) {
	c.done = true
	c.pose = c.currentScrew.EndTransform()
	c.renderer.SetPose(c.pose)
	c.inputs.SetInputsEnabled(true)
	c.logger.Debugw("move complete", "time", now, "elapsed", now-c.moveStart)
}
