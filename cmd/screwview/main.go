// Command screwview runs a screw motion from the command line, logging the
// pose updates and visualization signals a renderer would consume.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	goutils "go.viam.com/utils"

	"github.com/screwtheory/screwmotion/gui"
	"github.com/screwtheory/screwmotion/motion"
	"github.com/screwtheory/screwmotion/spatialmath"
)

var logger = golog.NewDevelopmentLogger("screwview")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	var (
		px        = flags.Float64("px", 0.5, "screw axis point x")
		py        = flags.Float64("py", 0.5, "screw axis point y")
		pz        = flags.Float64("pz", 0, "screw axis point z")
		dx        = flags.Float64("dx", 0, "screw axis direction x")
		dy        = flags.Float64("dy", 0, "screw axis direction y")
		dz        = flags.Float64("dz", 1, "screw axis direction z")
		pitch     = flags.Float64("pitch", 0.5, "screw pitch (translation per radian; +Inf for pure translation)")
		magnitude = flags.Float64("magnitude", 1, "screw magnitude")
		tickRate  = flags.Duration("tick", time.Second/60, "animation tick interval")
	)
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	var cfg motion.Config
	renderer := &logRenderer{logger: logger}
	panel := gui.NewPanel(logger)
	ctrl, err := motion.NewController(cfg, renderer, panel, logger)
	if err != nil {
		return err
	}
	if err := panel.Attach(ctrl); err != nil {
		return err
	}
	if err := panel.SetScrew(
		r3.Vector{X: *px, Y: *py, Z: *pz},
		r3.Vector{X: *dx, Y: *dy, Z: *dz},
		*pitch, *magnitude,
	); err != nil {
		return err
	}
	if err := panel.Move(); err != nil {
		return err
	}

	clk := clock.New()
	start := clk.Now()
	ticker := clk.Ticker(*tickRate)
	defer ticker.Stop()
	ctrl.Animate(0)
	for !ctrl.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			ctrl.Animate(now.Sub(start).Seconds())
		}
	}
	final := panel.Transform()
	logger.Infow("motion complete",
		"position", final.Position,
		"orientation", final.Orientation,
		"distance", ctrl.CurrentScrew().DistanceTravelled(r3.Vector{}),
	)
	return nil
}

// logRenderer satisfies motion.Renderer by logging what it would draw.
type logRenderer struct {
	logger golog.Logger
}

func (r *logRenderer) SetPose(pose mgl64.Mat4) {
	r.logger.Debugw("pose", "translation", spatialmath.TranslationOf(pose))
}

func (r *logRenderer) ShowAxis(viz motion.AxisViz) {
	r.logger.Infow("axis visualization", "halfLength", viz.HalfLength,
		"anchor", spatialmath.TranslationOf(viz.Pose))
}

func (r *logRenderer) ShowHelix(viz motion.HelixViz) {
	r.logger.Infow("helix visualization", "pitch", viz.Pitch, "radius", viz.Radius,
		"magnitude", viz.Magnitude, "step", viz.AngularStep)
}

func (r *logRenderer) HideAxis()  { r.logger.Info("axis visualization removed") }
func (r *logRenderer) HideHelix() { r.logger.Info("helix visualization removed") }
func (r *logRenderer) ResetView() { r.logger.Info("view reset") }
