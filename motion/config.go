package motion

import (
	"github.com/pkg/errors"

	"github.com/screwtheory/screwmotion/spatialmath"
)

// Default timing window and helix sampling density.
const (
	defaultMinMoveDuration  = 0.5
	defaultMaxMoveDuration  = 4.0
	defaultHelixAngularStep = 0.1
)

// Config is the explicit wiring for a Controller; no ambient globals are
// consulted. The zero value gets defaults filled in by Validate.
type Config struct {
	// DefaultScrew is the screw the controller starts with and returns to on
	// Reset. The zero value is the degenerate zero-magnitude screw.
	DefaultScrew spatialmath.Screw

	// MinMoveDuration and MaxMoveDuration clamp a motion's time to complete,
	// in seconds of tick time.
	MinMoveDuration float64 `json:"min_move_duration_secs"`
	MaxMoveDuration float64 `json:"max_move_duration_secs"`

	// HelixAngularStep is the sampling density passed along with helix
	// visualization signals, in radians.
	HelixAngularStep float64 `json:"helix_angular_step_rads"`
}

// Validate fills defaults and rejects inconsistent settings.
func (cfg *Config) Validate() error {
	if cfg.DefaultScrew.Axis().Direction().Norm() == 0 {
		// unset; use the conventional degenerate screw
		cfg.DefaultScrew = spatialmath.ScrewFromTwist(spatialmath.Twist{})
	}
	if cfg.MinMoveDuration == 0 {
		cfg.MinMoveDuration = defaultMinMoveDuration
	}
	if cfg.MaxMoveDuration == 0 {
		cfg.MaxMoveDuration = defaultMaxMoveDuration
	}
	if cfg.HelixAngularStep == 0 {
		cfg.HelixAngularStep = defaultHelixAngularStep
	}
	if cfg.MinMoveDuration < 0 || cfg.MaxMoveDuration < 0 {
		return errors.New("move durations must be positive")
	}
	if cfg.MinMoveDuration > cfg.MaxMoveDuration {
		return errors.Errorf(
			"min move duration %f exceeds max %f", cfg.MinMoveDuration, cfg.MaxMoveDuration)
	}
	if cfg.HelixAngularStep < 0 {
		return errors.New("helix angular step must be positive")
	}
	return nil
}
