package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/topdown/common"
)

var ErrInvalidConfig = errors.New("component: invalid ability config")

// AbilityConfig is the author-supplied tuning for one controlled character.
// It is treated as immutable once handed to a controller; swapping it is done
// wholesale through Reconfigure.
type AbilityConfig struct {
	RunSpeed         float64
	ShootSpeedFactor float64
	SlopeLimitDeg    float64
	SlideFriction    float64
	GravityAccel     float64
	MaxFallSpeed     float64

	JumpEnabled       bool
	JumpHeight        float64
	DoubleJumpEnabled bool

	DashEnabled     bool
	DashCooldownSec float64
	DashForce       float64
	DashDurationSec float64
	Drag            common.Vec3

	DetectionRadius     float64
	AimRotationSpeed    float64
	AimTensionThreshold float64

	InvertActivationDelaySec float64
	// FixedStepSec is the physics step the dash impulse compensates for.
	FixedStepSec float64
}

func DefaultAbilityConfig() AbilityConfig {
	return AbilityConfig{
		RunSpeed:                 5,
		ShootSpeedFactor:         0.6,
		SlopeLimitDeg:            45,
		SlideFriction:            0.3,
		GravityAccel:             -30,
		MaxFallSpeed:             15,
		JumpEnabled:              true,
		JumpHeight:               2,
		DoubleJumpEnabled:        true,
		DashEnabled:              true,
		DashCooldownSec:          3,
		DashForce:                5,
		DashDurationSec:          0.1,
		Drag:                     common.V3(8, 0, 8),
		DetectionRadius:          10,
		AimRotationSpeed:         5,
		AimTensionThreshold:      0.1,
		InvertActivationDelaySec: 0.1,
		FixedStepSec:             0.02,
	}
}

// Validate rejects configs that would make the physics undefined.
func (c AbilityConfig) Validate() error {
	check := func(ok bool, field string, v float64) error {
		if ok && !math.IsNaN(v) {
			return nil
		}
		return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, v)
	}

	checks := []error{
		check(c.RunSpeed >= 0, "run_speed", c.RunSpeed),
		check(c.ShootSpeedFactor > 0 && c.ShootSpeedFactor <= 1, "shoot_speed_factor", c.ShootSpeedFactor),
		check(c.SlopeLimitDeg >= 0 && c.SlopeLimitDeg <= 90, "slope_limit_deg", c.SlopeLimitDeg),
		check(c.SlideFriction >= 0 && c.SlideFriction <= 1, "slide_friction", c.SlideFriction),
		check(c.GravityAccel < 0, "gravity_accel", c.GravityAccel),
		check(c.MaxFallSpeed >= 0, "max_fall_speed", c.MaxFallSpeed),
		check(c.JumpHeight >= 0, "jump_height", c.JumpHeight),
		check(c.DashCooldownSec >= 0, "dash_cooldown_sec", c.DashCooldownSec),
		check(c.DashDurationSec >= 0, "dash_duration_sec", c.DashDurationSec),
		check(c.Drag.X >= 0, "drag.x", c.Drag.X),
		check(c.Drag.Y >= 0, "drag.y", c.Drag.Y),
		check(c.Drag.Z >= 0, "drag.z", c.Drag.Z),
		check(c.DetectionRadius >= 0, "detection_radius", c.DetectionRadius),
		check(c.AimRotationSpeed >= 0, "aim_rotation_speed", c.AimRotationSpeed),
		check(c.AimTensionThreshold >= 0, "aim_tension_threshold", c.AimTensionThreshold),
		check(c.InvertActivationDelaySec >= 0, "invert_activation_delay_sec", c.InvertActivationDelaySec),
		check(c.FixedStepSec > 0, "fixed_step_sec", c.FixedStepSec),
	}
	return errors.Join(checks...)
}
