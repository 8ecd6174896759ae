package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := loadInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// loadInto decodes over whatever out already holds, so callers can pre-fill
// defaults.
func loadInto(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() common.Vec3 {
	return common.V3(v.X, v.Y, v.Z)
}

func vec3Spec(v common.Vec3) Vec3Spec {
	return Vec3Spec{X: v.X, Y: v.Y, Z: v.Z}
}

type PlayerSpec struct {
	Name      string       `yaml:"name"`
	Movement  MovementSpec `yaml:"movement"`
	Jump      JumpSpec     `yaml:"jump"`
	Dash      DashSpec     `yaml:"dash"`
	Aim       AimSpec      `yaml:"aim"`
	Collider  ColliderSpec `yaml:"collider"`
	Start     Vec3Spec     `yaml:"start"`
	Color     *YAMLColor   `yaml:"color"`
	FixedStep float64      `yaml:"fixed_step"`

	// InvertDelay is how long an inversion waits before taking effect.
	InvertDelay float64 `yaml:"invert_delay"`
}

type MovementSpec struct {
	RunSpeed         float64  `yaml:"run_speed"`
	ShootSpeedFactor float64  `yaml:"shoot_speed_factor"`
	SlopeLimit       float64  `yaml:"slope_limit"`
	SlideFriction    float64  `yaml:"slide_friction"`
	Gravity          float64  `yaml:"gravity"`
	MaxFallSpeed     float64  `yaml:"max_fall_speed"`
	Drag             Vec3Spec `yaml:"drag"`
}

type JumpSpec struct {
	Enabled    bool    `yaml:"enabled"`
	Height     float64 `yaml:"height"`
	DoubleJump bool    `yaml:"double_jump"`
}

type DashSpec struct {
	Enabled  bool    `yaml:"enabled"`
	Cooldown float64 `yaml:"cooldown"`
	Force    float64 `yaml:"force"`
	Duration float64 `yaml:"duration"`
}

type AimSpec struct {
	DetectionRadius  float64 `yaml:"detection_radius"`
	RotationSpeed    float64 `yaml:"rotation_speed"`
	TensionThreshold float64 `yaml:"tension_threshold"`
}

type ColliderSpec struct {
	Radius     float64 `yaml:"radius"`
	StepHeight float64 `yaml:"step_height"`
}

// DefaultPlayerSpec mirrors component.DefaultAbilityConfig. Fields missing
// from a player file keep these values.
func DefaultPlayerSpec() PlayerSpec {
	cfg := component.DefaultAbilityConfig()
	return PlayerSpec{
		Name: "player",
		Movement: MovementSpec{
			RunSpeed:         cfg.RunSpeed,
			ShootSpeedFactor: cfg.ShootSpeedFactor,
			SlopeLimit:       cfg.SlopeLimitDeg,
			SlideFriction:    cfg.SlideFriction,
			Gravity:          cfg.GravityAccel,
			MaxFallSpeed:     cfg.MaxFallSpeed,
			Drag:             vec3Spec(cfg.Drag),
		},
		Jump: JumpSpec{
			Enabled:    cfg.JumpEnabled,
			Height:     cfg.JumpHeight,
			DoubleJump: cfg.DoubleJumpEnabled,
		},
		Dash: DashSpec{
			Enabled:  cfg.DashEnabled,
			Cooldown: cfg.DashCooldownSec,
			Force:    cfg.DashForce,
			Duration: cfg.DashDurationSec,
		},
		Aim: AimSpec{
			DetectionRadius:  cfg.DetectionRadius,
			RotationSpeed:    cfg.AimRotationSpeed,
			TensionThreshold: cfg.AimTensionThreshold,
		},
		Collider:    ColliderSpec{Radius: 0.5, StepHeight: 0.3},
		FixedStep:   cfg.FixedStepSec,
		InvertDelay: cfg.InvertActivationDelaySec,
	}
}

func LoadPlayerSpec(filename string) (*PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := loadInto(filename, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// MarshalPlayerSpec renders p in the same layout LoadPlayerSpec reads.
func MarshalPlayerSpec(p *PlayerSpec) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal %s: %w", p.Name, err)
	}
	return data, nil
}

// AbilityConfig converts the spec and validates the result.
func (p *PlayerSpec) AbilityConfig() (component.AbilityConfig, error) {
	cfg := component.AbilityConfig{
		RunSpeed:                 p.Movement.RunSpeed,
		ShootSpeedFactor:         p.Movement.ShootSpeedFactor,
		SlopeLimitDeg:            p.Movement.SlopeLimit,
		SlideFriction:            p.Movement.SlideFriction,
		GravityAccel:             p.Movement.Gravity,
		MaxFallSpeed:             p.Movement.MaxFallSpeed,
		JumpEnabled:              p.Jump.Enabled,
		JumpHeight:               p.Jump.Height,
		DoubleJumpEnabled:        p.Jump.DoubleJump,
		DashEnabled:              p.Dash.Enabled,
		DashCooldownSec:          p.Dash.Cooldown,
		DashForce:                p.Dash.Force,
		DashDurationSec:          p.Dash.Duration,
		Drag:                     p.Movement.Drag.Vec3(),
		DetectionRadius:          p.Aim.DetectionRadius,
		AimRotationSpeed:         p.Aim.RotationSpeed,
		AimTensionThreshold:      p.Aim.TensionThreshold,
		InvertActivationDelaySec: p.InvertDelay,
		FixedStepSec:             p.FixedStep,
	}
	if err := cfg.Validate(); err != nil {
		return component.AbilityConfig{}, fmt.Errorf("prefabs: %s: %w", p.Name, err)
	}
	return cfg, nil
}

// StatusEffectSpec binds an effect name to the script that applies it.
type StatusEffectSpec struct {
	Name     string         `yaml:"name"`
	Script   string         `yaml:"script"`
	Duration float64        `yaml:"duration"`
	Params   map[string]any `yaml:"params"`
}

type StatusEffectsSpec struct {
	Effects []StatusEffectSpec `yaml:"effects"`
}

func LoadStatusEffects(filename string) (StatusEffectsSpec, error) {
	spec, err := LoadSpec[StatusEffectsSpec](filename)
	if err != nil {
		return StatusEffectsSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return StatusEffectsSpec{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

func (s StatusEffectsSpec) Validate() error {
	seen := make(map[string]bool, len(s.Effects))
	var errs []error
	for i, e := range s.Effects {
		name := strings.TrimSpace(e.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%w: effect %d has no name", ErrInvalidSpec, i))
		case seen[name]:
			errs = append(errs, fmt.Errorf("%w: duplicate effect %q", ErrInvalidSpec, name))
		case strings.TrimSpace(e.Script) == "":
			errs = append(errs, fmt.Errorf("%w: effect %q has no script", ErrInvalidSpec, name))
		case e.Duration < 0:
			errs = append(errs, fmt.Errorf("%w: effect %q duration = %v", ErrInvalidSpec, name, e.Duration))
		}
		seen[name] = true
	}
	return errors.Join(errs...)
}

func (s StatusEffectsSpec) Lookup(name string) (StatusEffectSpec, bool) {
	for _, e := range s.Effects {
		if e.Name == name {
			return e, true
		}
	}
	return StatusEffectSpec{}, false
}

// ArenaSpec lays out the sandbox: a bounded floor, wall boxes, ramps and
// hostile spawn points.
type ArenaSpec struct {
	Name     string       `yaml:"name"`
	Floor    float64      `yaml:"floor"`
	Bounds   BoundsSpec   `yaml:"bounds"`
	Walls    []BoundsSpec `yaml:"walls"`
	Ramps    []RampSpec   `yaml:"ramps"`
	Hostiles []Vec3Spec   `yaml:"hostiles"`
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MinZ float64 `yaml:"min_z"`
	MaxX float64 `yaml:"max_x"`
	MaxZ float64 `yaml:"max_z"`
}

type RampSpec struct {
	Area  BoundsSpec `yaml:"area"`
	Base  float64    `yaml:"base"`
	RiseX float64    `yaml:"rise_x"`
	RiseZ float64    `yaml:"rise_z"`
}

func LoadArenaSpec(filename string) (ArenaSpec, error) {
	return LoadSpec[ArenaSpec](filename)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: color must be a string", ErrInvalidSpec)
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("%w: invalid color format: %s", ErrInvalidSpec, value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("%w: invalid color %s: %v", ErrInvalidSpec, value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
