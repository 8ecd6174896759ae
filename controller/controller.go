package controller

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/system"
)

// maxFixedStepsPerAdvance bounds catch-up work after a long frame.
const maxFixedStepsPerAdvance = 8

// Controller drives one character. It owns the character's movement state;
// collaborators only see it through the narrow interfaces in Collaborators.
// All methods must be called from the same goroutine. Methods on a nil
// *Controller do nothing.
type Controller struct {
	world *ecs.World
	frame *ecs.Scheduler
	fixed *ecs.Scheduler
	log   *slog.Logger

	accumulator   float64
	speedOverride bool
}

type Option func(*Controller)

// WithLogger sets the logger used by the controller and its systems.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New builds a controller. A missing mover or camera basis is a fatal
// configuration error: it is logged and no controller is returned.
func New(cfg component.AbilityConfig, collab Collaborators, opts ...Option) (*Controller, error) {
	c := &Controller{log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "controller")

	if err := validate(cfg, collab); err != nil {
		c.log.Error("controller disabled", "err", err)
		return nil, err
	}

	c.world = ecs.NewWorld(cfg, collab, c.log)
	c.frame = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewCooldownSystem(),
		system.NewJumpSystem(),
		system.NewDashSystem(),
		system.NewAnimationSystem(),
	)
	c.fixed = ecs.NewScheduler(
		system.NewKinematicSystem(),
		system.NewGravitySystem(),
		system.NewTargetingSystem(),
		system.NewModifierSystem(),
	)
	return c, nil
}

func validate(cfg component.AbilityConfig, collab Collaborators) error {
	if collab.Mover == nil {
		return ErrNoMover
	}
	if collab.Camera == nil {
		return ErrNoCamera
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}

// Frame runs the per-rendered-frame work: input sampling, cooldowns, landing,
// jump/dash triggers and animation hints.
func (c *Controller) Frame(dt float64) {
	if c == nil {
		return
	}
	c.frame.Update(c.world, dt)
	c.flush()
}

// FixedStep runs one physics step: movement, gravity and drag, targeting,
// then timed modifiers.
func (c *Controller) FixedStep(dt float64) {
	if c == nil {
		return
	}
	c.fixed.Update(c.world, dt)
	c.flush()
}

// Tick runs a frame and a physics step with the same dt.
func (c *Controller) Tick(dt float64) {
	c.Frame(dt)
	c.FixedStep(dt)
}

// Advance runs a frame of length dt and as many fixed steps of the
// configured size as have accumulated. It returns the number of steps run.
func (c *Controller) Advance(dt float64) int {
	if c == nil {
		return 0
	}
	c.Frame(dt)

	step := c.world.Config.FixedStepSec
	c.accumulator += dt
	steps := 0
	for c.accumulator >= step {
		if steps == maxFixedStepsPerAdvance {
			c.log.Warn("dropping physics backlog", "backlog", c.accumulator)
			c.accumulator = 0
			break
		}
		c.FixedStep(step)
		c.accumulator -= step
		steps++
	}
	return steps
}

func (c *Controller) flush() {
	c.world.Events().Dispatch(c.world.Collab.Sink)
}

// State returns a copy of the current movement state.
func (c *Controller) State() component.MovementState {
	if c == nil {
		return component.MovementState{}
	}
	return c.world.State
}

// Input returns the last input sample after inversion and control locks.
func (c *Controller) Input() component.InputSample {
	if c == nil {
		return component.InputSample{}
	}
	return c.world.Input
}

// Config returns the active ability config.
func (c *Controller) Config() component.AbilityConfig {
	if c == nil {
		return component.AbilityConfig{}
	}
	return c.world.Config
}

// Abilities returns the runtime ability toggles.
func (c *Controller) Abilities() component.Abilities {
	if c == nil {
		return component.Abilities{}
	}
	return c.world.Abilities
}

// Modifier returns the pending modifier of kind, if any.
func (c *Controller) Modifier(kind component.ModifierKind) (component.TimedModifier, bool) {
	if c == nil {
		return component.TimedModifier{}, false
	}
	return c.world.Modifiers.Get(kind)
}

// Reconfigure swaps the ability config. Runtime ability toggles are reset
// from the new config; a speed override survives.
func (c *Controller) Reconfigure(cfg component.AbilityConfig) error {
	if c == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("controller: reconfigure: %w", err)
	}
	w := c.world
	w.Config = cfg
	w.Abilities = component.AbilitiesFromConfig(cfg)
	if !c.speedOverride {
		w.State.BaseRunSpeed = cfg.RunSpeed
	}
	if w.State.DashCooldown.Remaining > cfg.DashCooldownSec {
		w.State.DashCooldown.Start(cfg.DashCooldownSec)
	}
	system.RefreshModifiers(w)
	w.RefreshGrounding()
	c.log.Info("reconfigured", "run_speed", cfg.RunSpeed, "dash_cooldown", cfg.DashCooldownSec)
	return nil
}
