package controller

import (
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/system"
)

// Jump performs a ground or double jump when one is allowed.
func (c *Controller) Jump() bool {
	if c == nil {
		return false
	}
	ok := system.TryJump(c.world)
	c.flush()
	return ok
}

// Dash performs a dash when enabled and off cooldown.
func (c *Controller) Dash() bool {
	if c == nil {
		return false
	}
	ok := system.TryDash(c.world)
	c.flush()
	return ok
}

// SetSpeedOverride replaces the base run speed. Negative values clamp to 0.
func (c *Controller) SetSpeedOverride(speed float64) {
	if c == nil {
		return
	}
	if speed < 0 {
		speed = 0
	}
	c.speedOverride = true
	c.world.State.BaseRunSpeed = speed
	system.RefreshModifiers(c.world)
}

// ResetSpeed drops any speed override and restores the configured speed.
func (c *Controller) ResetSpeed() {
	if c == nil {
		return
	}
	c.speedOverride = false
	c.world.State.BaseRunSpeed = c.world.Config.RunSpeed
	system.RefreshModifiers(c.world)
}

// ChangeSpeedFor adds delta to the base run speed for duration seconds. A
// newer call replaces an older one and restarts the timer.
func (c *Controller) ChangeSpeedFor(delta, duration float64) {
	if c == nil {
		return
	}
	system.Schedule(c.world, component.ModifierSpeedDelta, delta, duration, 0)
}

// InvertControlsFor mirrors all input axes and swaps jump/dash for duration
// seconds after a short activation delay. Ignored while an inversion is
// already pending.
func (c *Controller) InvertControlsFor(duration float64) bool {
	if c == nil {
		return false
	}
	return system.Schedule(c.world, component.ModifierInvertControl, 1, duration, c.world.Config.InvertActivationDelaySec)
}

// DisableControlFor ignores player input for duration seconds. Gravity keeps
// acting. Ignored while a control lock is already pending.
func (c *Controller) DisableControlFor(duration float64) bool {
	if c == nil {
		return false
	}
	return system.Schedule(c.world, component.ModifierControlLock, 1, duration, 0)
}

func (c *Controller) SetJumpEnabled(enabled bool) {
	if c == nil {
		return
	}
	c.world.Abilities.Jump = enabled
}

// SetDoubleJumpEnabled toggles double jump; enabling it also enables jump.
func (c *Controller) SetDoubleJumpEnabled(enabled bool) {
	if c == nil {
		return
	}
	if enabled {
		c.world.Abilities.Jump = true
	}
	c.world.Abilities.DoubleJump = enabled
}

func (c *Controller) SetDashEnabled(enabled bool) {
	if c == nil {
		return
	}
	c.world.Abilities.Dash = enabled
}
