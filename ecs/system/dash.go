package system

import (
	"math"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// DashSystem fires input-driven dashes.
type DashSystem struct{}

func NewDashSystem() *DashSystem {
	return &DashSystem{}
}

func (d *DashSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	if w.Input.Dash {
		TryDash(w)
	}
}

// DashFactor sizes an impulse so that, under per-step damping of
// v /= 1 + drag*dt, the integrated travel approximates force units.
func DashFactor(drag, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return -math.Log(1/(1+drag*dt)) / dt
}

// DashImpulse is the horizontal velocity added by a dash along dir.
func DashImpulse(dir common.Vec3, force float64, drag common.Vec3, dt float64) common.Vec3 {
	return common.Vec3{
		X: dir.X * force * DashFactor(drag.X, dt),
		Z: dir.Z * force * DashFactor(drag.Z, dt),
	}
}

// TryDash applies a dash if the ability is enabled and off cooldown.
func TryDash(w *ecs.World) bool {
	if w == nil || !w.Abilities.Dash {
		return false
	}
	st := &w.State
	if !st.DashCooldown.Ready() {
		return false
	}
	cfg := w.Config

	st.DashCooldown.Start(cfg.DashCooldownSec)

	airborne := 0.0
	if !st.Contact {
		airborne = 1
		st.Velocity.Y = 0
	}
	Schedule(w, component.ModifierDashLock, airborne, cfg.DashDurationSec, 0)

	dir := st.Move.Flat().Normalize()
	if dir.IsZero() {
		dir = st.Facing.Forward().Flat().Normalize()
	}
	st.Velocity = st.Velocity.Add(DashImpulse(dir, cfg.DashForce, cfg.Drag, cfg.FixedStepSec))

	w.Emit(ecs.Event{Kind: ecs.EventDashEffect, Position: st.Position, Facing: st.Facing})
	w.Emit(ecs.Event{Kind: ecs.EventDash})
	w.Log.Debug("dash", "airborne", airborne > 0, "velocity", st.Velocity)
	return true
}
