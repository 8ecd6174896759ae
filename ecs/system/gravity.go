package system

import (
	"math"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
)

// GravitySystem integrates gravity, damps velocity and applies it as a second
// displacement pass. It keeps running while control is locked.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (g *GravitySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	st := &w.State
	cfg := w.Config

	if !st.GravitySuppressed && st.Velocity.Y >= -cfg.MaxFallSpeed {
		st.Velocity.Y = math.Max(st.Velocity.Y+cfg.GravityAccel*dt, -cfg.MaxFallSpeed)
	}
	st.Velocity = Damp(st.Velocity, cfg.Drag, dt)

	w.ApplyMove(st.Velocity.Scale(dt))
}

// Damp divides each axis by 1 + drag*dt.
func Damp(v, drag common.Vec3, dt float64) common.Vec3 {
	return common.Vec3{
		X: v.X / (1 + drag.X*dt),
		Y: v.Y / (1 + drag.Y*dt),
		Z: v.Z / (1 + drag.Z*dt),
	}
}
