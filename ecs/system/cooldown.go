package system

import "github.com/milk9111/topdown/ecs"

// CooldownSystem counts the dash cooldown down to zero.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	w.State.DashCooldown.Tick(dt)
}
