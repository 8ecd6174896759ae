package system

import (
	"math"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
)

// TargetingSystem turns the character toward the nearest hostile while a
// ranged capability is equipped and the aim stick is slack, or aligns it with
// the movement direction once the player pushes the aim stick.
type TargetingSystem struct{}

func NewTargetingSystem() *TargetingSystem {
	return &TargetingSystem{}
}

func (t *TargetingSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	st := &w.State
	capability := w.Collab.Capability
	if capability == nil || !capability.IsRangedActive() {
		st.Aiming = false
		return
	}

	if AimTension(w.Input.AimHorizontal, w.Input.AimVertical) <= w.Config.AimTensionThreshold {
		st.Aiming = true
		if w.Collab.Hostiles == nil {
			return
		}
		hostiles := w.Collab.Hostiles.QueryInRadius(st.Position, w.Config.DetectionRadius)
		target, ok := NearestHostile(st.Position, hostiles)
		if !ok {
			return
		}
		look, ok := common.LookRotation(target.Position.Sub(st.Position))
		if !ok {
			return
		}
		st.Facing = common.Slerp(st.Facing, look, w.Config.AimRotationSpeed*dt)
		return
	}

	st.Aiming = false
	if st.Move.IsZero() || !canTurn(capability) {
		return
	}
	blended := common.LerpVec3(st.Facing.Forward(), st.Move, 0.5)
	if look, ok := common.LookRotation(blended); ok {
		st.Facing = look
	}
}

// AimTension is the deflection of the aim stick.
func AimTension(h, v float64) float64 {
	return math.Max(math.Abs(h), math.Abs(v))
}

// NearestHostile picks the hostile at strictly minimal distance from origin.
// Equal distances keep the earlier entry, so the result follows query order.
func NearestHostile(origin common.Vec3, hostiles []ecs.Hostile) (ecs.Hostile, bool) {
	var best ecs.Hostile
	bestDist := math.Inf(1)
	found := false
	for _, h := range hostiles {
		d := origin.Distance(h.Position)
		if d < bestDist {
			best = h
			bestDist = d
			found = true
		}
	}
	return best, found
}

func canTurn(capability ecs.Capability) bool {
	if gate, ok := capability.(ecs.TurnGate); ok {
		return gate.CanTurn()
	}
	return true
}
