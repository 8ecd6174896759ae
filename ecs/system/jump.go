package system

import (
	"math"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// JumpSystem resolves landing and input-driven jump triggers.
type JumpSystem struct{}

func NewJumpSystem() *JumpSystem {
	return &JumpSystem{}
}

func (j *JumpSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	Land(w)
	if w.Input.Jump {
		TryJump(w)
	}
}

// LaunchSpeed is the vertical speed that reaches height under constant
// gravity (gravity < 0).
func LaunchSpeed(height, gravity float64) float64 {
	v := height * -2 * gravity
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// Land returns the state machine to grounded when the mover reports contact.
func Land(w *ecs.World) {
	st := &w.State
	if !st.Grounded {
		return
	}
	if st.Jump != component.JumpPhaseGrounded {
		w.Log.Debug("landed", "from", st.Jump.String())
	}
	st.Jump = component.JumpPhaseGrounded
	st.DoubleJumpAvailable = true
}

// TryJump performs a ground jump or a double jump. It reports whether either
// happened; an invalid trigger leaves the state untouched.
func TryJump(w *ecs.World) bool {
	if w == nil || !w.Abilities.Jump {
		return false
	}
	st := &w.State

	switch {
	case st.Grounded:
		launch(w)
		st.SurfaceNormal = common.Vec3{}
		st.Grounded = false
		st.CorrectlyGrounded = false
		st.DoubleJumpAvailable = true
		st.Jump = component.JumpPhaseFirstJumpUsed
		w.Emit(ecs.Event{Kind: ecs.EventJump})
	case w.Abilities.DoubleJump && st.DoubleJumpAvailable:
		launch(w)
		st.DoubleJumpAvailable = false
		st.Jump = component.JumpPhaseDoubleJumpUsed
	default:
		return false
	}

	w.Emit(ecs.Event{Kind: ecs.EventJumpEffect, Position: st.Position})
	w.Log.Debug("jump", "phase", st.Jump.String(), "vy", st.Velocity.Y)
	return true
}

func launch(w *ecs.World) {
	w.State.Velocity.Y = 0
	w.State.Velocity.Y += LaunchSpeed(w.Config.JumpHeight, w.Config.GravityAccel)
}
