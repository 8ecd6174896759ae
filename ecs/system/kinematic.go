package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
)

// KinematicSystem turns the sampled movement axes into a camera-relative
// displacement and hands it to the mover.
type KinematicSystem struct{}

func NewKinematicSystem() *KinematicSystem {
	return &KinematicSystem{}
}

func (k *KinematicSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Collab.Camera == nil {
		return
	}
	st := &w.State

	forward, right := w.Collab.Camera.ForwardRight()
	forward = forward.Flat().Normalize()
	right = right.Flat().Normalize()

	move := right.Scale(w.Input.Horizontal).Add(forward.Scale(w.Input.Vertical))
	if st.Grounded && !st.CorrectlyGrounded {
		move = move.Add(SlideContribution(st.SurfaceNormal, w.Config.SlideFriction))
	}
	move = move.Normalize()
	st.Move = move

	local := st.Facing.Conjugate().Rotate(move)
	w.Emit(ecs.Event{Kind: ecs.EventAimBlend, X: local.X, Y: local.Z})

	if st.FallLocked || !st.ControlEnabled {
		w.RefreshGrounding()
		return
	}

	speed := st.CurrentRunSpeed
	if st.Aiming {
		speed *= w.Config.ShootSpeedFactor
	}
	w.ApplyMove(move.Scale(speed * dt))
}

// SlideContribution pushes the character down a slope that is too steep to
// stand on. Flatter normals contribute less.
func SlideContribution(normal common.Vec3, friction float64) common.Vec3 {
	k := (1 - normal.Y) * (1 - friction)
	return common.Vec3{X: normal.X * k, Z: normal.Z * k}
}
