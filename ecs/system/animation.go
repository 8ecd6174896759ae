package system

import "github.com/milk9111/topdown/ecs"

// AnimationSystem emits the per-frame running hint and a grounded hint
// whenever grounding changes.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	w.Emit(ecs.Event{Kind: ecs.EventRunning, Flag: w.Input.Moving()})
	if w.GroundedHintChanged(w.State.Grounded) {
		w.Emit(ecs.Event{Kind: ecs.EventGrounded, Flag: w.State.Grounded})
	}
}
