package ecs

import (
	"log/slog"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs/component"
)

// World holds everything one controlled character's systems read and write.
type World struct {
	Config    component.AbilityConfig
	State     component.MovementState
	Abilities component.Abilities
	Input     component.InputSample
	Modifiers component.Modifiers

	Collab Collaborators
	Log    *slog.Logger

	events EventQueue
	// groundedHint is the last grounded value sent to the sink.
	groundedHint *bool
}

// NewWorld creates a world for a character standing wherever the mover
// currently places it.
func NewWorld(cfg component.AbilityConfig, collab Collaborators, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	var start common.Vec3
	if collab.Mover != nil {
		start = collab.Mover.Position()
	}
	return &World{
		Config:    cfg,
		State:     component.NewMovementState(cfg, start),
		Abilities: component.AbilitiesFromConfig(cfg),
		Collab:    collab,
		Log:       log,
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues a notification for the effect sink.
func (w *World) Emit(evt Event) {
	if w == nil {
		return
	}
	w.events.Push(evt)
}

// GroundedHintChanged records v and reports whether it differs from the last
// recorded value.
func (w *World) GroundedHintChanged(v bool) bool {
	if w.groundedHint != nil && *w.groundedHint == v {
		return false
	}
	w.groundedHint = &v
	return true
}

// ApplyMove runs a displacement through the mover and records the contact.
func (w *World) ApplyMove(displacement common.Vec3) {
	if w == nil || w.Collab.Mover == nil {
		return
	}
	res := w.Collab.Mover.Move(displacement)
	w.State.Grounded = res.Grounded
	w.State.Contact = res.Grounded
	if !res.SurfaceNormal.IsZero() {
		w.State.SurfaceNormal = res.SurfaceNormal
	}
	w.State.Position = w.Collab.Mover.Position()
	w.RefreshGrounding()
}

// RefreshGrounding recomputes CorrectlyGrounded from the contact normal.
func (w *World) RefreshGrounding() {
	st := &w.State
	st.CorrectlyGrounded = st.Grounded && common.AngleDeg(common.Up, st.SurfaceNormal) <= w.Config.SlopeLimitDeg
}
