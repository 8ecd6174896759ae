package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

const modifierEpsilon = 1e-9

// ModifierSystem advances timed modifiers, applying them once their delay
// elapses and reverting them when their duration runs out.
type ModifierSystem struct{}

func NewModifierSystem() *ModifierSystem {
	return &ModifierSystem{}
}

func (m *ModifierSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	changed := false
	w.Modifiers.Each(func(mod *component.TimedModifier) {
		left := dt
		if !mod.Active {
			if mod.Delay-left > modifierEpsilon {
				mod.Delay -= left
				return
			}
			left -= mod.Delay
			mod.Delay = 0
			mod.Active = true
			changed = true
			w.Log.Debug("modifier applied", "kind", mod.Kind.String(), "magnitude", mod.Magnitude)
		}
		mod.Remaining -= left
		if mod.Remaining <= modifierEpsilon {
			w.Log.Debug("modifier reverted", "kind", mod.Kind.String())
			*mod = component.TimedModifier{}
			changed = true
		}
	})
	if changed {
		RefreshModifiers(w)
	}
}

// Schedule requests a modifier. Toggle kinds ignore a request while one of the
// same kind is pending; speed deltas and dash locks replace the pending one and
// restart its timer. It reports whether the request was accepted.
func Schedule(w *ecs.World, kind component.ModifierKind, magnitude, duration, delay float64) bool {
	if w == nil {
		return false
	}
	slot := w.Modifiers.Slot(kind)
	if slot == nil {
		return false
	}
	if slot.Pending && !kind.Restarts() {
		return false
	}
	if duration < 0 {
		duration = 0
	}
	if delay < 0 {
		delay = 0
	}

	*slot = component.TimedModifier{
		Kind:      kind,
		Magnitude: magnitude,
		Delay:     delay,
		Remaining: duration,
		Pending:   true,
		Active:    delay <= modifierEpsilon,
	}
	if slot.Active {
		slot.Delay = 0
		w.Log.Debug("modifier applied", "kind", kind.String(), "magnitude", magnitude)
		RefreshModifiers(w)
	}
	return true
}

// RefreshModifiers derives the modifier-driven fields of the movement state
// from the whole active set, so overlapping locks release only when the last
// one expires.
func RefreshModifiers(w *ecs.World) {
	st := &w.State
	mods := &w.Modifiers

	dash, dashActive := mods.Get(component.ModifierDashLock)
	dashActive = dashActive && dash.Active
	airDash := dashActive && dash.Magnitude > 0

	st.ControlEnabled = !mods.IsActive(component.ModifierControlLock) && !dashActive
	st.ControlsInverted = mods.IsActive(component.ModifierInvertControl)
	st.FallLocked = airDash
	st.GravitySuppressed = airDash

	speed := st.BaseRunSpeed
	if delta, ok := mods.Get(component.ModifierSpeedDelta); ok && delta.Active {
		speed += delta.Magnitude
	}
	if speed < 0 {
		speed = 0
	}
	st.CurrentRunSpeed = speed
}
