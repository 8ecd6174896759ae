package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// InputSystem samples the input provider once per frame. Inverted controls
// flip every axis and swap the jump and dash buttons; a control lock reads as
// no input at all.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	var in component.InputSample
	if p := w.Collab.Input; p != nil {
		in = component.InputSample{
			Horizontal:    common.Clamp(p.Horizontal(), -1, 1),
			Vertical:      common.Clamp(p.Vertical(), -1, 1),
			AimHorizontal: common.Clamp(p.AimHorizontal(), -1, 1),
			AimVertical:   common.Clamp(p.AimVertical(), -1, 1),
			Jump:          p.JumpTriggered(),
			Dash:          p.DashTriggered(),
		}
	}

	if w.State.ControlsInverted {
		in.Horizontal = -in.Horizontal
		in.Vertical = -in.Vertical
		in.AimHorizontal = -in.AimHorizontal
		in.AimVertical = -in.AimVertical
		in.Jump, in.Dash = in.Dash, in.Jump
	}

	if !w.State.ControlEnabled {
		in = component.InputSample{}
	}

	w.Input = in
}
