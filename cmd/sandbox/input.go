package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

// Input samples keyboard and the first gamepad once per tick and serves the
// controller's InputProvider reads from that snapshot.
type Input struct {
	moveX, moveY float64
	aimX, aimY   float64
	jump, dash   bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.moveX, i.moveY = axis(ebiten.KeyA, ebiten.KeyD), axis(ebiten.KeyS, ebiten.KeyW)
	i.aimX, i.aimY = axis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight), axis(ebiten.KeyArrowDown, ebiten.KeyArrowUp)
	i.jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.dash = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight)

	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return
	}
	id := gamepads[0]

	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Hypot(lx, ly) > stickDeadzone {
		i.moveX, i.moveY = lx, -ly
	}

	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > stickDeadzone {
		i.aimX, i.aimY = rx, -ry
	}

	i.jump = i.jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	i.dash = i.dash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
}

func axis(neg, pos ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(neg) {
		v -= 1
	}
	if ebiten.IsKeyPressed(pos) {
		v += 1
	}
	return v
}

func (i *Input) Horizontal() float64    { return i.moveX }
func (i *Input) Vertical() float64      { return i.moveY }
func (i *Input) AimHorizontal() float64 { return i.aimX }
func (i *Input) AimVertical() float64   { return i.aimY }
func (i *Input) JumpTriggered() bool    { return i.jump }
func (i *Input) DashTriggered() bool    { return i.dash }
