package main

import (
	"image/color"

	"github.com/milk9111/topdown/common"
	"golang.org/x/image/colornames"
)

const burstTTL = 0.35

type burst struct {
	pos    common.Vec3
	facing common.Quat
	ttl    float64
	radius float64
	color  color.Color
}

// Effects implements the controller's effect sink with short-lived bursts and
// the latest animation hints for the HUD.
type Effects struct {
	bursts   []burst
	running  bool
	grounded bool
	aimX     float64
	aimY     float64
	lastAnim string
}

func (e *Effects) SpawnJumpEffect(pos common.Vec3) {
	e.bursts = append(e.bursts, burst{pos: pos, ttl: burstTTL, radius: 0.6, color: colornames.Lightskyblue})
}

func (e *Effects) SpawnDashEffect(pos common.Vec3, facing common.Quat) {
	e.bursts = append(e.bursts, burst{pos: pos, facing: facing, ttl: burstTTL, radius: 1.2, color: colornames.Gold})
}

func (e *Effects) SetRunning(running bool)   { e.running = running }
func (e *Effects) SetGrounded(grounded bool) { e.grounded = grounded }
func (e *Effects) TriggerJump()              { e.lastAnim = "jump" }
func (e *Effects) TriggerDash()              { e.lastAnim = "dash" }

func (e *Effects) SetAimBlend(x, y float64) {
	e.aimX, e.aimY = x, y
}

// Update ages bursts and drops expired ones.
func (e *Effects) Update(dt float64) {
	live := e.bursts[:0]
	for _, b := range e.bursts {
		b.ttl -= dt
		if b.ttl > 0 {
			live = append(live, b)
		}
	}
	e.bursts = live
}
