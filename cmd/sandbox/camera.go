package main

import (
	"math"

	"github.com/milk9111/topdown/common"
)

const (
	pixelsPerUnit = 32.0
	heightLift    = 0.5
	yawStep       = math.Pi / 4
)

// Camera is a fixed top-down view. Yaw only rotates the movement basis; the
// arena is always drawn north-up with +Z toward the top of the screen.
type Camera struct {
	yaw    float64
	center common.Vec3
}

func (c *Camera) Rotate(steps int) {
	c.yaw = math.Mod(c.yaw+float64(steps)*yawStep, 2*math.Pi)
}

func (c *Camera) Follow(target common.Vec3, dt float64) {
	c.center = common.LerpVec3(c.center, target.Flat(), common.Clamp01(4*dt))
}

func (c *Camera) ForwardRight() (common.Vec3, common.Vec3) {
	q := common.QuatFromYaw(c.yaw)
	return q.Rotate(common.Forward), q.Rotate(common.V3(1, 0, 0))
}

// ToScreen projects a world point, lifting it by its height.
func (c *Camera) ToScreen(p common.Vec3) (float32, float32) {
	x := (p.X-c.center.X)*pixelsPerUnit + baseWidth/2
	y := -(p.Z-c.center.Z)*pixelsPerUnit + baseHeight/2 - p.Y*pixelsPerUnit*heightLift
	return float32(x), float32(y)
}
