package ecs

import "github.com/milk9111/topdown/common"

// InputProvider is read once per frame. All reads are pure.
type InputProvider interface {
	Horizontal() float64
	Vertical() float64
	AimHorizontal() float64
	AimVertical() float64
	JumpTriggered() bool
	DashTriggered() bool
}

// CameraBasis supplies the camera forward/right axes flattened to the ground
// plane.
type CameraBasis interface {
	ForwardRight() (forward, right common.Vec3)
}

// MoveResult is what the mover reports after consuming a displacement.
type MoveResult struct {
	Grounded      bool
	SurfaceNormal common.Vec3
}

// Mover is the swept-collision primitive. Every Move call consumes its
// displacement exactly once.
type Mover interface {
	Move(displacement common.Vec3) MoveResult
	Position() common.Vec3
}

type HostileID uint32

type Hostile struct {
	ID       HostileID
	Position common.Vec3
}

// HostileQuery returns the hostiles within radius of center. Order is only
// required to be deterministic within one call.
type HostileQuery interface {
	QueryInRadius(center common.Vec3, radius float64) []Hostile
}

// Capability exposes the equipped weapon's state.
type Capability interface {
	IsRangedActive() bool
}

// TurnGate is optionally implemented by a Capability that delays
// movement-aligned turning after firing.
type TurnGate interface {
	CanTurn() bool
}

// EffectSink receives fire-and-forget visual effect and animation hints.
type EffectSink interface {
	SpawnJumpEffect(position common.Vec3)
	SpawnDashEffect(position common.Vec3, facing common.Quat)
	SetRunning(running bool)
	SetGrounded(grounded bool)
	TriggerJump()
	TriggerDash()
	SetAimBlend(x, y float64)
}

// Collaborators bundles everything the world talks to. Mover and Camera are
// required; the rest may be nil.
type Collaborators struct {
	Input      InputProvider
	Camera     CameraBasis
	Mover      Mover
	Hostiles   HostileQuery
	Capability Capability
	Sink       EffectSink
}
