package component

import "github.com/milk9111/topdown/common"

// MovementState is the single mutable record shared by every movement system.
// It is owned by exactly one controller.
type MovementState struct {
	Position common.Vec3
	Velocity common.Vec3

	Grounded          bool
	CorrectlyGrounded bool
	SurfaceNormal     common.Vec3
	// Contact is the grounded flag the mover last reported. Unlike Grounded
	// it is not cleared by a jump until the next move.
	Contact bool

	Jump                JumpPhase
	DoubleJumpAvailable bool
	DashCooldown        Cooldown

	ControlEnabled    bool
	ControlsInverted  bool
	FallLocked        bool
	GravitySuppressed bool

	BaseRunSpeed    float64
	CurrentRunSpeed float64

	Facing common.Quat
	Aiming bool
	// Move is the last normalized movement vector, including slope slide.
	Move common.Vec3
}

func NewMovementState(cfg AbilityConfig, position common.Vec3) MovementState {
	return MovementState{
		Position:        position,
		ControlEnabled:  true,
		BaseRunSpeed:    cfg.RunSpeed,
		CurrentRunSpeed: cfg.RunSpeed,
		Facing:          common.Identity,
	}
}
