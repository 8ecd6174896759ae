package component

// JumpPhase is the jump/double-jump state machine position.
type JumpPhase int

const (
	JumpPhaseGrounded JumpPhase = iota
	JumpPhaseFirstJumpUsed
	JumpPhaseDoubleJumpUsed
)

func (p JumpPhase) String() string {
	switch p {
	case JumpPhaseGrounded:
		return "grounded"
	case JumpPhaseFirstJumpUsed:
		return "airborne_first_jump"
	case JumpPhaseDoubleJumpUsed:
		return "airborne_double_jump"
	default:
		return "unknown"
	}
}
