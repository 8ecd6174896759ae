package component

// Abilities defines which optional movement abilities are currently enabled.
// It starts as a copy of the config flags and is toggled at runtime.
type Abilities struct {
	Jump       bool
	DoubleJump bool
	Dash       bool
}

func AbilitiesFromConfig(cfg AbilityConfig) Abilities {
	return Abilities{
		Jump:       cfg.JumpEnabled,
		DoubleJump: cfg.DoubleJumpEnabled,
		Dash:       cfg.DashEnabled,
	}
}
