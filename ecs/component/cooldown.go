package component

const cooldownEpsilon = 1e-6

// Cooldown is a seconds-based countdown. It reaches exactly zero instead of
// drifting below it so readiness checks can compare against zero.
type Cooldown struct {
	Remaining float64
}

func (c *Cooldown) Start(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	c.Remaining = seconds
}

func (c *Cooldown) Tick(dt float64) {
	if c.Remaining <= 0 {
		c.Remaining = 0
		return
	}
	c.Remaining -= dt
	if c.Remaining <= cooldownEpsilon {
		c.Remaining = 0
	}
}

func (c Cooldown) Ready() bool {
	return c.Remaining == 0
}
