package main

// Weapon is the sandbox capability. Firing holds movement-aligned turning for
// a short recovery so shots are not spun off target.
type Weapon struct {
	ranged   bool
	recovery float64
}

const fireRecovery = 0.25

func (w *Weapon) IsRangedActive() bool { return w.ranged }

func (w *Weapon) CanTurn() bool { return w.recovery <= 0 }

func (w *Weapon) Toggle() { w.ranged = !w.ranged }

func (w *Weapon) Fire() {
	if w.ranged {
		w.recovery = fireRecovery
	}
}

func (w *Weapon) Update(dt float64) {
	if w.recovery > 0 {
		w.recovery -= dt
	}
}
