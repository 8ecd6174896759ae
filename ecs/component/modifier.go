package component

// ModifierKind identifies a timed, reversible mutation of movement state.
type ModifierKind int

const (
	ModifierSpeedDelta ModifierKind = iota
	ModifierControlLock
	ModifierInvertControl
	// ModifierDashLock holds control (and, for an air dash, the fall) for the
	// duration of a dash. Magnitude > 0 marks an air dash.
	ModifierDashLock

	modifierKindCount
)

func (k ModifierKind) String() string {
	switch k {
	case ModifierSpeedDelta:
		return "speed_delta"
	case ModifierControlLock:
		return "control_lock"
	case ModifierInvertControl:
		return "invert_control"
	case ModifierDashLock:
		return "dash_lock"
	default:
		return "unknown"
	}
}

// Restarts reports whether a new request replaces a pending modifier of the
// same kind instead of being ignored.
func (k ModifierKind) Restarts() bool {
	return k == ModifierSpeedDelta || k == ModifierDashLock
}

// TimedModifier is one scheduled modifier. Delay counts down first; once it
// elapses the modifier becomes Active and Remaining counts down.
type TimedModifier struct {
	Kind      ModifierKind
	Magnitude float64
	Delay     float64
	Remaining float64
	Pending   bool
	Active    bool
}

// Modifiers holds at most one modifier per kind.
type Modifiers struct {
	slots [modifierKindCount]TimedModifier
}

func (m *Modifiers) Get(kind ModifierKind) (TimedModifier, bool) {
	if kind < 0 || kind >= modifierKindCount {
		return TimedModifier{}, false
	}
	s := m.slots[kind]
	return s, s.Pending
}

func (m *Modifiers) Slot(kind ModifierKind) *TimedModifier {
	if kind < 0 || kind >= modifierKindCount {
		return nil
	}
	return &m.slots[kind]
}

// IsActive reports whether kind is pending and past its activation delay.
func (m *Modifiers) IsActive(kind ModifierKind) bool {
	s, ok := m.Get(kind)
	return ok && s.Active
}

// Each visits every pending modifier in kind order.
func (m *Modifiers) Each(fn func(*TimedModifier)) {
	for i := range m.slots {
		if m.slots[i].Pending {
			fn(&m.slots[i])
		}
	}
}
