package component

// InputSample is the per-frame read of the input provider after inversion and
// control locks have been applied.
type InputSample struct {
	Horizontal    float64
	Vertical      float64
	AimHorizontal float64
	AimVertical   float64
	Jump          bool
	Dash          bool
}

// Moving reports whether either movement axis is deflected.
func (in InputSample) Moving() bool {
	return in.Horizontal != 0 || in.Vertical != 0
}
