package controller

import (
	"math"

	"github.com/milk9111/topdown/common"
)

type fakeInput struct {
	h, v, ah, av float64
	jump, dash   bool
}

func (f *fakeInput) Horizontal() float64    { return f.h }
func (f *fakeInput) Vertical() float64      { return f.v }
func (f *fakeInput) AimHorizontal() float64 { return f.ah }
func (f *fakeInput) AimVertical() float64   { return f.av }
func (f *fakeInput) JumpTriggered() bool    { return f.jump }
func (f *fakeInput) DashTriggered() bool    { return f.dash }

type fixedCamera struct{}

func (fixedCamera) ForwardRight() (common.Vec3, common.Vec3) {
	return common.V3(0, 0, 1), common.V3(1, 0, 0)
}

// floorMover is an unobstructed world with an infinite floor at height 0
// whose contact normal is configurable.
type floorMover struct {
	pos     common.Vec3
	normal  common.Vec3
	noFloor bool
	moves   []common.Vec3
}

func newFloorMover() *floorMover {
	return &floorMover{normal: common.Up}
}

func (m *floorMover) Move(d common.Vec3) MoveResult {
	m.moves = append(m.moves, d)
	m.pos = m.pos.Add(d)
	if !m.noFloor && m.pos.Y <= 0 {
		m.pos.Y = 0
		return MoveResult{Grounded: true, SurfaceNormal: m.normal}
	}
	return MoveResult{}
}

func (m *floorMover) Position() common.Vec3 {
	return m.pos
}

func (m *floorMover) lastMove() common.Vec3 {
	if len(m.moves) == 0 {
		return common.Vec3{}
	}
	return m.moves[len(m.moves)-1]
}

type listHostiles struct {
	hostiles []Hostile
	queries  int
}

func (l *listHostiles) QueryInRadius(center common.Vec3, radius float64) []Hostile {
	l.queries++
	out := make([]Hostile, 0, len(l.hostiles))
	for _, h := range l.hostiles {
		if center.Distance(h.Position) <= radius {
			out = append(out, h)
		}
	}
	return out
}

type weapon struct {
	ranged  bool
	blocked bool
}

func (w *weapon) IsRangedActive() bool { return w.ranged }
func (w *weapon) CanTurn() bool        { return !w.blocked }

type recordingSink struct {
	jumpEffects, dashEffects int
	jumps, dashes            int
	grounded                 []bool
	running                  []bool
	aimBlends                int
}

func (s *recordingSink) SpawnJumpEffect(common.Vec3)              { s.jumpEffects++ }
func (s *recordingSink) SpawnDashEffect(common.Vec3, common.Quat) { s.dashEffects++ }
func (s *recordingSink) SetRunning(r bool)                        { s.running = append(s.running, r) }
func (s *recordingSink) SetGrounded(g bool)                       { s.grounded = append(s.grounded, g) }
func (s *recordingSink) TriggerJump()                             { s.jumps++ }
func (s *recordingSink) TriggerDash()                             { s.dashes++ }
func (s *recordingSink) SetAimBlend(x, y float64)                 { s.aimBlends++ }

type rig struct {
	ctrl     *Controller
	input    *fakeInput
	mover    *floorMover
	hostiles *listHostiles
	weapon   *weapon
	sink     *recordingSink
}

func yawDeg(q common.Quat) float64 {
	f := q.Forward()
	return math.Atan2(f.X, f.Z) * 180 / math.Pi
}
