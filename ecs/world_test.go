package ecs

import (
	"math"
	"testing"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs/component"
)

type stubMover struct {
	pos    common.Vec3
	result MoveResult
	calls  int
}

func (m *stubMover) Move(d common.Vec3) MoveResult {
	m.calls++
	m.pos = m.pos.Add(d)
	return m.result
}

func (m *stubMover) Position() common.Vec3 { return m.pos }

type countingSink struct {
	jumpEffects, dashEffects, jumps, dashes int
	running, grounded                       []bool
	blends                                  [][2]float64
}

func (s *countingSink) SpawnJumpEffect(common.Vec3)              { s.jumpEffects++ }
func (s *countingSink) SpawnDashEffect(common.Vec3, common.Quat) { s.dashEffects++ }
func (s *countingSink) SetRunning(r bool)                        { s.running = append(s.running, r) }
func (s *countingSink) SetGrounded(g bool)                       { s.grounded = append(s.grounded, g) }
func (s *countingSink) TriggerJump()                             { s.jumps++ }
func (s *countingSink) TriggerDash()                             { s.dashes++ }
func (s *countingSink) SetAimBlend(x, y float64)                 { s.blends = append(s.blends, [2]float64{x, y}) }

func TestNewWorldStartsAtMoverPosition(t *testing.T) {
	mover := &stubMover{pos: common.V3(1, 2, 3)}
	w := NewWorld(component.DefaultAbilityConfig(), Collaborators{Mover: mover}, nil)

	if w.State.Position != mover.pos {
		t.Fatalf("expected start %v, got %v", mover.pos, w.State.Position)
	}
	if !w.State.ControlEnabled {
		t.Fatalf("control should start enabled")
	}
	if w.State.CurrentRunSpeed != w.Config.RunSpeed {
		t.Fatalf("expected run speed %v, got %v", w.Config.RunSpeed, w.State.CurrentRunSpeed)
	}
	if w.Log == nil {
		t.Fatalf("expected default logger")
	}
}

func TestApplyMoveGrounding(t *testing.T) {
	tilt := func(deg float64) common.Vec3 {
		r := deg * math.Pi / 180
		return common.V3(math.Sin(r), math.Cos(r), 0)
	}

	cases := []struct {
		name        string
		result      MoveResult
		wantCorrect bool
	}{
		{"airborne", MoveResult{}, false},
		{"flat", MoveResult{Grounded: true, SurfaceNormal: common.Up}, true},
		{"zero_normal_counts_flat", MoveResult{Grounded: true}, true},
		{"under_limit", MoveResult{Grounded: true, SurfaceNormal: tilt(44)}, true},
		{"too_steep", MoveResult{Grounded: true, SurfaceNormal: tilt(50)}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mover := &stubMover{result: c.result}
			w := NewWorld(component.DefaultAbilityConfig(), Collaborators{Mover: mover}, nil)
			w.ApplyMove(common.V3(1, 0, 0))

			if w.State.Grounded != c.result.Grounded {
				t.Fatalf("grounded = %v, want %v", w.State.Grounded, c.result.Grounded)
			}
			if w.State.Contact != c.result.Grounded {
				t.Fatalf("contact = %v, want %v", w.State.Contact, c.result.Grounded)
			}
			if w.State.CorrectlyGrounded != c.wantCorrect {
				t.Fatalf("correctly grounded = %v, want %v", w.State.CorrectlyGrounded, c.wantCorrect)
			}
			if w.State.Position != common.V3(1, 0, 0) {
				t.Fatalf("position not synced from mover: %v", w.State.Position)
			}
		})
	}
}

func TestEventQueueDispatch(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventJump})
	q.Push(Event{Kind: EventJumpEffect})
	q.Push(Event{Kind: EventRunning, Flag: true})
	q.Push(Event{Kind: EventGrounded, Flag: false})
	q.Push(Event{Kind: EventAimBlend, X: 0.5, Y: -1})
	q.Push(Event{Kind: EventDash})
	q.Push(Event{Kind: EventDashEffect})

	if q.Len() != 7 {
		t.Fatalf("expected 7 queued, got %d", q.Len())
	}

	sink := &countingSink{}
	q.Dispatch(sink)

	if q.Len() != 0 {
		t.Fatalf("dispatch should drain the queue")
	}
	if sink.jumps != 1 || sink.jumpEffects != 1 || sink.dashes != 1 || sink.dashEffects != 1 {
		t.Fatalf("unexpected trigger counts: %+v", sink)
	}
	if len(sink.running) != 1 || !sink.running[0] {
		t.Fatalf("running hint = %v", sink.running)
	}
	if len(sink.grounded) != 1 || sink.grounded[0] {
		t.Fatalf("grounded hint = %v", sink.grounded)
	}
	if len(sink.blends) != 1 || sink.blends[0] != [2]float64{0.5, -1} {
		t.Fatalf("aim blend = %v", sink.blends)
	}
}

func TestEventQueueNilSinkDrops(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventJump})
	q.Dispatch(nil)
	if q.Len() != 0 {
		t.Fatalf("expected queue drained")
	}
	if q.Drain() != nil {
		t.Fatalf("drain of empty queue should be nil")
	}
}

func TestGroundedHintChanged(t *testing.T) {
	w := NewWorld(component.DefaultAbilityConfig(), Collaborators{}, nil)
	seq := []struct {
		v    bool
		want bool
	}{
		{false, true},
		{false, false},
		{true, true},
		{true, false},
		{false, true},
	}
	for i, s := range seq {
		if got := w.GroundedHintChanged(s.v); got != s.want {
			t.Fatalf("step %d: GroundedHintChanged(%v) = %v, want %v", i, s.v, got, s.want)
		}
	}
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s orderSystem) Update(w *World, dt float64) {
	*s.log = append(*s.log, s.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var got []string
	s := NewScheduler(orderSystem{"a", &got}, nil, orderSystem{"b", &got}, orderSystem{"c", &got})
	s.Update(&World{}, 0.02)

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order %v", got)
	}

	var nilScheduler *Scheduler
	nilScheduler.Update(&World{}, 0.02)
}
