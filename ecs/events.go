package ecs

import "github.com/milk9111/topdown/common"

// EventKind identifies a notification for the effect sink.
type EventKind string

const (
	EventJumpEffect EventKind = "jump_effect"
	EventDashEffect EventKind = "dash_effect"
	EventRunning    EventKind = "running"
	EventGrounded   EventKind = "grounded"
	EventJump       EventKind = "jump"
	EventDash       EventKind = "dash"
	EventAimBlend   EventKind = "aim_blend"
)

// Event is a queued notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Position common.Vec3
	Facing   common.Quat
	Flag     bool
	X, Y     float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Dispatch drains the queue into sink. A nil sink drops the events.
func (q *EventQueue) Dispatch(sink EffectSink) {
	for _, evt := range q.Drain() {
		if sink == nil {
			continue
		}
		switch evt.Kind {
		case EventJumpEffect:
			sink.SpawnJumpEffect(evt.Position)
		case EventDashEffect:
			sink.SpawnDashEffect(evt.Position, evt.Facing)
		case EventRunning:
			sink.SetRunning(evt.Flag)
		case EventGrounded:
			sink.SetGrounded(evt.Flag)
		case EventJump:
			sink.TriggerJump()
		case EventDash:
			sink.TriggerDash()
		case EventAimBlend:
			sink.SetAimBlend(evt.X, evt.Y)
		}
	}
}
