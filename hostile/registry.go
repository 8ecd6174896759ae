// Package hostile tracks hostile positions for the targeting query.
package hostile

import (
	"github.com/kamstrup/intmap"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
)

// Registry stores hostiles densely with an id -> slot index. Removal swaps the
// last hostile into the freed slot, so query order is deterministic but not
// insertion order once anything has been removed.
type Registry struct {
	slots   *intmap.Map[ecs.HostileID, int]
	entries []ecs.Hostile
	nextID  ecs.HostileID
}

func NewRegistry() *Registry {
	return &Registry{
		slots:  intmap.New[ecs.HostileID, int](64),
		nextID: 1,
	}
}

// Spawn adds a hostile at pos and returns its id.
func (r *Registry) Spawn(pos common.Vec3) ecs.HostileID {
	id := r.nextID
	r.nextID++
	r.slots.Put(id, len(r.entries))
	r.entries = append(r.entries, ecs.Hostile{ID: id, Position: pos})
	return id
}

// Move updates a hostile's position. It reports whether the id is known.
func (r *Registry) Move(id ecs.HostileID, pos common.Vec3) bool {
	idx, ok := r.slots.Get(id)
	if !ok {
		return false
	}
	r.entries[idx].Position = pos
	return true
}

func (r *Registry) Get(id ecs.HostileID) (ecs.Hostile, bool) {
	idx, ok := r.slots.Get(id)
	if !ok {
		return ecs.Hostile{}, false
	}
	return r.entries[idx], true
}

// Remove deletes a hostile. It reports whether the id was known.
func (r *Registry) Remove(id ecs.HostileID) bool {
	idx, ok := r.slots.Get(id)
	if !ok {
		return false
	}
	last := len(r.entries) - 1
	if idx != last {
		moved := r.entries[last]
		r.entries[idx] = moved
		r.slots.Put(moved.ID, idx)
	}
	r.entries = r.entries[:last]
	r.slots.Del(id)
	return true
}

func (r *Registry) Len() int {
	return r.slots.Len()
}

// All returns a copy of every hostile in slot order.
func (r *Registry) All() []ecs.Hostile {
	out := make([]ecs.Hostile, len(r.entries))
	copy(out, r.entries)
	return out
}

// QueryInRadius returns the hostiles within radius of center, in slot order.
func (r *Registry) QueryInRadius(center common.Vec3, radius float64) []ecs.Hostile {
	if radius < 0 {
		return nil
	}
	var out []ecs.Hostile
	rr := radius * radius
	for _, h := range r.entries {
		if h.Position.Sub(center).LenSq() <= rr {
			out = append(out, h)
		}
	}
	return out
}
