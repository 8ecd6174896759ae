package main

import (
	"math"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/hostile"
	"github.com/milk9111/topdown/physics"
	"github.com/milk9111/topdown/prefabs"
)

// buildArena turns an arena spec into a mover for the player and a populated
// hostile registry.
func buildArena(arena prefabs.ArenaSpec, player *prefabs.PlayerSpec) (*physics.Mover, *hostile.Registry) {
	terrain := physics.Terrain{Floor: arena.Floor}
	for _, r := range arena.Ramps {
		terrain.Ramps = append(terrain.Ramps, physics.Ramp{
			MinX:  r.Area.MinX,
			MinZ:  r.Area.MinZ,
			MaxX:  r.Area.MaxX,
			MaxZ:  r.Area.MaxZ,
			Base:  r.Base,
			RiseX: r.RiseX,
			RiseZ: r.RiseZ,
		})
	}

	mover := physics.NewMover(terrain, player.Collider.Radius, player.Start.Vec3())
	mover.SetStepHeight(player.Collider.StepHeight)
	b := arena.Bounds
	mover.AddBounds(b.MinX, b.MinZ, b.MaxX, b.MaxZ)
	for _, w := range arena.Walls {
		mover.AddWall(physics.Wall{MinX: w.MinX, MinZ: w.MinZ, MaxX: w.MaxX, MaxZ: w.MaxZ})
	}

	registry := hostile.NewRegistry()
	for _, h := range arena.Hostiles {
		registry.Spawn(h.Vec3())
	}
	return mover, registry
}

// wander moves each hostile on a slow circle around where it spawned.
type wander struct {
	origins map[ecs.HostileID]common.Vec3
	t       float64
}

func newWander(reg *hostile.Registry) *wander {
	w := &wander{origins: map[ecs.HostileID]common.Vec3{}}
	for _, h := range reg.All() {
		w.origins[h.ID] = h.Position
	}
	return w
}

func (w *wander) Update(reg *hostile.Registry, terrain physics.Terrain, dt float64) {
	w.t += dt
	for _, h := range reg.All() {
		origin, ok := w.origins[h.ID]
		if !ok {
			continue
		}
		phase := w.t*0.6 + float64(h.ID)
		p := origin.Add(common.V3(math.Cos(phase)*1.5, 0, math.Sin(phase)*1.5))
		p.Y, _ = terrain.Sample(p.X, p.Z)
		reg.Move(h.ID, p)
	}
}
