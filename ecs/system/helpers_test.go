package system

import (
	"io"
	"log/slog"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

type floor struct {
	pos    common.Vec3
	normal common.Vec3
}

func (f *floor) Move(d common.Vec3) ecs.MoveResult {
	f.pos = f.pos.Add(d)
	if f.pos.Y <= 0 {
		f.pos.Y = 0
		return ecs.MoveResult{Grounded: true, SurfaceNormal: f.normal}
	}
	return ecs.MoveResult{}
}

func (f *floor) Position() common.Vec3 { return f.pos }

type axes struct {
	h, v, ah, av float64
	jump, dash   bool
}

func (a axes) Horizontal() float64    { return a.h }
func (a axes) Vertical() float64      { return a.v }
func (a axes) AimHorizontal() float64 { return a.ah }
func (a axes) AimVertical() float64   { return a.av }
func (a axes) JumpTriggered() bool    { return a.jump }
func (a axes) DashTriggered() bool    { return a.dash }

type camera struct{}

func (camera) ForwardRight() (common.Vec3, common.Vec3) {
	return common.V3(0, 0, 1), common.V3(1, 0, 0)
}

func newTestWorld(mutate func(*component.AbilityConfig)) (*ecs.World, *floor) {
	cfg := component.DefaultAbilityConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	f := &floor{normal: common.Up}
	w := ecs.NewWorld(cfg, ecs.Collaborators{Mover: f, Camera: camera{}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return w, f
}

func ground(w *ecs.World) {
	w.ApplyMove(common.Vec3{})
}

func eventKinds(w *ecs.World) []ecs.EventKind {
	var kinds []ecs.EventKind
	for _, e := range w.Events().Drain() {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
