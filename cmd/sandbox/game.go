package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/controller"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/hostile"
	"github.com/milk9111/topdown/physics"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/status"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	playerFile = "player.yaml"
	arenaFile  = "arena.yaml"
	statusFile = "status_effects.yaml"
)

var modifierKinds = []component.ModifierKind{
	component.ModifierSpeedDelta,
	component.ModifierControlLock,
	component.ModifierInvertControl,
	component.ModifierDashLock,
}

var effectKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

type Game struct {
	log *slog.Logger

	ctrl     *controller.Controller
	player   *prefabs.PlayerSpec
	mover    *physics.Mover
	hostiles *hostile.Registry
	wander   *wander
	status   *status.Runtime

	input   *Input
	camera  *Camera
	weapon  *Weapon
	effects *Effects

	watcher *prefabs.Watcher
	applied map[string]time.Time
	message string

	paused    bool
	pauseUI   *ebitenui.UI
	clipboard bool
}

func NewGame(log *slog.Logger) (*Game, error) {
	player, err := prefabs.LoadPlayerSpec(playerFile)
	if err != nil {
		return nil, err
	}
	cfg, err := player.AbilityConfig()
	if err != nil {
		return nil, err
	}
	arena, err := prefabs.LoadArenaSpec(arenaFile)
	if err != nil {
		return nil, err
	}
	effects, err := prefabs.LoadStatusEffects(statusFile)
	if err != nil {
		return nil, err
	}

	mover, registry := buildArena(arena, player)
	g := &Game{
		log:      log,
		player:   player,
		mover:    mover,
		hostiles: registry,
		wander:   newWander(registry),
		status:   status.NewRuntime(effects, log),
		input:    NewInput(),
		camera:   &Camera{},
		weapon:   &Weapon{},
		effects:  &Effects{},
		applied:  map[string]time.Time{},
	}

	g.ctrl, err = controller.New(cfg, controller.Collaborators{
		Input:      g.input,
		Camera:     g.camera,
		Mover:      mover,
		Hostiles:   registry,
		Capability: g.weapon,
		Sink:       g.effects,
	}, controller.WithLogger(log))
	if err != nil {
		return nil, err
	}

	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", "err", err)
	} else {
		g.clipboard = true
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// Watch reloads player, status effect and script overrides from dir while the
// game runs. A watcher that cannot start is logged and ignored.
func (g *Game) Watch(dir string) {
	w, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
	if err != nil {
		w, err = prefabs.NewWatcher(dir)
	}
	if err != nil {
		g.log.Warn("prefab watcher disabled", "dir", dir, "err", err)
		return
	}
	g.watcher = w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	log := g.log.With("file", change.Name)
	if change.Kind == prefabs.ChangeScript {
		g.status.Invalidate(change.Name)
		log.Info("script reloaded")
		return
	}

	// A single save can arrive as several events; reload once per mtime.
	if mt, ok := prefabs.ModTime(change.Name); ok {
		if mt.Equal(g.applied[change.Name]) {
			return
		}
		g.applied[change.Name] = mt
	}

	switch change.Name {
	case playerFile:
		player, err := prefabs.LoadPlayerSpec(playerFile)
		if err != nil {
			log.Warn("player reload failed", "err", err)
			return
		}
		cfg, err := player.AbilityConfig()
		if err == nil {
			err = g.ctrl.Reconfigure(cfg)
		}
		if err != nil {
			log.Warn("player reload failed", "err", err)
			return
		}
		g.player = player
		g.message = "reloaded " + playerFile
	case statusFile:
		effects, err := prefabs.LoadStatusEffects(statusFile)
		if err != nil {
			log.Warn("status effects reload failed", "err", err)
			return
		}
		g.status.SetEffects(effects)
		g.pauseUI = NewPauseUI(g)
		g.message = "reloaded " + statusFile
	default:
		log.Debug("ignoring change")
	}
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	g.applyReloads()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.input.Update()
	g.handleKeys()

	g.weapon.Update(dt)
	g.wander.Update(g.hostiles, g.mover.Terrain(), dt)
	g.ctrl.Advance(dt)
	g.effects.Update(dt)
	g.camera.Follow(g.ctrl.State().Position, dt)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.camera.Rotate(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.camera.Rotate(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.weapon.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.weapon.Fire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.mover.Teleport(g.player.Start.Vec3())
	}

	names := g.status.Effects()
	for i, key := range effectKeys {
		if i >= len(names) || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		g.applyEffect(names[i])
	}
}

func (g *Game) applyEffect(name string) {
	if err := g.status.Apply(name, g.ctrl); err != nil {
		g.log.Warn("status effect failed", "effect", name, "err", err)
		g.message = err.Error()
		return
	}
	g.message = "applied " + name
}

// copyTuning puts the player spec, with the live run speed, on the clipboard
// as YAML ready to paste into an override file.
func (g *Game) copyTuning() {
	if !g.clipboard {
		g.message = "clipboard unavailable"
		return
	}
	spec := *g.player
	spec.Movement.RunSpeed = g.ctrl.State().BaseRunSpeed
	data, err := prefabs.MarshalPlayerSpec(&spec)
	if err != nil {
		g.log.Warn("copy tuning failed", "err", err)
		g.message = err.Error()
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.message = "copied player tuning"
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	g.drawArena(screen)
	g.drawHostiles(screen)
	g.drawPlayer(screen)
	g.drawEffects(screen)
	g.drawHUD(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawArena(screen *ebiten.Image) {
	terrain := g.mover.Terrain()
	for _, r := range terrain.Ramps {
		x1, y1 := g.camera.ToScreen(common.V3(r.MinX, terrain.Floor, r.MaxZ))
		x2, y2 := g.camera.ToScreen(common.V3(r.MaxX, terrain.Floor, r.MinZ))
		vector.FillRect(screen, x1, y1, x2-x1, y2-y1, colornames.Darkolivegreen, false)
	}
	for _, w := range g.mover.Walls() {
		x1, y1 := g.camera.ToScreen(common.V3(w.MinX, terrain.Floor, w.MaxZ))
		x2, y2 := g.camera.ToScreen(common.V3(w.MaxX, terrain.Floor, w.MinZ))
		vector.FillRect(screen, x1, y1, x2-x1, y2-y1, colornames.Dimgray, false)
	}
	drawSpace(screen, g.mover.Space(), g.camera, terrain.Floor)
}

func (g *Game) drawHostiles(screen *ebiten.Image) {
	st := g.ctrl.State()
	radius := g.ctrl.Config().DetectionRadius
	for _, h := range g.hostiles.All() {
		clr := colornames.Indianred
		if st.Position.Distance(h.Position) <= radius {
			clr = colornames.Orangered
		}
		strokeCircle(screen, g.camera, h.Position, 0.4, 3, clr)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	st := g.ctrl.State()
	r := g.mover.Radius()

	ground, _ := g.mover.Terrain().Sample(st.Position.X, st.Position.Z)
	shadow := st.Position
	shadow.Y = ground
	strokeCircle(screen, g.camera, shadow, r, 1, colornames.Black)

	var body color.Color = colornames.Lightskyblue
	if g.player.Color != nil && g.player.Color.Color != nil {
		body = g.player.Color.Color
	}
	strokeCircle(screen, g.camera, st.Position, r, 3, body)

	x1, y1 := g.camera.ToScreen(st.Position)
	x2, y2 := g.camera.ToScreen(st.Position.Add(st.Facing.Forward().Scale(r * 2)))
	facing := colornames.White
	if st.Aiming {
		facing = colornames.Red
	}
	vector.StrokeLine(screen, x1, y1, x2, y2, 2, facing, true)

	if g.weapon.IsRangedActive() {
		strokeCircle(screen, g.camera, shadow, g.ctrl.Config().DetectionRadius, 1, colornames.Gray)
	}
}

func (g *Game) drawEffects(screen *ebiten.Image) {
	for _, b := range g.effects.bursts {
		grow := 1 + (burstTTL-b.ttl)/burstTTL
		strokeCircle(screen, g.camera, b.pos, b.radius*grow, 2, b.color)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.ctrl.State()
	var sb strings.Builder
	fmt.Fprintf(&sb, "TPS: %.1f  FPS: %.1f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&sb, "pos: %.2f %.2f %.2f  vel: %.2f %.2f %.2f\n", st.Position.X, st.Position.Y, st.Position.Z, st.Velocity.X, st.Velocity.Y, st.Velocity.Z)
	fmt.Fprintf(&sb, "grounded: %v (correct: %v)  jump: %s\n", st.Grounded, st.CorrectlyGrounded, st.Jump)
	fmt.Fprintf(&sb, "dash cooldown: %.2f  speed: %.2f\n", st.DashCooldown.Remaining, st.CurrentRunSpeed)
	fmt.Fprintf(&sb, "control: %v  inverted: %v  fall locked: %v\n", st.ControlEnabled, st.ControlsInverted, st.FallLocked)
	fmt.Fprintf(&sb, "ranged: %v  aiming: %v  running: %v  anim: %s\n", g.weapon.IsRangedActive(), st.Aiming, g.effects.running, g.effects.lastAnim)
	in := g.ctrl.Input()
	fmt.Fprintf(&sb, "input: move %.2f %.2f  aim %.2f %.2f", in.Horizontal, in.Vertical, in.AimHorizontal, in.AimVertical)
	if off, ok := g.aimError(st); ok {
		fmt.Fprintf(&sb, "  aim error: %.1f deg", off)
	}
	sb.WriteString("\nmodifiers:")
	for _, kind := range modifierKinds {
		if m, ok := g.ctrl.Modifier(kind); ok {
			fmt.Fprintf(&sb, "  %s %.2fs", kind, m.Delay+m.Remaining)
		}
	}
	sb.WriteString("\n")
	sb.WriteString("\nWASD move  arrows aim  space jump  shift dash  Q/E camera\n")
	sb.WriteString("tab ranged  F fire  R reset  esc pause")
	for i, name := range g.status.Effects() {
		if i < len(effectKeys) {
			fmt.Fprintf(&sb, "  %d %s", i+1, name)
		}
	}
	if g.message != "" {
		sb.WriteString("\n" + g.message)
	}
	ebitenutil.DebugPrint(screen, sb.String())
}

// aimError is the angle between the facing and the nearest hostile in range.
func (g *Game) aimError(st component.MovementState) (float64, bool) {
	hostiles := g.hostiles.QueryInRadius(st.Position, g.ctrl.Config().DetectionRadius)
	target, ok := system.NearestHostile(st.Position, hostiles)
	if !ok {
		return 0, false
	}
	look, ok := common.LookRotation(target.Position.Sub(st.Position))
	if !ok {
		return 0, false
	}
	return st.Facing.AngleDeg(look), true
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
