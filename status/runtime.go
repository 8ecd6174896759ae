// Package status applies scripted status effects (slow, confuse, stun, ...)
// to a controlled character.
package status

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

var ErrUnknownEffect = errors.New("status: unknown effect")

// Target is the command surface an effect script can drive.
type Target interface {
	ChangeSpeedFor(delta, duration float64)
	InvertControlsFor(duration float64) bool
	DisableControlFor(duration float64) bool
	State() component.MovementState
}

const dispatchScript = `
apply(__effect, __params)
`

// Runtime compiles effect scripts on first use and caches them per script.
// It is not safe for concurrent use.
type Runtime struct {
	effects  prefabs.StatusEffectsSpec
	compiled map[string]*tengo.Compiled
	log      *slog.Logger
}

func NewRuntime(effects prefabs.StatusEffectsSpec, log *slog.Logger) *Runtime {
	if log == nil {
		log = slog.Default()
	}
	return &Runtime{
		effects:  effects,
		compiled: map[string]*tengo.Compiled{},
		log:      log.With("component", "status"),
	}
}

// SetEffects swaps the effect table and drops every compiled script.
func (r *Runtime) SetEffects(effects prefabs.StatusEffectsSpec) {
	r.effects = effects
	clear(r.compiled)
}

// Invalidate drops the compiled copy of script so the next Apply reloads it.
func (r *Runtime) Invalidate(script string) {
	delete(r.compiled, scriptKey(script))
}

func (r *Runtime) Effects() []string {
	names := make([]string, 0, len(r.effects.Effects))
	for _, e := range r.effects.Effects {
		names = append(names, e.Name)
	}
	return names
}

// Apply runs the named effect's script against target.
func (r *Runtime) Apply(name string, target Target) error {
	spec, ok := r.effects.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	if target == nil {
		return nil
	}

	compiled, err := r.script(spec.Script)
	if err != nil {
		return fmt.Errorf("status: %s: %w", name, err)
	}

	params := map[string]any{"duration": spec.Duration}
	maps.Copy(params, spec.Params)

	log := r.log.With("effect", name)
	if err := compiled.Set("__effect", buildEffect(target, log)); err != nil {
		return fmt.Errorf("status: %s: %w", name, err)
	}
	if err := compiled.Set("__params", params); err != nil {
		return fmt.Errorf("status: %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("status: %s: run %s: %w", name, spec.Script, err)
	}
	log.Debug("applied", "duration", spec.Duration)
	return nil
}

func (r *Runtime) script(path string) (*tengo.Compiled, error) {
	key := scriptKey(path)
	if c, ok := r.compiled[key]; ok {
		return c, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	// Placeholders; Apply replaces both with Set before every run.
	_ = script.Add("__effect", map[string]any{})
	_ = script.Add("__params", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	r.compiled[key] = compiled
	return compiled, nil
}

func scriptKey(path string) string {
	s := strings.TrimSuffix(strings.TrimSpace(path), ".tengo")
	s = strings.TrimPrefix(s, "prefabs/")
	return strings.TrimPrefix(s, "scripts/")
}
