package status_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/topdown/controller"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ status.Target = (*controller.Controller)(nil)

type speedCall struct {
	delta, duration float64
}

type fakeTarget struct {
	base      float64
	speed     []speedCall
	inverts   []float64
	disables  []float64
	lockedOut bool
}

func (f *fakeTarget) ChangeSpeedFor(delta, duration float64) {
	f.speed = append(f.speed, speedCall{delta, duration})
}

func (f *fakeTarget) InvertControlsFor(duration float64) bool {
	f.inverts = append(f.inverts, duration)
	return !f.lockedOut
}

func (f *fakeTarget) DisableControlFor(duration float64) bool {
	f.disables = append(f.disables, duration)
	return !f.lockedOut
}

func (f *fakeTarget) State() component.MovementState {
	return component.MovementState{BaseRunSpeed: f.base}
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRuntime(t *testing.T) *status.Runtime {
	t.Helper()
	effects, err := prefabs.LoadStatusEffects("status_effects.yaml")
	require.NoError(t, err)
	return status.NewRuntime(effects, quiet())
}

func TestApplyBundledEffects(t *testing.T) {
	tests := []struct {
		name      string
		lockedOut bool
		speed     []speedCall
		inverts   []float64
		disables  []float64
	}{
		{name: "slow", speed: []speedCall{{-2.5, 2}}},
		{name: "haste", speed: []speedCall{{3, 1.5}}},
		{name: "confuse", inverts: []float64{1.2}},
		{name: "confuse", lockedOut: true, inverts: []float64{1.2}},
		{name: "stun", speed: []speedCall{{-5, 0.6}}, disables: []float64{0.6}},
		{name: "stun", lockedOut: true, disables: []float64{0.6}},
	}

	rt := newRuntime(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &fakeTarget{base: 5, lockedOut: tt.lockedOut}
			require.NoError(t, rt.Apply(tt.name, target))
			assert.Equal(t, tt.speed, target.speed)
			assert.Equal(t, tt.inverts, target.inverts)
			assert.Equal(t, tt.disables, target.disables)
		})
	}
}

func TestApplyUnknownEffect(t *testing.T) {
	rt := newRuntime(t)
	err := rt.Apply("petrify", &fakeTarget{})
	assert.ErrorIs(t, err, status.ErrUnknownEffect)
}

func TestApplyDrivesController(t *testing.T) {
	rt := newRuntime(t)
	ctrl := newController(t)

	require.NoError(t, rt.Apply("slow", ctrl))
	assert.Equal(t, 2.5, ctrl.State().CurrentRunSpeed)

	require.NoError(t, rt.Apply("stun", ctrl))
	st := ctrl.State()
	assert.False(t, st.ControlEnabled)
	assert.Equal(t, 0.0, st.CurrentRunSpeed)
}

func TestScriptOverrideAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.OverrideDir
	prefabs.OverrideDir = dir
	t.Cleanup(func() { prefabs.OverrideDir = prev })

	rt := newRuntime(t)
	target := &fakeTarget{base: 5}
	require.NoError(t, rt.Apply("slow", target))
	require.Equal(t, []speedCall{{-2.5, 2}}, target.speed)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	override := []byte("apply := func(effect, params) {\n\teffect.change_speed(params.delta * 2, 1)\n}\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "slow.tengo"), override, 0o644))

	target.speed = nil
	require.NoError(t, rt.Apply("slow", target))
	assert.Equal(t, []speedCall{{-2.5, 2}}, target.speed, "cached until invalidated")

	rt.Invalidate("slow.tengo")
	target.speed = nil
	require.NoError(t, rt.Apply("slow", target))
	assert.Equal(t, []speedCall{{-5, 1}}, target.speed)
}

func TestScriptErrors(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.OverrideDir
	prefabs.OverrideDir = dir
	t.Cleanup(func() { prefabs.OverrideDir = prev })
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))

	scripts := map[string]string{
		"broken.tengo":   "apply := func(effect, params) {",
		"badarg.tengo":   "apply := func(effect, params) { effect.change_speed(\"fast\", 1) }",
		"wrongnum.tengo": "apply := func(effect, params) { effect.disable_control() }",
	}
	var effects prefabs.StatusEffectsSpec
	for file, src := range scripts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", file), []byte(src), 0o644))
		effects.Effects = append(effects.Effects, prefabs.StatusEffectSpec{Name: file, Script: file, Duration: 1})
	}

	rt := status.NewRuntime(effects, nil)
	for file := range scripts {
		t.Run(file, func(t *testing.T) {
			target := &fakeTarget{}
			assert.Error(t, rt.Apply(file, target))
			assert.Empty(t, target.speed)
			assert.Empty(t, target.disables)
		})
	}
}
