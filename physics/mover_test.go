package physics

import (
	"math"
	"testing"

	"github.com/milk9111/topdown/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainSample(t *testing.T) {
	terrain := Terrain{
		Floor: 0,
		Ramps: []Ramp{{MinX: 0, MinZ: -5, MaxX: 10, MaxZ: 5, Base: 0, RiseX: 0.5}},
	}

	tests := []struct {
		name     string
		x, z     float64
		height   float64
		slopeDeg float64
	}{
		{"floor", -3, 0, 0, 0},
		{"ramp_foot", 0, 0, 0, 0},
		{"ramp", 2, 0, 1, math.Atan(0.5) * 180 / math.Pi},
		{"beside_ramp", 2, 6, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, n := terrain.Sample(tt.x, tt.z)
			assert.InDelta(t, tt.height, h, 1e-9)
			assert.InDelta(t, tt.slopeDeg, common.AngleDeg(common.Up, n), 1e-9)
		})
	}
}

func TestMoverStopsAtWall(t *testing.T) {
	m := NewMover(Terrain{}, 0.5, common.Vec3{})
	m.AddWall(Wall{MinX: 2, MinZ: -5, MaxX: 3, MaxZ: 5})

	m.Move(common.V3(5, 0, 0))
	assert.InDelta(t, 1.5, m.Position().X, 0.01)
	assert.Less(t, m.Position().X, 1.5)
}

func TestMoverSlidesAlongWall(t *testing.T) {
	m := NewMover(Terrain{}, 0.5, common.Vec3{})
	m.AddWall(Wall{MinX: 2, MinZ: -10, MaxX: 3, MaxZ: 10})

	m.Move(common.V3(5, 0, 5))
	pos := m.Position()
	assert.Less(t, pos.X, 1.5)
	assert.InDelta(t, 5, pos.Z, 0.01)
}

func TestMoverBounds(t *testing.T) {
	m := NewMover(Terrain{}, 0.5, common.Vec3{})
	m.AddBounds(-4, -4, 4, 4)

	m.Move(common.V3(0, 0, -20))
	assert.Greater(t, m.Position().Z, -4.0)
}

func TestMoverGrounding(t *testing.T) {
	terrain := Terrain{Ramps: []Ramp{{MinX: 0, MinZ: -5, MaxX: 10, MaxZ: 5, RiseX: 0.5}}}
	m := NewMover(terrain, 0.5, common.V3(-2, 1, 0))

	res := m.Move(common.V3(0, -0.5, 0))
	assert.False(t, res.Grounded)
	assert.InDelta(t, 0.5, m.Position().Y, 1e-9)

	res = m.Move(common.V3(0, -1, 0))
	require.True(t, res.Grounded)
	assert.Equal(t, 0.0, m.Position().Y)
	assert.Equal(t, common.Up, res.SurfaceNormal)

	res = m.Move(common.V3(4, 0, 0))
	require.True(t, res.Grounded, "walks up the ramp")
	assert.InDelta(t, 1, m.Position().Y, 1e-9)
	assert.Greater(t, common.AngleDeg(common.Up, res.SurfaceNormal), 20.0)

	res = m.Move(common.V3(0, 0.5, 0))
	assert.False(t, res.Grounded, "upward displacement leaves the ground")
}

func TestMoverSnapsDownSteps(t *testing.T) {
	terrain := Terrain{Ramps: []Ramp{{MinX: -1, MinZ: -1, MaxX: 1, MaxZ: 1, Base: 0.2}}}
	m := NewMover(terrain, 0.25, common.V3(0, 0.2, 0))
	require.True(t, m.Move(common.Vec3{}).Grounded)

	res := m.Move(common.V3(2, 0, 0))
	assert.True(t, res.Grounded)
	assert.Equal(t, 0.0, m.Position().Y)

	m.SetStepHeight(0)
	m.Teleport(common.V3(0, 0.2, 0))
	m.Move(common.Vec3{})
	res = m.Move(common.V3(2, 0, 0))
	assert.False(t, res.Grounded)
}
