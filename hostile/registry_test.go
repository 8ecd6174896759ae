package hostile_test

import (
	"testing"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/hostile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(hs []ecs.Hostile) []ecs.HostileID {
	out := make([]ecs.HostileID, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.ID)
	}
	return out
}

func TestRegistrySpawnAndQuery(t *testing.T) {
	r := hostile.NewRegistry()
	a := r.Spawn(common.V3(3, 0, 0))
	b := r.Spawn(common.V3(0, 0, 5))
	far := r.Spawn(common.V3(20, 0, 0))

	assert.Equal(t, 3, r.Len())
	assert.NotEqual(t, a, b)

	tests := []struct {
		name   string
		center common.Vec3
		radius float64
		want   []ecs.HostileID
	}{
		{"all_near", common.Vec3{}, 10, []ecs.HostileID{a, b}},
		{"inclusive_edge", common.Vec3{}, 3, []ecs.HostileID{a}},
		{"everything", common.Vec3{}, 100, []ecs.HostileID{a, b, far}},
		{"nothing", common.V3(-50, 0, 0), 1, []ecs.HostileID{}},
		{"negative_radius", common.Vec3{}, -1, []ecs.HostileID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(r.QueryInRadius(tt.center, tt.radius)))
		})
	}
}

func TestRegistryMove(t *testing.T) {
	r := hostile.NewRegistry()
	id := r.Spawn(common.V3(30, 0, 0))

	require.True(t, r.Move(id, common.V3(1, 0, 1)))
	h, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, common.V3(1, 0, 1), h.Position)
	assert.Len(t, r.QueryInRadius(common.Vec3{}, 2), 1)

	assert.False(t, r.Move(ecs.HostileID(999), common.Vec3{}))
}

func TestRegistryRemoveKeepsOthersReachable(t *testing.T) {
	r := hostile.NewRegistry()
	a := r.Spawn(common.V3(1, 0, 0))
	b := r.Spawn(common.V3(2, 0, 0))
	c := r.Spawn(common.V3(3, 0, 0))

	require.True(t, r.Remove(a))
	assert.False(t, r.Remove(a), "double remove")
	assert.Equal(t, 2, r.Len())

	_, ok := r.Get(a)
	assert.False(t, ok)

	hc, ok := r.Get(c)
	require.True(t, ok)
	assert.Equal(t, common.V3(3, 0, 0), hc.Position)
	require.True(t, r.Move(c, common.V3(4, 0, 0)))

	assert.Equal(t, []ecs.HostileID{c, b}, ids(r.All()))
	d := r.Spawn(common.Vec3{})
	assert.NotContains(t, []ecs.HostileID{a, b, c}, d, "ids are never reused")
}

func TestRegistryImplementsQuery(t *testing.T) {
	var _ ecs.HostileQuery = hostile.NewRegistry()
}

func BenchmarkQueryInRadius(b *testing.B) {
	r := hostile.NewRegistry()
	for i := 0; i < 512; i++ {
		r.Spawn(common.V3(float64(i%32), 0, float64(i/32)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.QueryInRadius(common.V3(16, 0, 8), 10)
	}
}
