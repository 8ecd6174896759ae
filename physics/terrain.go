package physics

import "github.com/milk9111/topdown/common"

// Ramp is a planar slope over an axis-aligned X/Z rectangle. Its height at
// (MinX, MinZ) is Base and it rises RiseX per unit of X and RiseZ per unit
// of Z.
type Ramp struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Base       float64
	RiseX      float64
	RiseZ      float64
}

func (r Ramp) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

func (r Ramp) HeightAt(x, z float64) float64 {
	return r.Base + r.RiseX*(x-r.MinX) + r.RiseZ*(z-r.MinZ)
}

func (r Ramp) Normal() common.Vec3 {
	return common.V3(-r.RiseX, 1, -r.RiseZ).Normalize()
}

// Terrain is the walkable ground: a flat floor plus any number of ramps.
// Where surfaces overlap the highest one wins.
type Terrain struct {
	Floor float64
	Ramps []Ramp
}

// Sample returns the ground height and surface normal at (x, z).
func (t Terrain) Sample(x, z float64) (float64, common.Vec3) {
	height, normal := t.Floor, common.Up
	for _, r := range t.Ramps {
		if !r.Contains(x, z) {
			continue
		}
		if h := r.HeightAt(x, z); h > height {
			height, normal = h, r.Normal()
		}
	}
	return height, normal
}
