package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
)

const (
	maxSlideIterations = 3
	skinWidth          = 1e-3
	// DefaultStepHeight is how far below its feet a grounded character is
	// still snapped to the ground.
	DefaultStepHeight = 0.3
)

// Wall is a static obstacle footprint on the ground plane.
type Wall struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Mover is a capsule-like character collider. Horizontal displacement is swept
// as a circle through a Chipmunk space of static walls and slides along
// whatever it hits; vertical displacement resolves against a Terrain.
type Mover struct {
	space      *cp.Space
	terrain    Terrain
	walls      []Wall
	radius     float64
	stepHeight float64

	pos      common.Vec3
	grounded bool
}

func NewMover(terrain Terrain, radius float64, start common.Vec3) *Mover {
	return &Mover{
		space:      cp.NewSpace(),
		terrain:    terrain,
		radius:     radius,
		stepHeight: DefaultStepHeight,
		pos:        start,
	}
}

func (m *Mover) SetStepHeight(h float64) {
	m.stepHeight = math.Max(h, 0)
}

// AddWall adds a solid box to the space.
func (m *Mover) AddWall(w Wall) {
	if w.MaxX <= w.MinX || w.MaxZ <= w.MinZ {
		return
	}
	bb := cp.BB{L: w.MinX, B: w.MinZ, R: w.MaxX, T: w.MaxZ}
	shape := cp.NewBox2(m.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	m.space.AddShape(shape)
	m.walls = append(m.walls, w)
}

// AddBounds encloses the rectangle with thin segment walls.
func (m *Mover) AddBounds(minX, minZ, maxX, maxZ float64) {
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: minX, Y: minZ}, b: cp.Vector{X: maxX, Y: minZ}},
		{a: cp.Vector{X: minX, Y: maxZ}, b: cp.Vector{X: maxX, Y: maxZ}},
		{a: cp.Vector{X: minX, Y: minZ}, b: cp.Vector{X: minX, Y: maxZ}},
		{a: cp.Vector{X: maxX, Y: minZ}, b: cp.Vector{X: maxX, Y: maxZ}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(m.space.StaticBody, seg.a, seg.b, 0.05)
		m.space.AddShape(shape)
	}
}

// Space exposes the collision space for debug drawing.
func (m *Mover) Space() *cp.Space {
	return m.space
}

func (m *Mover) Walls() []Wall {
	return m.walls
}

func (m *Mover) Terrain() Terrain {
	return m.terrain
}

func (m *Mover) Radius() float64 {
	return m.radius
}

func (m *Mover) Position() common.Vec3 {
	return m.pos
}

// Teleport places the character without collision.
func (m *Mover) Teleport(pos common.Vec3) {
	m.pos = pos
	m.grounded = false
}

// Move consumes displacement once: horizontal first, then vertical.
func (m *Mover) Move(displacement common.Vec3) ecs.MoveResult {
	if displacement.X != 0 || displacement.Z != 0 {
		end := m.slide(cp.Vector{X: m.pos.X, Y: m.pos.Z}, cp.Vector{X: displacement.X, Y: displacement.Z})
		m.pos.X, m.pos.Z = end.X, end.Y
	}

	ground, normal := m.terrain.Sample(m.pos.X, m.pos.Z)
	y := m.pos.Y + displacement.Y

	snap := m.grounded && displacement.Y <= 0 && y-ground <= m.stepHeight
	if y <= ground || snap {
		m.pos.Y = ground
		m.grounded = true
		return ecs.MoveResult{Grounded: true, SurfaceNormal: normal}
	}

	m.pos.Y = y
	m.grounded = false
	return ecs.MoveResult{}
}

func (m *Mover) slide(pos, delta cp.Vector) cp.Vector {
	for i := 0; i < maxSlideIterations; i++ {
		dist := delta.Length()
		if dist < 1e-9 {
			break
		}
		hit := m.space.SegmentQueryFirst(pos, pos.Add(delta), m.radius, cp.SHAPE_FILTER_ALL)
		if hit.Shape == nil {
			return pos.Add(delta)
		}

		travel := math.Max(hit.Alpha*dist-skinWidth, 0)
		pos = pos.Add(delta.Mult(travel / dist))

		rest := delta.Mult(1 - hit.Alpha)
		delta = rest.Sub(hit.Normal.Mult(rest.Dot(hit.Normal)))
	}
	return pos
}
