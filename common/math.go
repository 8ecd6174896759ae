package common

import "math"

const epsilon = 1e-9

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Vec3 is a world-space vector. Y is up; the ground plane is X/Z.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Up      = Vec3{Y: 1}
	Forward = Vec3{Z: 1}
)

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

func (v Vec3) IsZero() bool {
	return v.LenSq() < epsilon*epsilon
}

// Normalize returns the unit vector in v's direction, or the zero vector
// when v is (nearly) zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Len()
}

func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}

// AngleDeg returns the unsigned angle between a and b in degrees. A zero
// vector on either side yields 0.
func AngleDeg(a, b Vec3) float64 {
	denom := math.Sqrt(a.LenSq() * b.LenSq())
	if denom < 1e-15 {
		return 0
	}
	cos := Clamp(a.Dot(b)/denom, -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// Quat is a unit rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

var Identity = Quat{W: 1}

// QuatFromYaw builds a rotation of yaw radians around the up axis.
func QuatFromYaw(yaw float64) Quat {
	s, c := math.Sincos(yaw / 2)
	return Quat{Y: s, W: c}
}

// LookRotation returns the yaw-only rotation whose forward axis points along
// the horizontal projection of dir. ok is false when dir has no horizontal
// extent.
func LookRotation(dir Vec3) (Quat, bool) {
	flat := dir.Flat()
	if flat.IsZero() {
		return Identity, false
	}
	return QuatFromYaw(math.Atan2(flat.X, flat.Z)), true
}

func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.Dot(q))
	if l < epsilon {
		return Identity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Forward is the rotated +Z axis.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Forward)
}

// AngleDeg returns the angle between two rotations in degrees.
func (q Quat) AngleDeg(o Quat) float64 {
	d := math.Min(math.Abs(q.Dot(o)), 1)
	return 2 * math.Acos(d) * 180 / math.Pi
}

// Slerp interpolates along the shortest arc. t is clamped to [0,1].
func Slerp(a, b Quat, t float64) Quat {
	t = Clamp01(t)
	cos := a.Dot(b)
	if cos < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cos = -cos
	}
	if cos > 0.9995 {
		return Quat{
			Lerp(a.X, b.X, t),
			Lerp(a.Y, b.Y, t),
			Lerp(a.Z, b.Z, t),
			Lerp(a.W, b.W, t),
		}.Normalize()
	}
	theta := math.Acos(cos)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		a.X*wa + b.X*wb,
		a.Y*wa + b.Y*wb,
		a.Z*wa + b.Z*wb,
		a.W*wa + b.W*wb,
	}.Normalize()
}
