// Package physics implements the rotating-square collision engine.
// It has no UI dependencies; drivers call Tick once per frame and read
// the boundary and ball state afterwards.
package physics

import "math"

// degenerateLenSq is the squared length below which a vector is treated
// as zero and left untouched by normalization and reflection.
const degenerateLenSq = 1e-12

// Vec2 is a 2D vector in world units. Y grows downward, as on screen.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsDegenerate reports whether v is too short to normalize.
func (v Vec2) IsDegenerate() bool {
	return v.LenSq() < degenerateLenSq
}

// Normalize returns the unit vector in the direction of v.
// A degenerate vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	if v.IsDegenerate() {
		return v
	}
	l := v.Len()
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate rotates v by deg degrees about the origin.
// Positive angles turn +X toward +Y (clockwise on a y-down screen).
func (v Vec2) Rotate(deg float64) Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround rotates v by deg degrees about center.
func (v Vec2) RotateAround(center Vec2, deg float64) Vec2 {
	return v.Sub(center).Rotate(deg).Add(center)
}

// Reflect mirrors v about the surface with normal n: v - 2(v.n)n.
// n is normalized first; a degenerate n leaves v unchanged.
func (v Vec2) Reflect(n Vec2) Vec2 {
	if n.IsDegenerate() {
		return v
	}
	n = n.Normalize()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// NormalizeAngle wraps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// Mod of a tiny negative plus 360 can round up to exactly 360.
	if a >= 360 {
		a = 0
	}
	return a
}

// segmentDistSq returns the squared distance from p to the segment a-b.
// A zero-length segment is treated as the point a.
func segmentDistSq(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	den := ab.LenSq()
	if den < degenerateLenSq {
		return ap.LenSq()
	}
	t := ap.Dot(ab) / den
	switch {
	case t < 0:
		return ap.LenSq()
	case t > 1:
		return p.Sub(b).LenSq()
	}
	return p.Sub(a.Add(ab.Scale(t))).LenSq()
}
