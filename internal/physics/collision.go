package physics

import "math"

// Wall identifies a side of the square in its local frame.
type Wall int

const (
	WallRight Wall = iota
	WallBottom
	WallLeft
	WallTop
)

// String returns the wall name.
func (w Wall) String() string {
	switch w {
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// LocalNormal returns the wall's outward unit normal in the local frame.
func (w Wall) LocalNormal() Vec2 {
	switch w {
	case WallRight:
		return Vec2{X: 1}
	case WallBottom:
		return Vec2{Y: 1}
	case WallLeft:
		return Vec2{X: -1}
	case WallTop:
		return Vec2{Y: -1}
	default:
		return Vec2{}
	}
}

// edgeWalls maps a corner edge index (corner i to corner i+1) to its wall.
var edgeWalls = [4]Wall{WallTop, WallRight, WallBottom, WallLeft}

// EdgeWall returns the wall drawn between Corners()[i] and Corners()[i+1].
func EdgeWall(i int) Wall {
	return edgeWalls[((i%4)+4)%4]
}

// CollisionEvent describes one violated wall within a single tick.
type CollisionEvent struct {
	Wall   Wall
	Edge   int     // corner edge index for the segment strategy, -1 otherwise
	Depth  float64 // overshoot along Normal; <= 0 means touching only
	Normal Vec2    // outward unit normal in world space
}

// detect appends every wall violated by the current ball position.
func (e *Engine) detect(dst []CollisionEvent) []CollisionEvent {
	if e.strategy == StrategySegment {
		return e.detectSegments(dst)
	}
	return e.detectLocal(dst)
}

// detectLocal tests the ball against the axis-aligned walls of the
// square's own frame. Up to two walls can be flagged at a corner.
func (e *Engine) detectLocal(dst []CollisionEvent) []CollisionEvent {
	local := e.toLocal(e.ball.Pos)
	limit := e.boundary.HalfExtent - e.ball.Radius

	if local.X > limit {
		dst = append(dst, e.wallEvent(WallRight, local.X-limit))
	} else if local.X < -limit {
		dst = append(dst, e.wallEvent(WallLeft, -limit-local.X))
	}

	if local.Y > limit {
		dst = append(dst, e.wallEvent(WallBottom, local.Y-limit))
	} else if local.Y < -limit {
		dst = append(dst, e.wallEvent(WallTop, -limit-local.Y))
	}
	return dst
}

func (e *Engine) wallEvent(w Wall, depth float64) CollisionEvent {
	return CollisionEvent{
		Wall:   w,
		Edge:   -1,
		Depth:  depth,
		Normal: w.LocalNormal().Rotate(e.boundary.Angle).Normalize(),
	}
}

// detectSegments tests the ball against each rotated edge segment.
// An edge is flagged when the ball touches the segment or when its
// centre has crossed the edge line entirely.
func (e *Engine) detectSegments(dst []CollisionEvent) []CollisionEvent {
	corners := e.Corners()
	p := e.ball.Pos
	r := e.ball.Radius

	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		n := outwardNormal(a, b, e.boundary.Center)
		if n.IsDegenerate() {
			continue
		}

		inside := a.Sub(p).Dot(n) // signed distance to the edge line, positive inward
		if segmentDistSq(p, a, b) > r*r+e.epsilon && inside >= 0 {
			continue
		}
		dst = append(dst, CollisionEvent{
			Wall:   edgeWalls[i],
			Edge:   i,
			Depth:  r - inside,
			Normal: n,
		})
	}
	return dst
}

// outwardNormal returns the unit normal of edge a-b that points away
// from center. A zero-length edge yields the zero vector.
func outwardNormal(a, b, center Vec2) Vec2 {
	d := b.Sub(a)
	if d.IsDegenerate() {
		return Vec2{}
	}
	n := Vec2{X: d.Y, Y: -d.X}.Normalize()
	mid := a.Add(b).Scale(0.5)
	if n.Dot(mid.Sub(center)) < 0 {
		n = n.Scale(-1)
	}
	return n
}

// resolve reflects the velocity and corrects the position for every
// event of the tick. Events are all computed from the same position
// snapshot, so a corner hit resolves both walls.
func (e *Engine) resolve(events []CollisionEvent) {
	if len(events) == 0 {
		return
	}

	for _, ev := range events {
		n := ev.Normal
		if n.IsDegenerate() {
			continue
		}
		// Only an outgoing ball bounces; one already heading inward
		// (the wall swept into it) keeps its velocity.
		if e.ball.Vel.Dot(n) > 0 {
			e.ball.Vel = e.ball.Vel.Reflect(n)
			e.bounces++
		}
		if ev.Depth > 0 {
			e.ball.Pos = e.ball.Pos.Sub(n.Scale(ev.Depth))
		}
	}

	if e.strategy == StrategySegment && e.margin > 0 {
		e.pushMargin()
	}
}

// pushMargin nudges the ball along its outgoing direction, then settles
// it so the nudge cannot leave it overlapping another wall.
func (e *Engine) pushMargin() {
	speed := e.ball.Vel.Len()
	if speed < 1e-6 {
		return
	}
	e.ball.Pos = e.ball.Pos.Add(e.ball.Vel.Scale(e.margin / speed))

	for _, ev := range e.detect(nil) {
		if ev.Depth > 0 && !ev.Normal.IsDegenerate() {
			e.ball.Pos = e.ball.Pos.Sub(ev.Normal.Scale(ev.Depth))
		}
	}
}

// Penetration returns the largest overlap of the ball past any wall in
// the square's frame, or a non-positive value when it is clear of all.
func (e *Engine) Penetration() float64 {
	local := e.toLocal(e.ball.Pos)
	limit := e.boundary.HalfExtent - e.ball.Radius
	return math.Max(math.Abs(local.X), math.Abs(local.Y)) - limit
}
