package physics

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by NewEngine for unusable starting parameters.
var (
	ErrInvalidBall     = errors.New("physics: ball radius must be positive and finite")
	ErrInvalidBoundary = errors.New("physics: boundary half-extent must exceed the ball radius")
)

// DefaultEpsilon is the contact tolerance added to radius^2 by the
// segment strategy.
const DefaultEpsilon = 1e-6

// Strategy selects how wall penetration is detected.
type Strategy int

const (
	// StrategyLocalFrame rotates the ball into the square's frame and
	// tests it against the axis-aligned walls.
	StrategyLocalFrame Strategy = iota
	// StrategySegment measures the distance from the ball to each
	// rotated edge segment in world space.
	StrategySegment
)

// String returns the config name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLocalFrame:
		return "local"
	case StrategySegment:
		return "segment"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a config name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "local":
		return StrategyLocalFrame, nil
	case "segment":
		return StrategySegment, nil
	default:
		return StrategyLocalFrame, fmt.Errorf("physics: unknown strategy %q", name)
	}
}

// Boundary is the rotating square. Angle is in degrees and always
// lies in [0, 360); AngularStep is degrees per frame.
type Boundary struct {
	Center      Vec2
	HalfExtent  float64
	Angle       float64
	AngularStep float64
}

// Ball is the moving circle. Vel is in world units per frame.
type Ball struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy selects the detection strategy.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// WithMargin sets the extra push, in world units, applied along the
// outgoing velocity after a segment-strategy collision. Zero disables it.
func WithMargin(m float64) Option {
	return func(e *Engine) {
		if m > 0 {
			e.margin = m
		}
	}
}

// WithEpsilon sets the segment-strategy contact tolerance.
func WithEpsilon(eps float64) Option {
	return func(e *Engine) {
		if eps >= 0 {
			e.epsilon = eps
		}
	}
}

// Engine owns the boundary and ball and advances them one frame at a time.
// It is not safe for concurrent use; the driver calls Tick and then reads
// state from the same goroutine.
type Engine struct {
	boundary Boundary
	ball     Ball
	strategy Strategy
	margin   float64
	epsilon  float64

	events       []CollisionEvent
	bounces      int
	ticks        int
	initialSpeed float64
}

// NewEngine validates the starting state and returns an engine.
func NewEngine(boundary Boundary, ball Ball, opts ...Option) (*Engine, error) {
	if !(ball.Radius > 0) || math.IsInf(ball.Radius, 0) {
		return nil, ErrInvalidBall
	}
	if !(boundary.HalfExtent > ball.Radius) || math.IsInf(boundary.HalfExtent, 0) {
		return nil, ErrInvalidBoundary
	}
	if !ball.Pos.IsFinite() || !ball.Vel.IsFinite() || !boundary.Center.IsFinite() {
		return nil, errors.New("physics: non-finite starting state")
	}

	boundary.Angle = NormalizeAngle(boundary.Angle)

	e := &Engine{
		boundary:     boundary,
		ball:         ball,
		strategy:     StrategyLocalFrame,
		epsilon:      DefaultEpsilon,
		events:       make([]CollisionEvent, 0, 4),
		initialSpeed: ball.Vel.Len(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Tick advances the simulation by dtFrames frames: rotate the square,
// move the ball, then detect and resolve every wall the ball violates.
// Non-positive dtFrames does nothing.
func (e *Engine) Tick(dtFrames float64) {
	if !(dtFrames > 0) {
		return
	}

	e.boundary.Angle = NormalizeAngle(e.boundary.Angle + e.boundary.AngularStep*dtFrames)
	e.ball.Pos = e.ball.Pos.Add(e.ball.Vel.Scale(dtFrames))

	e.events = e.detect(e.events[:0])
	e.resolve(e.events)
	e.ticks++
}

// Step advances by a single frame.
func (e *Engine) Step() {
	e.Tick(1)
}

// Boundary returns the current square state.
func (e *Engine) Boundary() Boundary {
	return e.boundary
}

// Ball returns the current ball state.
func (e *Engine) Ball() Ball {
	return e.ball
}

// Strategy returns the detection strategy in use.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Margin returns the segment-strategy push margin.
func (e *Engine) Margin() float64 {
	return e.margin
}

// Corners returns the square's corners in world space, clockwise on a
// y-down screen starting from the corner that is top-left at angle 0.
func (e *Engine) Corners() [4]Vec2 {
	c := e.boundary.Center
	h := e.boundary.HalfExtent
	base := [4]Vec2{
		{X: c.X - h, Y: c.Y - h},
		{X: c.X + h, Y: c.Y - h},
		{X: c.X + h, Y: c.Y + h},
		{X: c.X - h, Y: c.Y + h},
	}
	for i := range base {
		base[i] = base[i].RotateAround(c, e.boundary.Angle)
	}
	return base
}

// LocalPosition returns the ball centre in the square's frame, relative
// to the square's centre.
func (e *Engine) LocalPosition() Vec2 {
	return e.toLocal(e.ball.Pos)
}

// LastCollisions returns the collisions resolved during the latest tick.
func (e *Engine) LastCollisions() []CollisionEvent {
	out := make([]CollisionEvent, len(e.events))
	copy(out, e.events)
	return out
}

// Bounces returns the number of velocity reflections so far.
func (e *Engine) Bounces() int {
	return e.bounces
}

// Ticks returns the number of ticks advanced so far.
func (e *Engine) Ticks() int {
	return e.ticks
}

// SpeedDrift returns the difference between the current and starting
// ball speed. Elastic reflection keeps it near zero; SetVelocity resets it.
func (e *Engine) SpeedDrift() float64 {
	return e.ball.Vel.Len() - e.initialSpeed
}

// SetAngularStep changes the square's spin in degrees per frame.
func (e *Engine) SetAngularStep(step float64) {
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return
	}
	e.boundary.AngularStep = step
}

// SetVelocity replaces the ball velocity.
func (e *Engine) SetVelocity(v Vec2) {
	if !v.IsFinite() {
		return
	}
	e.ball.Vel = v
	e.initialSpeed = v.Len()
}

// toLocal maps a world point into the square's frame.
func (e *Engine) toLocal(p Vec2) Vec2 {
	return p.Sub(e.boundary.Center).Rotate(-e.boundary.Angle)
}
