// Package core provides fundamental types and utilities for the demo platform.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// Rect represents an axis-aligned area of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport maps world coordinates (float, y down) onto screen cells.
// Horizontal scale is CellAspect times the vertical one so circles stay round.
type Viewport struct {
	CellX, CellY   float64 // cell position of the world centre
	WorldX, WorldY float64 // world centre
	ScaleX, ScaleY float64 // cells per world unit
}

// FitViewport returns a viewport that fits a disc of worldRadius around
// (worldX, worldY) inside area.
func FitViewport(area Rect, worldX, worldY, worldRadius float64) Viewport {
	if worldRadius <= 0 {
		worldRadius = 1
	}
	halfW := float64(area.W) / 2
	halfH := float64(area.H) / 2

	scaleY := math.Min(halfH/worldRadius, halfW/(worldRadius*CellAspect))
	return Viewport{
		CellX:  float64(area.X) + halfW,
		CellY:  float64(area.Y) + halfH,
		WorldX: worldX,
		WorldY: worldY,
		ScaleX: scaleY * CellAspect,
		ScaleY: scaleY,
	}
}

// ToCell converts a world point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := v.CellX + (x-v.WorldX)*v.ScaleX
	cy := v.CellY + (y-v.WorldY)*v.ScaleY
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// ToWorld converts the centre of a cell back to world coordinates.
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	if v.ScaleX == 0 || v.ScaleY == 0 {
		return v.WorldX, v.WorldY
	}
	x := v.WorldX + (float64(cx)+0.5-v.CellX)/v.ScaleX
	y := v.WorldY + (float64(cy)+0.5-v.CellY)/v.ScaleY
	return x, y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
