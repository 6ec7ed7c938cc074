package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name       string
		area       Rect
		radius     float64
		wantScaleY float64
	}{
		// 80x24: vertical half 12 limits; 12/100.
		{"wide terminal", NewRect(0, 0, 80, 24), 100, 0.12},
		// 40x40: horizontal half 20 over radius*2 limits; 20/200.
		{"narrow terminal", NewRect(0, 0, 40, 40), 100, 0.1},
		{"zero radius falls back", NewRect(0, 0, 80, 24), 0, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FitViewport(tc.area, 0, 0, tc.radius)
			if math.Abs(v.ScaleY-tc.wantScaleY) > 1e-9 {
				t.Errorf("ScaleY = %v, expected %v", v.ScaleY, tc.wantScaleY)
			}
			if math.Abs(v.ScaleX-v.ScaleY*CellAspect) > 1e-9 {
				t.Errorf("ScaleX = %v, expected %v", v.ScaleX, v.ScaleY*CellAspect)
			}
		})
	}
}

func TestViewportMapping(t *testing.T) {
	v := FitViewport(NewRect(0, 0, 80, 24), 400, 300, 100)

	cx, cy := v.ToCell(400, 300)
	if cx != 40 || cy != 12 {
		t.Errorf("ToCell(centre) = (%d, %d), expected (40, 12)", cx, cy)
	}

	// The disc's extremes stay on screen.
	for _, p := range [][2]float64{{300, 300}, {499.9, 300}, {400, 200}, {400, 399.9}} {
		x, y := v.ToCell(p[0], p[1])
		if !NewRect(0, 0, 80, 24).Contains(x, y) {
			t.Errorf("ToCell(%v, %v) = (%d, %d) is off screen", p[0], p[1], x, y)
		}
	}

	wx, wy := v.ToWorld(40, 12)
	if math.Abs(wx-400) > 5 || math.Abs(wy-300) > 5 {
		t.Errorf("ToWorld(40, 12) = (%v, %v), expected near (400, 300)", wx, wy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5, 0, 10) = %f, expected 10", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}
