package spin

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spinbox/internal/core"
	"github.com/vovakirdan/spinbox/internal/physics"
)

// Visual characters for rendering
const (
	WallChar = '█'
	BallChar = '●'
	DotChar  = '•' // ball smaller than a cell
)

// Minimum screen that still shows a readable square.
const (
	minScreenW = 24
	minScreenH = 10
)

// Render draws the square, the ball and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	// Row 0 is the HUD, the last row is the key help.
	area := core.NewRect(0, 1, w, h-2)
	b := g.engine.Boundary()
	vp := core.FitViewport(area, b.Center.X, b.Center.Y, g.boundingRadius())

	g.drawWalls(dst, vp)
	g.drawBall(dst, vp)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		s := g.Summary()
		drawCenteredMessage(dst, "RUN COMPLETE",
			fmt.Sprintf("%d bounces in %d ticks  |  R restart", s.Bounces, s.Ticks))
	}
}

func (g *Game) drawWalls(dst *core.Screen, vp core.Viewport) {
	corners := g.engine.Corners()
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		x0, y0 := vp.ToCell(a.X, a.Y)
		x1, y1 := vp.ToCell(b.X, b.Y)

		color := core.ColorCyan
		if g.flash[physics.EdgeWall(i)] > 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawLine(x0, y0, x1, y1, WallChar, color)
	}
}

// drawBall fills every cell whose centre lies inside the ball.
func (g *Game) drawBall(dst *core.Screen, vp core.Viewport) {
	ball := g.engine.Ball()
	r := ball.Radius

	x0, y0 := vp.ToCell(ball.Pos.X-r, ball.Pos.Y-r)
	x1, y1 := vp.ToCell(ball.Pos.X+r, ball.Pos.Y+r)

	drawn := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx, wy := vp.ToWorld(cx, cy)
			if math.Hypot(wx-ball.Pos.X, wy-ball.Pos.Y) <= r {
				dst.SetColored(cx, cy, BallChar, core.ColorYellow)
				drawn = true
			}
		}
	}
	if !drawn {
		cx, cy := vp.ToCell(ball.Pos.X, ball.Pos.Y)
		dst.SetColored(cx, cy, DotChar, core.ColorYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.Summary()
	hud := fmt.Sprintf(" %s | angle %5.1f° | spin %+.2f°/t | speed %.2f | bounces %d ",
		s.Strategy, s.FinalAngle, g.engine.Boundary().AngularStep, s.Speed, s.Bounces)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	help := " ↑/↓ spin  space reverse  x reset spin  p pause  r restart  q quit "
	dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
