package spin

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/spinbox/internal/core"
	"github.com/vovakirdan/spinbox/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// isolate keeps user and working-directory configs out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDemosRegistered(t *testing.T) {
	for _, id := range []string{"spin", "spin_segment"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false, expected true", id)
		}
	}
}

func TestStrategyPerDemo(t *testing.T) {
	isolate(t)

	tests := []struct {
		game     *Game
		strategy string
	}{
		{New(), "local"},
		{NewSegment(), "segment"},
	}

	for _, tc := range tests {
		tc.game.Reset(testRuntime())
		if got := tc.game.Summary().Strategy; got != tc.strategy {
			t.Errorf("%s strategy = %q, expected %q", tc.game.ID(), got, tc.strategy)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	isolate(t)

	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%97 == 0:
			inputSequence[i].Set(core.ActionJump)
		case i%41 == 0:
			inputSequence[i].Set(core.ActionUp)
		}
	}

	run := func() core.RunSummary {
		g := NewSegment()
		g.Reset(testRuntime())
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Summary()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed: runs differ.\nRun1=%+v\nRun2=%+v", s1, s2)
	}
}

func TestGameReset(t *testing.T) {
	isolate(t)

	g := New()
	g.Reset(testRuntime())
	for iter := 0; iter < 400; iter++ {
		g.Step(press(core.ActionUp))
	}
	if g.Summary().Ticks != 400 {
		t.Fatalf("Ticks = %d, expected 400", g.Summary().Ticks)
	}

	g.Reset(testRuntime())
	s := g.Summary()
	if s.Ticks != 0 || s.Bounces != 0 {
		t.Errorf("after Reset ticks=%d bounces=%d, expected 0", s.Ticks, s.Bounces)
	}
	if g.SpinRate() != 0.5 {
		t.Errorf("SpinRate() = %v, expected 0.5", g.SpinRate())
	}
	if st := g.State(); st.GameOver || st.Paused || st.Score != 0 {
		t.Errorf("State() = %+v, expected zero state", st)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	isolate(t)

	g := New()
	g.Reset(testRuntime())
	g.Step(idle())

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused after ActionPause")
	}
	before := g.Engine().Ball()
	for iter := 0; iter < 10; iter++ {
		g.Step(idle())
	}
	if g.Engine().Ball() != before {
		t.Error("ball moved while paused")
	}
	if g.Summary().Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", g.Summary().Ticks)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused after second ActionPause")
	}
}

func TestSpinControls(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("fixed")

	g := New()
	g.Reset(testRuntime())

	tests := []struct {
		name     string
		action   core.Action
		expected float64
	}{
		{"faster", core.ActionUp, 0.75},
		{"slower", core.ActionDown, 0.5},
		{"reverse", core.ActionJump, -0.5},
		{"reset", core.ActionDuck, 0.5},
	}

	for _, tc := range tests {
		g.Step(press(tc.action))
		if math.Abs(g.SpinRate()-tc.expected) > 1e-9 {
			t.Errorf("%s: SpinRate() = %v, expected %v", tc.name, g.SpinRate(), tc.expected)
		}
		// With progression fixed at level 0 the engine runs at the user's rate.
		if got := g.Engine().Boundary().AngularStep; math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("%s: AngularStep = %v, expected %v", tc.name, got, tc.expected)
		}
	}

	for iter := 0; iter < 100; iter++ {
		g.Step(press(core.ActionUp))
	}
	if g.SpinRate() != MaxSpin {
		t.Errorf("SpinRate() = %v, expected cap %v", g.SpinRate(), MaxSpin)
	}
}

func TestRunEndsAfterDuration(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "short.yaml")
	if err := os.WriteFile(path, []byte("run:\n  duration_ticks: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)

	g := New()
	g.Reset(testRuntime())

	var res core.StepResult
	for i := 0; i < 119; i++ {
		res = g.Step(idle())
	}
	if res.State.GameOver {
		t.Fatal("run ended early")
	}

	res = g.Step(idle())
	if !res.State.GameOver {
		t.Fatal("expected GameOver after 120 ticks")
	}

	g.Step(idle())
	if g.Summary().Ticks != 120 {
		t.Errorf("Ticks = %d, expected 120 (no stepping after GameOver)", g.Summary().Ticks)
	}
	if res.State.Score != g.Summary().Bounces {
		t.Errorf("Score = %d, expected bounce count %d", res.State.Score, g.Summary().Bounces)
	}
}

func TestBadConfigFallsBackToDefaults(t *testing.T) {
	isolate(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := NewSegment()
	g.Reset(testRuntime())
	if g.Engine() == nil {
		t.Fatal("Engine() = nil after fallback")
	}
	if g.Summary().Strategy != "segment" {
		t.Errorf("Strategy = %q, expected segment", g.Summary().Strategy)
	}
}

func TestSpeedConservedThroughDemo(t *testing.T) {
	isolate(t)

	for _, g := range []*Game{New(), NewSegment()} {
		g.Reset(testRuntime())
		start := g.Summary().Speed
		for i := 0; i < 5000; i++ {
			in := idle()
			if i%500 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		s := g.Summary()
		if s.Bounces == 0 {
			t.Errorf("%s: no bounces in 5000 ticks", g.ID())
		}
		if math.Abs(s.Speed-start) > 1e-9 {
			t.Errorf("%s: speed %v, expected %v", g.ID(), s.Speed, start)
		}
		if p := g.Engine().Penetration(); p > 1e-6 {
			t.Errorf("%s: penetration %v", g.ID(), p)
		}
	}
}

func TestRenderDrawsArena(t *testing.T) {
	isolate(t)

	g := NewSegment()
	g.Reset(testRuntime())
	g.Step(idle())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, WallChar) {
		t.Error("render missing walls")
	}
	if !strings.ContainsRune(out, BallChar) && !strings.ContainsRune(out, DotChar) {
		t.Error("render missing ball")
	}
	if !strings.Contains(screen.Row(0), "segment") {
		t.Errorf("HUD row = %q, expected strategy name", screen.Row(0))
	}

	small := core.NewScreen(10, 5)
	g.Render(small)
	if strings.ContainsRune(small.String(), WallChar) {
		t.Error("tiny screen should not draw the arena")
	}
}

func TestRenderHighlightsStruckWall(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("fixed")

	g := NewSegment()
	g.Reset(testRuntime())

	for iter := 0; iter < 2000; iter++ {
		g.Step(idle())
		if len(g.Engine().LastCollisions()) > 0 {
			break
		}
	}
	if len(g.Engine().LastCollisions()) == 0 {
		t.Fatal("no collision within 2000 ticks")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Rune == WallChar && c.Color == core.ColorBrightYellow {
				found = true
			}
		}
	}
	if !found {
		t.Error("struck wall not highlighted")
	}
}
