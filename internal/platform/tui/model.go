package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spinbox/internal/core"
	"github.com/vovakirdan/spinbox/internal/registry"
	"github.com/vovakirdan/spinbox/internal/storage"
)

// summarizer is implemented by demos that can report their run.
type summarizer interface {
	Summary() core.RunSummary
}

// Model is the Bubble Tea model for running a demo.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        uint64 // tick generation owned by this model
	embedded   bool   // Back returns to a host session instead of quitting
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been persisted
}

// NewModel creates a new Bubble Tea model for the given demo.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		gen:        nextTickGen(),
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if action == core.ActionBack && m.embedded {
		m.saveRun()
		m.backToMenu = true
		return m, nil
	}
	if isQuit || action == core.ActionBack {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveRun persists the score and run summary once per run. Errors are
// ignored; the demo continues regardless.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}

	var summary core.RunSummary
	if s, ok := m.game.(summarizer); ok {
		summary = s.Summary()
	}
	if summary.Ticks == 0 && m.gameState.Score == 0 {
		return
	}
	m.runSaved = true

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	if summary.Ticks > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveRun(RunRecord(m.game.ID(), summary))
	}
}

// RunRecord converts a demo summary into a storage record.
func RunRecord(gameID string, s core.RunSummary) storage.RunRecord {
	return storage.RunRecord{
		GameID:     gameID,
		Strategy:   s.Strategy,
		Ticks:      s.Ticks,
		Bounces:    s.Bounces,
		FinalAngle: s.FinalAngle,
		Speed:      s.Speed,
		SpeedDrift: s.SpeedDrift,
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".spinbox", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// IsQuitting returns true if user requested to quit entirely.
func (m *Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to return to the host menu.
func (m *Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given demo.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
