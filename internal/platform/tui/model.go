package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/core"
	"github.com/vovakirdan/dino-gesture/internal/dino"
	"github.com/vovakirdan/dino-gesture/internal/gesture"
)

// maxTickDelta caps the wall-clock delta fed to the game, so a stalled
// terminal does not burn through the invincibility window in one tick.
const maxTickDelta = 250 * time.Millisecond

// Options configures a Model.
type Options struct {
	Runtime       core.RuntimeConfig
	Signal        *gesture.Signal      // Shared gesture signal; nil means no camera
	Reloads       <-chan config.Reload // Config hot reloads; may be nil
	Logger        *log.Logger
	Styler        *Styler
	ScreenshotDir string // Empty disables ctrl+s
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game       *dino.Game
	screen     *core.Screen
	signal     *gesture.Signal
	edge       gesture.EdgeDetector
	reloads    <-chan config.Reload
	logger     *log.Logger
	styler     *Styler
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	shotDir    string
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *dino.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	sig := opts.Signal
	if sig == nil {
		sig = gesture.NewSignal()
		sig.SetCameraError()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	styler := opts.Styler
	if styler == nil {
		styler = NewStyler(nil)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		signal:     sig,
		reloads:    opts.Reloads,
		logger:     logger,
		styler:     styler,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State().Summary(),
		shotDir:    opts.ScreenshotDir,
	}
}

// Init starts the tick loop and the reload subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keyMapper.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// World coordinates are screen-independent, so a resize never resets the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		if msg.Err != nil {
			m.logger.Warn("config reload failed", "error", msg.Err)
		} else {
			m.game.SetConfig(msg.Config)
			m.logger.Info("config reloaded; applies at next start")
		}
		return m, waitForReload(m.reloads)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick reads the gesture signal and runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickInterval()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	m.lastTick = now

	if m.edge.Rising(m.signal.Load().Jump) {
		m.inputFrame.Set(core.ActionJump)
	}

	m.gameState = m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen, m.signal.Load())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("dino_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.signal.Load())
	return m.styler.Render(m.screen)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a local session.
func Run(game *dino.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks start and restart runs
	)

	_, err := p.Run()
	return err
}
