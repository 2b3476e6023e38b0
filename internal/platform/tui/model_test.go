package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/core"
	"github.com/vovakirdan/dino-gesture/internal/dino"
	"github.com/vovakirdan/dino-gesture/internal/gesture"
)

var leftClick = tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

func newTestModel(t *testing.T, sig *gesture.Signal) (Model, *dino.Game) {
	t.Helper()
	game := dino.New(config.DefaultDinoConfig(), 1)
	game.SetLogger(log.New(io.Discard))
	m := NewModel(game, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Signal:  sig,
		Logger:  log.New(io.Discard),
		Styler:  NewStyler(lipgloss.NewRenderer(io.Discard)),
	})
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestClickStartsRun(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = update(t, m, TickMsg(time.Now()))
	if game.State().Phase != dino.PhaseIdle {
		t.Fatalf("phase = %v before click, expected idle", game.State().Phase)
	}

	m = update(t, m, leftClick)
	m = update(t, m, TickMsg(time.Now()))
	if game.State().Phase != dino.PhaseRunning {
		t.Errorf("phase = %v after click, expected running", game.State().Phase)
	}
	if !m.GameState().Running {
		t.Error("GameState() should report a running game")
	}
}

func TestEnterActsAsClick(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	update(t, m, TickMsg(time.Now()))
	if game.State().Phase != dino.PhaseRunning {
		t.Errorf("phase = %v after enter, expected running", game.State().Phase)
	}
}

func TestFistJumpsOncePerEdge(t *testing.T) {
	sig := gesture.NewSignal()
	m, game := newTestModel(t, sig)

	m = update(t, m, leftClick)
	m = update(t, m, TickMsg(time.Now()))

	sig.Store(gesture.Snapshot{Jump: true, Status: gesture.StatusFist})
	m = update(t, m, TickMsg(time.Now()))
	if p := game.State().Player; !p.Jumping || p.VY != -12 {
		t.Fatalf("player = %+v after fist, expected a fresh jump", p)
	}

	// Holding the fist does not re-trigger
	update(t, m, TickMsg(time.Now()))
	if vy := game.State().Player.VY; vy != -11.5 {
		t.Errorf("VY = %v on the held tick, expected -11.5", vy)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestReloadAppliesAtNextStart(t *testing.T) {
	m, game := newTestModel(t, nil)

	cfg := config.DefaultDinoConfig()
	cfg.Gameplay.Lives = 2
	m = update(t, m, reloadMsg{Config: cfg})
	if game.Config().Gameplay.Lives != 5 {
		t.Fatal("reload must not change the config before a run starts")
	}

	m = update(t, m, leftClick)
	update(t, m, TickMsg(time.Now()))
	if game.State().Lives != 2 {
		t.Errorf("lives = %d, expected the reloaded 2", game.State().Lives)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = update(t, m, leftClick)
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	ticks := game.State().Ticks

	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.State().Phase != dino.PhaseRunning || game.State().Ticks != ticks {
		t.Error("resize should not reset the run")
	}
}

func TestViewShowsStartScreen(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if view := m.View(); !strings.Contains(view, "Click to Start") {
		t.Errorf("idle view missing start prompt:\n%s", view)
	}
}
