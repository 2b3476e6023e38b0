package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-gesture/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardViews(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{3, 12, 7} {
		if err := store.RecordRun(score, 20*time.Second); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 12 {
		t.Fatalf("top view runs = %+v, expected best first", m.runs)
	}
	if view := m.View(); !strings.Contains(view, "TOP RUNS") || !strings.Contains(view, "Stats") {
		t.Errorf("top view missing title or sidebar:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || m.runs[0].Score != 7 {
		t.Errorf("recent view = %v, first run %+v, expected newest first", m.view, m.runs[0])
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("recent view missing title")
	}
}

func TestScoreboardEmptyAndNarrow(t *testing.T) {
	m := NewScoreboardModel(openTestStore(t), 60, 20)

	if m.showSidebar {
		t.Error("sidebar should be hidden below the minimum width")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty history should say so")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{125 * time.Second, "2:05"},
		{61*time.Minute + 1500*time.Millisecond, "61:02"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}
