package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultDinoConfig()) {
		t.Errorf("embedded YAML and DefaultDinoConfig() disagree:\nyaml:    %+v\nbuiltin: %+v", cfg, DefaultDinoConfig())
	}
}

func TestParseLayersOverDefaults(t *testing.T) {
	doc := `
physics:
  scroll_speed: 5
gameplay:
  invincibility: 2s
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.ScrollSpeed != 5 {
		t.Errorf("scroll_speed = %v, expected 5", cfg.Physics.ScrollSpeed)
	}
	if cfg.Gameplay.Invincibility != 2*time.Second {
		t.Errorf("invincibility = %v, expected 2s", cfg.Gameplay.Invincibility)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, expected default 0.5", cfg.Physics.Gravity)
	}
	if len(cfg.Obstacles.Clusters) != 3 {
		t.Errorf("clusters = %d, expected default 3", len(cfg.Obstacles.Clusters))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"zero lives", "gameplay: {lives: 0}", "lives"},
		{"upward gravity", "physics: {gravity: -1}", "gravity"},
		{"bad classify", "gesture: {classify: magic}", "classify"},
		{"bad source", "gesture: {source: webcam}", "source"},
		{"no clusters", "obstacles: {clusters: []}", "cluster"},
		{"bad progression", "difficulty: {progression: {type: level}}", "progression"},
		{"malformed", "world: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("gameplay: {lives: 3}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, expected 3", cfg.Gameplay.Lives)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDinoConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestDifficultyDisabledKeepsLiteralValues(t *testing.T) {
	d := NewDifficultyManager(DefaultDinoConfig().Difficulty)

	if got := d.Speed(3.5, 500, 100000); got != 3.5 {
		t.Errorf("Speed() = %v, expected 3.5 with progression off", got)
	}
	if got := d.MinGap(450, 500, 100000); got != 450 {
		t.Errorf("MinGap() = %v, expected 450 with progression off", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultDinoConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %v, expected 0", got)
	}
	if got := d.Level(cfg.Progression.MaxAt*2, 0); got != 1 {
		t.Errorf("Level past max_at = %v, expected 1", got)
	}
	if got := d.Speed(3.5, cfg.Progression.MaxAt, 0); got != 7 {
		t.Errorf("Speed at max = %v, expected 7", got)
	}
	if got := d.MinGap(450, cfg.Progression.MaxAt, 0); got != 300 {
		t.Errorf("MinGap at max = %v, expected 300", got)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dino.yaml")
	if err := os.WriteFile(path, []byte("gameplay: {lives: 5}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("gameplay: {lives: 2}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		if r.Err != nil {
			t.Fatalf("reload error: %v", r.Err)
		}
		if r.Config.Gameplay.Lives != 2 {
			t.Errorf("reloaded lives = %d, expected 2", r.Config.Gameplay.Lives)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload received")
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultDinoConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.5
	cfg.Progression = ProgressionConfig{Type: ProgressTime, MaxAt: 1000}
	d := NewDifficultyManager(cfg)

	if got := d.Level(999, 0); got != 0.5 {
		t.Errorf("Level ignores score in time mode: got %v, expected 0.5", got)
	}
	if got := d.Level(0, 500); got != 0.75 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}

	cfg.Progression.Type = ProgressNone
	if got := NewDifficultyManager(cfg).Level(100, 100000); got != 0.5 {
		t.Errorf("Level with no progression = %v, expected the initial 0.5", got)
	}
}
