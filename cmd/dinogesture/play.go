package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/core"
	"github.com/vovakirdan/dino-gesture/internal/dino"
	"github.com/vovakirdan/dino-gesture/internal/platform/tui"
	"github.com/vovakirdan/dino-gesture/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Fist        - Jump (via the gesture endpoint)
  Click/Enter - Start / restart
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression (default tuning)

Logs go to ~/.dinogesture/dino.log while the game owns the screen.

Examples:
  dinogesture play
  dinogesture play --difficulty hard
  dinogesture play --config ./my-dino.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes (applies at next start)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := dino.New(cfg, seed())
	game.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage; the best score lives in memory
		store = nil
	}
	if store != nil {
		defer store.Close()
		game.SetScores(store)
		if best, bestErr := store.BestScore(); bestErr != nil {
			logger.Warn("cannot read best score", "error", bestErr)
		} else {
			game.SetBest(best)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	signal, stopGesture := startGesture(ctx, cfg.Gesture, logger)
	defer func() {
		cancel()
		stopGesture()
	}()

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Signal:        signal,
		Logger:        logger,
		ScreenshotDir: config.UserPath("screenshots"),
	}

	if flagWatch {
		if w := startWatcher(logger); w != nil {
			defer w.Close()
			opts.Reloads = withPreset(w.Reloads, preset)
		}
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// openLogFile sends logs to ~/.dinogesture/dino.log.
func openLogFile() (*log.Logger, func(), error) {
	path := config.UserPath("dino.log")
	if path == "" {
		logger, err := newLogger(os.Stderr, "dino")
		return logger, func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "dino")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// startWatcher watches the file the config was loaded from.
func startWatcher(logger *log.Logger) *config.Watcher {
	path := watchPath()
	if path == "" {
		logger.Warn("--watch: no tuning file found to watch")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("--watch disabled", "error", err)
		return nil
	}
	logger.Info("watching tuning file", "path", path)
	return w
}

// watchPath mirrors the config search order, skipping the embedded default.
func watchPath() string {
	candidates := []string{flagConfig, config.UserPath("dino.yaml"), filepath.Join("configs", "dino.yaml")}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// withPreset re-applies the --difficulty preset to every reloaded config.
func withPreset(in <-chan config.Reload, preset config.DifficultyPreset) <-chan config.Reload {
	out := make(chan config.Reload)
	go func() {
		defer close(out)
		for r := range in {
			if r.Err == nil {
				config.ApplyPreset(&r.Config, preset)
			}
			out <- r
		}
	}()
	return out
}
