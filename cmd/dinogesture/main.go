// dinogesture is an endless runner for the terminal that you play with your
// hand: make a fist in front of the camera and the dino jumps.
//
// Usage:
//
//	dinogesture play             - Play locally
//	dinogesture serve            - Host the game over SSH
//	dinogesture scores           - Show run history and best score
//	dinogesture check-endpoint   - Send one frame to the gesture endpoint
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.dinogesture/scores.db)
//	--config <path>       - Use a custom tuning file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gesture/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinogesture",
	Short: "Dino Gesture - a runner you play with your fist",
	Long: `Dino Gesture is a terminal endless runner controlled by hand gestures.
Frames from a camera are sent to a hand-classification endpoint; a closed
fist makes the dino jump. Click (or press Enter) to start a run.

Available commands:
  play            - Play in this terminal
  serve           - Start SSH server for remote play
  scores          - View run history
  check-endpoint  - Test the gesture endpoint with one frame

Examples:
  dinogesture play
  dinogesture play --watch --difficulty easy
  dinogesture serve --ssh :2222
  dinogesture scores --browse`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinogesture/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkEndpointCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig reads the tuning table and applies the difficulty preset.
func loadConfig() (config.DinoConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DinoConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DinoConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// seed returns the --seed value, or a time-based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
