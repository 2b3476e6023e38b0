package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/gesture"
)

// startGesture opens the frame source and runs the gesture client until ctx
// is cancelled. Without a camera the signal reports the error and the game
// stays playable. The returned func releases the source.
func startGesture(ctx context.Context, cfg config.GestureConfig, logger *log.Logger) (*gesture.Signal, func()) {
	signal := gesture.NewSignal()

	source, err := gesture.OpenSource(cfg)
	if err != nil {
		if errors.Is(err, gesture.ErrNoCamera) {
			logger.Warn("no camera configured; gesture jumping disabled", "source", cfg.Source)
		} else {
			logger.Error("cannot open camera", "error", err)
		}
		signal.SetCameraError()
		return signal, func() {}
	}

	client := gesture.NewClient(cfg, source, signal, logger)
	done := make(chan struct{})
	go func() {
		defer close(done)
		client.Run(ctx)
	}()
	logger.Info("gesture client started", "endpoint", cfg.Endpoint, "interval", cfg.Interval)

	return signal, func() {
		<-done
		if err := source.Close(); err != nil {
			logger.Warn("cannot close camera", "error", err)
		}
	}
}
