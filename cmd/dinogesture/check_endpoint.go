package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-gesture/internal/config"
	"github.com/vovakirdan/dino-gesture/internal/gesture"
)

var (
	flagImage    string
	flagEndpoint string
)

var checkEndpointCmd = &cobra.Command{
	Use:   "check-endpoint",
	Short: "Send one frame to the gesture endpoint",
	Long: `Grab one frame (from --image, or from the configured camera) and send it
to the gesture endpoint, then print what came back.

Examples:
  dinogesture check-endpoint --image ./fist.jpg
  dinogesture check-endpoint --endpoint http://10.0.0.5:5000/process_frame`,
	Args: cobra.NoArgs,
	RunE: runCheckEndpoint,
}

func init() {
	checkEndpointCmd.Flags().StringVar(&flagImage, "image", "", "Image file to send instead of a camera frame")
	checkEndpointCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Override the configured endpoint URL")
}

func runCheckEndpoint(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if flagEndpoint != "" {
		cfg.Gesture.Endpoint = flagEndpoint
	}
	logger, err := newLogger(os.Stderr, "check")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	img, err := grabFrame(ctx, cfg.Gesture)
	if err != nil {
		return err
	}

	signal := gesture.NewSignal()
	client := gesture.NewClient(cfg.Gesture, nil, signal, logger)
	resp, err := client.Classify(ctx, img)
	if err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Printf("Endpoint:  %s\n", cfg.Gesture.Endpoint)
	fmt.Printf("Frame:     %dx%d\n", b.Dx(), b.Dy())
	fmt.Printf("Jump:      %v\n", resp.Jump)
	fmt.Printf("Landmarks: %d\n", len(resp.Landmarks))
	if len(resp.Landmarks) == gesture.HandPoints {
		fmt.Printf("Local fist check: %v\n", gesture.IsFist(resp.Landmarks))
	}
	return nil
}

// grabFrame reads --image, or one frame from the configured camera.
func grabFrame(ctx context.Context, cfg config.GestureConfig) (image.Image, error) {
	if flagImage != "" {
		return gesture.LoadFrame(flagImage)
	}

	source, err := gesture.OpenSource(cfg)
	if err != nil {
		if errors.Is(err, gesture.ErrNoCamera) {
			return nil, fmt.Errorf("%w (pass --image or configure gesture.source)", err)
		}
		return nil, err
	}
	defer source.Close()

	return source.Frame(ctx)
}
