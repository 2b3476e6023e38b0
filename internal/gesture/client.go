package gesture

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-gesture/internal/config"
)

// Request is the JSON body posted to the classification endpoint.
type Request struct {
	Image string `json:"image"` // JPEG data URL
}

// Response is the JSON body returned by the classification endpoint.
type Response struct {
	Jump      bool       `json:"jump"`
	Landmarks []Landmark `json:"landmarks"`
	Error     string     `json:"error,omitempty"`
}

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Client polls the classification endpoint and publishes results to a Signal.
type Client struct {
	cfg        config.GestureConfig
	httpClient *http.Client
	source     FrameSource
	signal     *Signal
	logger     *log.Logger
}

// NewClient creates a client. A nil logger uses the default logger.
func NewClient(cfg config.GestureConfig, source FrameSource, signal *Signal, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		source:     source,
		signal:     signal,
		logger:     logger.WithPrefix("gesture"),
	}
}

// Run polls every configured interval until ctx is cancelled.
// Polls are sequential: while a request is in flight, ticks are dropped.
func (c *Client) Run(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	c.logger.Info("polling gesture endpoint", "endpoint", c.cfg.Endpoint, "interval", c.cfg.Interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Poll(ctx)
		}
	}
}

// Poll grabs one frame, classifies it and publishes the result.
// Failures are logged and leave the previous snapshot in place.
func (c *Client) Poll(ctx context.Context) {
	img, err := c.source.Frame(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Debug("no frame available", "error", err)
		}
		return
	}

	resp, err := c.Classify(ctx, img)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.Warn("gesture request failed", "error", err)
		}
		return
	}

	jump := resp.Jump
	if c.cfg.Classify == config.ClassifyLandmarks {
		jump = IsFist(resp.Landmarks)
	}

	status := StatusOpenHand
	if jump {
		status = StatusFist
	}
	c.signal.Store(Snapshot{
		Jump:      jump,
		Landmarks: resp.Landmarks,
		Status:    status,
		Updated:   time.Now(),
	})
}

// Classify sends one frame to the endpoint and decodes the reply.
// Returned landmarks are normalized to [0, 1].
func (c *Client) Classify(ctx context.Context, img image.Image) (Response, error) {
	dataURL, err := EncodeFrame(img, c.cfg.JPEGQuality, c.cfg.MaxWidth)
	if err != nil {
		return Response{}, err
	}

	body, err := json.Marshal(Request{Image: dataURL})
	if err != nil {
		return Response{}, fmt.Errorf("gesture: cannot encode request: %w", err)
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("gesture: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("gesture: request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("gesture: cannot read response: %w", err)
	}

	var out Response
	decodeErr := json.Unmarshal(raw, &out)

	if res.StatusCode != http.StatusOK {
		if decodeErr == nil && out.Error != "" {
			return Response{}, fmt.Errorf("gesture: endpoint returned %d: %s", res.StatusCode, out.Error)
		}
		return Response{}, fmt.Errorf("gesture: endpoint returned %d", res.StatusCode)
	}
	if decodeErr != nil {
		return Response{}, fmt.Errorf("gesture: cannot decode response: %w", decodeErr)
	}

	// Pixel landmarks refer to the frame as sent, after downscaling
	w, h := scaledSize(img.Bounds(), c.cfg.MaxWidth)
	out.Landmarks = normalize(out.Landmarks, w, h)
	return out, nil
}
