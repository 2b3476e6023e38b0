package gesture

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register decoders for recorded frames
	"image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/vovakirdan/dino-gesture/internal/config"
)

// ErrNoCamera is returned when no frame source is configured or available.
var ErrNoCamera = errors.New("gesture: no camera available")

// FrameSource yields camera frames.
type FrameSource interface {
	// Frame returns the current frame. An error means no frame is available
	// right now; the caller skips this poll.
	Frame(ctx context.Context) (image.Image, error)
	Close() error
}

// OpenSource builds the frame source described by cfg.
// It returns ErrNoCamera (wrapped) when the source cannot be used at all.
func OpenSource(cfg config.GestureConfig) (FrameSource, error) {
	switch cfg.Source {
	case config.SourceCommand:
		return NewCommandSource(cfg.Command)
	case config.SourceDir:
		return NewDirSource(cfg.Dir)
	default:
		return nil, ErrNoCamera
	}
}

// CommandSource runs a capture command per frame. The command must write a
// single encoded image to stdout (e.g. ffmpeg with -frames:v 1 -f image2pipe).
type CommandSource struct {
	argv []string
}

// NewCommandSource checks that the capture program exists.
func NewCommandSource(argv []string) (*CommandSource, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty capture command", ErrNoCamera)
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCamera, err)
	}
	return &CommandSource{argv: argv}, nil
}

// Frame runs the capture command and decodes its output.
func (s *CommandSource) Frame(ctx context.Context) (image.Image, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gesture: capture failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("gesture: cannot decode captured frame: %w", err)
	}
	return img, nil
}

// Close is a no-op; each capture is its own process.
func (s *CommandSource) Close() error {
	return nil
}

var frameExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// DirSource replays recorded frames from a directory in name order, looping.
type DirSource struct {
	mu    sync.Mutex
	files []string
	next  int
}

// NewDirSource lists the image files in dir.
func NewDirSource(dir string) (*DirSource, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: no frame directory set", ErrNoCamera)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCamera, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !frameExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no frames in %s", ErrNoCamera, dir)
	}
	sort.Strings(files)
	return &DirSource{files: files}, nil
}

// Frame decodes the next recorded frame.
func (s *DirSource) Frame(_ context.Context) (image.Image, error) {
	s.mu.Lock()
	path := s.files[s.next]
	s.next = (s.next + 1) % len(s.files)
	s.mu.Unlock()

	return LoadFrame(path)
}

// LoadFrame decodes one image file in any of the supported formats.
func LoadFrame(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gesture: cannot open frame: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gesture: cannot decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Close releases nothing; files are opened per frame.
func (s *DirSource) Close() error {
	return nil
}

// EncodeFrame downscales img to maxWidth (if positive and smaller) and
// returns it as a JPEG data URL.
func EncodeFrame(img image.Image, quality, maxWidth int) (string, error) {
	b := img.Bounds()
	if w, h := scaledSize(b, maxWidth); w != b.Dx() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("gesture: cannot encode frame: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// scaledSize is the size a frame is sent at.
func scaledSize(b image.Rectangle, maxWidth int) (int, int) {
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return b.Dx(), b.Dy()
	}
	return maxWidth, max(b.Dy()*maxWidth/b.Dx(), 1)
}
