package gesture

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dino-gesture/internal/config"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func decodeDataURL(t *testing.T, url string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("data URL has wrong prefix: %.40q", url)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	if err != nil {
		t.Fatalf("bad base64: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not a JPEG: %v", err)
	}
	return img
}

func TestEncodeFrameDownscales(t *testing.T) {
	url, err := EncodeFrame(solid(1280, 720, color.White), 70, 640)
	if err != nil {
		t.Fatalf("EncodeFrame() failed: %v", err)
	}

	b := decodeDataURL(t, url).Bounds()
	if b.Dx() != 640 || b.Dy() != 360 {
		t.Errorf("encoded size = %dx%d, expected 640x360", b.Dx(), b.Dy())
	}
}

func TestEncodeFrameKeepsSmallFrames(t *testing.T) {
	url, err := EncodeFrame(solid(320, 240, color.Black), 70, 640)
	if err != nil {
		t.Fatalf("EncodeFrame() failed: %v", err)
	}

	b := decodeDataURL(t, url).Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("encoded size = %dx%d, expected 320x240", b.Dx(), b.Dy())
	}
}

func TestDirSourceCyclesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), solid(20, 10, color.White))
	writePNG(t, filepath.Join(dir, "a.png"), solid(10, 10, color.White))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := NewDirSource(dir)
	if err != nil {
		t.Fatalf("NewDirSource() failed: %v", err)
	}
	defer src.Close()

	widths := []int{10, 20, 10}
	for i, want := range widths {
		img, err := src.Frame(context.Background())
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got := img.Bounds().Dx(); got != want {
			t.Errorf("frame %d width = %d, expected %d", i, got, want)
		}
	}
}

func TestOpenSourceWithoutCamera(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.GestureConfig
	}{
		{"no source", config.GestureConfig{Source: config.SourceNone}},
		{"empty dir", config.GestureConfig{Source: config.SourceDir, Dir: t.TempDir()}},
		{"missing dir", config.GestureConfig{Source: config.SourceDir, Dir: filepath.Join(t.TempDir(), "nope")}},
		{"empty command", config.GestureConfig{Source: config.SourceCommand}},
		{"unknown program", config.GestureConfig{Source: config.SourceCommand, Command: []string{"definitely-not-a-camera-tool"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OpenSource(tc.cfg)
			if !errors.Is(err, ErrNoCamera) {
				t.Errorf("OpenSource() error = %v, expected ErrNoCamera", err)
			}
		})
	}
}
