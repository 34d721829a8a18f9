package balloons

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"HappyBirthday2", "HappyBirthday2"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene(SceneConfig{Seed: 1})
	s.Screenshot("a")
	s.Screenshot("b")
	got := s.PendingScreenshots()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("queue = %v, want [a b]", got)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	s := NewScene(SceneConfig{})
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		64, 32, 0, 128, // half-transparent
		255, 0, 0, 255, // opaque red
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	if got := img.Pix[0:4]; got[0] != 127 || got[1] != 63 || got[3] != 128 {
		t.Errorf("pixel 0 = %v, want [127 63 0 128]", got)
	}
	if got := img.Pix[4:8]; got[0] != 255 || got[3] != 255 {
		t.Errorf("pixel 1 = %v, want opaque red", got)
	}
	if got := img.Pix[8:12]; got[3] != 0 {
		t.Errorf("pixel 2 alpha = %d, want 0", got[3])
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 4x2", b)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	err := writePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestSaveScreenshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	if err := saveScreenshots(dir, at, []string{"start", "after click", "start"}, img); err != nil {
		t.Fatalf("saveScreenshots: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]bool)
	for _, e := range entries {
		got[e.Name()] = true
	}
	for _, want := range []string{
		"20240506_070809_start.png",
		"20240506_070809_after_click.png",
		"20240506_070809_start-2.png",
	} {
		if !got[want] {
			t.Errorf("missing %s in %v", want, got)
		}
	}
	if len(entries) != 3 {
		t.Errorf("wrote %d files, want 3", len(entries))
	}
}

func TestSaveScreenshotsBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if err := saveScreenshots(filepath.Join(file, "sub"), time.Now(), []string{"x"}, img); err == nil {
		t.Error("expected error when the directory cannot be created")
	}
}
