package balloons

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured after the next
// frame is drawn by a Game. The PNG is written to ScreenshotDir with a
// timestamped filename.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// PendingScreenshots returns the labels waiting to be captured.
func (s *Scene) PendingScreenshots() []string {
	return s.screenshotQueue
}

// flushScreenshots reads the rendered frame back once and saves it under
// every queued label. Called by Game.Draw after the scene is drawn.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil

	frame := captureFrame(screen)
	if err := saveScreenshots(s.ScreenshotDir, time.Now(), labels, frame); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[balloons] screenshot: %v\n", err)
	}
}

// captureFrame copies screen into a straight-alpha image.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	size := screen.Bounds().Size()
	pixels := make([]byte, 4*size.X*size.Y)
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, size.X, size.Y)
}

// saveScreenshots writes img to dir once per label and joins any write
// errors. Labels repeated within one capture get a numeric suffix so
// no file overwrites another.
func saveScreenshots(dir string, at time.Time, labels []string, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("balloons: screenshot dir: %w", err)
	}
	stamp := at.Format("20060102_150405")
	seen := make(map[string]int, len(labels))
	var errs []error
	for _, label := range labels {
		name := sanitizeLabel(label)
		if n := seen[name]; n > 0 {
			seen[name]++
			name = fmt.Sprintf("%s-%d", name, n+1)
		} else {
			seen[name] = 1
		}
		if err := writePNG(filepath.Join(dir, stamp+"_"+name+".png"), img); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pixels), len(img.Pix))
	for i := 0; i+3 < n; i += 4 {
		a := pixels[i+3]
		img.Pix[i+3] = a
		for c := 0; c < 3; c++ {
			v := pixels[i+c]
			if a > 0 && a < 255 {
				v = uint8(min(int(v)*255/int(a), 255))
			}
			img.Pix[i+c] = v
		}
	}
	return img
}

// writePNG encodes img to a new file at path.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("balloons: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("balloons: close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("balloons: encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
