package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshots captures labeled PNGs of rendered frames. Queue labels from
// Update or Draw and call Capture at the end of Draw.
type Screenshots struct {
	// Dir receives the PNG files. It is created on first capture.
	Dir string

	queue []string
	now   func() time.Time
}

// NewScreenshots returns a capturer writing into dir.
func NewScreenshots(dir string) *Screenshots {
	return &Screenshots{Dir: dir, now: time.Now}
}

// Queue requests a capture of the current frame under label.
func (s *Screenshots) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Pending returns the number of queued captures.
func (s *Screenshots) Pending() int {
	return len(s.queue)
}

// Capture writes the frame in screen once for every queued label and
// returns the written paths. The queue is emptied even on error.
func (s *Screenshots) Capture(screen *ebiten.Image) ([]string, error) {
	if len(s.queue) == 0 {
		return nil, nil
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("app: screenshot dir: %w", err)
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := s.now().Format("20060102_150405")
	paths := make([]string, 0, len(s.queue))
	for _, label := range s.queue {
		path := filepath.Join(s.Dir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			return paths, fmt.Errorf("app: screenshot: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for px := img.Pix; len(px) >= 4; px = px[4:] {
		a := int(px[3])
		if a == 0 || a == 255 {
			continue
		}
		for c := range 3 {
			px[c] = uint8(min(int(px[c])*255/a, 255))
		}
	}
	return img
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// sanitizeLabel keeps letters, digits, '-' and '.', mapping anything else to
// '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
