package spritebatch

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const singlePageJSON = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    },
    "enemy.png": {
      "frame": {"x": 64, "y": 0, "w": 32, "h": 48},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 48},
      "sourceSize": {"w": 32, "h": 48}
    },
    "trimmed.png": {
      "frame": {"x": 100, "y": 50, "w": 60, "h": 58},
      "rotated": false,
      "trimmed": true,
      "spriteSourceSize": {"x": 2, "y": 3, "w": 60, "h": 58},
      "sourceSize": {"w": 64, "h": 64}
    }
  },
  "meta": {
    "image": "atlas.png",
    "size": {"w": 256, "h": 256}
  }
}`

const multiPageJSON = `{
  "textures": [
    {
      "image": "atlas-0.png",
      "frames": {
        "page0_sprite.png": {
          "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
          "sourceSize": {"w": 64, "h": 64}
        }
      }
    },
    {
      "image": "atlas-1.png",
      "frames": {
        "page1_sprite.png": {
          "frame": {"x": 10, "y": 20, "w": 50, "h": 50},
          "sourceSize": {"w": 50, "h": 50}
        }
      }
    }
  ]
}`

const walkJSON = `{
  "frames": {
    "walk_10.png": {"frame": {"x": 0, "y": 16, "w": 16, "h": 16}},
    "walk_2.png": {"frame": {"x": 32, "y": 0, "w": 16, "h": 16}},
    "walk_1.png": {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}},
    "walk_0.png": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}},
    "walk_idle.png": {"frame": {"x": 48, "y": 0, "w": 16, "h": 16}},
    "run_0.png": {"frame": {"x": 48, "y": 16, "w": 16, "h": 16}}
  }
}`

func loadTestAtlas(t *testing.T, data string, pages ...*Texture) *Atlas {
	t.Helper()
	atlas, err := LoadAtlas([]byte(data), pages)
	if err != nil {
		t.Fatal(err)
	}
	return atlas
}

func TestLoadAtlasSinglePage(t *testing.T) {
	page := NewTextureSize(256, 256)
	atlas := loadTestAtlas(t, singlePageJSON, page)

	if atlas.Len() != 3 {
		t.Errorf("Len = %d, want 3", atlas.Len())
	}
	r := atlas.Region("enemy.png")
	if r.Texture() != page {
		t.Error("region not bound to page texture")
	}
	if x, y := r.Offset(); x != 64 || y != 0 {
		t.Errorf("offset = (%d,%d), want (64,0)", x, y)
	}
	if w, h := r.Size(); w != 32 || h != 48 {
		t.Errorf("size = %dx%d, want 32x48", w, h)
	}
}

func TestLoadAtlasTrimmedFrame(t *testing.T) {
	atlas := loadTestAtlas(t, singlePageJSON, NewTextureSize(256, 256))
	f, ok := atlas.Lookup("trimmed.png")
	if !ok {
		t.Fatal("trimmed.png missing")
	}
	if f.SourceW != 64 || f.SourceH != 64 || f.OffsetX != 2 || f.OffsetY != 3 {
		t.Errorf("frame = %+v", f)
	}
}

func TestLoadAtlasMultiPage(t *testing.T) {
	p0, p1 := NewTextureSize(128, 128), NewTextureSize(128, 128)
	atlas := loadTestAtlas(t, multiPageJSON, p0, p1)

	f, ok := atlas.Lookup("page1_sprite.png")
	if !ok {
		t.Fatal("page1_sprite.png missing")
	}
	if f.Page != 1 || f.Region.Texture() != p1 {
		t.Errorf("page = %d, texture match = %v", f.Page, f.Region.Texture() == p1)
	}
	if atlas.Region("page0_sprite.png").Texture() != p0 {
		t.Error("page0 frame bound to wrong texture")
	}
}

func TestLoadAtlasRotatedRejected(t *testing.T) {
	data := `{"frames": {"r.png": {"frame": {"x": 0, "y": 0, "w": 8, "h": 4}, "rotated": true}}}`
	_, err := LoadAtlas([]byte(data), []*Texture{NewTextureSize(16, 16)})
	if !errors.Is(err, ErrRotatedFrame) {
		t.Errorf("err = %v, want ErrRotatedFrame", err)
	}
}

func TestLoadAtlasFrameOutOfBounds(t *testing.T) {
	_, err := LoadAtlas([]byte(singlePageJSON), []*Texture{NewTextureSize(64, 64)})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestLoadAtlasMissingPage(t *testing.T) {
	if _, err := LoadAtlas([]byte(multiPageJSON), []*Texture{NewTextureSize(128, 128)}); err == nil {
		t.Error("expected error for missing page texture")
	}
}

func TestLoadAtlasInvalidJSON(t *testing.T) {
	if _, err := LoadAtlas([]byte("{not json"), nil); err == nil {
		t.Error("expected parse error")
	}
	_, err := LoadAtlas([]byte(`{"meta": {}}`), nil)
	if err == nil || !strings.Contains(err.Error(), "neither") {
		t.Errorf("err = %v, want missing frames error", err)
	}
}

func TestAtlasNamesSorted(t *testing.T) {
	atlas := loadTestAtlas(t, singlePageJSON, NewTextureSize(256, 256))
	names := atlas.Names()
	want := []string{"enemy.png", "hero.png", "trimmed.png"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestAtlasMissingRegionPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	atlas := loadTestAtlas(t, singlePageJSON, NewTextureSize(256, 256))
	r := atlas.Region("nope.png")

	if w, h := r.Size(); w != 1 || h != 1 {
		t.Errorf("placeholder size = %dx%d, want 1x1", w, h)
	}
	if r.Texture() == nil || r.Texture().Image() == nil {
		t.Fatal("placeholder has no image")
	}
	if r.Texture() != atlas.Region("other.png").Texture() {
		t.Error("placeholder texture should be shared")
	}
	if !strings.Contains(buf.String(), "nope.png") {
		t.Errorf("warning not logged: %q", buf.String())
	}
}

func TestAtlasAnimationOrdersByNumber(t *testing.T) {
	atlas := loadTestAtlas(t, walkJSON, NewTextureSize(64, 32))
	anim, err := atlas.Animation("walk_", 0.1, PlayLoop)
	if err != nil {
		t.Fatal(err)
	}
	if anim.FrameCount() != 4 {
		t.Fatalf("frames = %d, want 4", anim.FrameCount())
	}
	wantX := []int{0, 16, 32, 0}
	wantY := []int{0, 0, 0, 16}
	for i, f := range anim.KeyFrames() {
		if x, y := f.Offset(); x != wantX[i] || y != wantY[i] {
			t.Errorf("frame %d at (%d,%d), want (%d,%d)", i, x, y, wantX[i], wantY[i])
		}
	}
}

func TestAtlasAnimationNoFrames(t *testing.T) {
	atlas := loadTestAtlas(t, walkJSON, NewTextureSize(64, 32))
	if _, err := atlas.Animation("jump_", 0.1, PlayLoop); !errors.Is(err, ErrNoKeyFrames) {
		t.Errorf("err = %v, want ErrNoKeyFrames", err)
	}
}

func TestLoadAtlasWithImagePage(t *testing.T) {
	page := NewTexture(ebiten.NewImage(256, 256))
	atlas := loadTestAtlas(t, singlePageJSON, page)
	if atlas.Region("hero.png").Texture().Image() == nil {
		t.Error("region lost the page image")
	}
}
