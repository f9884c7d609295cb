package spritebatch

import (
	"cmp"
	"encoding/json"
	"fmt"
	"image/color"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasFrame is one named frame of a packed atlas.
type AtlasFrame struct {
	Region TextureRegion
	// Page is the index of the page texture holding the frame.
	Page int
	// SourceW and SourceH are the untrimmed size as authored.
	SourceW, SourceH int
	// OffsetX and OffsetY locate the trimmed rectangle inside the untrimmed
	// source.
	OffsetX, OffsetY int
}

// Atlas holds the page textures of a TexturePacker atlas and its named
// frames.
type Atlas struct {
	// Pages contains the page textures indexed by page number.
	Pages  []*Texture
	frames map[string]AtlasFrame
}

// Region returns the region named name. A missing name logs a warning and
// yields a 1×1 magenta placeholder so the mistake is visible on screen.
func (a *Atlas) Region(name string) TextureRegion {
	if f, ok := a.frames[name]; ok {
		return f.Region
	}
	Logger().Warn("spritebatch: atlas region not found, using magenta placeholder", "name", name)
	return NewRegion(magentaTexture())
}

// Lookup returns the frame named name.
func (a *Atlas) Lookup(name string) (AtlasFrame, bool) {
	f, ok := a.frames[name]
	return f, ok
}

// Names returns all frame names, sorted.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of frames.
func (a *Atlas) Len() int {
	return len(a.frames)
}

// Animation builds an animation from the frames named prefix followed by a
// frame number and an optional extension ("walk_0.png", "walk_1.png", ...),
// ordered by that number. Frames whose suffix is not a number are skipped.
func (a *Atlas) Animation(prefix string, frameDuration float32, mode PlayMode) (*Animation, error) {
	type numbered struct {
		n      int
		region TextureRegion
	}
	var found []numbered
	for name, f := range a.frames {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(rest, path.Ext(rest)))
		if err != nil {
			continue
		}
		found = append(found, numbered{n, f.Region})
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no atlas frames named %q<n>", ErrNoKeyFrames, prefix)
	}
	slices.SortFunc(found, func(x, y numbered) int { return cmp.Compare(x.n, y.n) })

	frames := make([]TextureRegion, len(found))
	for i, f := range found {
		frames[i] = f.region
	}
	return NewAnimation(frameDuration, frames, mode)
}

// magenta placeholder singleton; rendering is single-threaded.
var magentaTex *Texture

func magentaTexture() *Texture {
	if magentaTex == nil {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
		magentaTex = NewTexture(img)
	}
	return magentaTex
}

// LoadAtlas parses TexturePacker JSON data and binds its frames to pages.
// Both the hash format (single "frames" object, page 0) and the array
// format ("textures" array with per-page frame lists) are accepted. Frames
// must lie inside their page and must not be packed rotated.
func LoadAtlas(jsonData []byte, pages []*Texture) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("spritebatch: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:  pages,
		frames: make(map[string]AtlasFrame),
	}

	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("spritebatch: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			if err := atlas.addFrames(tex.Frames, i); err != nil {
				return nil, err
			}
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("spritebatch: failed to parse atlas frames: %w", err)
		}
		if err := atlas.addFrames(frames, 0); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("spritebatch: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func (a *Atlas) addFrames(frames map[string]jsonFrame, page int) error {
	if len(frames) == 0 {
		return nil
	}
	if page >= len(a.Pages) || a.Pages[page] == nil {
		return fmt.Errorf("spritebatch: atlas page %d has no texture (%d given)", page, len(a.Pages))
	}
	tex := a.Pages[page]
	for name, f := range frames {
		if f.Rotated {
			return fmt.Errorf("%w: %q", ErrRotatedFrame, name)
		}
		region, err := NewSubRegion(tex, f.Frame.X, f.Frame.Y, f.Frame.W, f.Frame.H)
		if err != nil {
			return fmt.Errorf("spritebatch: atlas frame %q: %w", name, err)
		}
		srcW, srcH := f.SourceSize.W, f.SourceSize.H
		if srcW == 0 && srcH == 0 {
			srcW, srcH = f.Frame.W, f.Frame.H
		}
		a.frames[name] = AtlasFrame{
			Region:  region,
			Page:    page,
			SourceW: srcW,
			SourceH: srcH,
			OffsetX: f.SpriteSourceSize.X,
			OffsetY: f.SpriteSourceSize.Y,
		}
	}
	return nil
}
