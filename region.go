package spritebatch

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureRegion describes a rectangular sub-area of a texture, in pixels and
// in normalized texture space. Value type: copy it freely, all copies share
// the same Texture.
//
// Normalized coordinates are computed once at construction. Only the flip
// flags may change afterwards.
type TextureRegion struct {
	texture *Texture

	x, y          int // pixel offset of the top-left corner
	width, height int // pixel size

	u0, v0 float32 // normalized offset
	du, dv float32 // normalized size

	FlipX bool // mirror horizontally
	FlipY bool // mirror vertically
}

// NewRegion returns a region covering the whole texture.
func NewRegion(tex *Texture) TextureRegion {
	return TextureRegion{
		texture: tex,
		width:   tex.width,
		height:  tex.height,
		du:      1,
		dv:      1,
	}
}

// NewSubRegion returns the region of size w×h whose top-left corner is at
// (x, y) in tex. It fails with ErrOutOfBounds if the rectangle does not fit
// inside the texture, or if the texture has no pixels to normalize against.
func NewSubRegion(tex *Texture, x, y, w, h int) (TextureRegion, error) {
	if err := checkNonEmpty(tex); err != nil {
		return TextureRegion{}, err
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > tex.width || y+h > tex.height {
		return TextureRegion{}, fmt.Errorf("%w: rect (%d,%d %dx%d) in %dx%d texture",
			ErrOutOfBounds, x, y, w, h, tex.width, tex.height)
	}
	return newSubRegion(tex, x, y, w, h), nil
}

func checkNonEmpty(tex *Texture) error {
	if tex.width <= 0 || tex.height <= 0 {
		return fmt.Errorf("%w: empty %dx%d texture", ErrOutOfBounds, tex.width, tex.height)
	}
	return nil
}

func newSubRegion(tex *Texture, x, y, w, h int) TextureRegion {
	tw, th := float32(tex.width), float32(tex.height)
	return TextureRegion{
		texture: tex,
		x:       x,
		y:       y,
		width:   w,
		height:  h,
		u0:      float32(x) / tw,
		v0:      float32(y) / th,
		du:      float32(w) / tw,
		dv:      float32(h) / th,
	}
}

// SplitTexture tiles tex into a row-major grid of cellW×cellH regions. The
// grid has floor(width/cellW) columns and floor(height/cellH) rows; leftover
// pixels on the right and bottom edges are dropped. An empty texture fails
// with ErrOutOfBounds.
func SplitTexture(tex *Texture, cellW, cellH int) ([]TextureRegion, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCellSize, cellW, cellH)
	}
	if err := checkNonEmpty(tex); err != nil {
		return nil, err
	}
	cols, rows := tex.width/cellW, tex.height/cellH
	regions := make([]TextureRegion, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			regions = append(regions, newSubRegion(tex, i*cellW, j*cellH, cellW, cellH))
		}
	}
	return regions, nil
}

// Sub returns a region relative to r: (x, y) is an offset from r's top-left
// corner. The result must fit inside r. Flip flags are not inherited.
func (r TextureRegion) Sub(x, y, w, h int) (TextureRegion, error) {
	if err := checkNonEmpty(r.texture); err != nil {
		return TextureRegion{}, err
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > r.width || y+h > r.height {
		return TextureRegion{}, fmt.Errorf("%w: rect (%d,%d %dx%d) in %dx%d region",
			ErrOutOfBounds, x, y, w, h, r.width, r.height)
	}
	return newSubRegion(r.texture, r.x+x, r.y+y, w, h), nil
}

// Texture returns the texture the region belongs to.
func (r TextureRegion) Texture() *Texture {
	return r.texture
}

// Offset returns the pixel position of the region's top-left corner.
func (r TextureRegion) Offset() (x, y int) {
	return r.x, r.y
}

// Size returns the region size in pixels.
func (r TextureRegion) Size() (w, h int) {
	return r.width, r.height
}

// NormalizedOffset returns the offset divided by the texture size.
func (r TextureRegion) NormalizedOffset() mgl32.Vec2 {
	return mgl32.Vec2{r.u0, r.v0}
}

// NormalizedSize returns the size divided by the texture size.
func (r TextureRegion) NormalizedSize() mgl32.Vec2 {
	return mgl32.Vec2{r.du, r.dv}
}

// TextureCoordinates returns the four UV corners of the region in the order
// top-left, top-right, bottom-left, bottom-right, after applying the flip
// flags. Texture space has its origin at the top-left, V increasing downward.
func (r TextureRegion) TextureCoordinates() [4]mgl32.Vec2 {
	u1, v1 := r.u0+r.du, r.v0+r.dv
	tl := mgl32.Vec2{r.u0, r.v0}
	tr := mgl32.Vec2{u1, r.v0}
	bl := mgl32.Vec2{r.u0, v1}
	br := mgl32.Vec2{u1, v1}

	switch {
	case r.FlipX && r.FlipY:
		return [4]mgl32.Vec2{br, bl, tr, tl}
	case r.FlipX:
		return [4]mgl32.Vec2{tr, tl, br, bl}
	case r.FlipY:
		return [4]mgl32.Vec2{bl, br, tl, tr}
	default:
		return [4]mgl32.Vec2{tl, tr, bl, br}
	}
}
