package spritebatch

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

var textureIDCounter atomic.Uint32

// Texture is a handle to a decoded image. Regions and sprites alias the same
// handle; batching groups sprites by handle identity, never by content.
//
// A Texture stays alive as long as anything references it. Dispose releases
// the backing image early.
type Texture struct {
	id     uint32
	width  int
	height int
	img    *ebiten.Image
}

// NewTexture wraps an ebiten image. The texture size is the image's bounds size.
func NewTexture(img *ebiten.Image) *Texture {
	b := img.Bounds()
	return &Texture{
		id:     textureIDCounter.Add(1),
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
	}
}

// NewTextureSize returns a texture handle of the given size without a backing
// image. Useful for backends that manage pixels themselves and for tests.
func NewTextureSize(width, height int) *Texture {
	return &Texture{
		id:     textureIDCounter.Add(1),
		width:  width,
		height: height,
	}
}

// ID returns the process-unique texture identifier.
func (t *Texture) ID() uint32 {
	return t.id
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Image returns the backing image, or nil.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Dispose deallocates the backing image. Regions referencing the texture keep
// their geometry but can no longer be drawn by an EbitenSurface.
func (t *Texture) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
