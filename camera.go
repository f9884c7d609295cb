package spritebatch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, Width, Height float32
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera produces the projection matrix for a scrolling, zooming and
// rotating 2D view. Feed ProjectionMatrix to Renderer.SetProjectionMatrix
// every frame the camera moves.
type Camera struct {
	// X and Y are the world position shown at the viewport centre.
	X, Y float32
	// Zoom is the scale factor (1 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float32
	// Rotation is the view rotation in degrees, clockwise.
	Rotation float32

	// BoundsEnabled clamps the camera so the visible area stays within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	width, height float32
	scroll        *scrollAnim
}

// NewCamera returns a camera for a width×height viewport centred on the
// middle of it, so world and pixel coordinates coincide at rest.
func NewCamera(width, height int) *Camera {
	return &Camera{
		X:      float32(width) / 2,
		Y:      float32(height) / 2,
		Zoom:   1,
		width:  float32(width),
		height: float32(height),
	}
}

// Resize changes the viewport size. The camera keeps its world position.
func (c *Camera) Resize(width, height int) {
	c.width, c.height = float32(width), float32(height)
}

// ViewportSize returns the viewport size in pixels.
func (c *Camera) ViewportSize() (width, height float32) {
	return c.width, c.height
}

// ViewMatrix maps world coordinates to viewport pixels:
//
//	Translate(centre) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	m := mgl32.Translate3D(c.width/2, c.height/2, 0).
		Mul4(mgl32.Scale3D(zoom, zoom, 1))
	if c.Rotation != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(-c.Rotation)))
	}
	return m.Mul4(mgl32.Translate3D(-c.X, -c.Y, 0))
}

// ProjectionMatrix maps world coordinates to clip space.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Ortho2D(0, c.width, c.height, 0).Mul4(c.ViewMatrix())
}

// WorldToScreen converts world coordinates to viewport pixels.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{wx, wy, 0, 1})
	return p[0], p[1]
}

// ScreenToWorld converts viewport pixels to world coordinates by unprojecting
// them from clip space.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	p := c.ProjectionMatrix().Inv().Mul4x1(pixelsToClip(sx, sy, c.width, c.height))
	return p[0], p[1]
}

// VisibleBounds returns the world-space bounding box of the viewport.
func (c *Camera) VisibleBounds() Rect {
	inv := c.ViewMatrix().Inv()
	corners := [4]mgl32.Vec4{
		{0, 0, 0, 1},
		{c.width, 0, 0, 1},
		{0, c.height, 0, 1},
		{c.width, c.height, 0, 1},
	}
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, p := range corners {
		w := inv.Mul4x1(p)
		minX, maxX = min(minX, w[0]), max(maxX, w[0])
		minY, maxY = min(minY, w[1]), max(maxY, w[1])
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Visible reports whether any part of s may be inside the viewport. The test
// uses the sprite's unrotated bounds grown to cover any rotation.
func (c *Camera) Visible(s *Sprite) bool {
	size := s.ScaledSize()
	r := float32(math.Hypot(float64(size[0]), float64(size[1])))
	ox := size[0] * s.Origin[0]
	oy := size[1] * s.Origin[1]
	reach := r + float32(math.Hypot(float64(ox), float64(oy)))
	box := Rect{X: s.Position[0] - reach, Y: s.Position[1] - reach, Width: 2 * reach, Height: 2 * reach}
	return box.Intersects(c.VisibleBounds())
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y, duration float32, easeFn ease.TweenFunc) {
	c.scroll = &scrollAnim{
		tweenX: gween.New(c.X, x, duration, easeFn),
		tweenY: gween.New(c.Y, y, duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// SetBounds enables bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances scrolling by dt seconds and applies bounds clamping.
func (c *Camera) Update(dt float32) {
	if c.scroll != nil {
		if !c.scroll.doneX {
			c.X, c.scroll.doneX = c.scroll.tweenX.Update(dt)
		}
		if !c.scroll.doneY {
			c.Y, c.scroll.doneY = c.scroll.tweenY.Update(dt)
		}
		if c.scroll.doneX && c.scroll.doneY {
			c.scroll = nil
		}
	}
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts the camera position so the visible area stays
// within Bounds. Rotation is ignored.
func (c *Camera) clampToBounds() {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	halfW := c.width / (2 * zoom)
	halfH := c.height / (2 * zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = max(minX, min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = max(minY, min(c.Y, maxY))
	}
}
