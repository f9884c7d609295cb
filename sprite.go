package spritebatch

import "github.com/go-gl/mathgl/mgl32"

// Sprite is a positioned, rotated, scaled and tinted instance of a
// TextureRegion. Fields may be changed freely between draws.
type Sprite struct {
	// Region is the texture area drawn by the sprite. Flip state lives on
	// the region.
	Region TextureRegion
	// Position is where the origin lands, in world units.
	Position mgl32.Vec2
	// Origin is the pivot for placement and rotation, normalized to the
	// sprite size: (0, 0) is the top-left corner, (0.5, 0.5) the centre.
	// Values outside [0, 1] are allowed and put the pivot outside the quad.
	Origin mgl32.Vec2
	// Rotation around Origin, in degrees. Positive values turn clockwise on
	// a Y-down screen.
	Rotation float32
	// Scale multiplies the region's pixel size.
	Scale mgl32.Vec2
	// Tint multiplies the texture color.
	Tint Color
}

// NewSprite returns a sprite drawing region at the world origin, centred on
// its pivot, unrotated, unscaled and untinted.
func NewSprite(region TextureRegion) *Sprite {
	return &Sprite{
		Region: region,
		Origin: mgl32.Vec2{0.5, 0.5},
		Scale:  mgl32.Vec2{1, 1},
		Tint:   ColorWhite,
	}
}

// NewTextureSprite returns a sprite drawing the whole texture.
func NewTextureSprite(tex *Texture) *Sprite {
	return NewSprite(NewRegion(tex))
}

// SetPosition sets the sprite position.
func (s *Sprite) SetPosition(x, y float32) {
	s.Position = mgl32.Vec2{x, y}
}

// SetUniformScale sets both scale components to scale.
func (s *Sprite) SetUniformScale(scale float32) {
	s.Scale = mgl32.Vec2{scale, scale}
}

// SetFlip sets the flip flags of the sprite's region.
func (s *Sprite) SetFlip(flipX, flipY bool) {
	s.Region.FlipX = flipX
	s.Region.FlipY = flipY
}

// Texture returns the texture the sprite samples from.
func (s *Sprite) Texture() *Texture {
	return s.Region.texture
}

// Size returns the unscaled region size in pixels.
func (s *Sprite) Size() mgl32.Vec2 {
	return mgl32.Vec2{float32(s.Region.width), float32(s.Region.height)}
}

// ScaledSize returns the on-screen size before rotation.
func (s *Sprite) ScaledSize() mgl32.Vec2 {
	sz := s.Size()
	return mgl32.Vec2{sz[0] * s.Scale[0], sz[1] * s.Scale[1]}
}
