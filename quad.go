package spritebatch

import "github.com/go-gl/mathgl/mgl32"

const (
	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// Vertex is one corner of a quad: world position, normalized texture
// coordinates and straight-alpha tint.
type Vertex struct {
	X, Y       float32
	U, V       float32
	R, G, B, A float32
}

// BuildQuad returns the four vertices (TL, TR, BL, BR) of a sprite. The result
// depends only on the sprite's fields; identical sprites yield identical bits.
func BuildQuad(s *Sprite) [4]Vertex {
	return buildQuad(s.Position, s.ScaledSize(), s.Origin, s.Rotation, s.Region.TextureCoordinates(), s.Tint)
}

// BuildRegionQuad returns the vertices of region drawn with its top-left
// corner at (x, y), stretched to w×h and rotated by rotation degrees around
// the quad centre.
func BuildRegionQuad(region TextureRegion, x, y, w, h, rotation float32, tint Color) [4]Vertex {
	center := mgl32.Vec2{x + w/2, y + h/2}
	return buildQuad(center, mgl32.Vec2{w, h}, mgl32.Vec2{0.5, 0.5}, rotation, region.TextureCoordinates(), tint)
}

func buildQuad(position, size, origin mgl32.Vec2, rotation float32, uv [4]mgl32.Vec2, tint Color) [4]Vertex {
	m := modelMatrix(position, size, origin, rotation)

	var q [4]Vertex
	for i := range q {
		p := m.Mul4x1(quadCorners[i])
		q[i] = Vertex{
			X: p[0], Y: p[1],
			U: uv[i][0], V: uv[i][1],
			R: tint.R, G: tint.G, B: tint.B, A: tint.A,
		}
	}
	return q
}

// QuadIndices returns the index list for n quads: two triangles per quad,
// TL-TR-BL and TR-BR-BL, quad i offset by 4i.
func QuadIndices(n int) []uint32 {
	indices := make([]uint32, n*indicesPerQuad)
	for i, j := 0, uint32(0); i < len(indices); i, j = i+indicesPerQuad, j+verticesPerQuad {
		indices[i+0] = j + 0
		indices[i+1] = j + 1
		indices[i+2] = j + 2
		indices[i+3] = j + 1
		indices[i+4] = j + 3
		indices[i+5] = j + 2
	}
	return indices
}
