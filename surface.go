package spritebatch

import "github.com/go-gl/mathgl/mgl32"

// Surface is the backend capability the renderer draws through. It owns the
// vertex storage the renderer uploads into and executes draw submissions
// against its render target.
type Surface interface {
	// UploadVertices writes vertices into the surface's vertex storage
	// starting at vertex index offset.
	UploadVertices(offset int, vertices []Vertex) error
	// SubmitDraw renders one range of previously uploaded vertices.
	SubmitDraw(call *DrawCall) error
}

// DrawCall describes a single draw submission.
type DrawCall struct {
	// FirstVertex and VertexCount select the uploaded vertex range.
	FirstVertex int
	VertexCount int
	// Indices is the slice of the shared index buffer covering the range.
	// Values index the uploaded storage, not the range.
	Indices []uint32
	// Texture is bound for sampling.
	Texture *Texture
	// Shader is the renderer's program handle, nil for the backend default.
	Shader any
	// Projection maps world positions to clip space.
	Projection mgl32.Mat4
	Params     DrawParams
}

// Quads returns the number of quads covered by the call.
func (c *DrawCall) Quads() int {
	return c.VertexCount / verticesPerQuad
}
