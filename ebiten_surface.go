package spritebatch

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// ProjectionUniform is the uniform name a custom Kage shader declares to
// receive the draw call's projection matrix.
const ProjectionUniform = "Projection"

// EbitenSurface draws onto an ebiten image. Uploaded vertices are kept in
// world space; each SubmitDraw projects its range through the call's
// projection into target pixels and issues a single DrawTriangles32.
type EbitenSurface struct {
	dst *ebiten.Image

	vertices []Vertex

	// scratch buffers reused across submissions
	verts []ebiten.Vertex
	inds  []uint32
}

// NewEbitenSurface returns a surface rendering into dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

// Target returns the destination image.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.dst
}

// SetTarget redirects subsequent submissions to dst. Uploaded vertices are
// kept.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// UploadVertices implements Surface.
func (s *EbitenSurface) UploadVertices(offset int, vertices []Vertex) error {
	if offset < 0 {
		return fmt.Errorf("spritebatch: negative upload offset %d", offset)
	}
	end := offset + len(vertices)
	if end > len(s.vertices) {
		if end > cap(s.vertices) {
			grown := make([]Vertex, end, max(end, 2*cap(s.vertices)))
			copy(grown, s.vertices)
			s.vertices = grown
		} else {
			s.vertices = s.vertices[:end]
		}
	}
	copy(s.vertices[offset:end], vertices)
	return nil
}

// SubmitDraw implements Surface.
func (s *EbitenSurface) SubmitDraw(call *DrawCall) error {
	if call.VertexCount == 0 {
		return nil
	}
	tex := call.Texture
	if tex == nil || tex.img == nil {
		return ErrNoImage
	}
	first, end := call.FirstVertex, call.FirstVertex+call.VertexCount
	if first < 0 || end > len(s.vertices) {
		return fmt.Errorf("spritebatch: draw range [%d,%d) outside %d uploaded vertices",
			first, end, len(s.vertices))
	}

	s.verts = convertVertices(s.verts[:0], s.vertices[first:end], call.Projection, s.dst, tex.img)
	s.inds = rebaseIndices(s.inds[:0], call.Indices, uint32(first))

	if shader, ok := call.Shader.(*ebiten.Shader); ok && shader != nil {
		var op ebiten.DrawTrianglesShaderOptions
		op.Blend = call.Params.Blend.EbitenBlend()
		op.Images[0] = tex.img
		op.Uniforms = map[string]any{
			ProjectionUniform: projectionUniform(call.Projection),
		}
		s.dst.DrawTrianglesShader32(s.verts, s.inds, shader, &op)
		return nil
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = call.Params.Blend.EbitenBlend()
	op.Filter = call.Params.Filter.EbitenFilter()
	op.Address = call.Params.Address.EbitenAddress()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles32(s.verts, s.inds, tex.img, &op)
	return nil
}

// convertVertices appends the ebiten form of src to dst. Positions go through
// proj into the pixel space of target; UVs are scaled to texels of img.
// Colors are premultiplied.
func convertVertices(dst []ebiten.Vertex, src []Vertex, proj mgl32.Mat4, target, img *ebiten.Image) []ebiten.Vertex {
	tb, ib := target.Bounds(), img.Bounds()
	tw, th := float32(tb.Dx()), float32(tb.Dy())
	iw, ih := float32(ib.Dx()), float32(ib.Dy())
	ox, oy := float32(ib.Min.X), float32(ib.Min.Y)

	for i := range src {
		v := &src[i]
		x, y := clipToPixels(proj.Mul4x1(mgl32.Vec4{v.X, v.Y, 0, 1}), tw, th)
		dst = append(dst, ebiten.Vertex{
			DstX:   x + float32(tb.Min.X),
			DstY:   y + float32(tb.Min.Y),
			SrcX:   ox + v.U*iw,
			SrcY:   oy + v.V*ih,
			ColorR: v.R * v.A,
			ColorG: v.G * v.A,
			ColorB: v.B * v.A,
			ColorA: v.A,
		})
	}
	return dst
}

// rebaseIndices appends indices shifted down by first, so they address a
// vertex slice that starts at the first vertex of the draw range.
func rebaseIndices(dst, indices []uint32, first uint32) []uint32 {
	for _, i := range indices {
		dst = append(dst, i-first)
	}
	return dst
}

func projectionUniform(m mgl32.Mat4) []float32 {
	return m[:]
}
