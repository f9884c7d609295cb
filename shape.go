package spritebatch

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeMode selects whether a shape is filled or outlined.
type ShapeMode struct {
	lineWidth float32
}

// ShapeFill fills the shape's interior.
var ShapeFill = ShapeMode{}

// ShapeLine outlines the shape with a stroke width pixels wide.
func ShapeLine(width float32) ShapeMode {
	return ShapeMode{lineWidth: width}
}

// Line reports whether m outlines, and with which width.
func (m ShapeMode) Line() (width float32, ok bool) {
	return m.lineWidth, m.lineWidth > 0
}

// ShapeRenderer tessellates rectangles and circles into colored triangles and
// submits everything queued since the last DrawQueued as one draw call.
//
// Shapes share the geometry model of sprites: world coordinates, rotation in
// degrees clockwise on a Y-down screen, and a projection matrix applied by the
// surface. Outlines overlap at their joins, so they are meant for opaque
// colors.
type ShapeRenderer struct {
	projection mgl32.Mat4
	shader     any

	path    vector.Path
	scratch []ebiten.Vertex
	tris    []uint16

	vertices []Vertex
	indices  []uint32
	call     DrawCall
}

// NewShapeRenderer returns a shape renderer using projection. A zero matrix
// means identity.
func NewShapeRenderer(projection mgl32.Mat4) *ShapeRenderer {
	if projection == (mgl32.Mat4{}) {
		projection = mgl32.Ident4()
	}
	return &ShapeRenderer{projection: projection}
}

// SetShader sets the shader handle passed on every draw call; nil uses the
// surface default.
func (r *ShapeRenderer) SetShader(shader any) {
	r.shader = shader
}

// QueueRect queues a width×height rectangle centred on (x, y) and rotated by
// rotation degrees around that centre.
func (r *ShapeRenderer) QueueRect(mode ShapeMode, x, y, width, height, rotation float32, c Color) {
	x0, y0 := x-width/2, y-height/2
	r.path.Reset()
	r.path.MoveTo(x0, y0)
	r.path.LineTo(x0+width, y0)
	r.path.LineTo(x0+width, y0+height)
	r.path.LineTo(x0, y0+height)
	r.path.Close()

	var m *mgl32.Mat4
	if rotation != 0 {
		rot := rotateAround(rotation, mgl32.Vec2{x, y})
		m = &rot
	}
	r.tessellate(mode, m, c)
}

// QueueCircle queues a circle of radius centred on (x, y). The outline is
// flattened to within a fraction of a pixel.
func (r *ShapeRenderer) QueueCircle(mode ShapeMode, x, y, radius float32, c Color) {
	r.path.Reset()
	r.path.MoveTo(x+radius, y)
	r.path.Arc(x, y, radius, 0, 2*math.Pi, vector.Clockwise)
	r.path.Close()
	r.tessellate(mode, nil, c)
}

func (r *ShapeRenderer) tessellate(mode ShapeMode, m *mgl32.Mat4, c Color) {
	r.scratch, r.tris = r.scratch[:0], r.tris[:0]
	if w, ok := mode.Line(); ok {
		r.scratch, r.tris = r.path.AppendVerticesAndIndicesForStroke(r.scratch, r.tris,
			&vector.StrokeOptions{Width: w})
	} else {
		r.scratch, r.tris = r.path.AppendVerticesAndIndicesForFilling(r.scratch, r.tris)
	}

	base := uint32(len(r.vertices))
	for _, v := range r.scratch {
		px, py := v.DstX, v.DstY
		if m != nil {
			p := m.Mul4x1(mgl32.Vec4{px, py, 0, 1})
			px, py = p[0], p[1]
		}
		r.vertices = append(r.vertices, Vertex{
			X: px, Y: py,
			U: 0.5, V: 0.5,
			R: c.R, G: c.G, B: c.B, A: c.A,
		})
	}
	for _, i := range r.tris {
		r.indices = append(r.indices, base+uint32(i))
	}
}

// Len returns the number of queued vertices.
func (r *ShapeRenderer) Len() int {
	return len(r.vertices)
}

// Vertices returns the queued vertices. The slice is reused after DrawQueued.
func (r *ShapeRenderer) Vertices() []Vertex {
	return r.vertices
}

// Indices returns the queued triangle indices.
func (r *ShapeRenderer) Indices() []uint32 {
	return r.indices
}

// DrawQueued uploads every queued shape and submits them in one alpha-blended
// draw call, then empties the queue. The queue is emptied even when the
// surface fails. Nothing is submitted when the queue is empty.
func (r *ShapeRenderer) DrawQueued(surface Surface) error {
	defer r.Clear()
	if len(r.indices) == 0 {
		return nil
	}
	if err := surface.UploadVertices(0, r.vertices); err != nil {
		return fmt.Errorf("spritebatch: upload %d shape vertices: %w", len(r.vertices), err)
	}
	r.call = DrawCall{
		VertexCount: len(r.vertices),
		Indices:     r.indices,
		Texture:     whiteTexture(),
		Shader:      r.shader,
		Projection:  r.projection,
		Params:      DrawParams{Blend: BlendAlpha},
	}
	if err := surface.SubmitDraw(&r.call); err != nil {
		return fmt.Errorf("spritebatch: draw shapes: %w", err)
	}
	return nil
}

// Clear drops every queued shape.
func (r *ShapeRenderer) Clear() {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// SetProjectionMatrix replaces the projection used by the next DrawQueued.
func (r *ShapeRenderer) SetProjectionMatrix(m mgl32.Mat4) {
	r.projection = m
}

// ProjectionMatrix returns the current projection.
func (r *ShapeRenderer) ProjectionMatrix() mgl32.Mat4 {
	return r.projection
}

// white pixel shared by every shape draw; rendering is single-threaded.
var whiteTex *Texture

func whiteTexture() *Texture {
	if whiteTex == nil {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.White)
		whiteTex = NewTexture(img)
	}
	return whiteTex
}
