package spritebatch

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxBatchSize is the queue capacity used when RendererConfig leaves
// MaxBatchSize at zero.
const DefaultMaxBatchSize = 1024

// errRendererDisposed is the panic value for use after Dispose.
var errRendererDisposed = errors.New("spritebatch: renderer disposed")

// RendererConfig configures a Renderer. The zero value is usable.
type RendererConfig struct {
	// MaxBatchSize is the number of quads queued before an automatic flush.
	// Zero selects DefaultMaxBatchSize.
	MaxBatchSize int
	// Projection maps world coordinates to clip space. The zero matrix
	// selects the identity; use ScreenProjection for pixel coordinates.
	Projection mgl32.Mat4
	// Shader is passed through to every DrawCall. EbitenSurface accepts an
	// *ebiten.Shader; nil selects the backend's default textured pipeline.
	Shader any
	// Debug logs per-session statistics at debug level on Finish.
	Debug bool
}

// Renderer owns the quad queue and the shared index list used by its batch
// sessions. Only one session may be open at a time; a Renderer is not safe
// for concurrent use.
type Renderer struct {
	maxBatch   int
	queue      *Queue
	indices    []uint32
	projection mgl32.Mat4
	shader     any
	debug      bool

	active *session
	call   DrawCall
	stats  Stats
}

// NewRenderer allocates a renderer's queue and precomputes its index list
// for MaxBatchSize quads.
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultMaxBatchSize
	}
	if cfg.Projection == (mgl32.Mat4{}) {
		cfg.Projection = mgl32.Ident4()
	}
	return &Renderer{
		maxBatch:   cfg.MaxBatchSize,
		queue:      NewQueue(cfg.MaxBatchSize),
		indices:    QuadIndices(cfg.MaxBatchSize),
		projection: cfg.Projection,
		shader:     cfg.Shader,
		debug:      cfg.Debug,
	}
}

func (r *Renderer) checkIdle(op string) {
	if r.queue == nil {
		panic(fmt.Errorf("%w: %s", errRendererDisposed, op))
	}
	if r.active != nil {
		panic(fmt.Errorf("%w: %s while a batch with %d sprites is open",
			ErrUnclosedBatch, op, r.active.sprites))
	}
}

// Draw renders a single sprite immediately with one draw call, bypassing
// the queue. It panics if a batch session is open.
func (r *Renderer) Draw(sprite *Sprite, params DrawParams, surface Surface) error {
	r.checkIdle("Draw")

	quad := BuildQuad(sprite)
	if err := surface.UploadVertices(0, quad[:]); err != nil {
		return fmt.Errorf("spritebatch: upload quad: %w", err)
	}
	r.call = DrawCall{
		VertexCount: verticesPerQuad,
		Indices:     r.indices[:indicesPerQuad],
		Texture:     sprite.Texture(),
		Shader:      r.shader,
		Projection:  r.projection,
		Params:      params,
	}
	if err := surface.SubmitDraw(&r.call); err != nil {
		return fmt.Errorf("spritebatch: draw quad: %w", err)
	}
	r.stats.Sprites++
	r.stats.DrawCalls++
	return nil
}

// BeginBatch opens a batch session drawing to surface with params. It panics
// with ErrUnclosedBatch if the previous session was never finished.
func (r *Renderer) BeginBatch(params DrawParams, surface Surface) *Batch {
	r.checkIdle("BeginBatch")
	r.queue.Clear()
	b := newBatch(r, params, surface)
	r.active = b.session
	return b
}

// DrawBatch runs fn inside a batch session and finishes it. If fn returns an
// error the session is abandoned without flushing and the error is returned.
// If fn panics the session is abandoned and the panic continues unchanged, so
// the open session never masks the original failure.
func (r *Renderer) DrawBatch(params DrawParams, surface Surface, fn func(b *Batch) error) (int, error) {
	b := r.BeginBatch(params, surface)
	defer b.Abandon()

	if err := fn(b); err != nil {
		return b.drawCalls, err
	}
	if b.state != batchOpen {
		return b.drawCalls, nil
	}
	return b.Finish()
}

func (r *Renderer) endSession(b *Batch) {
	r.active = nil
	r.stats.Batches++
	r.stats.Sprites += b.sprites
	r.stats.Flushes += b.flushes
	r.stats.DrawCalls += b.drawCalls
	if r.debug {
		logSession(b)
	}
}

// SetProjectionMatrix replaces the projection. Submissions already made keep
// the matrix they were issued with; sprites still queued in an open batch
// use the new one.
func (r *Renderer) SetProjectionMatrix(m mgl32.Mat4) {
	r.projection = m
}

// ProjectionMatrix returns the current projection.
func (r *Renderer) ProjectionMatrix() mgl32.Mat4 {
	return r.projection
}

// MaxBatchSize returns the queue capacity in quads.
func (r *Renderer) MaxBatchSize() int {
	return r.maxBatch
}

// Batching reports whether a batch session is open.
func (r *Renderer) Batching() bool {
	return r.active != nil
}

// Stats returns the statistics accumulated since creation or the last
// ResetStats.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// ResetStats zeroes the accumulated statistics.
func (r *Renderer) ResetStats() {
	r.stats = Stats{}
}

// Dispose releases the renderer's buffers. It panics with ErrUnclosedBatch
// if a session is still open. The renderer must not be used afterwards.
func (r *Renderer) Dispose() {
	r.checkIdle("Dispose")
	r.queue = nil
	r.indices = nil
	r.call = DrawCall{}
}
