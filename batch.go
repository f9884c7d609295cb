package spritebatch

import (
	"fmt"
	"runtime"
)

type batchState uint8

const (
	batchOpen batchState = iota
	batchFinished
	batchAbandoned
)

func (s batchState) String() string {
	switch s {
	case batchOpen:
		return "open"
	case batchFinished:
		return "finished"
	default:
		return "abandoned"
	}
}

// session is the part of a batch the renderer keeps a reference to. It is
// split from Batch so an unreferenced Batch can still be collected (and
// reported) while the renderer remembers that a session is open.
type session struct {
	state     batchState
	sprites   int
	flushes   int
	drawCalls int
}

// Batch is one drawing session against a Renderer. Sprites are queued and
// submitted in maximal runs of the same texture, in submission order, so N
// sprites forming K texture runs cost exactly K draw calls.
//
// A batch is obtained from Renderer.BeginBatch and MUST be closed with
// Finish or Abandon. Until then the renderer refuses to start another
// session. Code that may unwind between BeginBatch and Finish should defer
// Abandon, or use Renderer.DrawBatch which does so.
type Batch struct {
	*session

	r       *Renderer
	surface Surface
	params  DrawParams
}

func newBatch(r *Renderer, params DrawParams, surface Surface) *Batch {
	b := &Batch{
		session: &session{},
		r:       r,
		surface: surface,
		params:  params,
	}
	runtime.AddCleanup(b, reportUnfinished, b.session)
	return b
}

// reportUnfinished runs when a Batch is collected.
func reportUnfinished(s *session) {
	if s.state == batchOpen {
		Logger().Error("spritebatch: batch garbage collected without Finish",
			"sprites", s.sprites, "drawCalls", s.drawCalls)
	}
}

func (b *Batch) checkOpen(op string) {
	if b.state != batchOpen {
		panic(fmt.Errorf("%w: %s on %s batch", ErrBatchFinished, op, b.state))
	}
}

// Draw queues sprite. If the queue is full it is flushed first. An error is
// returned only when the surface rejects an upload or draw; the batch stays
// open and later draws proceed.
func (b *Batch) Draw(sprite *Sprite) error {
	b.checkOpen("Draw")
	return b.push(BuildQuad(sprite), sprite.Texture())
}

// DrawRegion queues region with its top-left corner at (x, y), stretched to
// w×h and rotated by rotation degrees around the centre of that rectangle.
func (b *Batch) DrawRegion(region TextureRegion, x, y, w, h, rotation float32, tint Color) error {
	b.checkOpen("DrawRegion")
	return b.push(BuildRegionQuad(region, x, y, w, h, rotation, tint), region.texture)
}

func (b *Batch) push(quad [4]Vertex, tex *Texture) error {
	var err error
	if b.r.queue.Full() {
		err = b.flush()
	}
	b.r.queue.Push(quad, tex)
	b.sprites++
	return err
}

// flush submits the queued quads, one draw call per texture run, and empties
// the queue. The queue is cleared even when the surface fails.
func (b *Batch) flush() error {
	q := b.r.queue
	if q.Len() == 0 {
		return nil
	}
	defer q.Clear()

	if err := b.surface.UploadVertices(0, q.Vertices()); err != nil {
		return fmt.Errorf("spritebatch: upload %d quads: %w", q.Len(), err)
	}
	b.flushes++

	textures := q.Textures()
	call := &b.r.call
	for start := 0; start < len(textures); {
		end := start + 1
		for end < len(textures) && textures[end] == textures[start] {
			end++
		}
		*call = DrawCall{
			FirstVertex: start * verticesPerQuad,
			VertexCount: (end - start) * verticesPerQuad,
			Indices:     b.r.indices[start*indicesPerQuad : end*indicesPerQuad],
			Texture:     textures[start],
			Shader:      b.r.shader,
			Projection:  b.r.projection,
			Params:      b.params,
		}
		if err := b.surface.SubmitDraw(call); err != nil {
			return fmt.Errorf("spritebatch: draw quads [%d,%d): %w", start, end, err)
		}
		b.drawCalls++
		start = end
	}
	return nil
}

// Finish flushes the remaining sprites, closes the session and returns the
// number of draw calls the session issued. A surface error is returned along
// with the count; the session is closed either way. Finishing an empty batch
// issues no draw calls and returns 0.
func (b *Batch) Finish() (int, error) {
	b.checkOpen("Finish")
	err := b.flush()
	b.state = batchFinished
	b.r.endSession(b)
	return b.drawCalls, err
}

// Abandon closes the session without flushing; queued sprites are dropped
// and the renderer accepts a new session. It is a no-op on a batch that is
// already closed, so it is safe to defer right after BeginBatch.
func (b *Batch) Abandon() {
	if b.state != batchOpen {
		return
	}
	b.state = batchAbandoned
	b.r.queue.Clear()
	b.r.active = nil
}

// DrawCalls returns the number of draw calls issued so far.
func (b *Batch) DrawCalls() int {
	return b.drawCalls
}

// Len returns the number of sprites waiting for the next flush.
func (b *Batch) Len() int {
	if b.state != batchOpen {
		return 0
	}
	return b.r.queue.Len()
}

// Sprites returns the number of sprites drawn into the batch.
func (b *Batch) Sprites() int {
	return b.sprites
}

// Finished reports whether Finish has been called.
func (b *Batch) Finished() bool {
	return b.state == batchFinished
}
