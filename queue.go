package spritebatch

import "fmt"

// Queue is a fixed-capacity, insertion-ordered buffer of quads awaiting
// submission: four vertices per quad plus the texture each quad samples.
// The backing arrays are allocated once and reused after every Clear.
type Queue struct {
	vertices []Vertex
	textures []*Texture
}

// NewQueue returns an empty queue holding at most capacity quads.
func NewQueue(capacity int) *Queue {
	return &Queue{
		vertices: make([]Vertex, 0, capacity*verticesPerQuad),
		textures: make([]*Texture, 0, capacity),
	}
}

// Push appends one quad. Pushing onto a full queue is an internal invariant
// violation and panics with ErrCapacityExceeded.
func (q *Queue) Push(quad [4]Vertex, tex *Texture) {
	if len(q.textures) == cap(q.textures) {
		panic(fmt.Errorf("%w: %d quads", ErrCapacityExceeded, cap(q.textures)))
	}
	q.vertices = append(q.vertices, quad[:]...)
	q.textures = append(q.textures, tex)
}

// Clear empties the queue without releasing storage.
func (q *Queue) Clear() {
	clear(q.textures)
	q.vertices = q.vertices[:0]
	q.textures = q.textures[:0]
}

// Len returns the number of queued quads.
func (q *Queue) Len() int {
	return len(q.textures)
}

// Cap returns the maximum number of quads.
func (q *Queue) Cap() int {
	return cap(q.textures)
}

// Full reports whether another Push would exceed the capacity.
func (q *Queue) Full() bool {
	return len(q.textures) == cap(q.textures)
}

// Vertices returns the queued vertices. The slice MUST NOT be retained past
// the next Clear.
func (q *Queue) Vertices() []Vertex {
	return q.vertices
}

// Textures returns the texture of each queued quad, in order. The slice MUST
// NOT be retained past the next Clear.
func (q *Queue) Textures() []*Texture {
	return q.textures
}
