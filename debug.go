package spritebatch

import "log/slog"

// Stats are cumulative renderer counters.
type Stats struct {
	Batches   int // finished batch sessions
	Sprites   int // sprites drawn, batched or immediate
	Flushes   int // non-empty queue flushes
	DrawCalls int // draw submissions
}

// SpritesPerCall returns the average number of sprites per draw call.
func (s Stats) SpritesPerCall() float64 {
	if s.DrawCalls == 0 {
		return 0
	}
	return float64(s.Sprites) / float64(s.DrawCalls)
}

// logSession logs the counters of a finished batch.
func logSession(b *Batch) {
	Logger().Debug("spritebatch: batch finished",
		slog.Int("sprites", b.sprites),
		slog.Int("flushes", b.flushes),
		slog.Int("drawCalls", b.drawCalls),
		slog.Int("maxBatchSize", b.r.maxBatch),
	)
}

// CountRuns returns the number of maximal runs of the same texture in
// textures. This is the number of draw calls a single flush of those quads
// issues.
func CountRuns(textures []*Texture) int {
	if len(textures) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(textures); i++ {
		if textures[i] != textures[i-1] {
			runs++
		}
	}
	return runs
}
