package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/spritebatch"
)

// StatsText formats frame timing and renderer counters for display.
func StatsText(t *Time, stats spritebatch.Stats) string {
	return fmt.Sprintf("FPS: %.1f (%v)\nTPS: %.1f\nsprites: %d\ndraw calls: %d\nsprites/call: %.1f",
		t.FPS(), t.FrameTime().Round(10_000), ebiten.ActualTPS(),
		stats.Sprites, stats.DrawCalls, stats.SpritesPerCall())
}

// DrawStats prints StatsText in the top-left corner of screen.
func DrawStats(screen *ebiten.Image, t *Time, stats spritebatch.Stats) {
	ebitenutil.DebugPrint(screen, StatsText(t, stats))
}
