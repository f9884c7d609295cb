// Package app runs a spritebatch application on top of ebiten's game loop:
// window setup from a Config, frame timing, resize and focus notifications.
package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// App is the per-frame logic of an application.
type App interface {
	// Update advances the application by one frame. Returning
	// ebiten.Termination ends Run without error.
	Update(t *Time) error
	// Draw renders the current frame.
	Draw(screen *ebiten.Image)
}

// Resizer is implemented by apps that react to framebuffer size changes.
// It is called once before the first Update and whenever the size changes.
type Resizer interface {
	Resize(width, height int)
}

// Pauser is implemented by apps that react to the window losing and
// regaining focus.
type Pauser interface {
	Pause()
	Resume()
}

// Destroyer is implemented by apps that release resources when Run returns.
type Destroyer interface {
	Destroy()
}

// game adapts an App to ebiten.Game.
type game struct {
	app App
	cfg Config
	now func() time.Time

	time   *Time
	width  int
	height int
	paused bool
}

func newGame(cfg Config, a App, now func() time.Time) *game {
	return &game{
		app:  a,
		cfg:  cfg,
		now:  now,
		time: newTime(now()),
	}
}

func (g *game) Update() error {
	g.checkFocus(ebiten.IsFocused())
	g.time.tick(g.now())
	return g.app.Update(g.time)
}

func (g *game) checkFocus(focused bool) {
	p, ok := g.app.(Pauser)
	if !ok || focused != g.paused {
		return
	}
	g.paused = !focused
	if g.paused {
		p.Pause()
	} else {
		p.Resume()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.app.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.cfg.Width, g.cfg.Height
	if g.cfg.Resizable {
		w, h = outsideWidth, outsideHeight
	}
	g.resize(w, h)
	return w, h
}

func (g *game) resize(w, h int) {
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	if r, ok := g.app.(Resizer); ok {
		r.Resize(w, h)
	}
}

// Run opens a window described by cfg and drives a until it terminates or
// the window is closed.
func Run(cfg Config, a App) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if d, ok := a.(Destroyer); ok {
		defer d.Destroy()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetVsyncEnabled(cfg.VSync)
	if cfg.FPS == 0 {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	} else {
		ebiten.SetTPS(cfg.FPS)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(newGame(cfg, a, time.Now)); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}
