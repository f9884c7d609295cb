// Package spritebatch is the batching and geometry core of a 2D sprite
// renderer built on [Ebitengine].
//
// It turns a per-frame stream of textured, transformed quads into the smallest
// sequence of draw submissions that preserves draw order, and computes the
// exact vertex geometry (position, rotation around an origin, scale, flip,
// tint, texture coordinates) of every quad.
//
// # Quick start
//
// Wrap decoded images in [Texture] handles, cut them into [TextureRegion]s and
// place them with [Sprite]s:
//
//	tex := spritebatch.NewTexture(img)
//	cells, _ := spritebatch.SplitTexture(tex, 32, 32)
//	hero := spritebatch.NewSprite(cells[0])
//	hero.Position = mgl32.Vec2{100, 50}
//
// Each frame, draw through a [Renderer]. Sprites drawn inside one batch
// session are grouped into runs of identical texture and submitted once per
// run:
//
//	r := spritebatch.NewRenderer(spritebatch.RendererConfig{
//		Projection: spritebatch.ScreenProjection(640, 480),
//	})
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		surface := spritebatch.NewEbitenSurface(screen)
//		b := g.renderer.BeginBatch(spritebatch.DrawParams{Blend: spritebatch.BlendAlpha}, surface)
//		for _, s := range g.sprites {
//			b.Draw(s)
//		}
//		if _, err := b.Finish(); err != nil {
//			log.Print(err)
//		}
//	}
//
// A batch session must always be finished. Starting another session, or
// drawing immediately, while one is still open panics with [ErrUnclosedBatch].
// [Renderer.DrawBatch] scopes a session and finishes it for you.
//
// The renderer only talks to a [Surface]. [EbitenSurface] renders onto an
// ebiten image; tests and other backends supply their own.
//
// The package is silent unless a logger is installed with [SetLogger].
//
// # Shapes
//
// [ShapeRenderer] queues filled or outlined rectangles and circles and
// submits them to a [Surface] in one draw call, under its own projection.
//
// # Animations
//
// [Animation] maps elapsed time to one of its key frames under a [PlayMode].
// [TweenGroup] interpolates sprite fields with [gween] easing functions.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package spritebatch
