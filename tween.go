package spritebatch

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float32 fields of a Sprite simultaneously.
// Create one with TweenPosition, TweenScale, TweenRotation, TweenTint or
// TweenAlpha and call Update(dt) each frame; values are written straight into
// the sprite.
//
// There is no global animation manager; callers own their groups.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float32
	Done   bool
}

func newTweenGroup(duration float32, fn ease.TweenFunc, fields []*float32, to []float32) *TweenGroup {
	g := &TweenGroup{count: len(fields)}
	for i, f := range fields {
		g.tweens[i] = gween.New(*f, to[i], duration, fn)
		g.fields[i] = f
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// sprite. Done is set once every tween has reached its end value.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds the group to its start values.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
		val, _ := g.tweens[i].Set(0)
		*g.fields[i] = val
	}
	g.Done = false
}

// TweenPosition moves s to the given position.
func TweenPosition(s *Sprite, to mgl32.Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn,
		[]*float32{&s.Position[0], &s.Position[1]},
		to[:])
}

// TweenScale animates s.Scale to the given value.
func TweenScale(s *Sprite, to mgl32.Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn,
		[]*float32{&s.Scale[0], &s.Scale[1]},
		to[:])
}

// TweenRotation animates s.Rotation to the given angle in degrees.
func TweenRotation(s *Sprite, to float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, []*float32{&s.Rotation}, []float32{to})
}

// TweenTint animates all four components of s.Tint.
func TweenTint(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn,
		[]*float32{&s.Tint.R, &s.Tint.G, &s.Tint.B, &s.Tint.A},
		[]float32{to.R, to.G, to.B, to.A})
}

// TweenAlpha animates s.Tint.A only.
func TweenAlpha(s *Sprite, to float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, []*float32{&s.Tint.A}, []float32{to})
}
