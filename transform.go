package spritebatch

import "github.com/go-gl/mathgl/mgl32"

// quadCorners are the unit quad corners in vertex order: TL, TR, BL, BR.
var quadCorners = [4]mgl32.Vec4{
	{0, 0, 0, 1},
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{1, 1, 0, 1},
}

// modelMatrix computes the matrix mapping the unit quad to world space.
//
// Composition order:
//
//	Translate(position - pivot) * RotateAround(rotation, pivot) * Scale(size)
//
// where pivot = size * origin. A rotation of exactly 0 contributes no matrix
// at all, so static sprites carry no trigonometric rounding.
func modelMatrix(position, size, origin mgl32.Vec2, rotation float32) mgl32.Mat4 {
	pivot := mgl32.Vec2{size[0] * origin[0], size[1] * origin[1]}
	placement := position.Sub(pivot)

	m := mgl32.Translate3D(placement[0], placement[1], 0)
	if rotation != 0 {
		m = m.Mul4(rotateAround(rotation, pivot))
	}
	return m.Mul4(mgl32.Scale3D(size[0], size[1], 1))
}

// rotateAround returns a Z rotation by degrees around pivot.
func rotateAround(degrees float32, pivot mgl32.Vec2) mgl32.Mat4 {
	return mgl32.Translate3D(pivot[0], pivot[1], 0).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(degrees))).
		Mul4(mgl32.Translate3D(-pivot[0], -pivot[1], 0))
}

// ScreenProjection returns an orthographic projection mapping pixel
// coordinates of a width×height surface (origin top-left, Y down) to clip space.
func ScreenProjection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(width), float32(height), 0)
}

// clipToPixels maps a clip-space point to pixel coordinates of a w×h surface.
func clipToPixels(p mgl32.Vec4, w, h float32) (x, y float32) {
	return (p[0] + 1) * 0.5 * w, (1 - p[1]) * 0.5 * h
}

// pixelsToClip is the inverse of clipToPixels.
func pixelsToClip(x, y, w, h float32) mgl32.Vec4 {
	return mgl32.Vec4{2*x/w - 1, 1 - 2*y/h, 0, 1}
}
