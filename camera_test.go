package spritebatch

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(800, 600)
	if cam.X != 400 || cam.Y != 300 || cam.Zoom != 1 || cam.Rotation != 0 {
		t.Errorf("camera = (%f,%f) zoom %f rot %f", cam.X, cam.Y, cam.Zoom, cam.Rotation)
	}
}

func TestCameraRestMatchesScreenProjection(t *testing.T) {
	cam := NewCamera(800, 600)
	if !cam.ProjectionMatrix().ApproxEqualThreshold(ScreenProjection(800, 600), 1e-5) {
		t.Errorf("projection at rest = %v", cam.ProjectionMatrix())
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X, cam.Y = 100, 50

	sx, sy := cam.WorldToScreen(100, 50)
	if !near(sx, 400, epsilon) || !near(sy, 300, epsilon) {
		t.Errorf("camera centre maps to (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Zoom = 2

	sx, sy := cam.WorldToScreen(410, 300)
	if !near(sx, 420, epsilon) || !near(sy, 300, epsilon) {
		t.Errorf("zoomed = (%f,%f), want (420,300)", sx, sy)
	}
}

func TestCameraRotation90(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X, cam.Y = 0, 0
	cam.Rotation = 90

	// A point right of the camera appears above the centre.
	sx, sy := cam.WorldToScreen(10, 0)
	if !near(sx, 400, 1e-3) || !near(sy, 290, 1e-3) {
		t.Errorf("rotated = (%f,%f), want (400,290)", sx, sy)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(640, 480)
	cam.X, cam.Y = 123, -45
	cam.Zoom = 1.5
	cam.Rotation = 30

	wx, wy := cam.ScreenToWorld(cam.WorldToScreen(17, 89))
	if !near(wx, 17, 1e-2) || !near(wy, 89, 1e-2) {
		t.Errorf("round trip = (%f,%f), want (17,89)", wx, wy)
	}
}

func TestCameraScreenCentreIsCameraPosition(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X, cam.Y = -310, 42
	cam.Zoom = 2
	cam.Rotation = 75

	wx, wy := cam.ScreenToWorld(400, 300)
	if !near(wx, -310, 1e-2) || !near(wy, 42, 1e-2) {
		t.Errorf("centre = (%f,%f), want (-310,42)", wx, wy)
	}
	// top-left corner at zoom 2 without rotation is half a viewport away
	cam.Rotation = 0
	wx, wy = cam.ScreenToWorld(0, 0)
	if !near(wx, -310-200, 1e-2) || !near(wy, 42-150, 1e-2) {
		t.Errorf("corner = (%f,%f), want (-510,-108)", wx, wy)
	}
}

func TestCameraProjectionMatchesWorldToScreen(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X, cam.Y, cam.Zoom = 250, 120, 0.5

	clip := cam.ProjectionMatrix().Mul4x1(mgl32.Vec4{300, 200, 0, 1})
	px, py := clipToPixels(clip, 800, 600)
	sx, sy := cam.WorldToScreen(300, 200)
	if !near(px, sx, 1e-2) || !near(py, sy, 1e-2) {
		t.Errorf("projection pixel (%f,%f) != view (%f,%f)", px, py, sx, sy)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(800, 600)
	b := cam.VisibleBounds()
	if !near(b.X, 0, epsilon) || !near(b.Y, 0, epsilon) || !near(b.Width, 800, 1e-2) || !near(b.Height, 600, 1e-2) {
		t.Errorf("bounds at zoom 1 = %+v", b)
	}

	cam.Zoom = 2
	b = cam.VisibleBounds()
	if !near(b.X, 200, 1e-2) || !near(b.Width, 400, 1e-2) || !near(b.Height, 300, 1e-2) {
		t.Errorf("bounds at zoom 2 = %+v", b)
	}
}

func TestCameraVisible(t *testing.T) {
	cam := NewCamera(800, 600)
	s := newTestSprite(32, 32)

	s.SetPosition(400, 300)
	if !cam.Visible(s) {
		t.Error("centred sprite culled")
	}
	s.SetPosition(-500, 300)
	if cam.Visible(s) {
		t.Error("far away sprite visible")
	}
	s.SetPosition(-10, 300)
	if !cam.Visible(s) {
		t.Error("sprite overlapping the edge culled")
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.X, cam.Y = 0, 0
	cam.ScrollTo(100, 200, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("Scrolling = false after ScrollTo")
	}

	cam.Update(0.5)
	if !near(cam.X, 50, 1) || !near(cam.Y, 100, 1) {
		t.Errorf("halfway = (%f,%f), want ~(50,100)", cam.X, cam.Y)
	}
	cam.Update(0.5)
	if !near(cam.X, 100, 1) || !near(cam.Y, 200, 1) {
		t.Errorf("end = (%f,%f), want ~(100,200)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("scroll not cleared after completion")
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(100, 100)
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})

	cam.X, cam.Y = 0, 0
	cam.Update(0)
	if cam.X != 50 || cam.Y != 50 {
		t.Errorf("clamp min = (%f,%f), want (50,50)", cam.X, cam.Y)
	}
	cam.X, cam.Y = 999, 999
	cam.Update(0)
	if cam.X != 950 || cam.Y != 950 {
		t.Errorf("clamp max = (%f,%f), want (950,950)", cam.X, cam.Y)
	}

	cam.ClearBounds()
	cam.X = -999
	cam.Update(0)
	if cam.X != -999 {
		t.Errorf("X = %f after ClearBounds, want -999", cam.X)
	}
}

func TestCameraBoundsSmallWorld(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.SetBounds(Rect{Width: 100, Height: 100})
	cam.Update(0)
	if cam.X != 50 || cam.Y != 50 {
		t.Errorf("small world = (%f,%f), want (50,50)", cam.X, cam.Y)
	}
}

func TestCameraResize(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Resize(1024, 768)
	if w, h := cam.ViewportSize(); w != 1024 || h != 768 {
		t.Errorf("viewport = %fx%f", w, h)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	if !a.Intersects(Rect{5, 5, 10, 10}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{10, 0, 5, 5}) {
		t.Error("touching rects should not intersect")
	}
}
