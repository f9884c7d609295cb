package spritebatch

import (
	"errors"
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestConvertVerticesProjectsToPixels(t *testing.T) {
	target := ebiten.NewImage(800, 600)
	img := ebiten.NewImage(64, 32)
	src := []Vertex{
		{X: 400, Y: 300, U: 0.5, V: 0.25, R: 1, G: 0.5, B: 0, A: 0.5},
		{X: 0, Y: 600, U: 1, V: 1, R: 1, G: 1, B: 1, A: 1},
	}

	out := convertVertices(nil, src, ScreenProjection(800, 600), target, img)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	v := out[0]
	if !near(v.DstX, 400, 1e-2) || !near(v.DstY, 300, 1e-2) {
		t.Errorf("dst = (%f,%f), want (400,300)", v.DstX, v.DstY)
	}
	if v.SrcX != 32 || v.SrcY != 8 {
		t.Errorf("src = (%f,%f), want (32,8)", v.SrcX, v.SrcY)
	}
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("color not premultiplied: (%f,%f,%f,%f)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
	if !near(out[1].DstX, 0, 1e-2) || !near(out[1].DstY, 600, 1e-2) {
		t.Errorf("corner dst = (%f,%f), want (0,600)", out[1].DstX, out[1].DstY)
	}
}

func TestConvertVerticesSubImageOffset(t *testing.T) {
	target := ebiten.NewImage(100, 100)
	sheet := ebiten.NewImage(64, 64)
	sub := sheet.SubImage(image.Rect(16, 8, 48, 40)).(*ebiten.Image)

	out := convertVertices(nil, []Vertex{{U: 0, V: 0}, {U: 1, V: 1}}, mgl32.Ident4(), target, sub)
	if out[0].SrcX != 16 || out[0].SrcY != 8 {
		t.Errorf("src TL = (%f,%f), want (16,8)", out[0].SrcX, out[0].SrcY)
	}
	if out[1].SrcX != 48 || out[1].SrcY != 40 {
		t.Errorf("src BR = (%f,%f), want (48,40)", out[1].SrcX, out[1].SrcY)
	}
}

func TestRebaseIndices(t *testing.T) {
	got := rebaseIndices(nil, []uint32{8, 9, 10, 9, 11, 10}, 8)
	want := []uint32{0, 1, 2, 1, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEbitenSurfaceUploadGrows(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(4, 4))
	if err := s.UploadVertices(4, []Vertex{{X: 1}, {X: 2}}); err != nil {
		t.Fatal(err)
	}
	if len(s.vertices) != 6 || s.vertices[5].X != 2 {
		t.Errorf("vertices = %v", s.vertices)
	}
	if err := s.UploadVertices(0, []Vertex{{X: 9}}); err != nil {
		t.Fatal(err)
	}
	if len(s.vertices) != 6 || s.vertices[0].X != 9 || s.vertices[4].X != 1 {
		t.Errorf("overwrite changed length or data: %v", s.vertices)
	}
	if err := s.UploadVertices(-1, nil); err == nil {
		t.Error("negative offset accepted")
	}
}

func TestEbitenSurfaceRejectsImagelessTexture(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(4, 4))
	quad := BuildQuad(newTestSprite(4, 4))
	_ = s.UploadVertices(0, quad[:])

	err := s.SubmitDraw(&DrawCall{VertexCount: 4, Indices: QuadIndices(1), Texture: NewTextureSize(4, 4)})
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("err = %v, want ErrNoImage", err)
	}
}

func TestEbitenSurfaceRejectsRangeOutsideUpload(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(4, 4))
	tex := NewTexture(ebiten.NewImage(4, 4))
	err := s.SubmitDraw(&DrawCall{FirstVertex: 4, VertexCount: 4, Indices: QuadIndices(1), Texture: tex})
	if err == nil {
		t.Error("expected range error")
	}
}

func TestEbitenSurfaceBatchSubmits(t *testing.T) {
	screen := ebiten.NewImage(64, 64)
	surf := NewEbitenSurface(screen)
	a := NewTexture(ebiten.NewImage(8, 8))
	b := NewTexture(ebiten.NewImage(8, 8))

	r := NewRenderer(RendererConfig{Projection: ScreenProjection(64, 64)})
	batch := r.BeginBatch(DrawParams{Blend: BlendAlpha}, surf)
	for _, tex := range []*Texture{a, a, b} {
		s := NewTextureSprite(tex)
		s.SetPosition(16, 16)
		if err := batch.Draw(s); err != nil {
			t.Fatal(err)
		}
	}
	n, err := batch.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("draw calls = %d, want 2", n)
	}
	if surf.Target() != screen {
		t.Error("Target changed")
	}
}

func TestBlendModeMapping(t *testing.T) {
	if BlendNone.EbitenBlend() != ebiten.BlendCopy {
		t.Error("zero blend mode should copy")
	}
	if BlendAlpha.EbitenBlend() != ebiten.BlendSourceOver {
		t.Error("alpha should map to source-over")
	}
	if FilterLinear.EbitenFilter() != ebiten.FilterLinear || Filter(0).EbitenFilter() != ebiten.FilterNearest {
		t.Error("filter mapping")
	}
	if AddressRepeat.EbitenAddress() != ebiten.AddressRepeat || Address(0).EbitenAddress() != ebiten.AddressUnsafe {
		t.Error("address mapping")
	}
}
