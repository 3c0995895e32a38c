package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/vmath"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestViewTransformCameraRect(t *testing.T) {
	area := vmath.V2{X: 16, Y: 9}
	g := NewGroup(arena.NewRegion(1<<16), 4, ViewTransform(vmath.V2{}, area, 1, 0))

	r := g.CameraRect()
	if !near(r.Min.X, -8) || !near(r.Max.X, 8) || !near(r.Min.Y, -4.5) || !near(r.Max.Y, 4.5) {
		t.Errorf("Expected camera rect (-8,-4.5)-(8,4.5), got %v", r)
	}

	g.Transform = ViewTransform(vmath.V2{X: 2, Y: 1}, area, 2, 0)
	r = g.CameraRect()
	c := r.Center()
	if !near(c.X, 2) || !near(c.Y, 1) {
		t.Errorf("Expected camera centered at (2,1), got %v", c)
	}
	if !near(r.Size().X, 8) {
		t.Errorf("Expected zoomed width 8, got %v", r.Size().X)
	}
}

func TestBuildPolygonAndRect(t *testing.T) {
	region := arena.NewRegion(1 << 16)
	area := vmath.V2{X: 16, Y: 9}
	g := NewGroup(region, 4, ViewTransform(vmath.V2{}, area, 1, 0))

	tri := vmath.NewPolygon(vmath.V2{X: 8}, vmath.V2{Y: 4.5}, vmath.V2{X: -8})
	g.PushPolygon(tri, vmath.DefaultTransform(), RGBWhite)
	g.PushRect(vmath.RectCenterSize(vmath.V2{}, vmath.V2{X: 1, Y: 1}), vmath.DefaultTransform(), RGBRed)

	var rec Recorder
	rec.Submit(g.Build())

	if rec.Lines() != 3 {
		t.Errorf("Expected 3 line segments, got %d", rec.Lines())
	}
	if rec.Quads() != 1 {
		t.Errorf("Expected 1 quad, got %d", rec.Quads())
	}
	if p := rec.LineVertices[0].P; !near(p.X, 1) || !near(p.Y, 0) {
		t.Errorf("Expected right edge at device (1,0), got %v", p)
	}
	if p := rec.LineVertices[1].P; !near(p.Y, 1) {
		t.Errorf("Expected top edge at device y=1, got %v", p)
	}
	if rec.LineIndices[4] != 2 || rec.LineIndices[5] != 0 {
		t.Errorf("Expected closing segment 2-0, got %d-%d", rec.LineIndices[4], rec.LineIndices[5])
	}
	if rec.QuadVertices[0].Color != RGBRed {
		t.Errorf("Expected red quad, got %v", rec.QuadVertices[0].Color)
	}
}

func TestGroupGrowsInFrameMemory(t *testing.T) {
	region := arena.NewRegion(1 << 16)
	g := NewGroup(region, 1, vmath.DefaultTransform())
	for i := 0; i < 10; i++ {
		g.PushRect(vmath.Rect2{Max: vmath.V2{X: 1, Y: 1}}, vmath.DefaultTransform(), RGBWhite)
	}
	if g.Len() != 10 {
		t.Fatalf("Expected 10 entries, got %d", g.Len())
	}

	cp := region.Checkpoint()
	used := region.Used()
	g.Build()
	if region.Used() <= used {
		t.Error("Expected batch buffers allocated from the group region")
	}
	region.Restore(cp)
}

func TestBeginDiscardsEntries(t *testing.T) {
	region := arena.NewRegion(1 << 16)
	g := NewGroup(region, 2, vmath.DefaultTransform())
	g.PushRect(vmath.Rect2{}, vmath.DefaultTransform(), RGBWhite)

	region.Reset()
	g.Begin(region, 2, vmath.DefaultTransform())
	if g.Len() != 0 {
		t.Errorf("Expected empty group after Begin, got %d", g.Len())
	}
}

func TestRGBBlend(t *testing.T) {
	got := RGBBlack.Blend(RGBWhite, 0.5)
	if got.R != 127 {
		t.Errorf("Expected 127, got %d", got.R)
	}
	if RGBRed.Add(RGBRed).R != 255 {
		t.Error("Expected additive blend to clamp at 255")
	}
}
