package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/asteroids/vmath"
)

func square(center vmath.V2, size float64) vmath.Polygon {
	return vmath.RectPolygon(vmath.RectCenterSize(center, vmath.V2{X: size, Y: size}))
}

func TestIntersectDisjointRects(t *testing.T) {
	a := square(vmath.V2{}, 1)
	b := square(vmath.V2{X: 10, Y: 10}, 1)
	if Intersect(&a, &b) {
		t.Error("Expected no intersection for distant rectangles")
	}
}

func TestIntersectIdenticalRects(t *testing.T) {
	a := square(vmath.V2{}, 1)
	b := square(vmath.V2{}, 1)
	if !Intersect(&a, &b) {
		t.Error("Expected identical rectangles to intersect")
	}
}

func TestIntersectTouchingEdges(t *testing.T) {
	a := square(vmath.V2{}, 1)
	b := square(vmath.V2{X: 1}, 1)
	if !Intersect(&a, &b) {
		t.Error("Expected touching rectangles to count as overlap")
	}
}

// The square's axis-aligned normals overlap on both axes; only the
// triangle's diagonal edge separates the pair
func TestIntersectNeedsBothDirections(t *testing.T) {
	sq := vmath.RectPolygon(vmath.Rect2{Max: vmath.V2{X: 1, Y: 1}})
	tri := vmath.NewPolygon(vmath.V2{X: 2, Y: 0.9}, vmath.V2{X: 2, Y: 2}, vmath.V2{X: 0.9, Y: 2})

	if !SeparatingAxisTest(&sq, &tri) {
		t.Fatal("Expected square normals alone to miss the separation")
	}
	if SeparatingAxisTest(&tri, &sq) {
		t.Fatal("Expected triangle normals to find the separation")
	}
	if Intersect(&sq, &tri) {
		t.Error("Expected shapes to be separated")
	}
}

func TestIntersectSymmetric(t *testing.T) {
	r := vmath.NewRandom(42)
	for i := 0; i < 500; i++ {
		a := vmath.RandomConvexPolygon(&r, r.RangeInt(4, 16), 1)
		b := vmath.RandomConvexPolygon(&r, r.RangeInt(4, 16), 1)
		ta := vmath.Transform{P: vmath.V2{X: r.Bilateral() * 2, Y: r.Bilateral() * 2}, Scale: vmath.V2{X: 1.5, Y: 1.5}, Angle: r.Float() * 6}
		tb := vmath.Transform{P: vmath.V2{X: r.Bilateral() * 2, Y: r.Bilateral() * 2}, Scale: vmath.V2{X: 0.7, Y: 1.2}, Angle: r.Float() * 6}

		ab := IntersectTransformed(a, ta, b, tb)
		ba := IntersectTransformed(b, tb, a, ta)
		if ab != ba {
			t.Fatalf("Asymmetric result at iteration %d: %v vs %v", i, ab, ba)
		}
	}
}

func TestProject(t *testing.T) {
	p := square(vmath.V2{X: 3}, 2)
	r := Project(&p, vmath.V2{X: 1})
	if r.Min != 2 || r.Max != 4 {
		t.Errorf("Expected [2,4], got [%v,%v]", r.Min, r.Max)
	}
}

func TestWrapToroidal(t *testing.T) {
	area := vmath.V2{X: 16, Y: 9}
	eps := 0.01
	p := vmath.V2{X: area.X/2 - eps}
	tr := vmath.Transform{P: p, Scale: vmath.V2{X: 1, Y: 1}}

	Integrate(&tr, vmath.V2{X: 3}, 0, 0.5)
	if !WrapToroidal(&tr.P, area) {
		t.Fatal("Expected wrap to occur")
	}
	if tr.P.X >= 0 {
		t.Errorf("Expected negative x after wrap, got %v", tr.P.X)
	}
	if math.Abs(tr.P.X) > area.X/2 {
		t.Errorf("Expected |x| <= %v, got %v", area.X/2, tr.P.X)
	}
}

func TestWrapToroidalLargeStep(t *testing.T) {
	area := vmath.V2{X: 16, Y: 9}
	p := vmath.V2{X: 7.9, Y: -4}
	tr := vmath.Transform{P: p}
	Integrate(&tr, vmath.V2{X: 100, Y: -100}, 0, 1)
	WrapToroidal(&tr.P, area)
	if math.Abs(tr.P.X) > area.X/2 || math.Abs(tr.P.Y) > area.Y/2 {
		t.Errorf("Expected position inside play area, got %v", tr.P)
	}
}

func TestCapSpeed(t *testing.T) {
	v := vmath.V2{X: 20, Y: 0}
	if !CapSpeed(&v, 8) {
		t.Fatal("Expected clamp")
	}
	if v.X != 8 || v.Y != 0 {
		t.Errorf("Expected (8,0), got %v", v)
	}

	zero := vmath.V2{}
	if CapSpeed(&zero, 8) {
		t.Error("Expected zero velocity untouched")
	}
}
