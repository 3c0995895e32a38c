package physics

import (
	"github.com/lixenwraith/asteroids/vmath"
)

// Range is a closed interval of projections onto an axis
type Range struct {
	Min, Max float64
}

// Project dot-products every vertex onto axis and tracks the extremes
func Project(p *vmath.Polygon, axis vmath.V2) Range {
	r := Range{Min: vmath.MaxFloat, Max: vmath.MinFloat}
	for i := 0; i < p.N; i++ {
		d := p.V[i].Dot(axis)
		if d < r.Min {
			r.Min = d
		}
		if d > r.Max {
			r.Max = d
		}
	}
	return r
}

// OverlapOnAxis is true unless the projected intervals are strictly disjoint
// Touching intervals count as overlap
func OverlapOnAxis(a, b *vmath.Polygon, axis vmath.V2) bool {
	ra := Project(a, axis)
	rb := Project(b, axis)
	return !(rb.Max < ra.Min || ra.Max < rb.Min)
}

// SeparatingAxisTest checks the edge normals of a only
// Returns false as soon as one of a's normals separates the shapes
func SeparatingAxisTest(a, b *vmath.Polygon) bool {
	for i := 0; i < a.N; i++ {
		normal := a.Edge(i).Perp()
		if !OverlapOnAxis(a, b, normal) {
			return false
		}
	}
	return true
}

// Intersect reports whether two convex world-space polygons overlap
// Both shapes' normals must be tested; one side alone misses separations
func Intersect(a, b *vmath.Polygon) bool {
	return SeparatingAxisTest(a, b) && SeparatingAxisTest(b, a)
}

// IntersectTransformed moves both local shapes into world space, then tests them
func IntersectTransformed(a vmath.Polygon, ta vmath.Transform, b vmath.Polygon, tb vmath.Transform) bool {
	wa := vmath.TransformPolygon(a, ta)
	wb := vmath.TransformPolygon(b, tb)
	return Intersect(&wa, &wb)
}
