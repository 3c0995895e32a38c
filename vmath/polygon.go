package vmath

import "fmt"

// MaxPolygonVertices bounds every shape; polygons are fixed-size values
const MaxPolygonVertices = 16

// Polygon is an ordered vertex loop in local or world space
// Fixed storage keeps it pointer-free so it can live inside arena memory
type Polygon struct {
	V [MaxPolygonVertices]V2
	N int
}

// NewPolygon builds a polygon from vertices, panics past MaxPolygonVertices
func NewPolygon(vertices ...V2) Polygon {
	if len(vertices) > MaxPolygonVertices {
		panic(fmt.Sprintf("vmath: polygon has %d vertices, limit is %d", len(vertices), MaxPolygonVertices))
	}
	var p Polygon
	p.N = copy(p.V[:], vertices)
	return p
}

// RectPolygon returns the four corners of r in min/min, min/max, max/max, max/min order
func RectPolygon(r Rect2) Polygon {
	return Polygon{
		V: [MaxPolygonVertices]V2{
			{r.Min.X, r.Min.Y},
			{r.Min.X, r.Max.Y},
			{r.Max.X, r.Max.Y},
			{r.Max.X, r.Min.Y},
		},
		N: 4,
	}
}

// Vertices returns the live vertex slice
func (p *Polygon) Vertices() []V2 {
	return p.V[:p.N]
}

// Edge returns the vector from vertex i to its successor, wrapping at the end
func (p *Polygon) Edge(i int) V2 {
	next := i + 1
	if next == p.N {
		next = 0
	}
	return p.V[next].Sub(p.V[i])
}

// AABB returns the bounding rectangle of the vertices
func (p *Polygon) AABB() Rect2 {
	r := InvertedRect()
	for i := 0; i < p.N; i++ {
		r = r.Include(p.V[i])
	}
	return r
}

// IsConvex reports whether every consecutive edge pair turns the same way
// Cross products within eps of zero count as either sign
func (p *Polygon) IsConvex(eps float64) bool {
	var pos, neg bool
	for i := 0; i < p.N; i++ {
		c := p.Edge(i).Cross(p.Edge((i + 1) % p.N))
		if c > eps {
			pos = true
		} else if c < -eps {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// TransformPolygon applies t to every vertex
func TransformPolygon(p Polygon, t Transform) Polygon {
	var out Polygon
	out.N = p.N
	for i := 0; i < p.N; i++ {
		out.V[i] = t.Apply(p.V[i])
	}
	return out
}
