package render

import (
	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/vmath"
)

// EntryKind tags the shape stored in an Entry
type EntryKind uint8

const (
	EntryPolygon EntryKind = iota
	EntryRect
)

// Entry is one staged draw request, pointer-free so it can live in frame memory
type Entry struct {
	Kind  EntryKind
	Color RGB
	T     vmath.Transform
	Poly  vmath.Polygon
	Rect  vmath.Rect2
}

// Group collects entries for one frame under a shared camera transform
// Storage comes from the allocator passed to Begin and dies with it
type Group struct {
	// Transform maps world meters to device coordinates
	Transform vmath.Transform

	alloc   arena.Allocator
	entries arena.Buffer[Entry]
	batch   Batch
}

// NewGroup returns a group already begun on a
func NewGroup(a arena.Allocator, capacity int, camera vmath.Transform) *Group {
	g := &Group{}
	g.Begin(a, capacity, camera)
	return g
}

// Begin discards previous entries and rebinds storage to a
// Call once per frame inside the transient scope
func (g *Group) Begin(a arena.Allocator, capacity int, camera vmath.Transform) {
	g.Transform = camera
	g.alloc = a
	g.entries = arena.NewBuffer[Entry](a, capacity)
	g.batch = Batch{}
}

// ViewTransform fits a play area of the given size into device space
// zoom > 1 magnifies; shake rotates the whole view
func ViewTransform(center, area vmath.V2, zoom, shake float64) vmath.Transform {
	scale := vmath.V2{X: 2 * zoom / area.X, Y: 2 * zoom / area.Y}
	return vmath.Transform{
		P:     center.Neg().Hadamard(scale),
		Scale: scale,
		Angle: shake,
	}
}

// CameraRect is the world-space rectangle visible through Transform
// Rotation is ignored; shake angles are small
func (g *Group) CameraRect() vmath.Rect2 {
	s := g.Transform.Scale
	inv := vmath.V2{X: vmath.SafeRatio0(1, s.X), Y: vmath.SafeRatio0(1, s.Y)}
	center := g.Transform.P.Neg().Hadamard(inv)
	return vmath.RectCenterSize(center, inv.Scale(2))
}

// PushPolygon stages a polygon outline with model transform t
func (g *Group) PushPolygon(p vmath.Polygon, t vmath.Transform, c RGB) {
	g.entries.Push(Entry{Kind: EntryPolygon, Color: c, T: t, Poly: p})
}

// PushRect stages a filled rectangle with model transform t
func (g *Group) PushRect(r vmath.Rect2, t vmath.Transform, c RGB) {
	g.entries.Push(Entry{Kind: EntryRect, Color: c, T: t, Rect: r})
}

// Len returns the number of staged entries
func (g *Group) Len() int { return g.entries.Len() }

// Entries exposes staged entries in submission order
func (g *Group) Entries() []Entry { return g.entries.Items() }
