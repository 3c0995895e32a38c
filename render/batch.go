package render

import (
	"fmt"

	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/vmath"
)

// Vertex is a device-space point with color
type Vertex struct {
	P     vmath.V2
	Color RGB
}

// Batch holds device-space geometry for one frame
// Lines are index pairs into LineVertices; quads are triangle triples into QuadVertices
type Batch struct {
	LineVertices arena.Buffer[Vertex]
	LineIndices  arena.Buffer[uint32]
	QuadVertices arena.Buffer[Vertex]
	QuadIndices  arena.Buffer[uint32]
}

// Lines returns line vertices and their index pairs
func (b *Batch) Lines() ([]Vertex, []uint32) {
	return b.LineVertices.Items(), b.LineIndices.Items()
}

// Quads returns quad vertices and their triangle indices
func (b *Batch) Quads() ([]Vertex, []uint32) {
	return b.QuadVertices.Items(), b.QuadIndices.Items()
}

// Build transforms every staged entry into device space
// Buffers are allocated from the group's allocator
func (g *Group) Build() *Batch {
	b := &g.batch
	n := g.entries.Len()
	b.LineVertices = arena.NewBuffer[Vertex](g.alloc, n*8)
	b.LineIndices = arena.NewBuffer[uint32](g.alloc, n*16)
	b.QuadVertices = arena.NewBuffer[Vertex](g.alloc, n*4)
	b.QuadIndices = arena.NewBuffer[uint32](g.alloc, n*6)

	for i := range g.entries.Items() {
		e := g.entries.At(i)
		switch e.Kind {
		case EntryPolygon:
			b.addPolygon(&e.Poly, e.T, g.Transform, e.Color)
		case EntryRect:
			b.addRect(e.Rect, e.T, g.Transform, e.Color)
		default:
			panic(fmt.Sprintf("render: unknown entry kind %d", e.Kind))
		}
	}
	return b
}

func (b *Batch) addPolygon(p *vmath.Polygon, model, view vmath.Transform, c RGB) {
	if p.N < 2 {
		return
	}
	base := uint32(b.LineVertices.Len())
	for _, v := range p.Vertices() {
		b.LineVertices.Push(Vertex{P: view.Apply(model.Apply(v)), Color: c})
	}
	for i := 0; i < p.N; i++ {
		next := (i + 1) % p.N
		b.LineIndices.Append(base+uint32(i), base+uint32(next))
	}
}

func (b *Batch) addRect(r vmath.Rect2, model, view vmath.Transform, c RGB) {
	corners := vmath.RectPolygon(r)
	base := uint32(b.QuadVertices.Len())
	for _, v := range corners.Vertices() {
		b.QuadVertices.Push(Vertex{P: view.Apply(model.Apply(v)), Color: c})
	}
	b.QuadIndices.Append(base, base+1, base+2, base, base+2, base+3)
}
