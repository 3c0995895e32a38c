// Package render stages draw requests in frame memory and builds vertex
// batches for a backend. Coordinates leaving a Group are normalized device
// coordinates: [-1,1] on both axes, +Y up.
package render

import "github.com/lixenwraith/asteroids/vmath"

// Renderer accepts shapes in world space
type Renderer interface {
	PushPolygon(p vmath.Polygon, t vmath.Transform, c RGB)
	PushRect(r vmath.Rect2, t vmath.Transform, c RGB)
}

// Backend consumes a built batch; the batch is only valid during Submit
type Backend interface {
	Submit(b *Batch)
}
