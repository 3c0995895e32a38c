package engine

import "github.com/lixenwraith/asteroids/vmath"

// Replicate adds a temporary clone, shifted by one play-area extent, for every
// camera edge (and corner) an entity's bounds cross. Clones exist only for
// drawing this frame; PurgeTemporaries removes them.
// Replication stops silently when the pool has no room
func (w *World) Replicate(camera vmath.Rect2) int {
	n := w.pool.Count()
	clones := 0
	for i := 1; i < n; i++ {
		e := w.pool.At(i)
		if e.Temporary {
			continue
		}
		shape := vmath.TransformPolygon(e.Shape, e.T)
		box := shape.AABB()

		var xs, ys [2]float64
		nx, ny := 0, 0
		if box.Max.X > camera.Max.X {
			xs[nx] = -w.Area.X
			nx++
		}
		if box.Min.X < camera.Min.X {
			xs[nx] = w.Area.X
			nx++
		}
		if box.Min.Y < camera.Min.Y {
			ys[ny] = w.Area.Y
			ny++
		}
		if box.Max.Y > camera.Max.Y {
			ys[ny] = -w.Area.Y
			ny++
		}
		if nx == 0 && ny == 0 {
			continue
		}

		var offsets [8]vmath.V2
		k := 0
		for _, x := range xs[:nx] {
			offsets[k] = vmath.V2{X: x}
			k++
		}
		for _, y := range ys[:ny] {
			offsets[k] = vmath.V2{Y: y}
			k++
		}
		for _, x := range xs[:nx] {
			for _, y := range ys[:ny] {
				offsets[k] = vmath.V2{X: x, Y: y}
				k++
			}
		}

		h := w.pool.HandleAt(i)
		for _, off := range offsets[:k] {
			if w.pool.Free() == 0 {
				return clones
			}
			_, c := w.pool.Duplicate(h)
			c.Temporary = true
			c.Source = h
			c.T.P = c.T.P.Add(off)
			clones++
		}
	}
	return clones
}

// PurgeTemporaries removes every clone; index i is re-checked after a removal
func (w *World) PurgeTemporaries() int {
	removed := 0
	for i := 1; i < w.pool.Count(); {
		if w.pool.At(i).Temporary {
			w.pool.RemoveAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// Temporaries counts live clones
func (w *World) Temporaries() int {
	n := 0
	for i := 1; i < w.pool.Count(); i++ {
		if w.pool.At(i).Temporary {
			n++
		}
	}
	return n
}
