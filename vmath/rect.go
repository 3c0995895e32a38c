package vmath

// Rect2 is an axis-aligned rectangle
type Rect2 struct {
	Min, Max V2
}

// RectMinSize builds a rectangle from its minimum corner
func RectMinSize(min, size V2) Rect2 {
	return Rect2{Min: min, Max: min.Add(size)}
}

// RectCenterSize builds a rectangle around a center point
func RectCenterSize(center, size V2) Rect2 {
	half := size.Scale(0.5)
	return Rect2{Min: center.Sub(half), Max: center.Add(half)}
}

// InvertedRect returns an empty accumulator: Include on it yields the first point
func InvertedRect() Rect2 {
	return Rect2{Min: V2{MaxFloat, MaxFloat}, Max: V2{MinFloat, MinFloat}}
}

func (r Rect2) Size() V2   { return r.Max.Sub(r.Min) }
func (r Rect2) Center() V2 { return r.Min.Add(r.Size().Scale(0.5)) }

// Translate moves the rectangle by d
func (r Rect2) Translate(d V2) Rect2 {
	return Rect2{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Rescale multiplies both corners by scale per component
func (r Rect2) Rescale(scale V2) Rect2 {
	return Rect2{Min: r.Min.Hadamard(scale), Max: r.Max.Hadamard(scale)}
}

// Include grows the rectangle to contain p
func (r Rect2) Include(p V2) Rect2 {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Contains reports whether p lies inside or on the edge
func (r Rect2) Contains(p V2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
