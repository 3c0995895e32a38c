package vmath

// Transform maps local space to world space: scale, then rotate, then translate
type Transform struct {
	P     V2
	Scale V2
	Angle float64
}

// DefaultTransform is the identity transform
func DefaultTransform() Transform {
	return Transform{Scale: V2{1, 1}}
}

// Apply transforms a single point
func (t Transform) Apply(v V2) V2 {
	return v.Hadamard(t.Scale).Rotate(t.Angle).Add(t.P)
}

// Translated returns a copy moved by d
func (t Transform) Translated(d V2) Transform {
	t.P = t.P.Add(d)
	return t
}
