package vmath

import "math"

// V2 is a 2D vector in world meters (positions) or meters per second (velocities)
type V2 struct {
	X, Y float64
}

// Vec builds a V2
func Vec(x, y float64) V2 { return V2{X: x, Y: y} }

func (a V2) Add(b V2) V2 { return V2{a.X + b.X, a.Y + b.Y} }
func (a V2) Sub(b V2) V2 { return V2{a.X - b.X, a.Y - b.Y} }
func (a V2) Neg() V2     { return V2{-a.X, -a.Y} }

// Scale multiplies vector by scalar factor
func (a V2) Scale(s float64) V2 { return V2{a.X * s, a.Y * s} }

// Hadamard returns the per-component product
func (a V2) Hadamard(b V2) V2 { return V2{a.X * b.X, a.Y * b.Y} }

// DivSafe returns the per-component quotient, 0 where b is zero
func (a V2) DivSafe(b V2) V2 { return V2{SafeRatio0(a.X, b.X), SafeRatio0(a.Y, b.Y)} }

// Dot returns x1*x2 + y1*y2
func (a V2) Dot(b V2) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product
func (a V2) Cross(b V2) float64 { return a.X*b.Y - a.Y*b.X }

// LenSq returns squared magnitude without sqrt
func (a V2) LenSq() float64 { return a.Dot(a) }

// Len returns Euclidean length
func (a V2) Len() float64 { return math.Sqrt(a.LenSq()) }

// Normalize returns unit vector, zero-safe
func (a V2) Normalize() V2 {
	l := a.Len()
	return V2{SafeRatio0(a.X, l), SafeRatio0(a.Y, l)}
}

// ClampLength limits vector to maxLen while preserving direction
// Returns unchanged vector if length <= maxLen or length is zero
func (a V2) ClampLength(maxLen float64) V2 {
	lsq := a.LenSq()
	if lsq <= maxLen*maxLen || lsq == 0 {
		return a
	}
	return a.Normalize().Scale(maxLen)
}

// Perp returns vector rotated 90° counter-clockwise
func (a V2) Perp() V2 { return V2{-a.Y, a.X} }

// Rotate rotates vector by angle in radians
func (a V2) Rotate(angle float64) V2 {
	sin, cos := math.Sincos(angle)
	return V2{cos*a.X - sin*a.Y, sin*a.X + cos*a.Y}
}

// Angle returns the direction of the vector in (-π, π]
func (a V2) Angle() float64 { return math.Atan2(a.Y, a.X) }
