package physics

import (
	"github.com/lixenwraith/asteroids/vmath"
)

// Integrate performs explicit Euler integration: p += v*dt; angle += w*dt
func Integrate(t *vmath.Transform, vel vmath.V2, angVel, dt float64) {
	t.P = t.P.Add(vel.Scale(dt))
	t.Angle += angVel * dt
}

// ApplyThrust adds a body-frame acceleration rotated by angle: v += rotate(accel, angle)*dt
func ApplyThrust(vel *vmath.V2, accel vmath.V2, angle, dt float64) {
	*vel = vel.Add(accel.Rotate(angle).Scale(dt))
}

// CapSpeed limits the velocity magnitude to maxSpeed, preserving direction
// Returns true if velocity was clamped; zero velocity is never divided
func CapSpeed(vel *vmath.V2, maxSpeed float64) bool {
	if vel.LenSq() <= maxSpeed*maxSpeed {
		return false
	}
	*vel = vel.ClampLength(maxSpeed)
	return true
}

// WrapToroidal folds position into the play area centered on the origin
// Any coordinate beyond half the area extent re-enters from the opposite edge
// Returns true if either axis wrapped
func WrapToroidal(p *vmath.V2, area vmath.V2) bool {
	x := vmath.WrapCentered(p.X, area.X)
	y := vmath.WrapCentered(p.Y, area.Y)
	wrapped := x != p.X || y != p.Y
	p.X, p.Y = x, y
	return wrapped
}
