package engine

import (
	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

// Particle is a short-lived visual; it dies when its scale shrinks to zero
type Particle struct {
	T      vmath.Transform
	DP     vmath.V2
	DScale vmath.V2
}

// ParticleSystem is a fixed-capacity swap-remove array with its own sequence
type ParticleSystem struct {
	items []Particle
	n     int
	rng   vmath.Random
}

// NewParticleSystem allocates capacity particles from a
func NewParticleSystem(a arena.Allocator, capacity int, seed uint64) *ParticleSystem {
	return &ParticleSystem{
		items: arena.MakeSlice[Particle](a, capacity),
		rng:   vmath.NewRandom(seed),
	}
}

// Emit spawns up to count particles inside area, heading between minDir and maxDir
// Requests past capacity are dropped; returns the number emitted
func (ps *ParticleSystem) Emit(count int, area vmath.Rect2, minDir, maxDir vmath.V2) int {
	count = min(count, len(ps.items)-ps.n)
	r := &ps.rng
	for k := 0; k < count; k++ {
		pos := vmath.V2{
			X: r.Range(area.Min.X, area.Max.X),
			Y: r.Range(area.Min.Y, area.Max.Y),
		}
		dir := vmath.V2{
			X: r.Range(minDir.X, maxDir.X),
			Y: r.Range(minDir.Y, maxDir.Y),
		}.Normalize()
		speed := r.Range(parameter.ParticleMinSpeed, parameter.ParticleMaxSpeed)
		scale := r.Range(parameter.ParticleMinScale, parameter.ParticleMaxScale)
		decay := r.Range(parameter.ParticleMaxDecay, parameter.ParticleMinDecay)

		ps.items[ps.n] = Particle{
			T:      vmath.Transform{P: pos, Scale: vmath.V2{X: scale, Y: scale}},
			DP:     dir.Scale(speed),
			DScale: vmath.V2{X: decay, Y: decay},
		}
		ps.n++
	}
	return count
}

// Step integrates every particle, swap-removes the dead and visits survivors
// visit may be nil
func (ps *ParticleSystem) Step(dt float64, visit func(*Particle)) {
	for i := 0; i < ps.n; {
		p := &ps.items[i]
		p.T.P = p.T.P.Add(p.DP.Scale(dt))
		p.T.Scale = p.T.Scale.Add(p.DScale.Scale(dt))
		if p.T.Scale.X <= 0 || p.T.Scale.Y <= 0 {
			ps.n--
			ps.items[i] = ps.items[ps.n]
			continue
		}
		if visit != nil {
			visit(p)
		}
		i++
	}
}

// Len returns the live particle count
func (ps *ParticleSystem) Len() int { return ps.n }

// Cap returns the particle capacity
func (ps *ParticleSystem) Cap() int { return len(ps.items) }

// Items returns live particles
func (ps *ParticleSystem) Items() []Particle { return ps.items[:ps.n] }

// Reset drops every particle
func (ps *ParticleSystem) Reset() { ps.n = 0 }
