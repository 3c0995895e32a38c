package engine

import (
	"testing"

	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

var unitCone = [2]vmath.V2{{X: -1, Y: -1}, {X: 1, Y: 1}}

func TestParticleEmitCapped(t *testing.T) {
	ps := NewParticleSystem(arena.NewRegion(1<<16), 10, parameter.ParticleSeed)
	if n := ps.Emit(25, vmath.Rect2{}, unitCone[0], unitCone[1]); n != 10 {
		t.Errorf("Expected 10 emitted, got %d", n)
	}
	if n := ps.Emit(1, vmath.Rect2{}, unitCone[0], unitCone[1]); n != 0 {
		t.Errorf("Expected 0 emitted when full, got %d", n)
	}
}

func TestParticleEmitRanges(t *testing.T) {
	ps := NewParticleSystem(arena.NewRegion(1<<16), 100, parameter.ParticleSeed)
	area := vmath.Rect2{Min: vmath.V2{X: 1, Y: 1}, Max: vmath.V2{X: 2, Y: 2}}
	ps.Emit(100, area, unitCone[0], unitCone[1])

	for i, p := range ps.Items() {
		if p.T.P.X < 1 || p.T.P.X > 2 || p.T.P.Y < 1 || p.T.P.Y > 2 {
			t.Fatalf("Particle %d outside area: %v", i, p.T.P)
		}
		if s := p.DP.Len(); s > parameter.ParticleMaxSpeed+1e-9 {
			t.Fatalf("Particle %d too fast: %v", i, s)
		}
		if p.T.Scale.X < parameter.ParticleMinScale || p.T.Scale.X > parameter.ParticleMaxScale {
			t.Fatalf("Particle %d scale out of range: %v", i, p.T.Scale.X)
		}
		if p.DScale.X >= 0 {
			t.Fatalf("Particle %d does not shrink: %v", i, p.DScale.X)
		}
	}
}

func TestParticleStep(t *testing.T) {
	ps := NewParticleSystem(arena.NewRegion(1<<16), 50, parameter.ParticleSeed)
	ps.Emit(50, vmath.Rect2{}, unitCone[0], unitCone[1])

	visited := 0
	ps.Step(0.01, func(*Particle) { visited++ })
	if visited != 50 {
		t.Errorf("Expected 50 visits, got %d", visited)
	}

	// Slowest decay 0.2/s from at most 0.3 dies within 1.5s
	visited = 0
	ps.Step(2, func(*Particle) { visited++ })
	if ps.Len() != 0 || visited != 0 {
		t.Errorf("Expected all particles dead, got %d live %d visited", ps.Len(), visited)
	}
}

func TestParticleStepNilVisit(t *testing.T) {
	ps := NewParticleSystem(arena.NewRegion(1<<16), 5, parameter.ParticleSeed)
	ps.Emit(5, vmath.Rect2{}, unitCone[0], unitCone[1])
	ps.Step(0, nil)
	if ps.Len() != 5 {
		t.Errorf("Expected 5 particles after zero step, got %d", ps.Len())
	}
}
