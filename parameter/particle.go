package parameter

// Particle Emission
const (
	ParticleMinSpeed = 0.5
	ParticleMaxSpeed = 5.0

	ParticleMinScale = 0.2
	ParticleMaxScale = 0.3

	// ParticleMinDecay/MaxDecay bound the per-second scale change (negative shrinks)
	ParticleMinDecay = -2.5
	ParticleMaxDecay = -0.2
)

// Thrust Exhaust
const (
	// ThrustParticles is emitted per thrusting frame
	ThrustParticles = 5

	// ThrustSpread is the half-width of the exhaust cone
	ThrustSpread = 0.15

	// ThrustOffset is the exhaust origin behind the ship center (body frame)
	ThrustOffset = -0.5
)
