package parameter

// Play Area
const (
	// PixelsPerMeter converts screen pixels to world meters
	PixelsPerMeter = 40.0

	// TerminalCellPixelsX/Y approximate one terminal cell in pixels for play-area sizing
	TerminalCellPixelsX = 8.0
	TerminalCellPixelsY = 16.0
)

// Waves
const (
	// AsteroidsFirstWave is the asteroid count of the opening wave
	AsteroidsFirstWave = 4

	// AsteroidsWaveGrowth is added to the wave size after each cleared wave
	AsteroidsWaveGrowth = 2

	// WaveAsteroidScale is the spawn scale of wave asteroids
	WaveAsteroidScale = 2.5
)

// Asteroid
const (
	// AsteroidMinVertices/MaxVertices bound generated outline complexity
	AsteroidMinVertices = 4
	AsteroidMaxVertices = 16

	// AsteroidMaxSpin is angular velocity range at scale 1 (rad/s)
	AsteroidMaxSpin = 0.9

	// AsteroidMaxSpeed is the per-axis launch speed at scale 1 (m/s)
	AsteroidMaxSpeed = 4.0

	// AsteroidSplitFactor scales fragments relative to the parent
	AsteroidSplitFactor = 0.5

	// AsteroidMinSplitScale is the smallest fragment scale that still spawns
	AsteroidMinSplitScale = 0.5
)

// Bullet Impact
const (
	// ScreenshakeDuration is the shake time after an asteroid is destroyed (seconds)
	ScreenshakeDuration = 0.2

	// ScreenshakeAngle is the render rotation jitter while shaking (radians)
	ScreenshakeAngle = 0.01

	// ImpactParticles is the burst size on bullet hit
	ImpactParticles = 100
)
