package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the nominal frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step; longer stalls substitute FrameUpdateInterval
	MaxFrameDelta = 250 * time.Millisecond

	// StatsLogInterval is how often frame statistics are logged at debug level
	StatsLogInterval = time.Second
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Game Memory
const (
	// PermanentMemorySize backs the entity pool, particle storage and the shape table
	PermanentMemorySize = 4 << 20

	// TransientMemorySize backs per-frame render entries and batches
	TransientMemorySize = 8 << 20

	// GameMemorySize is the block handed to the simulation by the host
	GameMemorySize = PermanentMemorySize + TransientMemorySize + 4096
)

// Fixed Capacities
const (
	// EntityCapacity includes the null sentinel at index 0
	EntityCapacity = 1024

	// ParticleCapacity is the live particle ceiling; excess emissions are dropped
	ParticleCapacity = 10000

	// RenderEntryCapacity is the initial render entry reservation per frame
	RenderEntryCapacity = 1024
)

// Random Seeds
const (
	WorldSeed    = 3153273742
	ParticleSeed = 54625634
)
