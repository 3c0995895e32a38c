package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// EventShot fires when the player launches a bullet
	// Trigger: player rule | Consumer: audio
	EventShot

	// EventThrust fires on every thrusting frame
	// Trigger: player rule | Consumer: audio
	EventThrust

	// EventAsteroidDestroyed fires when a bullet destroys an asteroid
	// Trigger: bullet rule | Consumer: audio, log | Scale: asteroid scale
	EventAsteroidDestroyed

	// EventPlayerDestroyed fires when an asteroid strikes the player
	// Trigger: player rule | Consumer: audio, log
	EventPlayerDestroyed

	// EventWaveStarted fires after a wave spawns
	// Trigger: wave check | Consumer: audio, log | Count: wave size, Wave: wave number
	EventWaveStarted
)

var eventNames = [...]string{
	EventNone:              "none",
	EventShot:              "shot",
	EventThrust:            "thrust",
	EventAsteroidDestroyed: "asteroid_destroyed",
	EventPlayerDestroyed:   "player_destroyed",
	EventWaveStarted:       "wave_started",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// GameEvent is a fixed-size, pointer-free record
// Fields beyond Type and Frame are interpreted per type
type GameEvent struct {
	Type  EventType
	Frame int64
	X, Y  float64
	Scale float64
	Count int
	Wave  int
}
