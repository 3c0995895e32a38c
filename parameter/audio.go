package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is linear gain in [0,1]
	AudioDefaultVolume = 0.5

	// MinSoundGap between consecutive cues of the same kind
	MinSoundGap = 40 * time.Millisecond
)

// Shot Cue
const (
	ShotFrequency = 880.0
	ShotDuration  = 60 * time.Millisecond
	ShotAttack    = 2 * time.Millisecond
	ShotRelease   = 30 * time.Millisecond
)

// Explosion Cue, noise burst scaled by asteroid size
const (
	ExplosionDuration = 250 * time.Millisecond
	ExplosionAttack   = 2 * time.Millisecond
	ExplosionRelease  = 180 * time.Millisecond
)

// Thrust Cue
const (
	ThrustFrequency = 55.0
	ThrustDuration  = 30 * time.Millisecond
)

// Wave Cue
const (
	WaveFrequency = 440.0
	WaveDuration  = 300 * time.Millisecond
	WaveAttack    = 10 * time.Millisecond
	WaveRelease   = 150 * time.Millisecond
)

// Player Destroyed Cue
const (
	DeathFrequency = 110.0
	DeathDuration  = 600 * time.Millisecond
	DeathAttack    = 5 * time.Millisecond
	DeathRelease   = 400 * time.Millisecond
)
