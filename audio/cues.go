package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
)

// Cue identifies a synthesized sound
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueThrust
	CueExplosion
	CueWave
	CueDeath
	cueCount
)

// CueFor maps a game event to its sound
func CueFor(t event.EventType) Cue {
	switch t {
	case event.EventShot:
		return CueShot
	case event.EventThrust:
		return CueThrust
	case event.EventAsteroidDestroyed:
		return CueExplosion
	case event.EventWaveStarted:
		return CueWave
	case event.EventPlayerDestroyed:
		return CueDeath
	default:
		return CueNone
	}
}

// createShotSound is a short square blip
func createShotSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.ShotFrequency, parameter.ShotDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.ShotDuration, parameter.ShotAttack, parameter.ShotRelease, rate)
}

// createThrustSound is a low rumble, retriggered every thrusting frame
func createThrustSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(parameter.ThrustFrequency, parameter.ThrustDuration, WaveNoise, rate)
	return newVolume(noise, 0.2)
}

// createExplosionSound is a noise burst; bigger asteroids sound longer and louder
func createExplosionSound(rate beep.SampleRate, scale float64) beep.Streamer {
	size := min(max(scale/parameter.WaveAsteroidScale, 0.25), 1)
	duration := parameter.ExplosionDuration + time.Duration(float64(parameter.ExplosionDuration)*size)
	noise := NewOscillator(0, duration, WaveNoise, rate)
	shaped := NewEnvelope(noise, duration, parameter.ExplosionAttack, parameter.ExplosionRelease, rate)
	return newVolume(shaped, 0.4+0.6*size)
}

// createWaveSound is a rising two-note chime
func createWaveSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.WaveFrequency, parameter.WaveDuration/2, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, parameter.WaveDuration/2, parameter.WaveAttack, parameter.WaveRelease/2, rate)
	n2 := NewOscillator(parameter.WaveFrequency*1.5, parameter.WaveDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.WaveDuration, parameter.WaveAttack, parameter.WaveRelease, rate)
	return beep.Seq(n1Shaped, n2Shaped)
}

// createDeathSound is a saw tone with a long fade
func createDeathSound(rate beep.SampleRate) beep.Streamer {
	saw := NewOscillator(parameter.DeathFrequency, parameter.DeathDuration, WaveSaw, rate)
	noise := NewOscillator(0, parameter.DeathDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(saw, 0.6), newVolume(noise, 0.4))
	return NewEnvelope(mixed, parameter.DeathDuration, parameter.DeathAttack, parameter.DeathRelease, rate)
}

// Create builds the streamer for cue; scale only affects explosions
func Create(cue Cue, rate beep.SampleRate, scale float64) beep.Streamer {
	switch cue {
	case CueShot:
		return createShotSound(rate)
	case CueThrust:
		return createThrustSound(rate)
	case CueExplosion:
		return createExplosionSound(rate, scale)
	case CueWave:
		return createWaveSound(rate)
	case CueDeath:
		return createDeathSound(rate)
	default:
		return nil
	}
}
