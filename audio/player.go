// Package audio synthesizes sound cues for game events through beep
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
)

// Player mixes cue streamers into one speaker stream
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	last   [cueCount]time.Time
	now    func() time.Time
	log    *zap.Logger

	// speaker.Lock/Unlock once opened; the mixer is read by the speaker goroutine
	lock, unlock func()
	opened       bool
}

// Open initializes the speaker and starts playing the mixer
func Open(cfg config.AudioConfig, log *zap.Logger) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(cfg.Buffer)); err != nil {
		return nil, fmt.Errorf("init speaker at %d Hz: %w", cfg.SampleRate, err)
	}
	p := newPlayer(rate, cfg.Volume, log)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.opened = true
	speaker.Play(p.mixer)
	p.log.Info("audio started", zap.Int("sample_rate", cfg.SampleRate), zap.Duration("buffer", cfg.Buffer))
	return p, nil
}

func newPlayer(rate beep.SampleRate, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	noop := func() {}
	return &Player{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
		now:    time.Now,
		log:    log,
		lock:   noop,
		unlock: noop,
	}
}

// Handle plays the cue for ev; false when ev has no cue, is muted or rate limited
func (p *Player) Handle(ev event.GameEvent) bool {
	cue := CueFor(ev.Type)
	if cue == CueNone {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.volume <= 0 {
		return false
	}
	now := p.now()
	if now.Sub(p.last[cue]) < parameter.MinSoundGap {
		return false
	}
	p.last[cue] = now

	s := Create(cue, p.rate, ev.Scale)
	if s == nil {
		return false
	}
	p.lock()
	p.mixer.Add(newVolume(s, p.volume))
	p.unlock()
	return true
}

// SetVolume changes gain for cues started afterwards
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = min(max(v, 0), 1)
}

// Active returns the number of cues still playing
func (p *Player) Active() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close silences all cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	p.mixer.Clear()
	p.unlock()
	if p.opened {
		speaker.Close()
		p.opened = false
	}
}
