// Package config loads game settings from TOML or YAML files over built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/asteroids/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Game     GameConfig     `toml:"game" yaml:"game"`
	Player   PlayerConfig   `toml:"player" yaml:"player"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Audio    AudioConfig    `toml:"audio" yaml:"audio"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
}

type GameConfig struct {
	PixelsPerMeter   float64 `toml:"pixels_per_meter" yaml:"pixels_per_meter"`
	EntityCapacity   int     `toml:"entity_capacity" yaml:"entity_capacity"` // includes the null sentinel
	ParticleCapacity int     `toml:"particle_capacity" yaml:"particle_capacity"`
	PermanentMemory  int     `toml:"permanent_memory" yaml:"permanent_memory"` // bytes
	TransientMemory  int     `toml:"transient_memory" yaml:"transient_memory"` // bytes
	WorldSeed        uint64  `toml:"world_seed" yaml:"world_seed"`
	ParticleSeed     uint64  `toml:"particle_seed" yaml:"particle_seed"`

	AsteroidsFirstWave  int     `toml:"asteroids_first_wave" yaml:"asteroids_first_wave"`
	AsteroidsWaveGrowth int     `toml:"asteroids_wave_growth" yaml:"asteroids_wave_growth"`
	WaveAsteroidScale   float64 `toml:"wave_asteroid_scale" yaml:"wave_asteroid_scale"`

	ZoomThrust float64 `toml:"zoom_thrust" yaml:"zoom_thrust"`
	ZoomIdle   float64 `toml:"zoom_idle" yaml:"zoom_idle"`
	ZoomRate   float64 `toml:"zoom_rate" yaml:"zoom_rate"` // per-frame smoothing toward target

	DrawBounds bool `toml:"draw_bounds" yaml:"draw_bounds"`
}

type PlayerConfig struct {
	TurnRate       float64 `toml:"turn_rate" yaml:"turn_rate"`     // rad/s
	Thrust         float64 `toml:"thrust" yaml:"thrust"`           // m/s²
	SpeedLimit     float64 `toml:"speed_limit" yaml:"speed_limit"` // m/s
	ShotCooldown   float64 `toml:"shot_cooldown" yaml:"shot_cooldown"`
	BulletSpeed    float64 `toml:"bullet_speed" yaml:"bullet_speed"`
	BulletLifetime float64 `toml:"bullet_lifetime" yaml:"bullet_lifetime"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty logs to stderr
}

type AudioConfig struct {
	Enabled    bool          `toml:"enabled" yaml:"enabled"`
	Volume     float64       `toml:"volume" yaml:"volume"` // 0.0-1.0
	SampleRate int           `toml:"sample_rate" yaml:"sample_rate"`
	Buffer     time.Duration `toml:"buffer" yaml:"buffer"`
}

type TerminalConfig struct {
	FPS       int           `toml:"fps" yaml:"fps"`
	MaxDelta  time.Duration `toml:"max_delta" yaml:"max_delta"`
	KeyHold   time.Duration `toml:"key_hold" yaml:"key_hold"`
	TrueColor bool          `toml:"true_color" yaml:"true_color"`
}

// Default returns the built-in configuration
func Default() *Config {
	return defaults()
}

// Load reads path over defaults; the extension selects TOML or YAML
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Approximate per-item footprints used to reject memory sizes that cannot hold the pools
const (
	entityFootprint   = 512
	particleFootprint = 96
	minTransient      = 64 << 10
)

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.PixelsPerMeter <= 0:
		return fmt.Errorf("%w: pixels_per_meter must be positive", ErrInvalid)
	case g.EntityCapacity < 2:
		return fmt.Errorf("%w: entity_capacity %d must be at least 2", ErrInvalid, g.EntityCapacity)
	case g.ParticleCapacity <= 0:
		return fmt.Errorf("%w: particle_capacity must be positive", ErrInvalid)
	case g.AsteroidsFirstWave <= 0:
		return fmt.Errorf("%w: asteroids_first_wave must be positive", ErrInvalid)
	case g.WaveAsteroidScale <= 0:
		return fmt.Errorf("%w: wave_asteroid_scale must be positive", ErrInvalid)
	case g.ZoomThrust <= 0 || g.ZoomIdle <= 0:
		return fmt.Errorf("%w: zoom targets must be positive", ErrInvalid)
	}

	need := g.EntityCapacity*entityFootprint + g.ParticleCapacity*particleFootprint
	if g.PermanentMemory < need {
		return fmt.Errorf("%w: permanent_memory %d too small, need at least %d", ErrInvalid, g.PermanentMemory, need)
	}
	if g.TransientMemory < minTransient {
		return fmt.Errorf("%w: transient_memory %d too small, need at least %d", ErrInvalid, g.TransientMemory, minTransient)
	}

	p := c.Player
	if p.SpeedLimit <= 0 || p.BulletLifetime <= 0 || p.ShotCooldown < 0 {
		return fmt.Errorf("%w: player speed_limit and bullet_lifetime must be positive", ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	if c.Terminal.FPS <= 0 {
		return fmt.Errorf("%w: terminal fps must be positive", ErrInvalid)
	}
	return nil
}

// MemorySize is the block the host must hand to the game
func (g GameConfig) MemorySize() int {
	// Slack for sub-region alignment
	return g.PermanentMemory + g.TransientMemory + 2*64
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			PixelsPerMeter:      parameter.PixelsPerMeter,
			EntityCapacity:      parameter.EntityCapacity,
			ParticleCapacity:    parameter.ParticleCapacity,
			PermanentMemory:     parameter.PermanentMemorySize,
			TransientMemory:     parameter.TransientMemorySize,
			WorldSeed:           parameter.WorldSeed,
			ParticleSeed:        parameter.ParticleSeed,
			AsteroidsFirstWave:  parameter.AsteroidsFirstWave,
			AsteroidsWaveGrowth: parameter.AsteroidsWaveGrowth,
			WaveAsteroidScale:   parameter.WaveAsteroidScale,
			ZoomThrust:          parameter.ZoomThrust,
			ZoomIdle:            parameter.ZoomIdle,
			ZoomRate:            parameter.ZoomRate,
		},
		Player: PlayerConfig{
			TurnRate:       parameter.PlayerTurnRate,
			Thrust:         parameter.PlayerThrust,
			SpeedLimit:     parameter.PlayerSpeedLimit,
			ShotCooldown:   parameter.PlayerShotCooldown,
			BulletSpeed:    parameter.BulletSpeed,
			BulletLifetime: parameter.BulletLifetime,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     parameter.AudioDefaultVolume,
			SampleRate: parameter.AudioSampleRate,
			Buffer:     parameter.AudioBufferDuration,
		},
		Terminal: TerminalConfig{
			FPS:      int(time.Second / parameter.FrameUpdateInterval),
			MaxDelta: parameter.MaxFrameDelta,
			KeyHold:  parameter.KeyHoldTimeout,
		},
	}
}
