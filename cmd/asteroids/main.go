package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/content"
	"github.com/lixenwraith/asteroids/core"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/terminal"
)

var (
	configFlag  = flag.String("config", "", "Config file (.toml or .yaml)")
	contentFlag = flag.String("content", "", "Directory overriding the embedded shapes.yaml")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging to logs/asteroids.log")
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem")
	colorFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	noAudioFlag = flag.Bool("mute", false, "Disable audio")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, level, err := newLogger(cfg.Logging, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	shapes, err := loadShapes(*contentFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load shapes: %v\n", err)
		os.Exit(1)
	}

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	applyColorMode(*colorFlag, cfg.Terminal.TrueColor)
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.HideCursor()

	var sound *audio.Player
	if cfg.Audio.Enabled && !*noAudioFlag {
		// Missing audio hardware is not fatal
		sound, err = audio.Open(cfg.Audio, log)
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	var watcher *config.Watcher
	if *configFlag != "" {
		watcher, err = config.Watch(*configFlag)
		if err != nil {
			log.Warn("config watch disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	run(cfg, screen, shapes, log, level, sound, watcher)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func loadShapes(dir string) (content.Shapes, error) {
	if dir == "" {
		return content.LoadShapes(content.Embedded())
	}
	src, err := content.Dir(dir)
	if err != nil {
		return content.Shapes{}, err
	}
	return content.LoadShapes(src)
}

// applyColorMode steers tcell's color detection through its environment variables
func applyColorMode(mode string, trueColor bool) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	default:
		if trueColor {
			os.Setenv("COLORTERM", "truecolor")
		}
	}
}

func run(cfg *config.Config, screen tcell.Screen, shapes content.Shapes, log *zap.Logger, level zap.AtomicLevel, sound *audio.Player, watcher *config.Watcher) {
	events := event.NewEventQueue()
	game := engine.NewGame(cfg, shapes, log, events)
	mem := engine.NewMemory(cfg.Game)
	backend := terminal.NewBackend(screen)
	keys := terminal.NewKeys(cfg.Terminal.KeyHold)

	// PollEvent blocks; the pump goroutine ends when Fini closes the screen
	input := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(input)
				return
			}
			input <- ev
		}
	})

	frame := time.Second / time.Duration(cfg.Terminal.FPS)
	maxDelta := cfg.Terminal.MaxDelta
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var configs <-chan *config.Config
	var configErrs <-chan error
	if watcher != nil {
		configs, configErrs = watcher.Configs(), watcher.Errors()
	}

	last := time.Now()
	lastStats := last
	for {
		select {
		case ev, ok := <-input:
			if !ok {
				return
			}
			keys.HandleEvent(ev)
			if keys.Quit() {
				log.Info("quit requested", zap.Int64("frame", game.Stats().Frame))
				return
			}
			if keys.Resized() {
				screen.Sync()
			}

		case next := <-configs:
			game.SetPlayerConfig(next.Player)
			level.SetLevel(parseLevel(next.Logging.Level))
			if sound != nil {
				sound.SetVolume(next.Audio.Volume)
			}
			log.Info("config reloaded")

		case err := <-configErrs:
			log.Warn("config reload failed", zap.Error(err))

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > maxDelta {
				dt = frame
			}

			width, height := backend.Screen(parameter.TerminalCellPixelsX, parameter.TerminalCellPixelsY)
			if width == 0 || height == 0 {
				continue
			}
			px := engine.Screen{Width: width, Height: height}
			game.Update(mem, keys.Input(dt.Seconds()), px, backend)
			screen.Show()

			events.Drain(func(ev event.GameEvent) {
				if sound != nil {
					sound.Handle(ev)
				}
				log.Debug("game event", zap.Stringer("type", ev.Type), zap.Int64("frame", ev.Frame), zap.Int("wave", ev.Wave))
			})

			if now.Sub(lastStats) >= parameter.StatsLogInterval {
				lastStats = now
				logStats(log, game.Stats())
			}
		}
	}
}

func logStats(log *zap.Logger, s engine.Stats) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	log.Debug("frame stats",
		zap.Int64("frame", s.Frame),
		zap.Int("entities", s.Entities),
		zap.Int("temporaries", s.Temporaries),
		zap.Int("particles", s.Particles),
		zap.Int("asteroids", s.Asteroids),
		zap.Int("wave", s.Wave),
		zap.Int("render_entries", s.RenderEntries),
		zap.Int("permanent_used", s.Permanent.Used),
		zap.Int("transient_peak", s.Transient.Peak),
		zap.Float64("transient_util", s.Transient.Utilization()))
}
