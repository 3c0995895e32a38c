package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/content"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// Memory is the block the host hands to the game; the game never allocates
// entity or frame storage elsewhere
type Memory struct {
	Data []byte
}

// NewMemory allocates a block sized for cfg
func NewMemory(cfg config.GameConfig) *Memory {
	return &Memory{Data: make([]byte, cfg.MemorySize())}
}

// Screen is the drawable size in pixels
type Screen struct {
	Width, Height float64
}

// Stats describes the last frame
type Stats struct {
	Frame         int64
	Entities      int
	Temporaries   int
	Particles     int
	Asteroids     int
	Wave          int
	RenderEntries int
	Permanent     arena.Metrics
	Transient     arena.Metrics
}

// Game drives one simulation instance over caller-provided memory
type Game struct {
	cfg    config.Config
	shapes content.Shapes
	log    *zap.Logger
	events *event.EventQueue

	initialized bool
	stack       arena.Stack
	permanent   *arena.Region
	transient   *arena.Region
	world       *World
	group       render.Group
	frame       int64
	stats       Stats
}

// NewGame prepares a game; storage is claimed lazily on the first Update
// log and events may be nil
func NewGame(cfg *config.Config, shapes content.Shapes, log *zap.Logger, events *event.EventQueue) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		cfg:    *cfg,
		shapes: shapes,
		log:    log,
		events: events,
	}
}

// World exposes the simulation state; nil before the first Update
func (g *Game) World() *World { return g.world }

// Stats returns counters from the last frame
func (g *Game) Stats() Stats { return g.stats }

// Initialized reports whether storage has been carved and the world seeded
func (g *Game) Initialized() bool { return g.initialized }

// SetPlayerConfig applies new player tuning, surviving resets
func (g *Game) SetPlayerConfig(p config.PlayerConfig) {
	g.cfg.Player = p
	if g.world != nil {
		g.world.SetPlayerConfig(p)
	}
}

func (g *Game) init(mem *Memory, area vmath.V2) {
	for g.stack.Depth() > 0 {
		g.stack.Pop()
	}

	root := arena.RegionFrom(mem.Data)
	g.permanent = root.Carve(g.cfg.Game.PermanentMemory)
	g.transient = root.CarveRemaining()
	g.stack.Push(arena.Context{Allocator: g.permanent, Scratch: g.transient})

	g.world = NewWorld(g.stack.Current().Allocator, g.cfg.Game, g.cfg.Player, g.shapes, g.log, g.events)
	g.world.Area = area
	g.world.AddPlayer()
	g.world.SpawnWave()
	g.initialized = true

	g.log.Info("game initialized",
		zap.Int("permanent_bytes", g.permanent.Cap()),
		zap.Int("transient_bytes", g.transient.Cap()),
		zap.Int("permanent_used", g.permanent.Used()),
		zap.Int("entity_capacity", g.world.pool.Cap()),
		zap.Int("particle_capacity", g.world.particles.Cap()))
}

// PlayArea converts a screen size in pixels to play-area meters
func (g *Game) PlayArea(screen Screen) vmath.V2 {
	ppm := g.cfg.Game.PixelsPerMeter
	return vmath.V2{X: screen.Width / ppm, Y: screen.Height / ppm}
}

// Update runs one frame: lazy init, simulation, staging, submission
// Frame memory is restored before returning; out must not retain the batch
func (g *Game) Update(mem *Memory, in Input, screen Screen, out render.Backend) {
	area := g.PlayArea(screen)
	if area.X <= 0 || area.Y <= 0 {
		panic(fmt.Sprintf("engine: degenerate screen %vx%v", screen.Width, screen.Height))
	}
	if !g.initialized {
		g.init(mem, area)
	}
	w := g.world
	w.Area = area
	g.frame++

	cp := g.transient.Checkpoint()
	ctx := g.stack.Derive()
	ctx.Allocator = g.transient
	g.stack.With(ctx, func() {
		g.frameBody(in, out)
	})

	g.stats.Transient = g.transient.Metrics()
	g.transient.Restore(cp)

	if w.NeedsReset() {
		g.log.Info("resetting game", zap.Int64("frame", g.frame), zap.Int("wave", w.Wave()))
		g.initialized = false
	}
}

func (g *Game) frameBody(in Input, out render.Backend) {
	w := g.world
	dt := in.DeltaTime

	var shake float64
	if w.Shake() > 0 {
		shake = w.rng.Range(-parameter.ScreenshakeAngle, parameter.ScreenshakeAngle)
	}
	view := render.ViewTransform(vmath.V2{}, w.Area, w.Zoom(), shake)
	g.group.Begin(g.stack.Current().Allocator, parameter.RenderEntryCapacity, view)

	particle := g.shapes.Particle
	w.particles.Step(dt, func(p *Particle) {
		g.group.PushRect(particle.AABB(), p.T, render.RGBRed)
	})

	w.Integrate(dt)
	w.Replicate(g.group.CameraRect())
	w.ApplyRules(in)
	g.draw()

	g.stats = Stats{
		Frame:         g.frame,
		Entities:      w.pool.Live(),
		Temporaries:   w.Temporaries(),
		Particles:     w.particles.Len(),
		Wave:          w.Wave(),
		RenderEntries: g.group.Len(),
		Permanent:     g.permanent.Metrics(),
	}

	w.PurgeTemporaries()
	if !w.NeedsReset() {
		w.CheckWave()
	}
	g.stats.Asteroids = w.AsteroidCount()

	out.Submit(g.group.Build())
}

func (g *Game) draw() {
	pool := g.world.pool
	for i := 1; i < pool.Count(); i++ {
		e := pool.At(i)
		switch e.Kind {
		case KindBullet:
			g.group.PushRect(e.Shape.AABB(), e.T, render.RGBWhite)
		case KindPlayer, KindAsteroid:
			g.group.PushPolygon(e.Shape, e.T, render.RGBWhite)
		default:
			panic(fmt.Sprintf("engine: cannot draw kind %s", e.Kind))
		}
	}
	if g.cfg.Game.DrawBounds {
		g.group.PushPolygon(vmath.RectPolygon(g.group.CameraRect()), vmath.DefaultTransform(), render.RGBBounds)
	}
}
