package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/content"
	"github.com/lixenwraith/asteroids/event"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/vmath"
)

// Input is the held-button state for one frame
type Input struct {
	Up, Left, Right, Fire bool
	// DeltaTime is the frame step in seconds
	DeltaTime float64
}

// World owns the entity pool and particles and applies the gameplay rules
type World struct {
	game   config.GameConfig
	player config.PlayerConfig
	shapes content.Shapes

	log    *zap.Logger
	events *event.EventQueue

	pool      *Pool
	particles *ParticleSystem
	rng       vmath.Random

	// Area is the play-area extent in meters, centered on the origin
	Area vmath.V2

	playerHandle Handle
	asteroids    int
	wave         int
	perWave      int
	shake        float64
	zoom         float64
	reset        bool
	frame        int64
}

// NewWorld allocates the pool and particle storage from a
func NewWorld(a arena.Allocator, game config.GameConfig, player config.PlayerConfig, shapes content.Shapes, log *zap.Logger, events *event.EventQueue) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		game:      game,
		player:    player,
		shapes:    shapes,
		log:       log,
		events:    events,
		pool:      NewPool(a, game.EntityCapacity),
		particles: NewParticleSystem(a, game.ParticleCapacity, game.ParticleSeed),
		rng:       vmath.NewRandom(game.WorldSeed),
		perWave:   game.AsteroidsFirstWave,
		zoom:      game.ZoomIdle,
	}
}

// Pool exposes the entity pool
func (w *World) Pool() *Pool { return w.pool }

// Particles exposes the particle system
func (w *World) Particles() *ParticleSystem { return w.particles }

// AsteroidCount is the live asteroid counter driving waves
func (w *World) AsteroidCount() int { return w.asteroids }

// Wave returns the number of waves spawned so far
func (w *World) Wave() int { return w.wave }

// PlayerHandle returns the current player handle
func (w *World) PlayerHandle() Handle { return w.playerHandle }

// NeedsReset reports that the player died and the game must re-initialize
func (w *World) NeedsReset() bool { return w.reset }

// Zoom returns the smoothed render scale
func (w *World) Zoom() float64 { return w.zoom }

// Shake returns the remaining screenshake time
func (w *World) Shake() float64 { return w.shake }

// SetPlayerConfig swaps player tuning; applies from the next rule pass
func (w *World) SetPlayerConfig(p config.PlayerConfig) { w.player = p }

func (w *World) emit(ev event.GameEvent) {
	if w.events == nil {
		return
	}
	ev.Frame = w.frame
	w.events.Push(ev)
}

// AddPlayer spawns the ship at the origin
func (w *World) AddPlayer() Handle {
	h, e := w.pool.Add(KindPlayer)
	e.Shape = w.shapes.Player
	e.Player.Zoom = w.game.ZoomIdle
	w.playerHandle = h
	return h
}

// AddBullet spawns a bullet at p moving with v
func (w *World) AddBullet(p, v vmath.V2, angle float64) Handle {
	h, e := w.pool.Add(KindBullet)
	e.Shape = w.shapes.Bullet
	e.T.P = p
	e.T.Angle = angle
	e.T.Scale = w.shapes.BulletScale
	e.Velocity = v
	e.Bullet.Lifetime = w.player.BulletLifetime
	return h
}

// AddAsteroid spawns a procedural asteroid of the given scale at p
// Smaller asteroids spin and move faster
func (w *World) AddAsteroid(p vmath.V2, scale float64) Handle {
	r := &w.rng
	h, e := w.pool.Add(KindAsteroid)
	n := r.RangeInt(parameter.AsteroidMinVertices, parameter.AsteroidMaxVertices)
	e.Shape = vmath.RandomConvexPolygon(r, n, 1)
	e.T.P = p
	e.T.Scale = vmath.V2{X: scale, Y: scale}
	e.AngularVelocity = r.Range(-parameter.AsteroidMaxSpin, parameter.AsteroidMaxSpin) / scale
	e.Velocity = vmath.V2{X: r.Bilateral(), Y: r.Bilateral()}.Scale(parameter.AsteroidMaxSpeed / scale)
	e.Asteroid.Scale = scale
	w.asteroids++
	return h
}

// Integrate moves every non-temporary entity and wraps it into the play area
func (w *World) Integrate(dt float64) {
	for i := 1; i < w.pool.Count(); i++ {
		e := w.pool.At(i)
		if e.Temporary {
			continue
		}
		physics.Integrate(&e.T, e.Velocity, e.AngularVelocity, dt)
		physics.WrapToroidal(&e.T.P, w.Area)
	}
}

// ApplyRules runs the per-kind gameplay rules over non-temporary entities
// An index is revisited when a removal swapped a different entity into it
func (w *World) ApplyRules(in Input) {
	w.frame++
	dt := in.DeltaTime
	if w.shake > 0 {
		w.shake -= dt
	}
	for i := 1; i < w.pool.Count(); {
		h := w.pool.HandleAt(i)
		e := w.pool.At(i)
		if !e.Temporary {
			switch e.Kind {
			case KindPlayer:
				w.updatePlayer(h, e, in)
			case KindBullet:
				w.updateBullet(h, e, dt)
			case KindAsteroid:
			default:
				panic(fmt.Sprintf("engine: entity %d has unknown kind %s", i, e.Kind))
			}
		}
		if w.pool.HandleAt(i) == h {
			i++
		}
	}
}

func (w *World) updatePlayer(h Handle, e *Entity, in Input) {
	dt := in.DeltaTime
	cfg := w.player
	p := &e.Player

	if in.Left {
		e.T.Angle += cfg.TurnRate * dt
	}
	if in.Right {
		e.T.Angle -= cfg.TurnRate * dt
	}

	target := w.game.ZoomIdle
	if in.Up {
		target = w.game.ZoomThrust
		physics.ApplyThrust(&e.Velocity, vmath.V2{X: cfg.Thrust}, e.T.Angle, dt)
		w.emitThrust(e)
	}

	p.Zoom += (target - p.Zoom) * w.game.ZoomRate
	w.zoom = p.Zoom

	// Fire reads the cooldown left from the previous frame and the uncapped velocity
	if in.Fire && p.ShotCooldown <= 0 {
		v := e.Velocity.Add(vmath.V2{X: cfg.BulletSpeed}.Rotate(e.T.Angle))
		w.AddBullet(e.T.P, v, e.T.Angle)
		p.ShotCooldown = cfg.ShotCooldown
		w.emit(event.GameEvent{Type: event.EventShot, X: e.T.P.X, Y: e.T.P.Y})
	}
	p.ShotCooldown -= dt
	physics.CapSpeed(&e.Velocity, cfg.SpeedLimit)

	if _, hit := w.FindCollision(h, KindAsteroid); hit {
		w.log.Info("player destroyed",
			zap.Int64("frame", w.frame),
			zap.Int("wave", w.wave),
			zap.Int("asteroids", w.asteroids))
		w.emit(event.GameEvent{Type: event.EventPlayerDestroyed, X: e.T.P.X, Y: e.T.P.Y})
		w.pool.Remove(h)
		w.playerHandle = Handle{}
		w.reset = true
	}
}

func (w *World) emitThrust(e *Entity) {
	origin := vmath.V2{X: parameter.ThrustOffset}.Rotate(e.T.Angle).Add(e.T.P)
	back := e.T.Angle + math.Pi
	minDir := vmath.V2{X: 1, Y: -parameter.ThrustSpread}.Rotate(back)
	maxDir := vmath.V2{X: 1, Y: parameter.ThrustSpread}.Rotate(back)
	w.particles.Emit(parameter.ThrustParticles, vmath.Rect2{Min: origin, Max: origin}, minDir, maxDir)
	w.emit(event.GameEvent{Type: event.EventThrust, X: origin.X, Y: origin.Y})
}

func (w *World) updateBullet(h Handle, e *Entity, dt float64) {
	e.Bullet.Lifetime -= dt
	if e.Bullet.Lifetime <= 0 {
		w.pool.Remove(h)
		return
	}

	ah, hit := w.FindCollision(h, KindAsteroid)
	if !hit {
		return
	}
	a := w.pool.Get(ah)
	pos, scale := a.T.P, a.Asteroid.Scale

	w.shake = parameter.ScreenshakeDuration
	burst := vmath.Rect2{Min: e.T.P, Max: e.T.P}
	w.particles.Emit(parameter.ImpactParticles, burst, vmath.V2{X: -1, Y: -1}, vmath.V2{X: 1, Y: 1})
	w.emit(event.GameEvent{Type: event.EventAsteroidDestroyed, X: pos.X, Y: pos.Y, Scale: scale})

	w.pool.Remove(h)
	w.pool.Remove(ah)
	w.asteroids--

	if child := scale * parameter.AsteroidSplitFactor; child >= parameter.AsteroidMinSplitScale {
		w.AddAsteroid(pos, child)
		w.AddAsteroid(pos, child)
	}
}

// FindCollision returns the first live, non-temporary entity of kind overlapping self
func (w *World) FindCollision(self Handle, kind Kind) (Handle, bool) {
	s := w.pool.Get(self)
	if s == nil {
		return Handle{}, false
	}
	a := vmath.TransformPolygon(s.Shape, s.T)
	for i := 1; i < w.pool.Count(); i++ {
		o := w.pool.At(i)
		if o.Temporary || o.Kind != kind {
			continue
		}
		oh := w.pool.HandleAt(i)
		if oh == self {
			continue
		}
		b := vmath.TransformPolygon(o.Shape, o.T)
		if physics.Intersect(&a, &b) {
			return oh, true
		}
	}
	return Handle{}, false
}

// SpawnWave places a wave of large asteroids on the play-area boundary
func (w *World) SpawnWave() {
	r := &w.rng
	half := w.Area.Scale(0.5)
	for k := 0; k < w.perWave; k++ {
		var p vmath.V2
		if r.Coin() {
			p = vmath.V2{X: r.Range(-half.X, half.X), Y: half.Y}
			if r.Coin() {
				p.Y = -half.Y
			}
		} else {
			p = vmath.V2{X: half.X, Y: r.Range(-half.Y, half.Y)}
			if r.Coin() {
				p.X = -half.X
			}
		}
		w.AddAsteroid(p, w.game.WaveAsteroidScale)
	}
	w.wave++
	w.log.Info("wave started", zap.Int("wave", w.wave), zap.Int("asteroids", w.perWave))
	w.emit(event.GameEvent{Type: event.EventWaveStarted, Count: w.perWave, Wave: w.wave})
	w.perWave += w.game.AsteroidsWaveGrowth
}

// CheckWave spawns the next wave once the asteroid counter reaches zero
func (w *World) CheckWave() bool {
	if w.asteroids > 0 {
		return false
	}
	w.SpawnWave()
	return true
}
