package engine

import (
	"fmt"

	"github.com/lixenwraith/asteroids/vmath"
)

// Kind identifies the gameplay role of an entity
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindAsteroid
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPlayer:
		return "player"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// PlayerState is the player payload
type PlayerState struct {
	ShotCooldown float64
	// Zoom is the smoothed render scale, eased toward the thrust or idle target
	Zoom float64
}

// BulletState is the bullet payload
type BulletState struct {
	Lifetime float64
}

// AsteroidState is the asteroid payload
type AsteroidState struct {
	Scale float64
}

// Entity is one pooled game object
// Only the payload matching Kind is meaningful. The struct holds no pointers
// so the pool's dense array can live in region memory
type Entity struct {
	Exists    bool
	Temporary bool
	Kind      Kind

	Shape           vmath.Polygon
	T               vmath.Transform
	Velocity        vmath.V2
	AngularVelocity float64

	// Source is the original entity of a wrap-around clone
	Source Handle

	Player   PlayerState
	Bullet   BulletState
	Asteroid AsteroidState

	slot uint32
}

// AsPlayer returns the player payload, nil for other kinds
func (e *Entity) AsPlayer() *PlayerState {
	if e.Kind != KindPlayer {
		return nil
	}
	return &e.Player
}

// AsBullet returns the bullet payload, nil for other kinds
func (e *Entity) AsBullet() *BulletState {
	if e.Kind != KindBullet {
		return nil
	}
	return &e.Bullet
}

// AsAsteroid returns the asteroid payload, nil for other kinds
func (e *Entity) AsAsteroid() *AsteroidState {
	if e.Kind != KindAsteroid {
		return nil
	}
	return &e.Asteroid
}
