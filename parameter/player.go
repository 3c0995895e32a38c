package parameter

// Player Movement
const (
	// PlayerTurnRate is rotation speed while turning (rad/s)
	PlayerTurnRate = 4.5

	// PlayerThrust is forward acceleration while thrusting (m/s²)
	PlayerThrust = 9.0

	// PlayerSpeedLimit caps velocity magnitude (m/s)
	PlayerSpeedLimit = 8.0
)

// Player Weapon
const (
	// PlayerShotCooldown is the minimum time between shots (seconds)
	PlayerShotCooldown = 0.15

	// BulletSpeed is added to the player velocity along the facing (m/s)
	BulletSpeed = 15.0

	// BulletLifetime is the flight time before a bullet expires (seconds)
	BulletLifetime = 2.0
)

// Camera Zoom
const (
	// ZoomThrust is the target render scale while thrusting
	ZoomThrust = 1.0

	// ZoomIdle is the target render scale otherwise
	ZoomIdle = 1.0

	// ZoomRate is the per-frame smoothing factor toward the target
	ZoomRate = 0.03
)
