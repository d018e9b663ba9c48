// Package config centralizes all tunable game parameters.
package config

import "time"

// Terminal rendering. The playfield is scaled onto at most this many
// terminal cells.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Simulation tick rate. The simulation always advances in TickTime steps.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Client rendering rate, independent of the tick rate.
const (
	ClientTargetFPS       = 30
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Inactivity
const (
	InactivityDisconnectUser = 120 // Seconds
)

// Tuning holds every simulation constant. Zero values are never valid; use
// Default and overlay a file with LoadTuning.
type Tuning struct {
	Field    FieldTuning    `toml:"field"`
	Player   PlayerTuning   `toml:"player"`
	Bullet   BulletTuning   `toml:"bullet"`
	Asteroid AsteroidTuning `toml:"asteroid"`
	Particle ParticleTuning `toml:"particle"`
}

// FieldTuning is the wrapped playfield size in logical units.
type FieldTuning struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PlayerTuning configures the ship.
type PlayerTuning struct {
	MaxSpeed       float64 `toml:"max_speed"`        // units/s
	Acceleration   float64 `toml:"acceleration"`     // units/s²
	Deceleration   float64 `toml:"deceleration"`     // units/s², always applied against motion
	RotationSpeed  float64 `toml:"rotation_speed"`   // rad/s
	ExtraLives     int     `toml:"extra_lives"`      // lives held in reserve at start
	BonusLifeScore int     `toml:"bonus_life_score"` // score step that awards a life
	HitTime        float64 `toml:"hit_time"`         // seconds the wreck drifts before respawn
	FireCooldown   float64 `toml:"fire_cooldown"`    // seconds between shots
	MaxBullets     int     `toml:"max_bullets"`
	MuzzleOffset   float64 `toml:"muzzle_offset"` // bullet spawn distance ahead of the ship center
}

// BulletTuning configures projectiles.
type BulletTuning struct {
	Speed    float64 `toml:"speed"`
	Lifetime float64 `toml:"lifetime"`
	Radius   float64 `toml:"radius"`
}

// ClassTuning fixes one asteroid size class.
type ClassTuning struct {
	Vertices int     `toml:"vertices"`
	Width    float64 `toml:"width"`
	MinSpeed float64 `toml:"min_speed"`
	MaxSpeed float64 `toml:"max_speed"`
	Score    int     `toml:"score"`
}

// AsteroidTuning configures rocks and wave spawning.
type AsteroidTuning struct {
	Small  ClassTuning `toml:"small"`
	Medium ClassTuning `toml:"medium"`
	Large  ClassTuning `toml:"large"`

	MaxSpin          float64 `toml:"max_spin"`          // rad/s, sampled in [-max, max)
	SpawnClearance   float64 `toml:"spawn_clearance"`   // no wave rock spawns closer to the player
	SpawnRetries     int     `toml:"spawn_retries"`     // placement attempts before falling back
	BaseWave         int     `toml:"base_wave"`         // rocks in the level 1 wave
	FragmentsPerRock int     `toml:"fragments_per_rock"` // destructions one large rock accounts for
}

// ParticleTuning configures debris bursts.
type ParticleTuning struct {
	Speed    float64 `toml:"speed"`
	Lifetime float64 `toml:"lifetime"`
	Burst    int     `toml:"burst"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Field: FieldTuning{Width: 720, Height: 540},
		Player: PlayerTuning{
			MaxSpeed:       300,
			Acceleration:   200,
			Deceleration:   10,
			RotationSpeed:  5,
			ExtraLives:     3,
			BonusLifeScore: 10000,
			HitTime:        2,
			FireCooldown:   0.15,
			MaxBullets:     4,
			MuzzleOffset:   12,
		},
		Bullet: BulletTuning{Speed: 350, Lifetime: 1, Radius: 1},
		Asteroid: AsteroidTuning{
			Small:            ClassTuning{Vertices: 8, Width: 20, MinSpeed: 6, MaxSpeed: 90, Score: 100},
			Medium:           ClassTuning{Vertices: 10, Width: 35, MinSpeed: 6, MaxSpeed: 60, Score: 50},
			Large:            ClassTuning{Vertices: 12, Width: 60, MinSpeed: 6, MaxSpeed: 30, Score: 20},
			MaxSpin:          3,
			SpawnClearance:   100,
			SpawnRetries:     64,
			BaseWave:         4,
			FragmentsPerRock: 7,
		},
		Particle: ParticleTuning{Speed: 50, Lifetime: 1, Burst: 6},
	}
}
