// Package play holds the simulation core: one explicit State advanced a
// tick at a time by Step. It has no globals, no goroutines and no notion of
// wall time.
package play

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// Intent is the per-tick player input.
type Intent = object.Intent

// State is everything the simulation owns. Only Step and the helpers in
// this package mutate it.
type State struct {
	Field  object.Field
	Tuning config.Tuning

	Player    *object.Player
	Bullets   object.Bullets
	Asteroids object.Asteroids
	Particles object.Particles

	Level              int
	TotalAsteroids     int  // Destructions the current wave accounts for
	RemainingAsteroids int  // Destructions left in the current wave
	GameOver           bool // Terminal; Step is a no-op once set
	Tick               uint64

	rng    *rand.Rand
	logger *log.Logger

	// Reused every tick by the collision pass.
	grid         *physics.SpatialGrid
	asteroidHits []bool
	bulletHits   []bool
	destroyed    []*object.Asteroid
}

// Options configures New. Zero values pick defaults.
type Options struct {
	Rand   *rand.Rand  // Seeded from the clock when nil
	Logger *log.Logger // log.Default() when nil

	// EmptyField skips the level 1 wave; the first Step spawns it instead.
	EmptyField bool
}

// New creates a game at level 1 with the player centered and, unless
// opts.EmptyField is set, the first wave already placed.
func New(t config.Tuning, opts Options) *State {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	field := object.Field{Width: t.Field.Width, Height: t.Field.Height}
	s := &State{
		Field:  field,
		Tuning: t,
		Player: object.NewPlayer(field, t.Player),
		rng:    rng,
		logger: logger,
		grid:   physics.NewSpatialGrid(field.Width, field.Height, gridCellSize(t.Asteroid)),
	}

	if opts.EmptyField {
		return s
	}
	s.Level = 1
	s.spawnWave()
	return s
}

// gridCellSize covers the widest asteroid so every rock that can contain a
// bullet sits in the bullet's 3x3 neighborhood.
func gridCellSize(t config.AsteroidTuning) float64 {
	w := max(t.Small.Width, t.Medium.Width, t.Large.Width)
	return max(w/2, 1)
}

// Rand exposes the state's random source for callers that spawn entities
// into it.
func (s *State) Rand() *rand.Rand {
	return s.rng
}

// SpawnAsteroid adds an asteroid of the given size at pos.
func (s *State) SpawnAsteroid(pos physics.Vec2, size object.AsteroidSize) *object.Asteroid {
	a := object.NewAsteroid(s.rng, pos, size, s.Tuning.Asteroid)
	s.Asteroids.Spawn(a)
	return a
}
