package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/physics"
)

// AsteroidSize represents the size class of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Fragments returns the size and number of the asteroids this one splits
// into. Small asteroids leave nothing behind.
func (s AsteroidSize) Fragments() (AsteroidSize, int) {
	if s <= AsteroidSmall {
		return 0, 0
	}
	return s - 1, 2
}

// Class returns the tuning for a size class.
func Class(t config.AsteroidTuning, s AsteroidSize) config.ClassTuning {
	switch s {
	case AsteroidSmall:
		return t.Small
	case AsteroidMedium:
		return t.Medium
	default:
		return t.Large
	}
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	Body

	Size  AsteroidSize
	Score int       // Points for destroying it
	Radii []float64 // Per-vertex distances, frozen at creation
}

// NewAsteroid creates an asteroid of the given size at pos with a random
// heading, speed, spin and silhouette drawn from rng.
func NewAsteroid(rng *rand.Rand, pos physics.Vec2, size AsteroidSize, t config.AsteroidTuning) *Asteroid {
	class := Class(t, size)
	radius := class.Width / 2

	// Irregular outline: each vertex sits in [r/2, r)
	radii := make([]float64, class.Vertices)
	for i := range radii {
		radii[i] = randRange(rng, radius/2, radius)
	}

	heading := rng.Float64() * 2 * math.Pi
	speed := randRange(rng, class.MinSpeed, class.MaxSpeed)

	a := &Asteroid{
		Size:  size,
		Score: class.Score,
		Radii: radii,
	}
	a.Pos = pos
	a.Heading = heading
	a.DX = math.Cos(heading) * speed
	a.DY = math.Sin(heading) * speed
	a.RotationSpeed = randRange(rng, -t.MaxSpin, t.MaxSpin)
	a.Width, a.Height = class.Width, class.Width
	a.Hull = physics.EvenHull(radii)
	a.SetShape()
	return a
}

// Kind implements Entity.
func (a *Asteroid) Kind() Kind { return KindAsteroid }

func (a *Asteroid) isEntity() {}

// Update moves and spins the asteroid, wraps it and regenerates its shape.
func (a *Asteroid) Update(dt float64, field Field) {
	a.Move(dt)
	a.Heading += a.RotationSpeed * dt
	a.Wrap(field)
	a.SetShape()
}

// randRange returns a value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
