package play

import (
	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// WaveSize returns the number of large asteroids a level starts with.
func (s *State) WaveSize(level int) int {
	return s.Tuning.Asteroid.BaseWave + level - 1
}

// spawnWave places the current level's large asteroids away from the
// player and resets the wave counters.
func (s *State) spawnWave() {
	n := s.WaveSize(s.Level)
	s.TotalAsteroids = n * s.Tuning.Asteroid.FragmentsPerRock
	s.RemainingAsteroids = s.TotalAsteroids

	for range n {
		s.SpawnAsteroid(s.placement(), object.AsteroidLarge)
	}
}

// placement samples uniform positions until one is at least SpawnClearance
// from the player. After SpawnRetries misses the last sample is used.
func (s *State) placement() physics.Vec2 {
	t := s.Tuning.Asteroid
	player := s.Player.Pos

	var p physics.Vec2
	for range t.SpawnRetries {
		p = physics.Vec2{
			X: s.rng.Float64() * s.Field.Width,
			Y: s.rng.Float64() * s.Field.Height,
		}
		if physics.Distance(p, player) >= t.SpawnClearance {
			return p
		}
	}
	s.logger.Warn("spawn placement fell back to last sample",
		"retries", t.SpawnRetries, "clearance", t.SpawnClearance, "x", p.X, "y", p.Y)
	return p
}
