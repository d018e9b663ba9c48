package play

import (
	"github.com/tomz197/spacerocks/internal/object"
)

// split applies the destruction rule to an asteroid that has already been
// removed from the field: a debris burst at its position, one fewer
// remaining, and two children one class smaller unless it was small.
//
// Anything other than an asteroid is a caller bug; it is logged and
// ignored.
func (s *State) split(e object.Entity) {
	a, ok := e.(*object.Asteroid)
	if !ok || a == nil {
		kind := "nil"
		if e != nil {
			kind = e.Kind().String()
		}
		s.logger.Warn("split ignored: not an asteroid", "kind", kind, "tick", s.Tick)
		return
	}

	object.SpawnBurst(s.rng, a.Pos, s.Tuning.Particle, &s.Particles)
	s.RemainingAsteroids--

	size, n := a.Size.Fragments()
	for range n {
		s.SpawnAsteroid(a.Pos, size)
	}
}
