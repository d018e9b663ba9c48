package play

import (
	"github.com/tomz197/spacerocks/internal/object"
)

// collide runs the player and bullet checks against the asteroids.
//
// Hits are only marked during the scans; removals and splits happen after
// both scans so each live entity is tested exactly once. Ties go to the
// first asteroid in spawn order, and bullets are resolved in spawn order.
func (s *State) collide() {
	s.asteroidHits = resetMarks(s.asteroidHits, len(s.Asteroids))
	s.bulletHits = resetMarks(s.bulletHits, len(s.Bullets))
	s.destroyed = s.destroyed[:0]

	s.collidePlayer()
	s.collideBullets()

	if len(s.destroyed) == 0 {
		return
	}
	s.Bullets = object.RemoveMarked(s.Bullets, s.bulletHits)
	s.Asteroids = object.RemoveMarked(s.Asteroids, s.asteroidHits)
	for _, a := range s.destroyed {
		s.split(a)
	}
	clear(s.destroyed)
}

// collidePlayer processes at most one ship hit per tick.
func (s *State) collidePlayer() {
	p := s.Player
	if p.Hit {
		return
	}
	for i, a := range s.Asteroids {
		if a.Intersects(&p.Body) {
			p.MarkHit()
			s.asteroidHits[i] = true
			s.destroyed = append(s.destroyed, a)
			return
		}
	}
}

// collideBullets gives each bullet the first asteroid (in spawn order) that
// contains it. The spatial grid only narrows the candidates.
func (s *State) collideBullets() {
	if len(s.Bullets) == 0 {
		return
	}

	s.grid.Clear()
	for i, a := range s.Asteroids {
		if !s.asteroidHits[i] {
			s.grid.Insert(a.Pos, i)
		}
	}

	for bi, b := range s.Bullets {
		ai := s.grid.FirstMatch(b.Pos, func(i int) bool {
			return !s.asteroidHits[i] && s.Asteroids[i].Contains(b.Pos)
		})
		if ai < 0 {
			continue
		}
		a := s.Asteroids[ai]
		s.bulletHits[bi] = true
		s.asteroidHits[ai] = true
		s.destroyed = append(s.destroyed, a)
		s.Player.IncrementScore(a.Score)
	}
}

func resetMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		return make([]bool, n)
	}
	marks = marks[:n]
	clear(marks)
	return marks
}
