package play

// Step advances s by dt seconds under in and returns s. A tick runs to
// completion in four phases: rule check, shooting, collisions, then entity
// update and pruning. Once GameOver is set Step does nothing.
func Step(s *State, in Intent, dt float64) *State {
	if s.GameOver {
		return s
	}
	s.Tick++

	if !s.Player.Hit {
		s.Player.Intent = in
	}

	s.checkRules()
	s.shoot(dt)
	s.collide()
	s.advance(dt)
	return s
}

// checkRules starts the next level once the field is clear.
func (s *State) checkRules() {
	if len(s.Asteroids) > 0 {
		return
	}
	s.Level++
	s.spawnWave()
	s.logger.Debug("level started", "level", s.Level, "asteroids", len(s.Asteroids))
}

// shoot runs the cooldown and fires at most one bullet.
func (s *State) shoot(dt float64) {
	s.Player.Reload(dt)
	s.Player.Fire(&s.Bullets, s.Tuning.Bullet)
}

// advance moves every entity and drops the expired ones. A ship that
// finished exploding this tick either ends the game or respawns, and the
// rest of the field freezes for that tick.
func (s *State) advance(dt float64) {
	p := s.Player
	p.Update(dt, s.Field)

	if p.Dead {
		if p.Lives <= 0 {
			s.GameOver = true
			s.logger.Info("game over", "score", p.Score, "level", s.Level, "tick", s.Tick)
			return
		}
		p.Reset(s.Field)
		p.LoseLife()
		s.logger.Debug("player respawned", "lives", p.Lives)
		return
	}

	s.Bullets.Update(dt, s.Field)
	s.Bullets.Prune()
	s.Asteroids.Update(dt, s.Field)
	s.Particles.Update(dt)
	s.Particles.Prune()
}
