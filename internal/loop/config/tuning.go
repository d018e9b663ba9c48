package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrInvalidTuning is returned when a tuning value is out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning overlays the TOML file at path onto Default. Keys missing from
// the file keep their defaults; unknown keys are logged and ignored.
// An empty path returns Default unchanged.
func LoadTuning(path string, logger *log.Logger) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Tuning{}, fmt.Errorf("decode tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 && logger != nil {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown tuning keys", "path", path, "keys", strings.Join(keys, ","))
	}

	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate checks that every value can drive the simulation.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	check(t.Field.Width > 0 && t.Field.Height > 0, "field must be positive, got %gx%g", t.Field.Width, t.Field.Height)

	p := t.Player
	check(p.MaxSpeed > 0, "player.max_speed must be positive")
	check(p.Acceleration >= 0 && p.Deceleration >= 0, "player acceleration/deceleration must not be negative")
	check(p.ExtraLives >= 0, "player.extra_lives must not be negative")
	check(p.BonusLifeScore > 0, "player.bonus_life_score must be positive")
	check(p.HitTime >= 0 && p.FireCooldown >= 0, "player timers must not be negative")
	check(p.MaxBullets > 0, "player.max_bullets must be positive")

	check(t.Bullet.Speed > 0 && t.Bullet.Lifetime > 0, "bullet speed and lifetime must be positive")

	a := t.Asteroid
	classes := []struct {
		name string
		c    ClassTuning
	}{{"small", a.Small}, {"medium", a.Medium}, {"large", a.Large}}
	for _, cl := range classes {
		check(cl.c.Vertices >= 3, "asteroid.%s.vertices must be at least 3, got %d", cl.name, cl.c.Vertices)
		check(cl.c.Width > 0, "asteroid.%s.width must be positive", cl.name)
		check(cl.c.MinSpeed >= 0 && cl.c.MaxSpeed >= cl.c.MinSpeed, "asteroid.%s speed range is empty", cl.name)
	}
	check(a.SpawnClearance >= 0, "asteroid.spawn_clearance must not be negative")
	check(a.SpawnRetries > 0, "asteroid.spawn_retries must be positive")
	check(a.BaseWave > 0, "asteroid.base_wave must be positive")

	check(t.Particle.Burst >= 0 && t.Particle.Lifetime > 0, "particle burst/lifetime out of range")

	return errors.Join(errs...)
}
