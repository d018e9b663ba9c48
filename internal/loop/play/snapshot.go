package play

import (
	"slices"

	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// Snapshot is a deep copy of what a renderer needs. Nothing in it aliases
// the State, so it can be drawn while the simulation keeps running.
type Snapshot struct {
	Field object.Field
	Tick  uint64

	Player PlayerView

	Level              int
	TotalAsteroids     int
	RemainingAsteroids int
	GameOver           bool

	Bullets   []BulletView
	Asteroids []AsteroidView
	Particles []physics.Vec2
}

// PlayerView is the ship as the renderer sees it.
type PlayerView struct {
	Pos      physics.Vec2
	Shape    physics.Polygon
	Flame    physics.Polygon // nil unless thrusting
	HitLines []object.Segment
	Hit      bool
	Dead     bool
	Score    int
	Lives    int
}

// BulletView is a bullet position and its draw radius.
type BulletView struct {
	Pos    physics.Vec2
	Radius float64
}

// AsteroidView is one rock outline.
type AsteroidView struct {
	Size  object.AsteroidSize
	Shape physics.Polygon
}

// Snapshot copies the current state out for rendering.
func (s *State) Snapshot() Snapshot {
	p := s.Player
	snap := Snapshot{
		Field: s.Field,
		Tick:  s.Tick,
		Player: PlayerView{
			Pos:      p.Pos,
			Shape:    slices.Clone(p.Shape),
			Flame:    slices.Clone(p.Flame),
			HitLines: slices.Clone(p.HitLines),
			Hit:      p.Hit,
			Dead:     p.Dead,
			Score:    p.Score,
			Lives:    p.Lives,
		},
		Level:              s.Level,
		TotalAsteroids:     s.TotalAsteroids,
		RemainingAsteroids: s.RemainingAsteroids,
		GameOver:           s.GameOver,
		Bullets:            make([]BulletView, len(s.Bullets)),
		Asteroids:          make([]AsteroidView, len(s.Asteroids)),
		Particles:          make([]physics.Vec2, len(s.Particles)),
	}
	for i, b := range s.Bullets {
		snap.Bullets[i] = BulletView{Pos: b.Pos, Radius: b.Radius}
	}
	for i, a := range s.Asteroids {
		snap.Asteroids[i] = AsteroidView{Size: a.Size, Shape: slices.Clone(a.Shape)}
	}
	for i, pt := range s.Particles {
		snap.Particles[i] = pt.Pos
	}
	return snap
}
