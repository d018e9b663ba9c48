package object

import (
	"math"

	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/physics"
)

// Bullet is a shot fired by the player. It is treated as a point for
// collisions and drawn with a small fixed Radius.
type Bullet struct {
	Body

	Radius   float64
	Age      float64 // Seconds alive
	Lifetime float64 // Seconds before removal
	Remove   bool
}

// NewBullet creates a bullet at pos traveling along heading.
func NewBullet(pos physics.Vec2, heading float64, t config.BulletTuning) *Bullet {
	b := &Bullet{
		Radius:   t.Radius,
		Lifetime: t.Lifetime,
	}
	b.Pos = pos
	b.Heading = heading
	b.DX = math.Cos(heading) * t.Speed
	b.DY = math.Sin(heading) * t.Speed
	b.Width, b.Height = 2*t.Radius, 2*t.Radius
	return b
}

// Kind implements Entity.
func (b *Bullet) Kind() Kind { return KindBullet }

func (b *Bullet) isEntity() {}

// Update moves the bullet and flags it for removal once its lifetime ends.
func (b *Bullet) Update(dt float64, field Field) {
	b.Move(dt)
	b.Wrap(field)

	b.Age += dt
	if b.Age > b.Lifetime {
		b.Remove = true
	}
}
