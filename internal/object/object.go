// Package object defines the entities the simulation moves around and the
// collections that hold them.
package object

import (
	"math"

	"github.com/tomz197/spacerocks/internal/physics"
)

// Kind tags the entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindAsteroid
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Entity is implemented by Player, Bullet, Asteroid and Particle only.
type Entity interface {
	Kind() Kind
	Position() physics.Vec2
	isEntity()
}

// Field is the wrapped playfield.
type Field struct {
	Width  float64
	Height float64
}

// Center returns the middle of the field.
func (f Field) Center() physics.Vec2 {
	return physics.Vec2{X: f.Width / 2, Y: f.Height / 2}
}

// Wrap moves p back into [0, Width) x [0, Height) (Asteroids-style).
// Points already inside are left untouched.
func (f Field) Wrap(p *physics.Vec2) {
	if f.Width > 0 && (p.X < 0 || p.X >= f.Width) {
		p.X = wrapAxis(p.X, f.Width)
	}
	if f.Height > 0 && (p.Y < 0 || p.Y >= f.Height) {
		p.Y = wrapAxis(p.Y, f.Height)
	}
}

// wrapAxis maps v into [0, size).
func wrapAxis(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// A tiny negative v rounds up to size itself.
	if v >= size {
		v = 0
	}
	return v
}

// Body is the kinematic state every entity embeds.
type Body struct {
	Pos           physics.Vec2
	DX, DY        float64 // Velocity, units/s
	Heading       float64 // Radians; thrust and launch direction
	RotationSpeed float64 // Radians/s
	Width, Height float64

	Hull  physics.Hull    // Outline relative to Pos and Heading
	Shape physics.Polygon // Derived from Hull; refreshed by SetShape
}

// Position returns the body's center.
func (b *Body) Position() physics.Vec2 {
	return b.Pos
}

// SetPosition moves the body and regenerates its shape.
func (b *Body) SetPosition(p physics.Vec2) {
	b.Pos = p
	b.SetShape()
}

// SetShape regenerates the polygon from position, heading and hull.
func (b *Body) SetShape() {
	b.Shape = b.Hull.Regenerate(b.Shape, b.Pos, b.Heading)
}

// Move integrates velocity over dt seconds.
func (b *Body) Move(dt float64) {
	b.Pos.X += b.DX * dt
	b.Pos.Y += b.DY * dt
}

// Wrap teleports the body to the opposite edge once it leaves the field.
func (b *Body) Wrap(f Field) {
	f.Wrap(&b.Pos)
}

// Contains reports whether p lies inside the body's shape.
func (b *Body) Contains(p physics.Vec2) bool {
	if !physics.PointInCircle(p, b.Pos, b.Hull.BoundingRadius()) {
		return false
	}
	return b.Shape.Contains(p)
}

// Intersects reports whether any vertex of other's shape lies inside b.
func (b *Body) Intersects(other *Body) bool {
	if !physics.CirclesOverlap(b.Pos, b.Hull.BoundingRadius(), other.Pos, other.Hull.BoundingRadius()) {
		return false
	}
	return b.Shape.Intersects(other.Shape)
}

// Speed returns the velocity magnitude.
func (b *Body) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}
