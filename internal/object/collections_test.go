package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/spacerocks/internal/physics"
)

func TestBulletLifetime(t *testing.T) {
	bt := testTuning().Bullet
	var bullets Bullets
	bullets.Spawn(NewBullet(physics.Vec2{X: 10, Y: 10}, 0, bt))

	bullets.Update(0.5, testField)
	bullets.Update(0.5, testField)
	bullets.Prune()
	if len(bullets) != 1 {
		t.Fatalf("bullet pruned at exactly its lifetime")
	}

	bullets.Update(0.5, testField)
	bullets.Prune()
	if len(bullets) != 0 {
		t.Fatalf("bullets = %d after lifetime, want 0", len(bullets))
	}
}

func TestBulletWraps(t *testing.T) {
	bt := testTuning().Bullet
	b := NewBullet(physics.Vec2{X: 715, Y: 10}, 0, bt)
	b.Update(0.1, testField)

	if b.Pos.X < 0 || b.Pos.X >= testField.Width {
		t.Fatalf("bullet at %v, want inside the field", b.Pos)
	}
}

func TestSpawnBurstAndPrune(t *testing.T) {
	pt := testTuning().Particle
	var particles Particles
	SpawnBurst(rand.New(rand.NewSource(9)), physics.Vec2{X: 50, Y: 50}, pt, &particles)

	if len(particles) != pt.Burst {
		t.Fatalf("particles = %d, want %d", len(particles), pt.Burst)
	}
	for _, p := range particles {
		if p.Pos != (physics.Vec2{X: 50, Y: 50}) {
			t.Fatalf("particle spawned at %v", p.Pos)
		}
	}

	particles.Update(pt.Lifetime + 0.01)
	particles.Prune()
	if len(particles) != 0 {
		t.Fatalf("particles = %d after lifetime, want 0", len(particles))
	}
}
