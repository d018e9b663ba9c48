package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is short-lived debris. It never collides and never wraps.
type Particle struct {
	Body

	Timer    float64 // Seconds alive
	Lifetime float64
	Remove   bool
}

// NewParticle takes a particle from the pool and launches it from pos.
func NewParticle(pos physics.Vec2, heading, speed, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{Lifetime: lifetime}
	p.Pos = pos
	p.Heading = heading
	p.DX = math.Cos(heading) * speed
	p.DY = math.Sin(heading) * speed
	p.Width, p.Height = 2, 2
	return p
}

// Release returns the particle to the pool. The caller must drop every
// reference to it.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Kind implements Entity.
func (p *Particle) Kind() Kind { return KindParticle }

func (p *Particle) isEntity() {}

// Update moves the particle and flags it once its lifetime ends.
func (p *Particle) Update(dt float64) {
	p.Move(dt)

	p.Timer += dt
	if p.Timer > p.Lifetime {
		p.Remove = true
	}
}

// SpawnBurst adds t.Burst particles at pos, each flying off in a random
// direction.
func SpawnBurst(rng *rand.Rand, pos physics.Vec2, t config.ParticleTuning, particles *Particles) {
	for range t.Burst {
		heading := rng.Float64() * 2 * math.Pi
		particles.Spawn(NewParticle(pos, heading, t.Speed, t.Lifetime))
	}
}
