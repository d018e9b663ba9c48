package object

import "slices"

// Bullets holds the live shots in spawn order.
type Bullets []*Bullet

// Spawn appends a bullet.
func (bs *Bullets) Spawn(b *Bullet) {
	*bs = append(*bs, b)
}

// Update advances every bullet.
func (bs Bullets) Update(dt float64, field Field) {
	for _, b := range bs {
		b.Update(dt, field)
	}
}

// Prune drops bullets flagged for removal.
func (bs *Bullets) Prune() {
	*bs = slices.DeleteFunc(*bs, func(b *Bullet) bool { return b.Remove })
}

// Asteroids holds the live rocks in spawn order. Spawn order is the
// collision tie-break.
type Asteroids []*Asteroid

// Spawn appends an asteroid.
func (as *Asteroids) Spawn(a *Asteroid) {
	*as = append(*as, a)
}

// Update advances every asteroid.
func (as Asteroids) Update(dt float64, field Field) {
	for _, a := range as {
		a.Update(dt, field)
	}
}

// Particles holds the live debris.
type Particles []*Particle

// Spawn appends a particle.
func (ps *Particles) Spawn(p *Particle) {
	*ps = append(*ps, p)
}

// Update advances every particle.
func (ps Particles) Update(dt float64) {
	for _, p := range ps {
		p.Update(dt)
	}
}

// Prune drops expired particles and returns them to the pool.
func (ps *Particles) Prune() {
	kept := (*ps)[:0]
	for _, p := range *ps {
		if p.Remove {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear((*ps)[len(kept):])
	*ps = kept
}

// RemoveMarked compacts s in place, dropping element i when marks[i] is
// set. Relative order of the survivors is kept.
func RemoveMarked[T any](s []T, marks []bool) []T {
	kept := s[:0]
	for i, v := range s {
		if i < len(marks) && marks[i] {
			continue
		}
		kept = append(kept, v)
	}
	clear(s[len(kept):])
	return kept
}
