package object

import (
	"math"

	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/physics"
)

// Intent is the steering input sampled once per tick. The latest sample
// wins; nothing is queued.
type Intent struct {
	Left   bool
	Right  bool
	Thrust bool
	Shoot  bool
}

// shipHull is the four-point arrow: nose, right wing, tail notch, left wing.
var shipHull = physics.Hull{
	{Angle: 0, Radius: 8},
	{Angle: -4 * math.Pi / 5, Radius: 8},
	{Angle: math.Pi, Radius: 5},
	{Angle: 4 * math.Pi / 5, Radius: 8},
}

const (
	spawnHeading   = -math.Pi / 2 // Pointing up on a y-down screen
	flameFlicker   = 0.1          // Seconds per flame growth cycle
	hitLineDrift   = 10.0         // Units/s the wreck pieces separate at
	flameBaseReach = 6.0
)

// Segment is one straight line, used for the wreck of a hit ship.
type Segment struct {
	A, B physics.Vec2
}

// Player is the ship.
type Player struct {
	Body

	Intent        Intent
	Score         int
	Lives         int // Extra lives in reserve
	RequiredScore int // Score that awards the next extra life

	Hit      bool    // Exploding; steering and shooting disabled
	Dead     bool    // Explosion finished; waiting for respawn or game over
	HitTimer float64 // Seconds since Hit was set

	AccelTimer float64         // Drives the flame flicker
	Flame      physics.Polygon // Exhaust triangle, nil when not thrusting
	HitLines   []Segment       // Wreck pieces while Hit

	hitLineVel []physics.Vec2
	cooldown   float64 // Seconds since the last shot
	tuning     config.PlayerTuning
}

// NewPlayer creates the ship at the field center.
func NewPlayer(field Field, t config.PlayerTuning) *Player {
	p := &Player{
		Lives:         t.ExtraLives,
		RequiredScore: t.BonusLifeScore,
		tuning:        t,
	}
	p.Hull = shipHull
	p.Width, p.Height = 16, 16
	p.RotationSpeed = t.RotationSpeed
	p.Reset(field)
	return p
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) isEntity() {}

// Reset repositions the ship at the center, stopped and pointing up, with
// the hit and dead flags cleared. Score and lives are untouched.
func (p *Player) Reset(field Field) {
	p.DX, p.DY = 0, 0
	p.Heading = spawnHeading
	p.Hit, p.Dead = false, false
	p.HitTimer = 0
	p.AccelTimer = 0
	p.Flame = nil
	p.HitLines = nil
	p.hitLineVel = nil
	p.cooldown = p.tuning.FireCooldown
	p.SetPosition(field.Center())
}

// LoseLife spends one extra life.
func (p *Player) LoseLife() {
	p.Lives--
}

// IncrementScore adds points. The bonus life is granted on the next Update.
func (p *Player) IncrementScore(points int) {
	p.Score += points
}

// MarkHit starts the explosion: the ship stops, input is dropped and the
// hull breaks into drifting pieces.
func (p *Player) MarkHit() {
	if p.Hit {
		return
	}
	p.Hit = true
	p.HitTimer = 0
	p.DX, p.DY = 0, 0
	p.Intent = Intent{}
	p.Flame = nil

	n := len(p.Shape)
	p.HitLines = make([]Segment, n)
	p.hitLineVel = make([]physics.Vec2, n)
	for i := range n {
		a, b := p.Shape[i], p.Shape[(i+1)%n]
		p.HitLines[i] = Segment{A: a, B: b}
		mid := physics.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		out := math.Atan2(mid.Y-p.Pos.Y, mid.X-p.Pos.X)
		p.hitLineVel[i] = physics.Polar(out, hitLineDrift)
	}
}

// Update advances the ship by dt seconds.
func (p *Player) Update(dt float64, field Field) {
	if p.Score >= p.RequiredScore {
		p.Lives++
		p.RequiredScore += p.tuning.BonusLifeScore
	}

	if p.Hit {
		p.HitTimer += dt
		if p.HitTimer > p.tuning.HitTime {
			p.Dead = true
			p.HitTimer = 0
		}
		for i := range p.HitLines {
			off := physics.Vec2{X: p.hitLineVel[i].X * dt, Y: p.hitLineVel[i].Y * dt}
			p.HitLines[i].A = p.HitLines[i].A.Add(off)
			p.HitLines[i].B = p.HitLines[i].B.Add(off)
		}
		return
	}

	// Turning
	if p.Intent.Left {
		p.Heading -= p.RotationSpeed * dt
	} else if p.Intent.Right {
		p.Heading += p.RotationSpeed * dt
	}
	p.Heading = math.Remainder(p.Heading, 2*math.Pi)

	// Acceleration
	if p.Intent.Thrust {
		p.DX += math.Cos(p.Heading) * p.tuning.Acceleration * dt
		p.DY += math.Sin(p.Heading) * p.tuning.Acceleration * dt
		p.AccelTimer += dt
		if p.AccelTimer > flameFlicker {
			p.AccelTimer = 0
		}
	} else {
		p.AccelTimer = 0
	}

	// Deceleration against the direction of travel, then the speed cap
	if speed := p.Speed(); speed > 0 {
		target := min(max(speed-p.tuning.Deceleration*dt, 0), p.tuning.MaxSpeed)
		scale := target / speed
		p.DX *= scale
		p.DY *= scale
	}

	p.Move(dt)
	p.Wrap(field)
	p.SetShape()
	p.setFlame()
}

func (p *Player) setFlame() {
	if !p.Intent.Thrust {
		p.Flame = nil
		return
	}
	flame := physics.Hull{
		{Angle: -5 * math.Pi / 6, Radius: 5},
		{Angle: math.Pi, Radius: flameBaseReach + p.AccelTimer*50},
		{Angle: 5 * math.Pi / 6, Radius: 5},
	}
	p.Flame = flame.Regenerate(p.Flame, p.Pos, p.Heading)
}

// Reload advances the shot cooldown. It does nothing while the ship is hit.
func (p *Player) Reload(dt float64) {
	if p.Hit {
		return
	}
	p.cooldown += dt
}

// ReadyToFire reports whether the shoot intent is held and the cooldown
// has elapsed.
func (p *Player) ReadyToFire() bool {
	return !p.Hit && p.Intent.Shoot && p.cooldown >= p.tuning.FireCooldown
}

// Fire spawns one bullet MuzzleOffset units ahead of the ship so it cannot
// hit the ship on its first tick, and restarts the cooldown. It returns
// false when the ship cannot fire or MaxBullets are already live.
func (p *Player) Fire(bullets *Bullets, bt config.BulletTuning) bool {
	if !p.ReadyToFire() || len(*bullets) >= p.tuning.MaxBullets {
		return false
	}
	muzzle := p.Pos.Add(physics.Polar(p.Heading, p.tuning.MuzzleOffset))
	bullets.Spawn(NewBullet(muzzle, p.Heading, bt))
	p.cooldown = 0
	return true
}
