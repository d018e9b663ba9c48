package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/physics"
)

func testTuning() config.Tuning {
	return config.Default()
}

func TestNewAsteroidClass(t *testing.T) {
	at := testTuning().Asteroid
	rng := rand.New(rand.NewSource(42))

	tests := []struct {
		size     AsteroidSize
		vertices int
		width    float64
		score    int
	}{
		{AsteroidSmall, 8, 20, 100},
		{AsteroidMedium, 10, 35, 50},
		{AsteroidLarge, 12, 60, 20},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			class := Class(at, tt.size)
			for range 50 {
				a := NewAsteroid(rng, physics.Vec2{X: 100, Y: 100}, tt.size, at)

				if len(a.Shape) != tt.vertices || len(a.Radii) != tt.vertices {
					t.Fatalf("vertices = %d/%d, want %d", len(a.Shape), len(a.Radii), tt.vertices)
				}
				if a.Width != tt.width || a.Score != tt.score {
					t.Fatalf("width/score = %f/%d, want %f/%d", a.Width, a.Score, tt.width, tt.score)
				}
				r := tt.width / 2
				for i, v := range a.Radii {
					if v < r/2 || v >= r {
						t.Fatalf("radius %d = %f, want in [%f, %f)", i, v, r/2, r)
					}
				}
				if s := a.Speed(); s < class.MinSpeed-1e-9 || s > class.MaxSpeed+1e-9 {
					t.Fatalf("speed = %f, want in [%f, %f]", s, class.MinSpeed, class.MaxSpeed)
				}
				if math.Abs(a.RotationSpeed) > at.MaxSpin {
					t.Fatalf("spin = %f, want |spin| <= %f", a.RotationSpeed, at.MaxSpin)
				}
				if !a.Contains(a.Pos) {
					t.Fatalf("asteroid does not contain its own center")
				}
			}
		})
	}
}

func TestAsteroidFragments(t *testing.T) {
	tests := []struct {
		size     AsteroidSize
		wantSize AsteroidSize
		wantN    int
	}{
		{AsteroidLarge, AsteroidMedium, 2},
		{AsteroidMedium, AsteroidSmall, 2},
		{AsteroidSmall, 0, 0},
	}
	for _, tt := range tests {
		size, n := tt.size.Fragments()
		if size != tt.wantSize || n != tt.wantN {
			t.Fatalf("%s.Fragments() = (%v, %d), want (%v, %d)", tt.size, size, n, tt.wantSize, tt.wantN)
		}
	}
}

func TestAsteroidShapeIsFrozen(t *testing.T) {
	at := testTuning().Asteroid
	a := NewAsteroid(rand.New(rand.NewSource(5)), physics.Vec2{X: 300, Y: 300}, AsteroidLarge, at)
	radii := append([]float64(nil), a.Radii...)

	for range 10 {
		a.Update(1.0/60, testField)
	}
	for i, v := range a.Shape {
		if d := physics.Distance(v, a.Pos); math.Abs(d-radii[i]) > 1e-9 {
			t.Fatalf("vertex %d at distance %f, want %f", i, d, radii[i])
		}
	}
}
