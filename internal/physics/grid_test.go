package physics

import (
	"math/rand"
	"testing"
)

func TestFirstMatchAgreesWithBruteForce(t *testing.T) {
	const (
		width  = 720.0
		height = 540.0
		reach  = 30.0
	)
	rng := rand.New(rand.NewSource(7))

	items := make([]Vec2, 200)
	for i := range items {
		items[i] = Vec2{rng.Float64() * width, rng.Float64() * height}
	}

	g := NewSpatialGrid(width, height, reach)
	for i, p := range items {
		g.Insert(p, i)
	}

	for q := 0; q < 500; q++ {
		p := Vec2{rng.Float64() * width, rng.Float64() * height}
		near := func(i int) bool { return Distance(p, items[i]) < reach }

		want := -1
		for i := range items {
			if near(i) {
				want = i
				break
			}
		}
		if got := g.FirstMatch(p, near); got != want {
			t.Fatalf("query %v: FirstMatch = %d, want %d", p, got, want)
		}
	}
}

func TestQueryAroundVisitsEachCellOnce(t *testing.T) {
	// 1x1 and 2x2 grids would revisit cells with a naive 3x3 sweep.
	for _, size := range []float64{10, 30} {
		g := NewSpatialGrid(size, size, 20)
		g.Insert(Vec2{1, 1}, 0)
		g.Insert(Vec2{size - 1, size - 1}, 1)

		seen := map[int]int{}
		g.QueryAround(Vec2{1, 1}, func(i int) bool {
			seen[i]++
			return false
		})
		for i, n := range seen {
			if n != 1 {
				t.Fatalf("field %g: item %d visited %d times", size, i, n)
			}
		}
		if len(seen) != 2 {
			t.Fatalf("field %g: visited %d items, want 2", size, len(seen))
		}
	}
}

func TestGridClear(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(Vec2{50, 50}, 3)
	g.Clear()

	if got := g.FirstMatch(Vec2{50, 50}, func(int) bool { return true }); got != -1 {
		t.Fatalf("FirstMatch after Clear = %d, want -1", got)
	}
}
