// Package physics provides the geometry the simulation runs on: vectors,
// polygons regenerated from hulls, point-in-polygon and distance tests, and
// a wrapping spatial grid for broad-phase collision detection.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a center.
func PointInCircle(p, center Vec2, radius float64) bool {
	return DistanceSquared(p, center) <= radius*radius
}

// CirclesOverlap checks if two circles overlap or touch.
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) <= minDist*minDist
}
