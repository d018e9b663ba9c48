package physics

import "math"

// Vec2 is a point or direction in playfield units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Polar returns the vector of the given length pointing along angle.
func Polar(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Polygon is an ordered vertex list; insertion order is drawing order.
type Polygon []Vec2

// Spoke places one polygon vertex at Radius from the center, rotated Angle
// radians from the owner's heading.
type Spoke struct {
	Angle  float64
	Radius float64
}

// Hull is the fixed outline of an entity relative to its center and heading.
type Hull []Spoke

// EvenHull spreads len(radii) spokes 2π/N apart starting at the heading.
func EvenHull(radii []float64) Hull {
	n := len(radii)
	h := make(Hull, n)
	step := 2 * math.Pi / float64(n)
	for i, r := range radii {
		h[i] = Spoke{Angle: float64(i) * step, Radius: r}
	}
	return h
}

// BoundingRadius is the largest spoke radius.
func (h Hull) BoundingRadius() float64 {
	var r float64
	for _, s := range h {
		r = max(r, s.Radius)
	}
	return r
}

// Regenerate writes the hull's vertices around center into dst, reusing its
// backing array when large enough, and returns the result.
func (h Hull) Regenerate(dst Polygon, center Vec2, heading float64) Polygon {
	if cap(dst) < len(h) {
		dst = make(Polygon, len(h))
	}
	dst = dst[:len(h)]
	for i, s := range h {
		dst[i] = center.Add(Polar(heading+s.Angle, s.Radius))
	}
	return dst
}

// Contains reports whether p lies inside the polygon using ray-casting
// parity. An edge counts only when exactly one endpoint is strictly above
// p.Y, so a vertex lying on the ray toggles once, never twice.
func (poly Polygon) Contains(p Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// Intersects reports whether any vertex of other lies inside poly. It is an
// approximation of polygon overlap that is exact enough for convex-ish
// rocks against small hulls.
func (poly Polygon) Intersects(other Polygon) bool {
	for _, v := range other {
		if poly.Contains(v) {
			return true
		}
	}
	return false
}
