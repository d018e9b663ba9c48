package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection in a
// wrapping playfield. Items are inserted by position and index, then nearby
// items are found through a 3x3 cell neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between a query
// point and an inserted item so that every candidate lies in the
// neighborhood.
type SpatialGrid struct {
	invCellSize float64
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items inside one cell. The slice is reused
// between ticks.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering a width x height field.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := max(int(math.Ceil(width/cellSize)), 1)
	rows := max(int(math.Ceil(height/cellSize)), 1)
	return &SpatialGrid{
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items without releasing cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item identified by index at p.
func (g *SpatialGrid) Insert(p Vec2, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item in the 3x3 neighborhood of p, wrapping
// at the field edges. Iteration stops early when fn returns true.
func (g *SpatialGrid) QueryAround(p Vec2, fn func(index int) bool) {
	col, row := g.posToCell(p)

	// A 1- or 2-wide axis would visit the same cell more than once.
	dcs := neighborOffsets(g.cols)
	drs := neighborOffsets(g.rows)

	for _, dr := range drs {
		r := (row + dr + g.rows) % g.rows
		rowOffset := r * g.cols
		for _, dc := range dcs {
			c := (col + dc + g.cols) % g.cols
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// FirstMatch returns the lowest item index around p for which match reports
// true, or -1. Candidates are visited in cell order, so the minimum is taken
// explicitly to keep insertion order as the tie-break.
func (g *SpatialGrid) FirstMatch(p Vec2, match func(index int) bool) int {
	best := -1
	g.QueryAround(p, func(i int) bool {
		if best >= 0 && i > best {
			return false
		}
		if match(i) {
			best = i
		}
		return false
	})
	return best
}

func neighborOffsets(n int) []int {
	switch n {
	case 1:
		return []int{0}
	case 2:
		return []int{0, 1}
	default:
		return []int{-1, 0, 1}
	}
}

// posToCell converts field coordinates to a cell, clamping out-of-range
// positions onto the border cells.
func (g *SpatialGrid) posToCell(p Vec2) (col, row int) {
	col = min(max(int(p.X*g.invCellSize), 0), g.cols-1)
	row = min(max(int(p.Y*g.invCellSize), 0), g.rows-1)
	return col, row
}
