package client

import (
	"fmt"

	"github.com/tomz197/spacerocks/internal/draw"
	"github.com/tomz197/spacerocks/internal/loop/play"
	"github.com/tomz197/spacerocks/internal/object"
	"github.com/tomz197/spacerocks/internal/physics"
)

// drawFrame renders the latest snapshot. The snapshot is never mutated.
func (c *Client) drawFrame() error {
	snap := c.server.GetSnapshot()
	if snap == nil {
		return nil
	}

	draw.ClearScreen(c.chunkWriter)
	c.canvas.Clear()
	drawSnapshot(c.canvas, snap)

	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(c.chunkWriter); err != nil {
		return err
	}
	c.drawHUD(snap)

	return c.chunkWriter.Flush()
}

// drawSnapshot plots every entity onto the canvas.
func drawSnapshot(canvas *draw.Canvas, snap *play.Snapshot) {
	for _, a := range snap.Asteroids {
		drawWrapped(canvas, a.Shape, snap.Field, false)
	}

	for _, b := range snap.Bullets {
		canvas.Plot(b.Pos)
		if b.Radius >= 1 {
			canvas.Plot(b.Pos.Add(physics.Vec2{X: b.Radius}))
			canvas.Plot(b.Pos.Add(physics.Vec2{Y: b.Radius}))
		}
	}

	for _, p := range snap.Particles {
		canvas.Plot(p)
	}

	p := snap.Player
	switch {
	case p.Hit:
		for _, l := range p.HitLines {
			canvas.DrawLine(l.A, l.B)
		}
	case !p.Dead:
		drawWrapped(canvas, p.Shape, snap.Field, true)
		if len(p.Flame) > 0 {
			drawWrapped(canvas, p.Flame, snap.Field, false)
		}
	}
}

// drawWrapped draws a polygon plus a copy on each far edge it pokes past,
// so shapes stay whole while they cross the wrap seam.
func drawWrapped(canvas *draw.Canvas, poly physics.Polygon, field object.Field, filled bool) {
	if len(poly) == 0 {
		return
	}
	minX, maxX := poly[0].X, poly[0].X
	minY, maxY := poly[0].Y, poly[0].Y
	for _, v := range poly {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}

	xs := seamShifts(minX, maxX, field.Width)
	ys := seamShifts(minY, maxY, field.Height)

	shifted := make(physics.Polygon, len(poly))
	for _, dx := range xs {
		for _, dy := range ys {
			if dx == 0 && dy == 0 {
				canvas.DrawPolygon(poly, filled)
				continue
			}
			off := physics.Vec2{X: dx, Y: dy}
			for i, v := range poly {
				shifted[i] = v.Add(off)
			}
			canvas.DrawPolygon(shifted, filled)
		}
	}
}

func seamShifts(lo, hi, size float64) []float64 {
	shifts := []float64{0}
	if lo < 0 {
		shifts = append(shifts, size)
	}
	if hi > size {
		shifts = append(shifts, -size)
	}
	return shifts
}

// drawHUD writes the status line and the game over banner.
func (c *Client) drawHUD(snap *play.Snapshot) {
	cw := c.chunkWriter
	p := snap.Player

	status := fmt.Sprintf("SCORE %d  LIVES %d  LEVEL %d  ROCKS %d/%d",
		p.Score, p.Lives, snap.Level, snap.RemainingAsteroids, snap.TotalAsteroids)
	cw.WriteAt(2, 1, status)

	if !snap.GameOver {
		return
	}
	width := c.canvas.TerminalWidth()
	centerY := c.canvas.TerminalHeight() / 2
	cw.WriteCentered(centerY-1, width, "GAME OVER")
	cw.WriteCentered(centerY+1, width, "ENTER to play again, Q to quit")
}
