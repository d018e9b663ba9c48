package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/spacerocks/internal/physics"
)

func TestCanvasPlot(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)

	c.Plot(physics.Vec2{X: 50, Y: 50})
	if !c.Lit(5, 5) {
		t.Fatalf("pixel (5,5) not lit")
	}
	if c.Lit(0, 0) {
		t.Fatalf("pixel (0,0) lit")
	}

	// Off-canvas points are dropped.
	c.Plot(physics.Vec2{X: -50, Y: 500})

	c.Clear()
	if c.Lit(5, 5) {
		t.Fatalf("pixel (5,5) still lit after Clear")
	}
}

func TestCanvasDrawPolygon(t *testing.T) {
	sq := []physics.Vec2{{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 80, Y: 80}, {X: 20, Y: 80}}

	outline := NewScaledCanvas(10, 5, 100, 100)
	outline.DrawPolygon(sq, false)
	if !outline.Lit(2, 2) || !outline.Lit(8, 8) {
		t.Fatalf("outline corners not lit")
	}
	if outline.Lit(5, 5) {
		t.Fatalf("outline filled its interior")
	}

	filled := NewScaledCanvas(10, 5, 100, 100)
	filled.DrawPolygon(sq, true)
	if !filled.Lit(5, 5) {
		t.Fatalf("filled polygon interior not lit")
	}
	if filled.Lit(0, 0) || filled.Lit(9, 9) {
		t.Fatalf("fill leaked outside the polygon")
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(2, 1)
	c.Plot(physics.Vec2{X: 1, Y: 0}) // top half of cell (1,0)
	c.Plot(physics.Vec2{X: 2, Y: 0})
	c.Plot(physics.Vec2{X: 2, Y: 1}) // both halves of cell (2,0)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\033[2;4H▀") {
		t.Fatalf("missing upper half block, got %q", out)
	}
	if !strings.Contains(out, "\033[2;5H█") {
		t.Fatalf("missing full block, got %q", out)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Resize(0, -3)
	if c.TerminalWidth() != 1 || c.TerminalHeight() != 1 {
		t.Fatalf("size = %dx%d, want 1x1", c.TerminalWidth(), c.TerminalHeight())
	}

	c.Resize(20, 10)
	c.Plot(physics.Vec2{X: 50, Y: 50})
	if !c.Lit(10, 10) {
		t.Fatalf("scale not updated after resize")
	}
}

func TestChunkWriterWriteAt(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 2, 3)

	cw.WriteAt(1, 1, "hi")
	cw.WriteAt(-4, 0, "x")
	if buf.Len() != 0 {
		t.Fatalf("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got, want := buf.String(), "\033[4;3Hhi\033[4;3Hx"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteChunked(t *testing.T) {
	var w countingWriter
	data := strings.Repeat("a", 2*maxChunkSize+10)
	if err := writeChunked(&w, data); err != nil {
		t.Fatalf("writeChunked: %v", err)
	}
	if w.calls != 3 || w.n != len(data) {
		t.Fatalf("calls/bytes = %d/%d, want 3/%d", w.calls, w.n, len(data))
	}
}

type countingWriter struct {
	calls, n int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.calls++
	w.n += len(p)
	return len(p), nil
}

func TestChunkWriterWriteCentered(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)

	cw.WriteCentered(5, 20, "GAME OVER")
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := buf.String(), "\033[5;6HGAME OVER"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
