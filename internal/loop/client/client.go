// Package client drives one terminal: it samples keys, feeds intents to a
// GameServer and renders the server's latest snapshot.
package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spacerocks/internal/draw"
	"github.com/tomz197/spacerocks/internal/input"
	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/loop/server"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	server       server.GameServer
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	lastInput    time.Time
	frameTime    time.Duration
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	FrameTime    time.Duration // Render cadence; config.ClientTargetFrameTime when zero
}

// NewClient creates a client rendering gs to w and reading keys from r.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	frameTime := opts.FrameTime
	if frameTime <= 0 {
		frameTime = config.ClientTargetFrameTime
	}

	// The canvas maps the whole playfield onto the render area.
	fieldWidth, fieldHeight := 1.0, 1.0
	if snap := gs.GetSnapshot(); snap != nil {
		fieldWidth, fieldHeight = snap.Field.Width, snap.Field.Height
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, fieldWidth, fieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       gs,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		lastInput:    time.Now(),
		frameTime:    frameTime,
	}
}

// Run renders frames until the player quits, the input ends, the player
// idles out or ctx is cancelled. Only terminal write errors are returned.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer draw.ClearScreen(c.writer)

	ticker := time.NewTicker(c.frameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if !c.processInput() {
			return nil
		}
		c.updateScreen()

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
	}
}

// processInput forwards the held keys to the server. It returns false when
// the client should stop.
func (c *Client) processInput() bool {
	in := input.ReadInput(c.inputStream)
	if in.Quit || c.inputStream.Closed() {
		return false
	}

	if len(in.Pressed) > 0 {
		c.lastInput = time.Now()
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting idle player")
		return false
	}

	if snap := c.server.GetSnapshot(); snap != nil && snap.GameOver {
		if in.Enter {
			c.inputStream.Reset()
			c.server.Restart()
		}
		return true
	}

	c.server.SendInput(in.Intent())
	return true
}

// updateScreen follows terminal resizes, clamping to the max render size.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution
// and computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
