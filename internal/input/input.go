// Package input turns a raw terminal byte stream into per-tick key state.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/spacerocks/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals only report key repeats, never releases.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Space   bool
	Enter   bool
	Pressed []byte
}

// Intent maps the held keys onto the ship controls.
func (in Input) Intent() object.Intent {
	return object.Intent{
		Left:   in.Left,
		Right:  in.Right,
		Thrust: in.Up,
		Shoot:  in.Space,
	}
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	space time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state for
// combinations.
type Stream struct {
	ch      chan byte
	closed  bool
	state   keyState
	pending []byte // Unfinished escape sequence from the last drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when r returns an error.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets every held key.
func (s *Stream) Reset() {
	s.state = keyState{}
	s.pending = nil
}

// ReadInput drains all available bytes from the stream without blocking
// and returns the keys held as of now.
func ReadInput(s *Stream) Input {
	now := time.Now()
	buf := s.drain()
	s.apply(buf, now)
	return s.snapshot(now, buf)
}

func (s *Stream) drain() []byte {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// apply parses buf, including CSI arrow sequences, into key timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// ESC or ESC [ at the end may be the head of an arrow key whose
		// tail arrives with the next read.
		if b == '\x1b' && (i+1 == len(buf) || (i+2 == len(buf) && buf[i+1] == '[')) {
			s.pending = append([]byte(nil), buf[i:]...)
			return
		}

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.up = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// snapshot reports keys seen within the hold window.
func (s *Stream) snapshot(now time.Time, pressed []byte) Input {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Input{
		Quit:    held(s.state.quit),
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Up:      held(s.state.up),
		Space:   held(s.state.space),
		Enter:   held(s.state.enter),
		Pressed: pressed,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl-C
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.up = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
