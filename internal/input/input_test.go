package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/spacerocks/internal/object"
)

func TestApplyKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  Input
	}{
		{"left", "a", Input{Left: true}},
		{"right vim", "l", Input{Right: true}},
		{"thrust", "W", Input{Up: true}},
		{"fire", " ", Input{Space: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"enter", "\r", Input{Enter: true}},
		{"arrows", "\x1b[A\x1b[D", Input{Up: true, Left: true}},
		{"combo", "d w", Input{Right: true, Up: true, Space: true}},
		{"unknown", "z", Input{}},
	}
	now := time.Now()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			s.apply([]byte(tt.bytes), now)
			got := s.snapshot(now, nil)
			if got.Quit != tt.want.Quit || got.Left != tt.want.Left || got.Right != tt.want.Right ||
				got.Up != tt.want.Up || got.Space != tt.want.Space || got.Enter != tt.want.Enter {
				t.Fatalf("%q: got %+v, want %+v", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestArrowSplitAcrossReads(t *testing.T) {
	tests := []struct {
		name        string
		first, rest string
		want        Input
	}{
		{"up after ESC [", "\x1b[", "A", Input{Up: true}},
		{"left after ESC", "\x1b", "[D", Input{Left: true}},
		{"keys before the split", "w\x1b[", "C", Input{Up: true, Right: true}},
	}
	now := time.Now()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			s.apply([]byte(tt.first), now)
			s.apply([]byte(tt.rest), now)
			got := s.snapshot(now, nil)
			if got.Left != tt.want.Left || got.Right != tt.want.Right || got.Up != tt.want.Up {
				t.Fatalf("%q + %q: got %+v, want %+v", tt.first, tt.rest, got, tt.want)
			}
		})
	}
}

func TestLoneEscapeDoesNotSwallowKeys(t *testing.T) {
	s := newStream()
	now := time.Now()
	s.apply([]byte("\x1b"), now)
	s.apply([]byte("a"), now)

	if got := s.snapshot(now, nil); !got.Left {
		t.Fatalf("key after a lone ESC lost: %+v", got)
	}
}

func TestKeyHoldWindow(t *testing.T) {
	s := newStream()
	start := time.Now()
	s.apply([]byte("a"), start)

	if !s.snapshot(start.Add(keyHoldDuration/2), nil).Left {
		t.Fatalf("key released inside the hold window")
	}
	if s.snapshot(start.Add(keyHoldDuration), nil).Left {
		t.Fatalf("key still held after the hold window")
	}

	s.apply([]byte("a"), start)
	s.Reset()
	if s.snapshot(start, nil).Left {
		t.Fatalf("key held after Reset")
	}
}

func TestInputIntent(t *testing.T) {
	in := Input{Left: true, Up: true, Space: true}
	want := object.Intent{Left: true, Thrust: true, Shoot: true}
	if got := in.Intent(); got != want {
		t.Fatalf("Intent() = %+v, want %+v", got, want)
	}
}

func TestStreamReadsUntilClosed(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	var sawUp bool
	deadline := time.Now().Add(2 * time.Second)
	for !s.Closed() {
		if time.Now().After(deadline) {
			t.Fatalf("stream never closed")
		}
		in := ReadInput(s)
		sawUp = sawUp || in.Up
		time.Sleep(time.Millisecond)
	}
	if !sawUp {
		t.Fatalf("thrust key never reported")
	}
}

func TestStreamPressedBytes(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	s := StartStream(bufio.NewReader(r))

	go func() { _, _ = w.Write([]byte("x")) }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatalf("byte never delivered")
		}
		if in := ReadInput(s); len(in.Pressed) > 0 {
			if string(in.Pressed) != "x" {
				t.Fatalf("pressed = %q, want x", in.Pressed)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
}
