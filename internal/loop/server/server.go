// Package server runs one simulation on its own fixed-rate tick loop and
// publishes an immutable snapshot after every tick. Clients render the
// latest snapshot at their own cadence and feed intents back.
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/loop/play"
)

// GameServer is the interface clients use to talk to a running game.
type GameServer interface {
	SendInput(intent play.Intent)
	GetSnapshot() *play.Snapshot
	Restart()
}

// Server owns a play.State and is the only goroutine that touches it.
type Server struct {
	tuning config.Tuning
	logger *log.Logger

	state    *play.State
	snapshot atomic.Pointer[play.Snapshot]

	mu      sync.Mutex
	intent  play.Intent // Latest sample wins
	restart bool

	tickTime time.Duration
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// NewServer creates a server with a fresh game. It does not tick until Run.
func NewServer(t config.Tuning, opts play.Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
		opts.Logger = logger
	}
	s := &Server{
		tuning:   t,
		logger:   logger,
		state:    play.New(t, opts),
		tickTime: config.TickTime,
	}
	s.publish()
	return s
}

// Run ticks the simulation at config.TickRate until ctx is cancelled.
// Every tick advances the game by exactly one TickTime regardless of how
// late the ticker fires.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick applies a pending restart, steps once and publishes.
func (s *Server) tick() {
	s.mu.Lock()
	intent := s.intent
	restart := s.restart
	s.restart = false
	s.mu.Unlock()

	if restart {
		s.logger.Info("game restarted", "previous_score", s.state.Player.Score)
		s.state = play.New(s.tuning, play.Options{Rand: s.state.Rand(), Logger: s.logger})
	}

	play.Step(s.state, intent, s.tickTime.Seconds())
	s.publish()
}

func (s *Server) publish() {
	snap := s.state.Snapshot()
	s.snapshot.Store(&snap)
}

// SendInput replaces the intent used from the next tick on.
func (s *Server) SendInput(intent play.Intent) {
	s.mu.Lock()
	s.intent = intent
	s.mu.Unlock()
}

// GetSnapshot returns the snapshot published by the last tick.
func (s *Server) GetSnapshot() *play.Snapshot {
	return s.snapshot.Load()
}

// Restart replaces the game with a new one on the next tick.
func (s *Server) Restart() {
	s.mu.Lock()
	s.restart = true
	s.intent = play.Intent{}
	s.mu.Unlock()
}
