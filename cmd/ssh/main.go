package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/draw"
	"github.com/tomz197/spacerocks/internal/loop/client"
	loopconfig "github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/loop/play"
	"github.com/tomz197/spacerocks/internal/loop/server"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	envErr := config.LoadDotEnv()
	logger := config.NewLogger(os.Stderr, "spacerocks-ssh")
	if envErr != nil {
		logger.Warn("ignoring .env", "err", envErr)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "host_key", hostKeyPath)

	tuning, err := loopconfig.LoadTuning(config.GetEnv("ROCKS_TUNING", ""), logger)
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	// Sessions derive from this context so shutdown ends every game.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &games{ctx: ctx, tuning: tuning, logger: logger, sessions: &sessionGroup{}}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			g.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// TCP_NODELAY keeps input latency low
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	g.sessions.close()
	cancel()
	if !g.sessions.wait(15 * time.Second) {
		logger.Warn("sessions still open after timeout", "timeout", 15*time.Second)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// games starts one independent simulation per SSH session.
type games struct {
	ctx      context.Context
	tuning   loopconfig.Tuning
	logger   *log.Logger
	sessions *sessionGroup
}

// middleware runs a game for the session and then hands it to next.
func (g *games) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		if !g.sessions.enter() {
			fmt.Fprintln(sess, "Server is shutting down, try again later.")
			return
		}
		defer g.sessions.leave()

		logger := g.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(g.ctx, cancel)
		defer stop()

		gs := server.NewServer(g.tuning, play.Options{Logger: logger})
		go func() {
			_ = gs.Run(ctx)
		}()

		c := client.NewClient(gs, bufio.NewReader(sess), sess, client.ClientOptions{
			TermSizeFunc: sizeTracker.getSize,
			Logger:       logger,
		})
		if err := c.Run(ctx); err != nil {
			logger.Error("game error", "err", err)
		}

		if snap := gs.GetSnapshot(); snap != nil {
			logger.Info("session ended", "score", snap.Player.Score, "level", snap.Level)
		}
		next(sess)
	}
}

// sessionGroup counts running sessions. Once closed it refuses new ones,
// so enter never races wait.
type sessionGroup struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// enter registers a session. It returns false after close.
func (g *sessionGroup) enter() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	g.wg.Add(1)
	return true
}

// leave ends a session registered by enter.
func (g *sessionGroup) leave() {
	g.wg.Done()
}

// close stops accepting sessions.
func (g *sessionGroup) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

// wait blocks until every session has left or d elapses. It reports
// whether all sessions left. Call close first.
func (g *sessionGroup) wait(d time.Duration) bool {
	finished := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return true
	case <-time.After(d):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
