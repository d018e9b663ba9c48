package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/spacerocks/internal/config"
	"github.com/tomz197/spacerocks/internal/loop/client"
	loopconfig "github.com/tomz197/spacerocks/internal/loop/config"
	"github.com/tomz197/spacerocks/internal/loop/play"
	"github.com/tomz197/spacerocks/internal/loop/server"
	"golang.org/x/term"
)

func main() {
	envErr := config.LoadDotEnv()
	logger, closeLog, err := config.NewTerminalLogger(os.Stderr, "spacerocks")
	if err != nil {
		config.NewLogger(os.Stderr, "spacerocks").Fatal("failed to open log", "err", err)
	}
	defer closeLog()
	if envErr != nil {
		logger.Warn("ignoring .env", "err", envErr)
	}

	tuning, err := loopconfig.LoadTuning(config.GetEnv("ROCKS_TUNING", ""), logger)
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gs := server.NewServer(tuning, play.Options{Logger: logger})
	go func() {
		_ = gs.Run(ctx)
	}()

	c := client.NewClient(gs, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{Logger: logger})
	if err := c.Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
