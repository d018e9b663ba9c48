package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ROCKS_TEST_SET", "value")
	if got := GetEnv("ROCKS_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("ROCKS_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv = %q, want fallback", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing file: %v", err)
	}

	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("ROCKS_TEST_DOTENV=hello\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("ROCKS_TEST_DOTENV") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("ROCKS_TEST_DOTENV"); got != "hello" {
		t.Fatalf("ROCKS_TEST_DOTENV = %q, want hello", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "debug")
	if l := NewLogger(&bytes.Buffer{}, "test"); l.GetLevel() != log.DebugLevel {
		t.Fatalf("level = %v, want debug", l.GetLevel())
	}

	t.Setenv(LogLevelEnv, "loud")
	var buf bytes.Buffer
	if l := NewLogger(&buf, "test"); l.GetLevel() != log.InfoLevel {
		t.Fatalf("level = %v, want info", l.GetLevel())
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Fatalf("bad level not reported, log: %q", buf.String())
	}
}

func TestNewTerminalLoggerQuietOnStderr(t *testing.T) {
	t.Setenv(LogFileEnv, "")
	t.Setenv(LogLevelEnv, "debug")

	var buf bytes.Buffer
	logger, closeLog, err := NewTerminalLogger(&buf, "test")
	if err != nil {
		t.Fatalf("NewTerminalLogger: %v", err)
	}
	defer closeLog()

	logger.Info("game over")
	if buf.Len() != 0 {
		t.Fatalf("info line reached the terminal: %q", buf.String())
	}
	logger.Warn("spawn fallback")
	if !strings.Contains(buf.String(), "spawn fallback") {
		t.Fatalf("warning dropped, got %q", buf.String())
	}
}

func TestNewTerminalLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocks.log")
	t.Setenv(LogFileEnv, path)
	t.Setenv(LogLevelEnv, "info")

	var buf bytes.Buffer
	logger, closeLog, err := NewTerminalLogger(&buf, "test")
	if err != nil {
		t.Fatalf("NewTerminalLogger: %v", err)
	}
	logger.Info("game restarted")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("log reached the terminal: %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "game restarted") {
		t.Fatalf("log file missing line, got %q", data)
	}
}

func TestNewTerminalLoggerBadPath(t *testing.T) {
	t.Setenv(LogFileEnv, filepath.Join(t.TempDir(), "missing", "rocks.log"))
	if _, _, err := NewTerminalLogger(&bytes.Buffer{}, "test"); err == nil {
		t.Fatalf("expected an error for an unwritable log path")
	}
}
