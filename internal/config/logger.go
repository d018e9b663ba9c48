package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Environment variables that shape logging.
const (
	LogLevelEnv = "ROCKS_LOG_LEVEL"
	LogFileEnv  = "ROCKS_LOG_FILE"
)

// NewLogger builds the process logger. The level comes from ROCKS_LOG_LEVEL
// and falls back to info when unset or unparsable.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	raw := GetEnv(LogLevelEnv, "info")
	level, err := log.ParseLevel(raw)
	if err != nil {
		logger.Warn("unknown log level, using info", "value", raw)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// NewTerminalLogger builds the logger for a binary that draws on the same
// terminal as stderr. With ROCKS_LOG_FILE set, logs are appended to that
// file and the returned close func closes it. Otherwise only warnings and
// errors reach stderr, so routine lines never land mid-frame.
func NewTerminalLogger(stderr io.Writer, prefix string) (*log.Logger, func() error, error) {
	if path := GetEnv(LogFileEnv, ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		return NewLogger(f, prefix), f.Close, nil
	}

	logger := NewLogger(stderr, prefix)
	if logger.GetLevel() < log.WarnLevel {
		logger.SetLevel(log.WarnLevel)
	}
	return logger, func() error { return nil }, nil
}
