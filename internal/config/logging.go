package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abhisek/mathdrill/internal/store"
)

// NewLogger builds the application logger. With no LogPath it discards
// everything; otherwise it appends JSON lines to the file. The returned
// closer must be called on exit.
func (c *Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if c.LogPath == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	if err := store.EnsureDir(c.LogPath); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: parseLevel(c.LogLevel),
	}))
	return logger, f, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
