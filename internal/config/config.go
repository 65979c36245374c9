// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/mathdrill/internal/session"
)

// Config holds all application configuration.
type Config struct {
	// DBPath overrides the default database location. Empty means
	// store.DefaultDBPath.
	DBPath string

	// LogPath is where structured logs are written. Empty disables logging,
	// since the terminal belongs to the UI.
	LogPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// Mute disables the terminal bell.
	Mute bool

	// Seed fixes the problem sequence when set. Nil means a time seed.
	Seed *uint64

	Session session.Config
}

// Load reads configuration from MATHDRILL_* environment variables.
func Load() (*Config, error) {
	sc := session.DefaultConfig()
	sc.StreakToLevelUp = getEnvInt("MATHDRILL_STREAK", sc.StreakToLevelUp)
	sc.AdvanceDelay = getEnvDuration("MATHDRILL_ADVANCE_DELAY", sc.AdvanceDelay)

	seed, err := getEnvUint("MATHDRILL_SEED")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:   getEnv("MATHDRILL_DB", ""),
		LogPath:  getEnv("MATHDRILL_LOG", ""),
		LogLevel: getEnv("MATHDRILL_LOG_LEVEL", "info"),
		Mute:     getEnvBool("MATHDRILL_MUTE", false),
		Seed:     seed,
		Session:  sc,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("MATHDRILL_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return c.Session.Validate()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

// getEnvUint returns nil when key is unset or blank.
func getEnvUint(key string) (*uint64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &n, nil
}
