package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"MATHDRILL_DB", "MATHDRILL_LOG", "MATHDRILL_LOG_LEVEL", "MATHDRILL_MUTE", "MATHDRILL_SEED", "MATHDRILL_STREAK", "MATHDRILL_ADVANCE_DELAY"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Mute)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, 10, cfg.Session.StreakToLevelUp)
	assert.Equal(t, time.Second, cfg.Session.AdvanceDelay)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MATHDRILL_DB", "/tmp/x.db")
	t.Setenv("MATHDRILL_MUTE", "yes")
	t.Setenv("MATHDRILL_SEED", "42")
	t.Setenv("MATHDRILL_STREAK", "5")
	t.Setenv("MATHDRILL_ADVANCE_DELAY", "250ms")
	t.Setenv("MATHDRILL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.True(t, cfg.Mute)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, 5, cfg.Session.StreakToLevelUp)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.AdvanceDelay)
}

func TestLoadZeroSeed(t *testing.T) {
	t.Setenv("MATHDRILL_SEED", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed, "an explicit zero is still a fixed seed")
	assert.Equal(t, uint64(0), *cfg.Seed)
}

func TestLoadInvalid(t *testing.T) {
	t.Run("seed", func(t *testing.T) {
		t.Setenv("MATHDRILL_SEED", "not-a-number")
		_, err := Load()
		assert.ErrorContains(t, err, "MATHDRILL_SEED")
	})
	t.Run("streak", func(t *testing.T) {
		t.Setenv("MATHDRILL_STREAK", "0")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("log level", func(t *testing.T) {
		t.Setenv("MATHDRILL_LOG_LEVEL", "loud")
		_, err := Load()
		assert.ErrorContains(t, err, "MATHDRILL_LOG_LEVEL")
	})
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mathdrill.log")
	cfg := &Config{LogPath: path, LogLevel: "warn"}

	logger, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept", slog.String("k", "v"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"msg":"kept"`)
}

func TestNewLoggerDiscard(t *testing.T) {
	cfg := &Config{LogLevel: "info"}
	logger, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}
