package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/trl2pgn/internal/errors"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRL2PGN_SITE", "Club")
	t.Setenv("TRL2PGN_WHITE", "Alice")
	t.Setenv("TRL2PGN_WORKERS", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Club", cfg.Site)
	assert.Equal(t, "Alice", cfg.White)
	assert.Equal(t, "Player 2", cfg.Black)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 1, cfg.VerbosityLevel())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "site: Tournament\nwhite: Carol\nblack: Dave\nworkers: 2\nverbosity: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Tournament", cfg.Site)
	assert.Equal(t, "Carol", cfg.White)
	assert.Equal(t, "Dave", cfg.Black)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 0, cfg.VerbosityLevel(), "an explicit zero must not be rewritten to the default")
}

func TestLoadVerbosityZeroFromEnv(t *testing.T) {
	t.Setenv("TRL2PGN_VERBOSITY", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.VerbosityLevel())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsNegativeWorkers(t *testing.T) {
	t.Setenv("TRL2PGN_WORKERS", "-1")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestLoadRejectsNegativeVerbosity(t *testing.T) {
	t.Setenv("TRL2PGN_VERBOSITY", "-2")

	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestLoadDefaultsWorkers(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, cfg.Workers, 0)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Ludii", cfg.Site)
	assert.Equal(t, "Player 1", cfg.White)
	assert.Equal(t, "Player 2", cfg.Black)
	assert.Empty(t, cfg.Event)
	assert.Greater(t, cfg.Workers, 0)
	assert.Equal(t, 1, cfg.VerbosityLevel())
}
