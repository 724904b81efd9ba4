package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tally.db", cfg.DBPath)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "sterling", cfg.System)
	assert.Empty(t, cfg.SystemsDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TALLY_DB", "/var/lib/tally/book.db")
	t.Setenv("TALLY_FORMAT", "json")
	t.Setenv("TALLY_SYSTEM", "scots")
	t.Setenv("TALLY_SYSTEMS", "/etc/tally/systems")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/tally/book.db", cfg.DBPath)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "scots", cfg.System)
	assert.Equal(t, "/etc/tally/systems", cfg.SystemsDir)
}
