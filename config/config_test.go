package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("REMOTE_BASE_URL", "https://api.delsur.test")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("GO_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.delsur.test", cfg.RemoteBaseURL)
	assert.Equal(t, "delsur-store.db", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
}

func TestLoadRequiresRemoteBaseURL(t *testing.T) {
	t.Setenv("REMOTE_BASE_URL", "")
	t.Setenv("GO_ENV", "test")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{RemoteBaseURL: "https://api.delsur.test", DatabaseURL: "store.db"}
	assert.NoError(t, cfg.Validate())

	cfg.DatabaseURL = ""
	assert.Error(t, cfg.Validate())
}
