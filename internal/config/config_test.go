package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buddha-num-conv/internal/render"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAddr, EnvMode, EnvDefaultFormat} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddr, "127.0.0.1:9090")
	t.Setenv(EnvMode, "debug")
	t.Setenv(EnvDefaultFormat, "HTML")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, render.FormatHTML, cfg.DefaultFormat)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMode, "production")
	_, err := FromEnv()
	assert.True(t, Error.Has(err), "expected config error class, got %v", err)

	clearEnv(t)
	t.Setenv(EnvDefaultFormat, "pdf")
	_, err = FromEnv()
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
	assert.True(t, Error.Has(err))
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	// godotenv sets variables that are unset; unset them so the file applies.
	for _, key := range []string{EnvAddr, EnvDefaultFormat} {
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_ADDR=:7070\nAPP_DEFAULT_FORMAT=annotated\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvAddr)
		os.Unsetenv(EnvDefaultFormat)
	})

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, render.FormatAnnotated, cfg.DefaultFormat)
	assert.Equal(t, "release", cfg.Mode)
}

func TestLoadEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAddr, ":6060")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ADDR=:7070\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Addr)
}
