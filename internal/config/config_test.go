package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_SERVICE", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("RATE_LIMIT_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "coffeestore", cfg.AppName)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "SQLite")
	t.Setenv("RATE_LIMIT_ENABLED", "yes")
	t.Setenv("RATE_LIMIT_RATE", "2.5")
	t.Setenv("DATABASE_MAX_OPEN_CONN", "not-a-number")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBType)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.Rate)
	assert.Equal(t, 20, cfg.DBMaxOpenConn)
	assert.True(t, cfg.IsProduction())
}

func TestRuntimeConfigHolderReadsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "runtime-test.yml"), []byte("runtime:\n  logLevel: debug\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	holder, err := NewRuntimeConfigHolder(Config{RuntimeConfigName: "runtime-test"})
	require.NoError(t, err)
	assert.Equal(t, "debug", holder.Get().LogLevel)
}

func TestRuntimeConfigHolderDefaultsWithoutFile(t *testing.T) {
	holder, err := NewRuntimeConfigHolder(Config{RuntimeConfigName: "does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "info", holder.Get().LogLevel)
}

func TestRuntimeConfigHolderNotifiesListeners(t *testing.T) {
	holder := NewStaticRuntimeConfigHolder(DefaultRuntimeConfig())

	var got []string
	holder.OnChange(func(cfg RuntimeConfig) {
		got = append(got, cfg.LogLevel)
	})
	holder.set(RuntimeConfig{LogLevel: "warn"})

	assert.Equal(t, []string{"warn"}, got)
	assert.Equal(t, "warn", holder.Get().LogLevel)
}

func TestValidateRuntimeConfig(t *testing.T) {
	assert.NoError(t, validateRuntimeConfig(RuntimeConfig{LogLevel: "error"}))
	assert.Error(t, validateRuntimeConfig(RuntimeConfig{LogLevel: ""}))
	assert.Error(t, validateRuntimeConfig(RuntimeConfig{LogLevel: "loud"}))
}

func TestRuntimeConfigHolderLoaded(t *testing.T) {
	holder, err := NewRuntimeConfigHolder(Config{RuntimeConfigName: "does-not-exist"})
	require.NoError(t, err)
	assert.False(t, holder.Loaded())

	assert.True(t, NewStaticRuntimeConfigHolder(DefaultRuntimeConfig()).Loaded())
}
