package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/config"
)

// clearEnv blanks every variable Load reads so host settings do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "KRUSKAL_BASE_INTERVAL", "KRUSKAL_LOG_LEVEL", "KRUSKAL_LOG_FORMAT",
		"KRUSKAL_BACKEND_URL", "KRUSKAL_CACHE_SIZE", "KRUSKAL_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir()) // no .env

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultEnv, cfg.Env)
	assert.Equal(t, time.Second, cfg.BaseInterval)
	assert.Equal(t, config.DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, config.DefaultCacheSize, cfg.CacheSize)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("KRUSKAL_BASE_INTERVAL", "250ms")
	t.Setenv("KRUSKAL_LOG_FORMAT", "json")
	t.Setenv("KRUSKAL_CACHE_SIZE", "8")
	t.Setenv("KRUSKAL_ALLOWED_ORIGINS", "http://localhost:3000, https://demo.example ,")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.BaseInterval)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.Equal(t, []string{"http://localhost:3000", "https://demo.example"}, cfg.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	for key, val := range map[string]string{
		"KRUSKAL_BASE_INTERVAL": "fast",
		"KRUSKAL_CACHE_SIZE":    "0",
		"KRUSKAL_LOG_FORMAT":    "xml",
	} {
		clearEnv(t)
		t.Chdir(t.TempDir())
		t.Setenv(key, val)

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalid, key)
	}
}
