package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "en", cfg.DefaultLang)
	require.Equal(t, config.SourceFiles, cfg.Source)
	require.Equal(t, "translations", cfg.CatalogDir)
	require.Equal(t, config.CacheMemory, cfg.ChoiceCache)
	require.Equal(t, 1024, cfg.ChoiceCacheSize)
	require.Equal(t, time.Hour, cfg.ChoiceCacheTTL)
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 3, cfg.Redis.RetryAttempts)
	require.Equal(t, int32(10), cfg.Postgres.MaxConns)
	require.False(t, cfg.NeedsRedis())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LINGO_ADDR", ":9090")
	t.Setenv("LINGO_SOURCE", "Redis")
	t.Setenv("LINGO_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("LINGO_CHOICE_CACHE", "redis")
	t.Setenv("LINGO_LOG_LEVEL", "debug")
	t.Setenv("LINGO_SENTRY_DSN", "https://key@sentry.example.com/1")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, config.SourceRedis, cfg.Source)
	require.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "https://key@sentry.example.com/1", cfg.Sentry.DSN)
	require.True(t, cfg.NeedsRedis())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LINGO_DEFAULT_LANG=ja\nLINGO_CATALOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("LINGO_DEFAULT_LANG")
		_ = os.Unsetenv("LINGO_CATALOG_FORMAT")
	})

	cfg, err := config.Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "ja", cfg.DefaultLang)
	require.Equal(t, "json", cfg.CatalogFormat)
}

func TestLoadCanonicalizesDefaultLanguage(t *testing.T) {
	t.Setenv("LINGO_DEFAULT_LANG", "ja_JP")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "ja-JP", cfg.DefaultLang)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown source", env: map[string]string{"LINGO_SOURCE": "s3"}},
		{name: "redis source without url", env: map[string]string{"LINGO_SOURCE": "redis"}},
		{name: "postgres source without url", env: map[string]string{"LINGO_SOURCE": "postgres"}},
		{name: "redis cache without url", env: map[string]string{"LINGO_CHOICE_CACHE": "redis"}},
		{name: "unknown cache", env: map[string]string{"LINGO_CHOICE_CACHE": "disk"}},
		{name: "unknown format", env: map[string]string{"LINGO_CATALOG_FORMAT": "toml"}},
		{name: "empty default language", env: map[string]string{"LINGO_DEFAULT_LANG": " "}},
		{name: "invalid default language", env: map[string]string{"LINGO_DEFAULT_LANG": "not a tag"}},
		{name: "bad duration", env: map[string]string{"LINGO_SHUTDOWN_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
