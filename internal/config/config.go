package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/lingo/internal/backend"
	"github.com/dmitrymomot/lingo/pkg/i18n"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

// Prefix is prepended to every environment variable name.
const Prefix = "LINGO_"

// Translation sources.
const (
	SourceFiles    = "files"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// Choice cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config describes runtime configuration for lingo serve.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"ADDR" envDefault:":8080"`
	// DefaultLang is the fallback language.
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`
	// Source selects where translations are read from: files, redis or postgres.
	Source string `env:"SOURCE" envDefault:"files"`
	// CatalogDir holds {lang}/{namespace}.yaml|json files for the files source.
	CatalogDir string `env:"CATALOG_DIR" envDefault:"translations"`
	// CatalogFormat is yaml or json.
	CatalogFormat string `env:"CATALOG_FORMAT" envDefault:"yaml"`
	// Migrate applies the translations table migration on start (postgres source).
	Migrate bool `env:"MIGRATE" envDefault:"true"`

	// ChoiceCache selects the parsed choice cache: none, memory or redis.
	ChoiceCache     string        `env:"CHOICE_CACHE" envDefault:"memory"`
	ChoiceCacheSize int           `env:"CHOICE_CACHE_SIZE" envDefault:"1024"`
	ChoiceCacheTTL  time.Duration `env:"CHOICE_CACHE_TTL" envDefault:"1h"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Log      logger.Config          `envPrefix:"LOG_"`
	Sentry   logger.SentryConfig
	Redis    backend.RedisConfig    `envPrefix:"REDIS_"`
	Postgres backend.PostgresConfig `envPrefix:"POSTGRES_"`
}

// Load reads .env files (missing ones are skipped) and parses LINGO_*
// variables. Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: Prefix})
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints, normalizes enum values and
// canonicalizes the default language tag (ja_JP becomes ja-JP).
func (c *Config) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	c.ChoiceCache = strings.ToLower(strings.TrimSpace(c.ChoiceCache))
	c.CatalogFormat = strings.ToLower(strings.TrimSpace(c.CatalogFormat))

	if strings.TrimSpace(c.DefaultLang) == "" {
		return errors.New("config: default language is required")
	}
	lang, err := i18n.CanonicalLanguage(c.DefaultLang)
	if err != nil {
		return fmt.Errorf("config: default language: %w", err)
	}
	c.DefaultLang = lang

	switch c.Source {
	case SourceFiles:
		if c.CatalogDir == "" {
			return errors.New("config: catalog dir is required for the files source")
		}
		if c.CatalogFormat != "yaml" && c.CatalogFormat != "json" {
			return fmt.Errorf("config: unknown catalog format %q", c.CatalogFormat)
		}
	case SourceRedis:
		if c.Redis.URL == "" {
			return errors.New("config: redis url is required for the redis source")
		}
	case SourcePostgres:
		if c.Postgres.URL == "" {
			return errors.New("config: postgres url is required for the postgres source")
		}
	default:
		return fmt.Errorf("config: unknown source %q", c.Source)
	}

	switch c.ChoiceCache {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Redis.URL == "" {
			return errors.New("config: redis url is required for the redis choice cache")
		}
	default:
		return fmt.Errorf("config: unknown choice cache %q", c.ChoiceCache)
	}

	if c.ShutdownTimeout <= 0 {
		return errors.New("config: shutdown timeout must be positive")
	}
	return nil
}

// NeedsRedis reports whether a Redis connection is required.
func (c Config) NeedsRedis() bool {
	return c.Source == SourceRedis || c.ChoiceCache == CacheRedis
}
