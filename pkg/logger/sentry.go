package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel is the lowest level forwarded to Sentry as a log entry.
	// Errors always become Sentry events.
	MinLevel string `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
}

// NewWithSentry creates a logger writing to cfg's output and to Sentry.
// Without a DSN, or when the SDK fails to initialize, it behaves like New.
// The returned flush function waits up to timeout for buffered events and is
// safe to call in either case.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) (*slog.Logger, func(timeout time.Duration)) {
	local := newHandler(cfg)
	noflush := func(time.Duration) {}

	if sc.DSN == "" {
		return slog.New(NewContextHandler(local, extractors...)), noflush
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		Release:     sc.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(local, extractors...)), noflush
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLevels(ParseLevel(sc.MinLevel)),
	}.NewSentryHandler(context.Background())

	flush := func(timeout time.Duration) { sentry.Flush(timeout) }
	return slog.New(NewContextHandler(fanout{local, remote}, extractors...)), flush
}

// sentryLevels lists the standard levels at or above lowest.
func sentryLevels(lowest slog.Level) []slog.Level {
	var levels []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= lowest {
			levels = append(levels, l)
		}
	}
	return levels
}
