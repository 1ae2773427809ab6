// Package logger builds slog loggers for lingo binaries.
//
// New creates a JSON or text logger from a Config, typically parsed from the
// environment. NewWithSentry additionally forwards warnings and errors to
// Sentry and falls back to local output when no DSN is configured.
//
// Every logger built here adds attributes stored in the context with
// WithAttrs, so request handlers can attach the request language or ID once
// and have it appear on every record logged with that context:
//
//	ctx = logger.WithAttrs(ctx, slog.String("lang", "ja"))
//	log.WarnContext(ctx, "fell back to default language")
//	// {"level":"WARN","msg":"fell back to default language","lang":"ja"}
//
// Libraries default to NewNope and never log unless handed a logger.
package logger
