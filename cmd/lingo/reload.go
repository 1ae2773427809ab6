package main

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/lingo/pkg/i18n"
)

// reloadable swaps whole catalogs atomically. Each Lookup sees exactly one
// catalog version.
type reloadable struct {
	current atomic.Pointer[i18n.MapDatabase[string]]
	load    func() (*i18n.MapDatabase[string], error)
	log     *slog.Logger
}

func newReloadable(load func() (*i18n.MapDatabase[string], error), log *slog.Logger) (*reloadable, error) {
	db, err := load()
	if err != nil {
		return nil, err
	}
	r := &reloadable{load: load, log: log}
	r.current.Store(db)
	return r, nil
}

func (r *reloadable) Lookup(ctx context.Context, key string) (i18n.Record[string], error) {
	return r.current.Load().Lookup(ctx, key)
}

func (r *reloadable) Languages() []string {
	return r.current.Load().Languages()
}

// Reload replaces the catalog. A catalog that fails to load or contains
// malformed choice messages is rejected and the previous one stays active.
func (r *reloadable) Reload(ctx context.Context) error {
	db, err := r.load()
	if err != nil {
		r.log.ErrorContext(ctx, "catalog reload failed", slog.String("error", err.Error()))
		return err
	}
	if issues := i18n.Lint(db); len(issues) > 0 {
		for _, issue := range issues {
			r.log.ErrorContext(ctx, "malformed choice message",
				slog.String("key", issue.Key),
				slog.String("lang", issue.Lang),
				slog.String("error", issue.Err.Error()),
			)
		}
		return errCatalogInvalid
	}

	r.current.Store(db)
	r.log.InfoContext(ctx, "catalog reloaded",
		slog.Int("keys", len(db.Keys())),
		slog.Int("languages", len(db.Languages())),
	)
	return nil
}

// watch reloads on every value from signals until ctx is done.
func (r *reloadable) watch(ctx context.Context, signals <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-signals:
			_ = r.Reload(ctx)
		}
	}
}

var _ i18n.Database[string] = (*reloadable)(nil)
