package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lingo/internal/backend"
	"github.com/dmitrymomot/lingo/internal/config"
	"github.com/dmitrymomot/lingo/internal/server"
	"github.com/dmitrymomot/lingo/pkg/choicecache"
	"github.com/dmitrymomot/lingo/pkg/i18n"
	"github.com/dmitrymomot/lingo/pkg/logger"
	"github.com/dmitrymomot/lingo/pkg/store"
)

const sentryFlushTimeout = 2 * time.Second

func newServeCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve translations over HTTP",
		Long: `Serve translations over HTTP. Configuration comes from LINGO_* environment
variables, optionally loaded from a .env file. With the files source, SIGHUP
reloads the catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}

			log, flush := logger.NewWithSentry(cfg.Log, cfg.Sentry)
			defer flush(sentryFlushTimeout)

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return serve(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	return cmd
}

// deps holds the connections opened for one serve run.
type deps struct {
	redis    redis.UniversalClient
	postgres *pgxpool.Pool
}

func (d *deps) Close() error {
	var errs []error
	if d.redis != nil {
		errs = append(errs, d.redis.Close())
	}
	if d.postgres != nil {
		d.postgres.Close()
	}
	return errors.Join(errs...)
}

func openDeps(ctx context.Context, cfg config.Config) (*deps, error) {
	d := &deps{}
	if cfg.NeedsRedis() {
		client, err := backend.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		d.redis = client
	}
	if cfg.Source == config.SourcePostgres {
		pool, err := backend.OpenPostgres(ctx, cfg.Postgres)
		if err != nil {
			_ = d.Close()
			return nil, err
		}
		d.postgres = pool
	}
	return d, nil
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	d, err := openDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Error("closing connections failed", slog.String("error", err.Error()))
		}
	}()

	var (
		db         i18n.Database[string]
		srvOpts    = []server.Option{server.WithLogger(log)}
		reloader   *reloadable
		defaultTag = cfg.DefaultLang
	)

	switch cfg.Source {
	case config.SourceFiles:
		reloader, err = newReloadable(func() (*i18n.MapDatabase[string], error) {
			return loadCatalog(cfg.CatalogDir, cfg.CatalogFormat, cfg.DefaultLang)
		}, log)
		if err != nil {
			return err
		}
		db = reloader
		defaultTag = reloader.current.Load().DefaultLanguage()
		srvOpts = append(srvOpts, server.WithLanguageSource(func(context.Context) ([]string, error) {
			return reloader.Languages(), nil
		}))

	case config.SourceRedis:
		s, err := store.NewRedis(d.redis, cfg.DefaultLang)
		if err != nil {
			return err
		}
		db = s
		srvOpts = append(srvOpts, server.WithLanguageSource(s.Languages))

	case config.SourcePostgres:
		if cfg.Migrate {
			if err := store.Migrate(ctx, d.postgres, log); err != nil {
				return err
			}
		}
		s, err := store.NewPostgres(d.postgres, cfg.DefaultLang)
		if err != nil {
			return err
		}
		db = s
		srvOpts = append(srvOpts, server.WithLanguageSource(s.Languages))
	}

	if d.redis != nil {
		srvOpts = append(srvOpts, server.WithCheck("redis", backend.RedisCheck(d.redis)))
	}
	if d.postgres != nil {
		srvOpts = append(srvOpts, server.WithCheck("postgres", backend.PostgresCheck(d.postgres)))
	}

	cache := newChoiceCache(cfg, d.redis)
	opts := []i18n.Option{i18n.WithLogger(log)}
	if cache != nil {
		defer func() { _ = cache.Close() }()
		opts = append(opts, i18n.WithChoiceCache(cache))
	}

	svc, err := i18n.New[string](db, defaultTag, opts...)
	if err != nil {
		return err
	}
	srv, err := server.New(svc, srvOpts...)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gCtx, cfg.Addr, srv.Handler(), log, cfg.ShutdownTimeout)
	})

	if reloader != nil {
		g.Go(func() error {
			return reloader.watch(gCtx, hangups(gCtx))
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("lingo stopped with error", slog.String("error", err.Error()))
		return err
	}
	log.Info("lingo stopped")
	return nil
}

func newChoiceCache(cfg config.Config, client redis.UniversalClient) choicecache.Cache {
	switch cfg.ChoiceCache {
	case config.CacheMemory:
		return choicecache.NewMemory(
			choicecache.WithMaxEntries(cfg.ChoiceCacheSize),
			choicecache.WithTTL(cfg.ChoiceCacheTTL),
		)
	case config.CacheRedis:
		return choicecache.NewRedis(client, choicecache.WithRedisTTL(cfg.ChoiceCacheTTL))
	default:
		return nil
	}
}

// hangups forwards SIGHUP until ctx is done.
func hangups(ctx context.Context) <-chan struct{} {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP)

	out := make(chan struct{})
	go func() {
		defer signal.Stop(sig)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
