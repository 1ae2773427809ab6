package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/internal/config"
	"github.com/dmitrymomot/lingo/pkg/i18n"
	"github.com/dmitrymomot/lingo/pkg/logger"
	"github.com/dmitrymomot/lingo/pkg/store"
)

type importer interface {
	Import(ctx context.Context, src *i18n.MapDatabase[string]) (int, error)
}

func newImportCmd() *cobra.Command {
	var (
		envFile string
		format  string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "import DIR",
		Short: "Copy a catalog into the configured Redis or PostgreSQL store",
		Long: `Copy a catalog into the store selected by LINGO_SOURCE (redis or postgres).
The catalog is linted first; malformed choice messages abort the import
unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if cfg.Source == config.SourceFiles {
				return fmt.Errorf("import needs LINGO_SOURCE=redis or LINGO_SOURCE=postgres")
			}

			src, err := loadCatalog(args[0], format, cfg.DefaultLang)
			if err != nil {
				return err
			}
			if issues := i18n.Lint(src); len(issues) > 0 {
				for _, issue := range issues {
					fmt.Fprintln(cmd.ErrOrStderr(), issue.String())
				}
				if !force {
					return errCatalogInvalid
				}
			}

			ctx := cmd.Context()
			d, err := openDeps(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = d.Close() }()

			var dst importer
			switch cfg.Source {
			case config.SourceRedis:
				dst, err = store.NewRedis(d.redis, cfg.DefaultLang)
			case config.SourcePostgres:
				if cfg.Migrate {
					if err := store.Migrate(ctx, d.postgres, logger.New(cfg.Log)); err != nil {
						return err
					}
				}
				dst, err = store.NewPostgres(d.postgres, cfg.DefaultLang)
			}
			if err != nil {
				return err
			}

			n, err := dst.Import(ctx, src)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d keys into %s\n", n, cfg.Source)
			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.Flags().StringVar(&format, "format", "yaml", "catalog format (yaml, json)")
	cmd.Flags().BoolVar(&force, "force", false, "import even when lint reports issues")
	return cmd
}
