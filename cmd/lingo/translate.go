package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/pkg/i18n"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

func newTranslateCmd() *cobra.Command {
	var (
		format      string
		defaultLang string
		lang        string
		count       int
		params      []string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "translate DIR KEY",
		Short: "Resolve one key from a catalog",
		Example: `  lingo translate ./translations common.apples --lang pl --count 3 --param count=3
  lingo translate ./translations common.welcome --param name=Ann`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadCatalog(args[0], format, defaultLang)
			if err != nil {
				return err
			}

			bound, err := parseParams(params)
			if err != nil {
				return err
			}

			log := logger.NewNope()
			if verbose {
				log = logger.New(logger.Config{Level: "debug", Format: "text", Output: cmd.ErrOrStderr()})
			}

			svc, err := i18n.New[string](db, db.DefaultLanguage(),
				i18n.WithLogger(log),
				i18n.WithMissingKeyHandler(func(key string) {
					log.Warn("missing translation key", slog.String("key", key))
				}),
			)
			if err != nil {
				return err
			}

			req := i18n.Request[string]{Key: args[1], Params: bound}
			if lang != "" {
				canonical, err := i18n.CanonicalLanguage(lang)
				if err != nil {
					return err
				}
				req.Lang = &canonical
			}
			if cmd.Flags().Changed("count") {
				req.Value = &count
			}

			text, err := svc.Resolve(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "catalog format (yaml, json)")
	cmd.Flags().StringVar(&defaultLang, "default-lang", "en", "default language")
	cmd.Flags().StringVar(&lang, "lang", "", "language to translate into (default: the default language)")
	cmd.Flags().IntVar(&count, "count", 0, "value used to select a choice")
	cmd.Flags().StringArrayVar(&params, "param", nil, "placeholder binding name=value (repeatable)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log fallbacks to stderr")
	return cmd
}

func parseParams(raw []string) ([]i18n.Param, error) {
	params := make([]i18n.Param, 0, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid param %q, expected name=value", kv)
		}
		params = append(params, i18n.P(name, value))
	}
	return params, nil
}
