package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/pkg/i18n"
)

func newLintCmd() *cobra.Command {
	var (
		format      string
		defaultLang string
	)

	cmd := &cobra.Command{
		Use:   "lint DIR",
		Short: "Report malformed choice messages in a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := loadCatalog(args[0], format, defaultLang)
			if err != nil {
				return err
			}

			issues := i18n.Lint(db)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d malformed choice message(s)", len(issues))
			}

			fmt.Fprintf(out, "%d keys, %d languages: ok\n", len(db.Keys()), len(db.Languages()))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "catalog format (yaml, json)")
	cmd.Flags().StringVar(&defaultLang, "default-lang", "en", "default language")
	return cmd
}
