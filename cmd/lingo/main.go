// Package main provides the lingo CLI: catalog linting, key resolution and an
// HTTP translation service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lingo",
		Short: "lingo - translation catalogs with choice messages",
		Long: `lingo resolves translation keys with language fallback, choice selection
("{0} none|{1} one|[2,*] :count items") and :name placeholders.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newLintCmd(),
		newTranslateCmd(),
		newImportCmd(),
		newServeCmd(),
	)
	return root
}
