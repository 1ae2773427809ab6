package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dmitrymomot/lingo/pkg/i18n"
)

// loadCatalog reads {lang}/{namespace}.{yaml,yml,json} files below dir.
func loadCatalog(dir, format, defaultLang string) (*i18n.MapDatabase[string], error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: %s is not a directory", dir)
	}

	fsys := os.DirFS(dir)
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return i18n.LoadYAML(fsys, defaultLang)
	case "json":
		return i18n.LoadJSON(fsys, defaultLang)
	default:
		return nil, fmt.Errorf("catalog: unknown format %q", format)
	}
}
