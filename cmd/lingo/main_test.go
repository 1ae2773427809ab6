package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/i18n"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

var validCatalog = map[string]string{
	"en/common.yaml": "apples: \"{0} no apples|{1} one apple|[2,*] :count apples\"\nwelcome: \"Welcome, :name!\"\n",
	"ja/common.yaml": "apples: \"{0} りんごなし|[1,*] りんご:count個\"\n",
}

func TestLintCommand(t *testing.T) {
	t.Parallel()

	t.Run("clean catalog", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "lint", writeCatalog(t, validCatalog))
		require.NoError(t, err)
		require.Contains(t, out, "2 keys, 2 languages: ok")
	})

	t.Run("malformed choices", func(t *testing.T) {
		t.Parallel()
		dir := writeCatalog(t, map[string]string{
			"en/common.json": `{"bad": "{0} a|[5,2] b", "worse": "{1,9} a|{2} b"}`,
		})
		out, err := execute(t, "lint", dir, "--format", "json")
		require.EqualError(t, err, "2 malformed choice message(s)")
		require.Contains(t, out, "common.bad [en]")
		require.Contains(t, out, "common.worse [en]")
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "lint", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})
}

func TestTranslateCommand(t *testing.T) {
	t.Parallel()

	dir := writeCatalog(t, validCatalog)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "choice", args: []string{"common.apples", "--count", "3", "--param", "count=3"}, expected: "3 apples\n"},
		{name: "choice zero", args: []string{"common.apples", "--count", "0"}, expected: "no apples\n"},
		{name: "language", args: []string{"common.apples", "--lang", "ja", "--count", "2", "--param", "count=2"}, expected: "りんご2個\n"},
		{name: "fallback", args: []string{"common.welcome", "--lang", "ja", "--param", "name=Ann"}, expected: "Welcome, Ann!\n"},
		{name: "no count keeps choices", args: []string{"common.apples"}, expected: "{0} no apples|{1} one apple|[2,*] :count apples\n"},
		{name: "missing key", args: []string{"common.nope"}, expected: "common.nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := execute(t, append([]string{"translate", dir}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("bad param", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "translate", dir, "common.welcome", "--param", "novalue")
		require.Error(t, err)
	})
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{"a=1", "b=x=y", "c="})
	require.NoError(t, err)
	require.Equal(t, []i18n.Param{i18n.P("a", "1"), i18n.P("b", "x=y"), i18n.P("c", "")}, params)

	_, err = parseParams([]string{"=1"})
	require.Error(t, err)
}

func TestReloadable(t *testing.T) {
	t.Parallel()

	dir := writeCatalog(t, map[string]string{"en/app.yaml": "title: Old\n"})
	load := func() (*i18n.MapDatabase[string], error) {
		return loadCatalog(dir, "yaml", "en")
	}

	r, err := newReloadable(load, logger.NewNope())
	require.NoError(t, err)

	svc, err := i18n.New[string](r, "en")
	require.NoError(t, err)
	require.Equal(t, "Old", svc.T("app.title"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "app.yaml"), []byte("title: New\n"), 0o600))
	require.NoError(t, r.Reload(context.Background()))
	require.Equal(t, "New", svc.T("app.title"))

	// A malformed catalog is rejected and the previous one stays active.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "app.yaml"), []byte("title: \"{0} a|[5,2] b\"\n"), 0o600))
	require.ErrorIs(t, r.Reload(context.Background()), errCatalogInvalid)
	require.Equal(t, "New", svc.T("app.title"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "app.yaml"), []byte("title: [unclosed\n"), 0o600))
	require.Error(t, r.Reload(context.Background()))
	require.Equal(t, "New", svc.T("app.title"))
}

func TestReloadableWatch(t *testing.T) {
	t.Parallel()

	dir := writeCatalog(t, map[string]string{"en/app.yaml": "title: Old\n"})
	r, err := newReloadable(func() (*i18n.MapDatabase[string], error) {
		return loadCatalog(dir, "yaml", "en")
	}, logger.NewNope())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- r.watch(ctx, signals) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "app.yaml"), []byte("title: New\n"), 0o600))
	signals <- struct{}{}

	require.Eventually(t, func() bool {
		rec, err := r.Lookup(ctx, "app.title")
		if err != nil {
			return false
		}
		text, _ := rec.Text()
		return text == "New"
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestImportRejectsFilesSource(t *testing.T) {
	t.Setenv("LINGO_SOURCE", "files")
	_, err := execute(t, "import", writeCatalog(t, validCatalog), "--env-file", filepath.Join(t.TempDir(), "none.env"))
	require.EqualError(t, err, "import needs LINGO_SOURCE=redis or LINGO_SOURCE=postgres")
}
