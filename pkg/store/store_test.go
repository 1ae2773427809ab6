package store

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNewStoresRejectNilClient(t *testing.T) {
	t.Parallel()

	_, err := NewRedis(nil, "en")
	require.ErrorIs(t, err, ErrNilClient)

	_, err = NewPostgres(nil, "en")
	require.ErrorIs(t, err, ErrNilClient)
}

func TestRedisLanguagesKeyOutsideKeyNamespace(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{})
	t.Cleanup(func() { _ = client.Close() })

	r, err := NewRedis(client, "en", WithRedisPrefix("app"))
	require.NoError(t, err)

	require.Equal(t, "app#languages", r.languagesKey())
	for _, key := range []string{"languages", "#languages", ":languages", ""} {
		require.NotEqual(t, r.languagesKey(), r.key(key), key)
	}
}

func TestWithDefaultFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		langs    []string
		expected []string
	}{
		{name: "empty", langs: nil, expected: []string{"en"}},
		{name: "default only", langs: []string{"en"}, expected: []string{"en"}},
		{name: "sorted after default", langs: []string{"pl", "en", "de"}, expected: []string{"en", "de", "pl"}},
		{name: "default missing", langs: []string{"ja"}, expected: []string{"en", "ja"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			input := append([]string(nil), tt.langs...)
			require.Equal(t, tt.expected, withDefaultFirst("en", input))
			require.Equal(t, tt.langs, input)
		})
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
}
