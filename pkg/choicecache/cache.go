package choicecache

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/lingo/pkg/choice"
)

// Cache stores parsed choice sets keyed by the exact message text they were
// parsed from. Keys never include the translation key or language, so two
// language variants of one key can never share an entry.
type Cache interface {
	// Get returns ErrNotFound on a miss.
	Get(ctx context.Context, message string) (*choice.Set, error)
	Set(ctx context.Context, message string, set *choice.Set) error
	Clear(ctx context.Context) error
	Close() error
}

var sfGroup singleflight.Group

// GetOrParse returns the cached set for message, parsing and storing it on a miss.
// Concurrent misses for the same message are parsed once.
// Parse errors are returned and never cached.
func GetOrParse(ctx context.Context, c Cache, message string) (*choice.Set, error) {
	if set, err := c.Get(ctx, message); err == nil {
		return set, nil
	}

	v, err, _ := sfGroup.Do(message, func() (any, error) {
		return choice.Parse(message)
	})
	if err != nil {
		return nil, err
	}

	set := v.(*choice.Set)
	_ = c.Set(ctx, message, set)

	return set, nil
}
