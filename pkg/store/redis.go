package store

import (
	"context"
	"errors"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/lingo/pkg/i18n"
)

const (
	defaultRedisPrefix = "lingo:tr"
	languagesSuffix    = "#languages"
)

// Redis stores each translation key as a hash of language -> text under
// "{prefix}:{key}". A set at "{prefix}#languages" lists every language written;
// the "#" keeps it out of the key namespace.
type Redis struct {
	client      redis.UniversalClient
	prefix      string
	defaultLang string
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithRedisPrefix sets the key prefix. Default: "lingo:tr".
func WithRedisPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// NewRedis creates a Redis store. Records use defaultLang for their default text.
func NewRedis(client redis.UniversalClient, defaultLang string, opts ...RedisOption) (*Redis, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	r := &Redis{client: client, prefix: defaultRedisPrefix, defaultLang: defaultLang}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

func (r *Redis) languagesKey() string {
	return r.prefix + languagesSuffix
}

// Lookup reads the hash for key. A missing hash is i18n.ErrKeyNotFound.
func (r *Redis) Lookup(ctx context.Context, key string) (i18n.Record[string], error) {
	texts, err := r.client.HGetAll(ctx, r.key(key)).Result()
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	if len(texts) == 0 {
		return nil, i18n.ErrKeyNotFound
	}
	return i18n.NewRecord(r.defaultLang, texts), nil
}

// Put stores texts for key, replacing existing languages with the same name.
func (r *Redis) Put(ctx context.Context, key string, texts map[string]string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(texts) == 0 {
		return ErrEmptyTexts
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.put(ctx, pipe, key, texts)
		return nil
	})
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

func (r *Redis) put(ctx context.Context, pipe redis.Pipeliner, key string, texts map[string]string) {
	values := make([]any, 0, len(texts)*2)
	langs := make([]any, 0, len(texts))
	for lang, text := range texts {
		values = append(values, lang, text)
		langs = append(langs, lang)
	}
	pipe.HSet(ctx, r.key(key), values...)
	pipe.SAdd(ctx, r.languagesKey(), langs...)
}

// Delete removes key in every language.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Import writes every record of src in a single pipeline.
func (r *Redis) Import(ctx context.Context, src *i18n.MapDatabase[string]) (int, error) {
	keys := src.Keys()
	if len(keys) == 0 {
		return 0, nil
	}

	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			rec, _ := src.Record(key)
			texts := make(map[string]string)
			for lang, text := range rec.All() {
				texts[lang] = text
			}
			if len(texts) > 0 {
				r.put(ctx, pipe, key, texts)
			}
		}
		return nil
	})
	if err != nil {
		return 0, errors.Join(ErrWriteFailed, err)
	}
	return len(keys), nil
}

// Languages lists the default language followed by every other stored
// language in lexical order.
func (r *Redis) Languages(ctx context.Context) ([]string, error) {
	langs, err := r.client.SMembers(ctx, r.languagesKey()).Result()
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	return withDefaultFirst(r.defaultLang, langs), nil
}

func withDefaultFirst(def string, langs []string) []string {
	langs = slices.DeleteFunc(slices.Clone(langs), func(l string) bool { return l == def })
	slices.Sort(langs)
	return append([]string{def}, langs...)
}

var _ i18n.Database[string] = (*Redis)(nil)
