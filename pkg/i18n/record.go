package i18n

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Record holds every text of one translation key.
type Record[L comparable] interface {
	// Text returns the text used when no language is requested.
	Text() (string, bool)
	// Translate returns the text for lang.
	Translate(lang L) (string, bool)
}

// Database finds translation records by key. Lookup must return an error
// matching ErrKeyNotFound when the key does not exist.
//
// The returned Record is treated as a snapshot for the duration of one
// resolution. Implementations that mutate their data must either hand out
// copies or synchronize access themselves.
type Database[L comparable] interface {
	Lookup(ctx context.Context, key string) (Record[L], error)
}

// DatabaseFunc adapts a function to the Database interface.
type DatabaseFunc[L comparable] func(ctx context.Context, key string) (Record[L], error)

func (f DatabaseFunc[L]) Lookup(ctx context.Context, key string) (Record[L], error) {
	return f(ctx, key)
}

// MapRecord is an immutable map-backed Record. Its default text is the text of
// the language it was created with.
type MapRecord[L comparable] struct {
	texts       map[L]string
	defaultLang L
}

// NewRecord copies texts into a new record whose Text is texts[defaultLang].
func NewRecord[L comparable](defaultLang L, texts map[L]string) *MapRecord[L] {
	return &MapRecord[L]{texts: maps.Clone(texts), defaultLang: defaultLang}
}

func (r *MapRecord[L]) Text() (string, bool) {
	return r.Translate(r.defaultLang)
}

func (r *MapRecord[L]) Translate(lang L) (string, bool) {
	text, ok := r.texts[lang]
	return text, ok
}

// All iterates over language/text pairs in unspecified order.
func (r *MapRecord[L]) All() iter.Seq2[L, string] {
	return maps.All(r.texts)
}

// MapDatabase is an immutable in-memory Database, safe for concurrent use.
type MapDatabase[L comparable] struct {
	records     map[string]*MapRecord[L]
	languages   []L
	defaultLang L
}

// NewMapDatabase builds a database from key -> language -> text.
// Every record uses defaultLang for its default text.
func NewMapDatabase[L comparable](defaultLang L, data map[string]map[L]string) *MapDatabase[L] {
	db := &MapDatabase[L]{
		records:     make(map[string]*MapRecord[L], len(data)),
		defaultLang: defaultLang,
	}

	seen := map[L]struct{}{defaultLang: {}}
	for key, texts := range data {
		db.records[key] = NewRecord(defaultLang, texts)
		for lang := range texts {
			if _, ok := seen[lang]; !ok {
				seen[lang] = struct{}{}
				db.languages = append(db.languages, lang)
			}
		}
	}

	slices.SortFunc(db.languages, func(a, b L) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	db.languages = append([]L{defaultLang}, db.languages...)

	return db
}

func (db *MapDatabase[L]) Lookup(_ context.Context, key string) (Record[L], error) {
	rec, ok := db.records[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return rec, nil
}

// Record returns the concrete record for key.
func (db *MapDatabase[L]) Record(key string) (*MapRecord[L], bool) {
	rec, ok := db.records[key]
	return rec, ok
}

// Keys returns all keys sorted.
func (db *MapDatabase[L]) Keys() []string {
	return slices.Sorted(maps.Keys(db.records))
}

// Languages returns the default language followed by every other language
// present in the data, ordered by their string form.
func (db *MapDatabase[L]) Languages() []L {
	return slices.Clone(db.languages)
}

// DefaultLanguage returns the language backing each record's default text.
func (db *MapDatabase[L]) DefaultLanguage() L {
	return db.defaultLang
}

var _ Database[string] = (*MapDatabase[string])(nil)
