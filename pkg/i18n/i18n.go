package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/lingo/pkg/choice"
	"github.com/dmitrymomot/lingo/pkg/choicecache"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

// I18n resolves translation keys against a Database.
// It holds no mutable state and is safe for concurrent use as long as the
// Database is.
type I18n[L comparable] struct {
	db          Database[L]
	defaultLang L
	languages   []L
	opts        *options
}

type options struct {
	logger *slog.Logger

	// Optional handler called when a key is missing from the database.
	// Useful for detecting untranslated keys during development.
	missingKeyHandler func(key string)

	// Parsed choice sets keyed by message text. Nil disables caching.
	cache choicecache.Cache
}

// Option configures the I18n instance during construction.
type Option func(*options) error

// WithLogger sets the logger receiving fallback notifications:
// WARN when the default language replaced the requested one and ERROR when
// no usable text exists. Default: a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l != nil {
			o.logger = l
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key is not in the database.
func WithMissingKeyHandler(handler func(key string)) Option {
	return func(o *options) error {
		o.missingKeyHandler = handler
		return nil
	}
}

// WithChoiceCache caches parsed choice messages.
func WithChoiceCache(c choicecache.Cache) Option {
	return func(o *options) error {
		o.cache = c
		return nil
	}
}

// New creates an I18n instance over db. defaultLang is used when the
// requested language has no text for a key.
func New[L comparable](db Database[L], defaultLang L, opts ...Option) (*I18n[L], error) {
	if db == nil {
		return nil, ErrNilDatabase
	}

	o := &options{logger: logger.NewNope()}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	i := &I18n[L]{
		db:          db,
		defaultLang: defaultLang,
		languages:   []L{defaultLang},
		opts:        o,
	}
	if lister, ok := db.(interface{ Languages() []L }); ok {
		if langs := lister.Languages(); len(langs) > 0 {
			i.languages = langs
		}
	}

	return i, nil
}

// Request describes one resolution. Nil Lang selects the record's default
// text; nil Value skips choice selection.
type Request[L comparable] struct {
	Lang   *L
	Value  *int
	Key    string
	Params []Param
}

// Resolve runs lookup, language fallback, choice selection and parameter
// substitution.
//
// Missing keys and missing languages never fail: the key itself is returned.
// Malformed choice messages are content bugs and are returned as errors
// matching choice.ErrPatternParse, choice.ErrInvalidRange or
// choice.ErrNoFallbackChoice, together with the key as the text.
func (i *I18n[L]) Resolve(ctx context.Context, r Request[L]) (string, error) {
	rec, err := i.db.Lookup(ctx, r.Key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			if i.opts.missingKeyHandler != nil {
				i.opts.missingKeyHandler(r.Key)
			}
		} else {
			i.opts.logger.ErrorContext(ctx, "translation lookup failed",
				slog.String("key", r.Key),
				slog.String("error", err.Error()),
			)
		}
		return r.Key, nil
	}

	text, ok := i.text(ctx, r.Key, rec, r.Lang)
	if !ok {
		return r.Key, nil
	}

	if r.Value != nil && choice.HasChoices(text) {
		text, err = i.selectChoice(ctx, text, *r.Value)
		if err != nil {
			return r.Key, fmt.Errorf("i18n: key %q: %w", r.Key, err)
		}
	}

	return Replace(text, r.Params...), nil
}

// text picks the record text for lang, falling back to the default language.
func (i *I18n[L]) text(ctx context.Context, key string, rec Record[L], lang *L) (string, bool) {
	if lang == nil {
		if text, ok := rec.Text(); ok {
			return text, true
		}
		i.opts.logger.ErrorContext(ctx, "no usable language text",
			slog.String("key", key),
			slog.Any("default_lang", i.defaultLang),
			slog.String("error", ErrLanguageNotFound.Error()),
		)
		return "", false
	}

	if text, ok := rec.Translate(*lang); ok {
		return text, true
	}

	if text, ok := rec.Translate(i.defaultLang); ok {
		i.opts.logger.WarnContext(ctx, "fell back to default language",
			slog.String("key", key),
			slog.Any("lang", *lang),
			slog.Any("default_lang", i.defaultLang),
		)
		return text, true
	}

	i.opts.logger.ErrorContext(ctx, "no usable language text",
		slog.String("key", key),
		slog.Any("lang", *lang),
		slog.Any("default_lang", i.defaultLang),
		slog.String("error", ErrLanguageNotFound.Error()),
	)
	return "", false
}

func (i *I18n[L]) selectChoice(ctx context.Context, message string, value int) (string, error) {
	var (
		set *choice.Set
		err error
	)
	if i.opts.cache != nil {
		set, err = choicecache.GetOrParse(ctx, i.opts.cache, message)
	} else {
		set, err = choice.Parse(message)
	}
	if err != nil {
		return "", err
	}
	return set.Select(value)
}

// T translates key using the record's default text.
func (i *I18n[L]) T(key string, params ...Param) string {
	text, _ := i.Resolve(context.Background(), Request[L]{Key: key, Params: params})
	return text
}

// TL translates key for lang, falling back to the default language.
func (i *I18n[L]) TL(lang L, key string, params ...Param) string {
	text, _ := i.Resolve(context.Background(), Request[L]{Key: key, Lang: &lang, Params: params})
	return text
}

// TransChoice translates key and selects the choice matching n.
// A message without choices behaves exactly like T.
func (i *I18n[L]) TransChoice(key string, n int, params ...Param) (string, error) {
	return i.Resolve(context.Background(), Request[L]{Key: key, Value: &n, Params: params})
}

// TransChoiceL is TransChoice for an explicit language.
func (i *I18n[L]) TransChoiceL(lang L, key string, n int, params ...Param) (string, error) {
	return i.Resolve(context.Background(), Request[L]{Key: key, Lang: &lang, Value: &n, Params: params})
}

// DefaultLanguage returns the fallback language.
func (i *I18n[L]) DefaultLanguage() L {
	return i.defaultLang
}

// Languages returns the languages reported by the database, or just the
// default language when the database does not list them.
func (i *I18n[L]) Languages() []L {
	return slices.Clone(i.languages)
}
