package i18n

import (
	"context"
	"log/slog"
)

// Translator binds an I18n instance to one language.
type Translator[L comparable] struct {
	i18n     *I18n[L]
	language L
}

// NewTranslator creates a Translator for language.
func NewTranslator[L comparable](i18n *I18n[L], language L) *Translator[L] {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	return &Translator[L]{i18n: i18n, language: language}
}

// T translates key in the translator's language.
func (t *Translator[L]) T(key string, params ...Param) string {
	return t.i18n.TL(t.language, key, params...)
}

// TransChoice translates key and selects the choice matching n.
func (t *Translator[L]) TransChoice(key string, n int, params ...Param) (string, error) {
	return t.i18n.TransChoiceL(t.language, key, n, params...)
}

// Tn is TransChoice for templates: malformed choice messages are logged and
// the key is returned.
func (t *Translator[L]) Tn(key string, n int, params ...Param) string {
	text, err := t.TransChoice(key, n, params...)
	if err != nil {
		t.i18n.opts.logger.Error("malformed choice message",
			slog.String("key", key),
			slog.Any("lang", t.language),
			slog.String("error", err.Error()),
		)
	}
	return text
}

// Language returns the translator's language.
func (t *Translator[L]) Language() L {
	return t.language
}

type translatorKey struct{}

// WithTranslator stores tr in ctx.
func WithTranslator[L comparable](ctx context.Context, tr *Translator[L]) context.Context {
	return context.WithValue(ctx, translatorKey{}, tr)
}

// TranslatorFromContext returns the Translator stored by WithTranslator, or nil.
func TranslatorFromContext[L comparable](ctx context.Context) *Translator[L] {
	if tr, ok := ctx.Value(translatorKey{}).(*Translator[L]); ok {
		return tr
	}
	return nil
}
