// Package i18n resolves translation keys into display strings with language
// fallback, choice selection and parameter substitution.
//
// The resolver is generic over the language type, so any comparable value
// can identify a language: plain strings, golang.org/x/text/language.Tag, or
// an application enum. Translation data comes from a Database; this package
// ships an immutable MapDatabase plus JSON and YAML loaders, and pkg/store
// provides Redis and PostgreSQL backends.
//
// # Basic Usage
//
//	db := i18n.NewMapDatabase("ja", map[string]map[string]string{
//		"greeting": {"ja": "こんにちは", "en": "Hello, :name"},
//		"apples":   {"en": "{0} no apples|{1} one apple|[2,*] :count apples"},
//	})
//
//	tr, err := i18n.New[string](db, "ja", i18n.WithLogger(log))
//
//	tr.TL("en", "greeting", i18n.P("name", "Ann"))        // "Hello, Ann"
//	tr.TransChoiceL("en", "apples", 3, i18n.P("count", 3)) // "3 apples", nil
//
// # Resolution
//
// Resolve runs four steps:
//
//  1. Look the key up. A missing key returns the key itself.
//  2. Pick the text. With a language, its text is used; otherwise the default
//     language's text with a WARN log; otherwise an ERROR log and the key.
//     Without a language, the record's default text is used.
//  3. With a selector value and a message containing "|", parse the choices
//     (see pkg/choice) and select one. Without "|", no parsing happens.
//  4. Substitute ":name" placeholders in a single pass.
//
// Missing keys and languages degrade gracefully. Malformed choice messages
// are content bugs and are returned as errors from TransChoice and Resolve.
//
// # Choice Messages
//
//	{0} zero|{1} one|[2,5] between two and five|[6,*] greater than six
//
// The first matching choice wins. When none matches, the second choice is used.
//
// # Placeholders
//
// Placeholders start with ':' followed by the parameter name. Bindings apply
// in one pass over the selected text, so a value containing ":other" is never
// substituted again:
//
//	i18n.Replace("value = :value", i18n.P("value", 10)) // "value = 10"
//
// # Loading Files
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	sub, _ := fs.Sub(translationsFS, "translations")
//	db, err := i18n.LoadYAML(sub, "en")
//
// File convention: {lang}/{namespace}.yaml (or .yml, or .json with LoadJSON).
// Keys are prefixed with the namespace: "common.items.count".
// Lint reports every choice message in a MapDatabase that fails to parse.
//
// # Caching
//
// WithChoiceCache stores parsed choice sets keyed by message text, using
// pkg/choicecache. Without it, choices are parsed on every call.
//
// # Thread Safety
//
// I18n, Translator and MapDatabase are immutable and safe for concurrent use.
// Custom Database implementations must return records that stay consistent for
// the duration of one Resolve call.
package i18n
