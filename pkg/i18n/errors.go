package i18n

import "errors"

var (
	ErrKeyNotFound      = errors.New("i18n: translation key not found")
	ErrLanguageNotFound = errors.New("i18n: no text for the requested or default language")
	ErrNilDatabase      = errors.New("i18n: database cannot be nil")
	ErrEmptyLanguage    = errors.New("i18n: language cannot be empty")
	ErrInvalidFile      = errors.New("i18n: invalid translation file")
)
