package store

import "errors"

var (
	ErrNilClient      = errors.New("store: client is nil")
	ErrEmptyKey       = errors.New("store: empty translation key")
	ErrEmptyTexts     = errors.New("store: no texts to store")
	ErrLookupFailed   = errors.New("store: lookup failed")
	ErrWriteFailed    = errors.New("store: write failed")
	ErrSetDialect     = errors.New("store migrator: failed to set dialect")
	ErrApplyMigration = errors.New("store migrator: failed to apply migrations")
)
