package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/lingo/pkg/i18n"
)

// DBTX is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx used by Postgres.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const (
	selectRecordSQL = `SELECT lang, text FROM translations WHERE key = $1`

	upsertTextSQL = `INSERT INTO translations (key, lang, text, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (key, lang) DO UPDATE SET text = EXCLUDED.text, updated_at = EXCLUDED.updated_at`

	deleteKeySQL = `DELETE FROM translations WHERE key = $1`

	selectLanguagesSQL = `SELECT DISTINCT lang FROM translations`
)

// Postgres reads translations from the translations table created by Migrate.
type Postgres struct {
	db          DBTX
	defaultLang string
}

// NewPostgres creates a Postgres store. Records use defaultLang for their
// default text.
func NewPostgres(db DBTX, defaultLang string) (*Postgres, error) {
	if db == nil {
		return nil, ErrNilClient
	}
	return &Postgres{db: db, defaultLang: defaultLang}, nil
}

// Lookup loads every language of key. No rows is i18n.ErrKeyNotFound.
func (p *Postgres) Lookup(ctx context.Context, key string) (i18n.Record[string], error) {
	rows, err := p.db.Query(ctx, selectRecordSQL, key)
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}

	texts := make(map[string]string)
	var lang, text string
	_, err = pgx.ForEachRow(rows, []any{&lang, &text}, func() error {
		texts[lang] = text
		return nil
	})
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	if len(texts) == 0 {
		return nil, i18n.ErrKeyNotFound
	}
	return i18n.NewRecord(p.defaultLang, texts), nil
}

// Put upserts texts for key in one transaction.
func (p *Postgres) Put(ctx context.Context, key string, texts map[string]string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(texts) == 0 {
		return ErrEmptyTexts
	}

	err := pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		return upsert(ctx, tx, key, texts)
	})
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Delete removes key in every language.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.db.Exec(ctx, deleteKeySQL, key); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// Import upserts every record of src in one transaction.
func (p *Postgres) Import(ctx context.Context, src *i18n.MapDatabase[string]) (int, error) {
	keys := src.Keys()
	err := pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		for _, key := range keys {
			rec, _ := src.Record(key)
			texts := make(map[string]string)
			for lang, text := range rec.All() {
				texts[lang] = text
			}
			if err := upsert(ctx, tx, key, texts); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, errors.Join(ErrWriteFailed, err)
	}
	return len(keys), nil
}

func upsert(ctx context.Context, tx pgx.Tx, key string, texts map[string]string) error {
	batch := &pgx.Batch{}
	for lang, text := range texts {
		batch.Queue(upsertTextSQL, key, lang, text)
	}
	return tx.SendBatch(ctx, batch).Close()
}

// Languages lists the default language followed by every other stored
// language in lexical order.
func (p *Postgres) Languages(ctx context.Context) ([]string, error) {
	rows, err := p.db.Query(ctx, selectLanguagesSQL)
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	langs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrLookupFailed, err)
	}
	return withDefaultFirst(p.defaultLang, langs), nil
}

var _ i18n.Database[string] = (*Postgres)(nil)
