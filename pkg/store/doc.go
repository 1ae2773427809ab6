// Package store provides i18n.Database implementations backed by Redis and
// PostgreSQL.
//
// Both stores return a freshly built record per Lookup, so a resolution always
// sees one consistent snapshot of a key even while other writers update it.
//
//	pool, _ := pgxpool.New(ctx, url)
//	_ = store.Migrate(ctx, pool, log)
//	db, _ := store.NewPostgres(pool, "en")
//	tr, _ := i18n.New[string](db, "en")
//
// Import copies a catalog loaded with i18n.LoadYAML or i18n.LoadJSON into a store.
package store
