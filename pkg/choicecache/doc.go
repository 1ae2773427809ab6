// Package choicecache caches parsed choice sets so hot messages are parsed once.
//
// Entries are keyed by the exact message text. Two languages of the same
// translation key have different text and therefore different entries.
//
//	c := choicecache.NewMemory(choicecache.WithMaxEntries(4096))
//	set, err := choicecache.GetOrParse(ctx, c, "{0} none|{1} one|[2,*] many")
//
// The Redis backend stores sets as JSON under hashed keys and is meant for
// fleets that share catalogs:
//
//	c := choicecache.NewRedis(client, choicecache.WithPrefix("app:choice"))
package choicecache
