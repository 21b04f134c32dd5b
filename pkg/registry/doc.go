/*
Package registry persists parse outcomes to SQLite.

The watch service records every parse attempt (file, reload identifier,
result, error classification, node counts) so operators can audit what a
running instance last accepted:

	store, err := registry.NewStore("meridian.db")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	store.Record(ctx, &registry.ParseRecord{
		File:     "inbound.xml",
		ReloadID: reloadID,
		OK:       true,
	})

The store uses a write-ahead log and a single-writer connection pool, which
is what SQLite supports. It is intended for single-instance deployments.
*/
package registry
