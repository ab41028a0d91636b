// Package session persists the inventory carried between calculations.
//
// A session holds a pool and nothing else; the catalog is configuration, not session
// state. Three stores implement Store:
//
//   - MemoryStore keeps sessions in process, for the CLI and tests.
//   - DBStore keeps them in the sessions table through GORM.
//   - RedisStore keeps them as JSON values that expire after the configured TTL.
//
// Snapshots writes zstd-compressed pool snapshots to object storage and reads them back.
//
// # Usage
//
//	store, err := session.New(cfg.Session, db)
//	s, err := store.Create(ctx)
//	s, err = store.SavePool(ctx, s.ID, p.Pool)
package session
