// Package session exposes persistent inventories over HTTP.
//
// A session keeps the pool left by one calculation so the next calculation starts from it,
// the way the interactive `session` command does. Sessions live in the configured store
// (memory, database or redis) and can be exported to object storage as zstd-compressed
// snapshots.
//
// # HTTP Endpoints
//
//   - POST /sessions : Creates a session with an empty pool.
//   - GET /sessions/:id : Returns the session.
//   - PUT /sessions/:id/pool : Replaces or adds to the pool.
//   - DELETE /sessions/:id : Deletes the session.
//   - POST /sessions/:id/calculate : Calculates against the stored pool and stores the result.
//   - POST /sessions/:id/export : Writes a snapshot to object storage.
//   - POST /sessions/:id/import : Replaces the pool with the stored snapshot.
package session
