// Package integrity provides comprehensive system health checks.
//
// Unlike the calculator, which reports problems per request as failed provenance nodes,
// this package validates the catalog and the infrastructure the planner depends on.
//
// # Checks Provided
//
//   - Catalog: Loads the configured catalog and reports craftable items that can never be
//     produced from base resources, self-referencing recipes and unused base resources.
//   - Storage: Checks that the bucket holds the catalog/ and sessions/ folders and, when the
//     catalog is read from storage, the catalog object itself.
//   - Server: Validates that the connected database schema matches the session model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/catalog : Runs catalog check.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
//   - GET /integrity/server : Runs server schema check.
package integrity
