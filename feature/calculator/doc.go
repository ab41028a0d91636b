// Package calculator exposes the crafting calculation over HTTP.
//
// A calculation takes an item list, either as the "Planks, 5; Stick, 2" text syntax or as
// structured requests, plus an optional starting inventory. It returns the resolved plan:
// provenance trees, base resources, unmet demand, categories and the resulting inventory.
//
// Identical calculations against the same catalog are served from an in-memory cache for
// calculator.result_cache_seconds.
//
// # HTTP Endpoints
//
//   - POST /calculate : Returns the plan as JSON.
//   - POST /calculate/text : Returns the rendered text report.
package calculator
