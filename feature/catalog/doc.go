// Package catalog exposes the recipe catalog over HTTP.
//
// # HTTP Endpoints
//
//   - GET /catalog : Items, base resources, recipes and the catalog digest.
//   - GET /catalog/items/:name : Recipes producing an item, or suggestions when it is unknown.
//   - GET /catalog/analysis : Reachability analysis of every craftable item.
//   - POST /catalog/reload : Drops the cached catalog so the next request reads the source again.
package catalog
