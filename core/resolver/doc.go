// Package resolver implements the recursive resolution engine.
//
// Resolve satisfies one (item, quantity) demand against a pool of stock and a
// catalog of recipes:
//
//   - stock is drawn first;
//   - base resources are reported as inputs;
//   - craftable items are expanded through every producing recipe, each route
//     evaluated against its own copy of the pool, and the cheapest route wins.
//
// Route cost is ordered by total material consumed first and by the number of
// crafted sub-inputs second. Ties keep the first recipe in catalog order.
//
// Unsatisfiable demand is never an error. Loops, missing definitions and items
// with no viable route show up as Source tags on the provenance tree and as
// unmet quantities in the Result.
package resolver
