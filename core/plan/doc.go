// Package plan folds per-request resolutions into one crafting plan.
//
// Build resolves requests strictly in order, threading the pool left by one request into
// the next, and sums the per-request maps. Classify splits the outcome into finished goods,
// crafted-and-consumed intermediates and leftover byproducts.
package plan
