// Package quantity centralises the floating-point rules used by every crafting calculation.
//
// Quantities flow through many additive and subtractive steps while a request is resolved,
// so all zero and equality tests go through the helpers in this package instead of
// comparing floats directly.
//
// # Epsilon
//
// Any quantity at or below Epsilon is treated as exactly zero. IsZero and Positive are the
// only predicates the engine uses for termination and stock checks.
//
// # Batches
//
// Recipes produce fixed per-batch outputs. Batches rounds a need up to whole batches,
// tolerating drift so that 3.0000000001 planks does not cost an extra batch.
//
// # Map
//
// Map is the item -> quantity mapping shared by pools, ledgers and totals.
package quantity
