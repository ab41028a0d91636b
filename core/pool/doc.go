// Package pool implements the resource pool threaded through a crafting resolution.
//
// A Pool is a value: every operation that changes stock returns a derived Pool and leaves
// the receiver untouched. Alternate crafting routes can therefore be explored from the same
// starting pool without one route observing another's consumption, and only the winning
// route's pool is carried forward.
//
// Pools serialise to a plain JSON object of item -> quantity so the final pool of one
// calculation can be stored and fed back as the initial pool of the next.
package pool
