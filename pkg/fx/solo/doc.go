// Package solo lifts the fx box transforms onto a single fx.Result.
//
// A failed or cancelled input passes through every step untouched (keeping
// its id and error); only a successful input reaches the supplied function.
// Context errors returned by a step turn into cancellations.
package solo
