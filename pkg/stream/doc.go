// Package stream is a small push-based stream abstraction.
//
// An [Observable] delivers zero or more values to next and then calls
// complete exactly once, with nil for normal completion or the terminal
// failure. Cancelling the context passed to Observe unsubscribes; the
// observable then completes with the context error.
//
// The package holds only what fxpipe needs from a reactive library: a few
// sources ([Just], [FromSlice], [FromChannel], ...), a multicast [Subject],
// a single-value [Future], the [Map] operator and [ToSlice]. There is no
// scheduler and no backpressure protocol.
package stream
