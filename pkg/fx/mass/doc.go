// Package mass turns solo steps into per-element futures.
//
// Each engine takes one fx.Result, computes the step on a separate goroutine
// and returns a channel that yields the outcome once. When the context ends
// before the outcome is delivered the channel is closed without a value and
// the optional onCancel callback receives the abandoned input.
//
// Engines are driven by the worker lines of package lite.
package mass
