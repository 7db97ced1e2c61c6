// Package lite runs mass engines on a fixed number of worker lines.
//
// Common usage:
// - Turnout/TurnoutWith: fan an input channel out to N lines and fan the
//   outputs back in (no ordering guarantee across lines)
// - Switch/Map/Try/Unwrap: build engines from solo steps
//
// The flow package uses Turnout to resolve stream elements concurrently.
package lite
