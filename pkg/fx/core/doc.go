// Package core contains pipeline plumbing: channel helpers, the locomotive
// that drives one worker line, and the settings carried by a context (worker
// count, logger, error classifier, drop reporting). It does not define any
// transformation itself; packages bridge, flow, lite and mass build on it.
package core
