package core

// SLogger abstracts the [*slog.Logger] behavior.
//
// This package uses two log levels:
//   - Info for span events (awaitFirstStart/awaitFirstDone, flowStart/flowDone)
//   - Debug for per-element events (elementDropped, elementDiscarded)
//
// The [*slog.Logger] type satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DefaultSLogger returns the default [SLogger] to use.
//
// The default is a no-op logger that discards all output.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

type discardSLogger struct{}

var _ SLogger = discardSLogger{}

func (discardSLogger) Debug(msg string, args ...any) {
	// nothing
}

func (discardSLogger) Info(msg string, args ...any) {
	// nothing
}
