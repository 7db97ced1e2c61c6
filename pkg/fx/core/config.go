package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/ib-77/fxpipe/pkg/fx"
)

// Config holds the settings shared by the bridge and flow packages.
//
// Attach it to a context with [WithConfig]. All fields have sensible
// defaults set by [NewConfig].
type Config struct {
	// Logger receives the structured log events.
	//
	// Set by [NewConfig] to [DefaultSLogger].
	Logger SLogger

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time

	// OnDrop is called for every failure a best-effort stream operator
	// discards instead of terminating the stream.
	//
	// Set by [NewConfig] to nil (no reporting).
	OnDrop func(ctx context.Context, err error)
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Logger:        DefaultSLogger(),
		ErrClassifier: DefaultErrClassifier,
		TimeNow:       time.Now,
	}
}

// ReportDrop logs a discarded failure and forwards it to OnDrop.
// A joined error gets one log record per member; OnDrop sees err as is.
func (c *Config) ReportDrop(ctx context.Context, spanID string, err error) {
	t := c.TimeNow()
	for _, e := range fx.GetErrors(err) {
		c.Logger.Debug(
			"elementDropped",
			slog.Any("err", e),
			slog.String("errClass", c.ErrClassifier.Classify(e)),
			slog.String("spanID", spanID),
			slog.Time("t", t),
		)
	}
	if c.OnDrop != nil {
		c.OnDrop(ctx, err)
	}
}
