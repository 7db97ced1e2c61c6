package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	ConfigOptionKey OptionKey = "config_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the worker count stored in ctx, or
// defaultMaxWorkers when none (or a non-positive one) is stored.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

// WithConfig attaches cfg to ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ConfigOptionKey, cfg)
}

// GetConfig returns the [*Config] attached to ctx, or a fresh [NewConfig].
func GetConfig(ctx context.Context) *Config {
	cfg, ok := ctx.Value(ConfigOptionKey).(*Config)
	if ok && cfg != nil {
		return cfg
	}
	return NewConfig()
}
