package genlocal

import "log/slog"

// Options configure a session. Zero fields are filled with defaults by
// Start.
type Options struct {
	// Logger receives debug-level dispatch logs. Message and state payloads
	// are opaque application data and are never logged above debug.
	Logger *slog.Logger
	// Metrics observes callback dispatches. Defaults to [NopMetrics].
	Metrics Metrics
}

// Option configures a session at Start.
type Option func(*Options)

// WithLogger sets the session logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Metrics == nil {
		o.Metrics = NopMetrics()
	}
	return o
}
