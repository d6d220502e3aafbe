package headless

import "log/slog"

// Option configures a Context during creation.
//
// Example:
//
//	ctx := headless.New(
//	    headless.WithLogger(slog.Default()),
//	    headless.WithMappedBufferMetadata(false),
//	)
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	logger               *slog.Logger
	mappedBufferMetadata bool
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		logger:               nil, // Resolved through gpures.Logger on each call
		mappedBufferMetadata: true,
	}
}

// WithLogger sets a logger for this context only. Without it the context
// logs through gpures.Logger, which follows gpures.SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMappedBufferMetadata controls whether CreateBufferMapped records
// Buffer metadata for the new handle. The default is true, matching
// CreateBuffer and CreateBufferWithData.
func WithMappedBufferMetadata(enabled bool) Option {
	return func(o *options) {
		o.mappedBufferMetadata = enabled
	}
}
