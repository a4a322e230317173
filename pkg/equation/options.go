package equation

import (
	"log/slog"

	"github.com/randalmurphal/equation/pkg/equation/observability"
	"github.com/randalmurphal/equation/pkg/equation/store"
)

// directoryConfig holds Directory configuration.
type directoryConfig struct {
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	maxDepth int
	store    store.Store
}

// defaultDirectoryConfig returns the default configuration.
func defaultDirectoryConfig() directoryConfig {
	return directoryConfig{
		logger:   slog.Default(),
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
		maxDepth: DefaultMaxDepth,
	}
}

// Option configures a Directory.
type Option func(*directoryConfig)

// WithLogger sets the logger for lifecycle and solve events.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *directoryConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
//
// Example:
//
//	dir := equation.NewDirectory(equation.WithMetrics(true))
func WithMetrics(enabled bool) Option {
	return func(c *directoryConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a specific recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(c *directoryConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables OpenTelemetry spans using the global tracer provider.
func WithTracing(enabled bool) Option {
	return func(c *directoryConfig) {
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithMaxDepth bounds composite nesting during evaluation.
// Default: 1000
//
// Evaluating deeper than this fails with a *MaxDepthError.
func WithMaxDepth(n int) Option {
	return func(c *directoryConfig) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithStore persists every definition change to s.
// The directory does not close s.
func WithStore(s store.Store) Option {
	return func(c *directoryConfig) {
		c.store = s
	}
}
