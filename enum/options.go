package enum

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

// Option configures a Registry.
type Option func(*registryConfig)

type registryConfig struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

// WithLogger sets the logger used for population and declaration diagnostics.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// WithMeterProvider enables registry metrics through the given provider.
// Without it, metrics are recorded on a no-op provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *registryConfig) {
		c.meterProvider = mp
	}
}

// TypeOption configures an enumeration type at definition time.
type TypeOption func(*typeConfig)

type typeConfig struct {
	registry *Registry
}

// WithRegistry defines the type in r instead of the default registry.
func WithRegistry(r *Registry) TypeOption {
	return func(c *typeConfig) {
		c.registry = r
	}
}
