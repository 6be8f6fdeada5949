package enum

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/zero-day-ai/typedenum/enum"

// registryMetrics holds the instruments a Registry records on.
type registryMetrics struct {
	// populations counts constant tables built from their sources.
	populations metric.Int64Counter

	// errors counts failed operations by type and code.
	errors metric.Int64Counter
}

func newRegistryMetrics(mp metric.MeterProvider) (*registryMetrics, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	m := &registryMetrics{}
	var err error

	m.populations, err = meter.Int64Counter(
		"enum.registry.populations",
		metric.WithDescription("Number of enumeration constant tables populated"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create populations counter: %w", err)
	}

	m.errors, err = meter.Int64Counter(
		"enum.errors",
		metric.WithDescription("Number of failed enumeration operations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}

	return m, nil
}

func noopRegistryMetrics() *registryMetrics {
	m, _ := newRegistryMetrics(noop.NewMeterProvider())
	return m
}

func (m *registryMetrics) populated(typ string) {
	m.populations.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("enum.type", typ)))
}

func (m *registryMetrics) failed(typ, code string) {
	m.errors.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String("enum.type", typ),
			attribute.String("enum.code", code),
		))
}
