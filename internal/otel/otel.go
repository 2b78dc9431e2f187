// Package otel wires OpenTelemetry metrics to a private Prometheus registry.
// A CLI run is short-lived, so the registry is written to a node-exporter style textfile
// at the end of a command instead of being served.
package otel

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	otelglobal "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "github.com/marts9182/Rooster-AI-Project-Management"

// Provider owns the meter provider and the registry its exporter feeds.
type Provider struct {
	Registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
}

// InitMeterProvider installs a global MeterProvider backed by a Prometheus exporter and
// creates the board instruments on it.
func InitMeterProvider(ctx context.Context, serviceName string) (*Provider, error) {
	if serviceName == "" {
		serviceName = "rooster"
	}
	reg := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, err
	}
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otelglobal.SetMeterProvider(provider)
	p := &Provider{Registry: reg, provider: provider}
	if err := initInstruments(provider.Meter(meterName)); err != nil {
		return nil, err
	}
	return p, nil
}

// WriteTextfile gathers the registry and writes it atomically to path in the Prometheus text format.
func (p *Provider) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.Registry)
}

// Shutdown stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Meter returns the global meter for the board (after InitMeterProvider).
func Meter() metric.Meter {
	return otelglobal.Meter(meterName)
}

// Common attribute keys for metrics.
var (
	AttrStatus = attribute.Key("status")
	AttrRole   = attribute.Key("role")
	AttrStep   = attribute.Key("step")
	AttrOp     = attribute.Key("operation")
)
