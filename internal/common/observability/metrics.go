package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider     *metric.MeterProvider
	meter             otelmetric.Meter
	candidateCounter  otelmetric.Int64Counter
	candidateDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	candidateCounter, _ := meter.Int64Counter(
		"candidates.processed",
		otelmetric.WithDescription("Number of candidates processed"),
	)

	candidateDuration, _ := meter.Float64Histogram(
		"candidates.duration",
		otelmetric.WithDescription("Candidate processing duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:     provider,
		meter:             meter,
		candidateCounter:  candidateCounter,
		candidateDuration: candidateDuration,
	}
}

func (o *Observability) RecordCandidateProcessed(ctx context.Context, outcome string) {
	if o.candidateCounter != nil {
		o.candidateCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) RecordCandidateDuration(ctx context.Context, duration time.Duration, outcome string) {
	if o.candidateDuration != nil {
		o.candidateDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
