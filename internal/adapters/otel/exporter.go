package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "daybook"
	serviceVersion = "1.0.0"
)

// Exporter reports query and prediction metrics to an OTEL Collector.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	meter            metric.Meter
	queriesTotal     metric.Int64Counter
	entriesTotal     metric.Int64Counter
	cycleLengthHist  metric.Float64Histogram
	predictionsTotal metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	queriesTotal, err := meter.Int64Counter(
		"daybook_queries_total",
		metric.WithDescription("Queries served, by kind"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating queries counter: %w", err)
	}

	entriesTotal, err := meter.Int64Counter(
		"daybook_entries_aggregated_total",
		metric.WithDescription("Time entries folded into category totals"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating entries counter: %w", err)
	}

	cycleLengthHist, err := meter.Float64Histogram(
		"daybook_predicted_cycle_length_days",
		metric.WithDescription("Average cycle length behind computed predictions"),
		metric.WithUnit("d"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cycle length histogram: %w", err)
	}

	predictionsTotal, err := meter.Int64Counter(
		"daybook_predictions_total",
		metric.WithDescription("Computed cycle predictions"),
		metric.WithUnit("{prediction}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating predictions counter: %w", err)
	}

	return &Exporter{
		provider:         provider,
		meter:            meter,
		queriesTotal:     queriesTotal,
		entriesTotal:     entriesTotal,
		cycleLengthHist:  cycleLengthHist,
		predictionsTotal: predictionsTotal,
	}, nil
}

func (e *Exporter) RecordQuery(ctx context.Context, kind string) {
	e.queriesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (e *Exporter) RecordAggregation(ctx context.Context, entries int64) {
	e.entriesTotal.Add(ctx, entries)
}

func (e *Exporter) RecordPrediction(ctx context.Context, cycleLengthDays float64) {
	e.predictionsTotal.Add(ctx, 1)
	e.cycleLengthHist.Record(ctx, cycleLengthDays)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
