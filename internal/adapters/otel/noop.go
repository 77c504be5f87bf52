package otel

import "context"

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordQuery(ctx context.Context, kind string) {}

func (e *NoOpExporter) RecordAggregation(ctx context.Context, entries int64) {}

func (e *NoOpExporter) RecordPrediction(ctx context.Context, cycleLengthDays float64) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
