package ports

import "context"

// MetricsExporter reports query volume and prediction characteristics to an
// external observability system.
type MetricsExporter interface {
	// RecordQuery counts one served query of the given kind
	// ("stats", "cycle", "weekly").
	RecordQuery(ctx context.Context, kind string)
	// RecordAggregation counts entries folded into category totals.
	RecordAggregation(ctx context.Context, entries int64)
	// RecordPrediction records the cycle length (in days) behind a computed
	// prediction.
	RecordPrediction(ctx context.Context, cycleLengthDays float64)
	// Close shuts down the exporter and flushes pending metrics.
	Close(ctx context.Context) error
}
