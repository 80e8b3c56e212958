package coordinator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	meter  = otel.Meter("coordinator")
	tracer = otel.Tracer("coordinator")

	flushOutcomes metric.Int64Counter
	flushDuration metric.Float64Histogram
	clearsTotal   metric.Int64Counter
)

func init() {
	var err error
	// Atomic flushes by terminal status
	flushOutcomes, err = meter.Int64Counter(
		"coordinator_flush_outcomes_total",
		metric.WithDescription("Total atomic flushes by outcome status"),
	)
	if err != nil {
		panic(err)
	}

	flushDuration, err = meter.Float64Histogram(
		"coordinator_flush_duration_seconds",
		metric.WithDescription("Duration of atomic flushes"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	clearsTotal, err = meter.Int64Counter(
		"coordinator_clears_total",
		metric.WithDescription("Total manager clear operations by result"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordFlushOutcome records the status and duration of one atomic flush.
// Begin failures that bypass the rollback path are recorded as "begin_failed".
func RecordFlushOutcome(ctx context.Context, status string, managers int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("status", status),
		attribute.Int("managers", managers),
	)
	flushOutcomes.Add(ctx, 1, attrs)
	flushDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordClear records one clear operation
func RecordClear(ctx context.Context, result string) {
	clearsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
	))
}

// recordErrorAndStatus records an error in the span and sets the status to Error.
// Returns true if an error was recorded, false otherwise.
func recordErrorAndStatus(span trace.Span, err error) bool {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return true
	}
	span.SetStatus(codes.Ok, "OK")
	return false
}
