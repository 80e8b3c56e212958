package database

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
)

var (
	dbMeter = otel.Meter("database")

	// WriteDuration records how long each flushed write took
	WriteDuration metric.Float64Histogram
)

func init() {
	var err error
	WriteDuration, err = dbMeter.Float64Histogram(
		"database_write_duration_seconds",
		metric.WithDescription("Duration of writes applied by entity manager flushes"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// QueryMetrics holds metrics about a database write
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// MetricsCollector measures database writes for one manager
type MetricsCollector struct {
	manager       string
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(manager string, logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		manager:       manager,
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: 100 * time.Millisecond,
	}
}

// MeasureQuery measures the execution time of a database write
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	WriteDuration.Record(ctx, metrics.Duration.Seconds(), metric.WithAttributes(
		attribute.String("manager", c.manager),
		attribute.String("operation", operation),
		attribute.Bool("failed", metrics.Failed),
	))

	if metrics.Duration > c.slowThreshold {
		c.logger.Warn("Slow database write detected", map[string]any{
			"manager":       c.manager,
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}
