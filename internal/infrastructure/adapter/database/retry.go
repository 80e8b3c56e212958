package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryConfigFrom derives the connect retry policy of one manager
func RetryConfigFrom(conf *Config) RetryConfig {
	rc := DefaultRetryConfig()
	rc.MaxRetries = conf.RetryAttempts
	if conf.RetryDelay > 0 {
		rc.RetryInterval = conf.RetryDelay
		if rc.MaxInterval < conf.RetryDelay {
			rc.MaxInterval = 4 * conf.RetryDelay
		}
	}
	return rc
}

// RetryOnTransientError runs operation and retries it while it fails with a
// transient error. The operation always runs at least once.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	errorMapper *ErrorMapper,
	logger coreport.Logger,
) error {
	err := operation()

	for attempt := 0; err != nil && attempt < config.MaxRetries; attempt++ {
		if !errorMapper.IsTransient(err) {
			return err
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}

		err = operation()
	}

	if err != nil && config.MaxRetries > 0 && errorMapper.IsTransient(err) {
		logger.Error("All retry attempts failed", map[string]any{
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
		})
	}

	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if backoff > config.MaxInterval || backoff <= 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}
