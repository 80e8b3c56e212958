package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
)

// OutcomeStatus is the terminal state of one atomic flush
type OutcomeStatus string

const (
	// OutcomeSuccess means every manager flushed and committed
	OutcomeSuccess OutcomeStatus = "success"
	// OutcomeRolledBack means a flush or commit failed and every manager rolled back cleanly
	OutcomeRolledBack OutcomeStatus = "rolled_back"
	// OutcomeRollbackFailed means at least one rollback failed; state is indeterminate
	OutcomeRollbackFailed OutcomeStatus = "rollback_failed"
)

// Outcome is the result of one atomic flush across a set of managers
type Outcome struct {
	FlushID     string
	Status      OutcomeStatus
	Managers    []string
	Cause       error
	RollbackErr error
	StartedAt   time.Time
	Duration    time.Duration
}

// NewSuccessOutcome creates a Success outcome
func NewSuccessOutcome(flushID string, managers []string) *Outcome {
	return &Outcome{
		FlushID:  flushID,
		Status:   OutcomeSuccess,
		Managers: managers,
	}
}

// NewRolledBackOutcome creates a RolledBack outcome carrying the original failure
func NewRolledBackOutcome(flushID string, managers []string, cause error) *Outcome {
	return &Outcome{
		FlushID:  flushID,
		Status:   OutcomeRolledBack,
		Managers: managers,
		Cause:    cause,
	}
}

// NewRollbackFailedOutcome creates a RollbackFailed outcome carrying both failures
func NewRollbackFailedOutcome(flushID string, managers []string, cause, rollbackErr error) *Outcome {
	return &Outcome{
		FlushID:     flushID,
		Status:      OutcomeRollbackFailed,
		Managers:    managers,
		Cause:       cause,
		RollbackErr: rollbackErr,
	}
}

// Succeeded reports whether every manager committed
func (o *Outcome) Succeeded() bool {
	return o.Status == OutcomeSuccess
}

// Err returns the typed error matching the outcome, nil on success
func (o *Outcome) Err() error {
	switch o.Status {
	case OutcomeRolledBack:
		return errs.NewRollbackError(o.FlushID, o.Managers, o.Cause)
	case OutcomeRollbackFailed:
		return errs.NewRollbackFailedError(o.FlushID, o.Managers, o.Cause, o.RollbackErr)
	default:
		return nil
	}
}

// LogFields returns a map of fields for structured logging
func (o *Outcome) LogFields() map[string]any {
	fields := map[string]any{
		"flush_id":    o.FlushID,
		"status":      string(o.Status),
		"managers":    o.Managers,
		"duration_ms": o.Duration.Milliseconds(),
	}
	if o.Cause != nil {
		fields["cause"] = o.Cause.Error()
	}
	if o.RollbackErr != nil {
		fields["rollback_error"] = o.RollbackErr.Error()
	}
	return fields
}
