package dto

import (
	"time"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
)

// ManagersRequest names the entity managers an operation applies to, in order
type ManagersRequest struct {
	Managers []string `json:"managers" binding:"required"`
}

// FlushResponse represents the outcome of an atomic flush
type FlushResponse struct {
	FlushID       string    `json:"flushId"`
	Status        string    `json:"status"`
	Managers      []string  `json:"managers"`
	StartedAt     time.Time `json:"startedAt"`
	DurationMs    int64     `json:"durationMs"`
	Code          int       `json:"code,omitempty"`
	Cause         string    `json:"cause,omitempty"`
	RollbackError string    `json:"rollbackError,omitempty"`
}

// NewFlushResponse maps an outcome to its API representation
func NewFlushResponse(outcome *entity.Outcome) FlushResponse {
	resp := FlushResponse{
		FlushID:    outcome.FlushID,
		Status:     string(outcome.Status),
		Managers:   outcome.Managers,
		StartedAt:  outcome.StartedAt,
		DurationMs: outcome.Duration.Milliseconds(),
	}
	if resp.Managers == nil {
		resp.Managers = []string{}
	}
	if err := outcome.Err(); err != nil {
		resp.Code = domainerr.ErrorCode(err)
	}
	if outcome.Cause != nil {
		resp.Cause = outcome.Cause.Error()
	}
	if outcome.RollbackErr != nil {
		resp.RollbackError = outcome.RollbackErr.Error()
	}
	return resp
}

// ClearResponse lists the managers that were cleared
type ClearResponse struct {
	Cleared []string `json:"cleared"`
}
