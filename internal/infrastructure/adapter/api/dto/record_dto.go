package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
)

// StageRecordRequest represents the body of a record write
type StageRecordRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
}

// RecordResponse represents a record as seen by its entity manager
type RecordResponse struct {
	Manager   string          `json:"manager"`
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewRecordResponse maps a record entity to its API representation
func NewRecordResponse(record *entity.Record) RecordResponse {
	return RecordResponse{
		Manager:   record.Manager,
		ID:        record.ID,
		Payload:   record.Payload,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// StagedResponse acknowledges a write that waits for the next flush
type StagedResponse struct {
	Manager string `json:"manager"`
	ID      string `json:"id"`
	Staged  string `json:"staged"`
}
