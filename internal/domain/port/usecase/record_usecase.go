package usecase

import (
	"context"
	"encoding/json"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
)

// StageRecordRequest represents a record write staged on a manager
type StageRecordRequest struct {
	Manager string
	ID      string
	Payload json.RawMessage
}

// RecordUseCase defines methods for staging and reading records
type RecordUseCase interface {
	// StageRecord schedules an insert-or-update; it is written on the next flush
	StageRecord(ctx context.Context, req StageRecordRequest) (*entity.Record, error)

	// RemoveRecord schedules a delete; it is written on the next flush
	RemoveRecord(ctx context.Context, manager, id string) error

	// GetRecord reads a record, including staged but unflushed state
	GetRecord(ctx context.Context, manager, id string) (*entity.Record, error)

	// PendingWrites returns the number of staged writes per manager
	PendingWrites(ctx context.Context) (map[string]int, error)
}
