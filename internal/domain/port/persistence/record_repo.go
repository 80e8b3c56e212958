package persistence

import (
	"context"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
)

// RecordRepository stages and reads records on named entity managers.
// Staged writes reach the database only when the manager is flushed.
type RecordRepository interface {
	// Stage schedules an insert-or-update of the record on its manager
	Stage(ctx context.Context, record *entity.Record) error

	// Remove schedules a delete of the record with the given id
	Remove(ctx context.Context, manager, id string) error

	// GetByID reads a record, preferring the manager's identity map
	GetByID(ctx context.Context, manager, id string) (*entity.Record, error)

	// PendingWrites returns the number of staged writes per manager
	PendingWrites(ctx context.Context) (map[string]int, error)
}
