package record

import (
	"context"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
)

// GetRecord reads a record from its manager
func (u *RecordUseCase) GetRecord(ctx context.Context, manager, id string) (*entity.Record, error) {
	if err := entity.ValidateManagerName(manager); err != nil {
		return nil, err
	}
	if err := entity.ValidateRecordID(id); err != nil {
		return nil, err
	}

	record, err := u.recordRepo.GetByID(ctx, manager, id)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			u.logger.Error("Failed to get record", map[string]any{
				"manager":  manager,
				"recordId": id,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	return record, nil
}

// PendingWrites returns the staged write count of every manager
func (u *RecordUseCase) PendingWrites(ctx context.Context) (map[string]int, error) {
	pending, err := u.recordRepo.PendingWrites(ctx)
	if err != nil {
		u.logger.Error("Failed to count pending writes", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return pending, nil
}
