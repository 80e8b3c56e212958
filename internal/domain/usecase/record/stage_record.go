package record

import (
	"context"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/usecase"
)

// StageRecord validates the record and stages it on its manager
func (u *RecordUseCase) StageRecord(ctx context.Context, req usecase.StageRecordRequest) (*entity.Record, error) {
	record, err := entity.NewRecord(req.Manager, req.ID, req.Payload, u.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := u.recordRepo.Stage(ctx, record); err != nil {
		u.logger.Error("Failed to stage record", map[string]any{
			"manager":  req.Manager,
			"recordId": req.ID,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Record staged", map[string]any{
		"manager":  req.Manager,
		"recordId": req.ID,
	})

	return record, nil
}

// RemoveRecord stages the deletion of a record
func (u *RecordUseCase) RemoveRecord(ctx context.Context, manager, id string) error {
	if err := entity.ValidateManagerName(manager); err != nil {
		return err
	}
	if err := entity.ValidateRecordID(id); err != nil {
		return err
	}

	if err := u.recordRepo.Remove(ctx, manager, id); err != nil {
		u.logger.Error("Failed to stage record removal", map[string]any{
			"manager":  manager,
			"recordId": id,
			"error":    err.Error(),
		})
		return err
	}

	u.logger.Info("Record removal staged", map[string]any{
		"manager":  manager,
		"recordId": id,
	})
	return nil
}
