package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/model"
)

// RecordRepository stages records on the entity managers of a registry
type RecordRepository struct {
	registry persistence.ManagerRegistry
	logger   coreport.Logger
}

var _ persistence.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository instance
func NewRecordRepository(registry persistence.ManagerRegistry, logger coreport.Logger) *RecordRepository {
	return &RecordRepository{
		registry: registry,
		logger:   logger,
	}
}

// entityToModel converts a record entity to its table model
func entityToModel(record *entity.Record) *model.Record {
	return &model.Record{
		ID:        record.ID,
		Payload:   string(record.Payload),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// modelToEntity converts a table model to a record entity of manager
func modelToEntity(manager string, recordModel *model.Record) *entity.Record {
	return &entity.Record{
		Manager:   manager,
		ID:        recordModel.ID,
		Payload:   json.RawMessage(recordModel.Payload),
		CreatedAt: recordModel.CreatedAt,
		UpdatedAt: recordModel.UpdatedAt,
	}
}

// Stage schedules an insert-or-update of the record on its manager
func (r *RecordRepository) Stage(ctx context.Context, record *entity.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	em, err := r.registry.Manager(record.Manager)
	if err != nil {
		return err
	}

	if err := em.Persist(entityToModel(record)); err != nil {
		return fmt.Errorf("stage record %q on %q: %w", record.ID, record.Manager, err)
	}

	r.logger.Debug("Record staged for flush", map[string]any{
		"manager": record.Manager,
		"id":      record.ID,
		"pending": em.PendingCount(),
	})
	return nil
}

// Remove schedules a delete of the record with the given id
func (r *RecordRepository) Remove(ctx context.Context, manager, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	em, err := r.registry.Manager(manager)
	if err != nil {
		return err
	}

	if err := em.Remove(&model.Record{ID: id}); err != nil {
		return fmt.Errorf("remove record %q on %q: %w", id, manager, err)
	}
	return nil
}

// GetByID reads a record, preferring the manager's identity map
func (r *RecordRepository) GetByID(ctx context.Context, manager, id string) (*entity.Record, error) {
	em, err := r.registry.Manager(manager)
	if err != nil {
		return nil, err
	}

	found, err := em.Find(ctx, &model.Record{}, id)
	if err != nil {
		return nil, err
	}

	recordModel, ok := found.(*model.Record)
	if !ok {
		r.logger.Error("Entity manager returned an unexpected entity", map[string]any{
			"manager": manager,
			"id":      id,
			"type":    fmt.Sprintf("%T", found),
		})
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedEntity, found)
	}

	return modelToEntity(manager, recordModel), nil
}

// PendingWrites returns the number of staged writes per manager
func (r *RecordRepository) PendingWrites(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := r.registry.ManagerNames()
	pending := make(map[string]int, len(names))
	for _, name := range names {
		em, err := r.registry.Manager(name)
		if err != nil {
			return nil, err
		}
		pending[name] = em.PendingCount()
	}
	return pending, nil
}
