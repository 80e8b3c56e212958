package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/model"
	mockpersistence "github.com/amirhossein-jamali/multi-manager-coordinator/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setupRepository(t *testing.T) (*RecordRepository, *mockpersistence.MockManagerRegistry, *mockpersistence.MockEntityManager) {
	registry := mockpersistence.NewMockManagerRegistry(t)
	em := mockpersistence.NewMockEntityManager(t)
	return NewRecordRepository(registry, logger.NewNoopLogger()), registry, em
}

func TestRecordRepository_Stage(t *testing.T) {
	ctx := context.Background()
	record := &entity.Record{
		Manager:   "orders",
		ID:        "o-1",
		Payload:   json.RawMessage(`{"total":10}`),
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}

	t.Run("Persists the table model", func(t *testing.T) {
		repo, registry, em := setupRepository(t)
		registry.EXPECT().Manager("orders").Return(em, nil)
		em.EXPECT().Persist(&model.Record{
			ID:        "o-1",
			Payload:   `{"total":10}`,
			CreatedAt: fixedTime,
			UpdatedAt: fixedTime,
		}).Return(nil)
		em.EXPECT().PendingCount().Return(1)

		assert.NoError(t, repo.Stage(ctx, record))
	})

	t.Run("Unknown manager", func(t *testing.T) {
		repo, registry, _ := setupRepository(t)
		registry.EXPECT().Manager("orders").Return(nil, errs.ErrManagerNotFound)

		assert.ErrorIs(t, repo.Stage(ctx, record), errs.ErrManagerNotFound)
	})

	t.Run("Persist failure", func(t *testing.T) {
		repo, registry, em := setupRepository(t)
		registry.EXPECT().Manager("orders").Return(em, nil)
		em.EXPECT().Persist(mock.Anything).Return(errs.ErrUnsupportedEntity)

		assert.ErrorIs(t, repo.Stage(ctx, record), errs.ErrUnsupportedEntity)
	})

	t.Run("Canceled context", func(t *testing.T) {
		repo, _, _ := setupRepository(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, repo.Stage(canceled, record), context.Canceled)
	})
}

func TestRecordRepository_Remove(t *testing.T) {
	repo, registry, em := setupRepository(t)
	registry.EXPECT().Manager("orders").Return(em, nil)
	em.EXPECT().Remove(&model.Record{ID: "o-1"}).Return(nil)

	assert.NoError(t, repo.Remove(context.Background(), "orders", "o-1"))
}

func TestRecordRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Maps the found model", func(t *testing.T) {
		repo, registry, em := setupRepository(t)
		registry.EXPECT().Manager("orders").Return(em, nil)
		em.EXPECT().Find(ctx, &model.Record{}, "o-1").
			Return(&model.Record{ID: "o-1", Payload: `{"total":10}`, CreatedAt: fixedTime, UpdatedAt: fixedTime}, nil)

		record, err := repo.GetByID(ctx, "orders", "o-1")

		require.NoError(t, err)
		assert.Equal(t, "orders", record.Manager)
		assert.Equal(t, "o-1", record.ID)
		assert.JSONEq(t, `{"total":10}`, string(record.Payload))
		assert.Equal(t, fixedTime, record.UpdatedAt)
	})

	t.Run("Not found", func(t *testing.T) {
		repo, registry, em := setupRepository(t)
		registry.EXPECT().Manager("orders").Return(em, nil)
		em.EXPECT().Find(ctx, mock.Anything, "missing").Return(nil, errs.ErrRecordNotFound)

		_, err := repo.GetByID(ctx, "orders", "missing")

		assert.ErrorIs(t, err, errs.ErrRecordNotFound)
	})
}

func TestRecordRepository_PendingWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("Counts per manager", func(t *testing.T) {
		repo, registry, orders := setupRepository(t)
		audit := mockpersistence.NewMockEntityManager(t)

		registry.EXPECT().ManagerNames().Return([]string{"orders", "audit-log"})
		registry.EXPECT().Manager("orders").Return(orders, nil)
		registry.EXPECT().Manager("audit-log").Return(audit, nil)
		orders.EXPECT().PendingCount().Return(2)
		audit.EXPECT().PendingCount().Return(0)

		pending, err := repo.PendingWrites(ctx)

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"orders": 2, "audit-log": 0}, pending)
	})

	t.Run("Manager unavailable", func(t *testing.T) {
		repo, registry, _ := setupRepository(t)
		unavailable := errors.New("not connected")

		registry.EXPECT().ManagerNames().Return([]string{"orders"})
		registry.EXPECT().Manager("orders").Return(nil, unavailable)

		_, err := repo.PendingWrites(ctx)

		assert.ErrorIs(t, err, unavailable)
	})
}
