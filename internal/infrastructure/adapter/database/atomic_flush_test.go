package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/usecase/coordinator"
)

func TestCoordinator_RetryAfterRollbackCommitsWholeUnit(t *testing.T) {
	ctx := context.Background()

	orders, ordersMock := newMockManager(t, "orders")
	audit, auditMock := newMockManager(t, "audit-log")

	registry := NewRegistry(newTestLogger())
	require.NoError(t, registry.Register(orders))
	require.NoError(t, registry.Register(audit))
	require.NoError(t, registry.ConnectAll(ctx))

	require.NoError(t, orders.EntityManager().Persist(record("order-1", `{"total":10}`)))
	require.NoError(t, audit.EntityManager().Persist(record("entry-1", `{"event":"order placed"}`)))

	c := coordinator.NewCoordinator(registry, newTestLogger(), fixedClock{})
	names := []string{"orders", "audit-log"}

	// orders writes its row, audit-log fails, both roll back
	ordersMock.ExpectBegin()
	auditMock.ExpectBegin()
	ordersMock.ExpectExec(`INSERT INTO "records"`).
		WithArgs("order-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	auditMock.ExpectExec(`INSERT INTO "records"`).
		WithArgs("entry-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("canceling statement due to statement timeout"))
	ordersMock.ExpectRollback()
	auditMock.ExpectRollback()

	outcome, err := c.FlushAtomically(ctx, names)

	require.NotNil(t, outcome)
	assert.Equal(t, entity.OutcomeRolledBack, outcome.Status)
	assert.ErrorIs(t, err, domainErr.ErrRolledBack)
	assert.Equal(t, 1, orders.EntityManager().PendingCount())
	assert.Equal(t, 1, audit.EntityManager().PendingCount())

	// the retry writes both rows again and commits them together
	ordersMock.ExpectBegin()
	auditMock.ExpectBegin()
	ordersMock.ExpectExec(`INSERT INTO "records"`).
		WithArgs("order-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	auditMock.ExpectExec(`INSERT INTO "records"`).
		WithArgs("entry-1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	ordersMock.ExpectCommit()
	auditMock.ExpectCommit()

	outcome, err = c.FlushAtomically(ctx, names)

	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeSuccess, outcome.Status)
	assert.Zero(t, orders.EntityManager().PendingCount())
	assert.Zero(t, audit.EntityManager().PendingCount())

	ordersMock.ExpectClose()
	auditMock.ExpectClose()
	require.NoError(t, registry.CloseAll())
	assert.NoError(t, ordersMock.ExpectationsWereMet())
	assert.NoError(t, auditMock.ExpectationsWereMet())
}
