package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/model"
)

func newTestEntityManager(t *testing.T) (*EntityManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	conn := NewConnection("orders", db, "", newTestLogger())
	return NewEntityManager("orders", conn, newTestLogger(), fixedClock{}), mock
}

func record(id, payload string) *model.Record {
	return &model.Record{ID: id, Payload: payload, CreatedAt: fixedTime, UpdatedAt: fixedTime}
}

func TestEntityManager_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies writes in staging order", func(t *testing.T) {
		em, mock := newTestEntityManager(t)

		require.NoError(t, em.Persist(record("a", `{"n":1}`)))
		require.NoError(t, em.Remove(record("b", `{}`)))
		assert.Equal(t, 2, em.PendingCount())

		mock.ExpectExec(`INSERT INTO "records" .* ON CONFLICT \("id"\) DO UPDATE SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "records" WHERE "records"."id" = \$1`).
			WithArgs("b").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, em.Flush(ctx))
		assert.Zero(t, em.PendingCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Writes go through the open transaction", func(t *testing.T) {
		em, mock := newTestEntityManager(t)
		require.NoError(t, em.Persist(record("a", `{}`)))

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "records"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		conn := em.Connection()
		require.NoError(t, conn.BeginTransaction(ctx))
		require.NoError(t, em.Flush(ctx))
		require.NoError(t, conn.Rollback(ctx))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure keeps the failed write and the rest", func(t *testing.T) {
		em, mock := newTestEntityManager(t)
		require.NoError(t, em.Persist(record("a", `{}`)))
		require.NoError(t, em.Persist(record("b", `{}`)))
		require.NoError(t, em.Persist(record("c", `{}`)))

		mock.ExpectExec(`INSERT INTO "records"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "records"`).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "records_pkey"`))

		err := em.Flush(ctx)

		assert.ErrorIs(t, err, domainErr.ErrConstraintViolation)
		assert.Equal(t, 2, em.PendingCount())

		mock.ExpectExec(`INSERT INTO "records"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "records"`).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, em.Flush(ctx))
		assert.Zero(t, em.PendingCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback restages writes the transaction applied", func(t *testing.T) {
		em, mock := newTestEntityManager(t)
		conn := em.Connection()
		require.NoError(t, em.Persist(record("a", `{}`)))
		require.NoError(t, em.Persist(record("b", `{}`)))

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "records"`).WithArgs("a", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "records"`).WithArgs("b", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(errors.New("canceling statement due to statement timeout"))
		mock.ExpectRollback()

		require.NoError(t, conn.BeginTransaction(ctx))
		require.Error(t, em.Flush(ctx))
		assert.Equal(t, 2, em.PendingCount(), "applied writes wait for the commit")
		require.NoError(t, conn.Rollback(ctx))
		assert.Equal(t, 2, em.PendingCount())

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "records"`).WithArgs("a", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "records"`).WithArgs("b", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, conn.BeginTransaction(ctx))
		require.NoError(t, em.Flush(ctx))
		require.NoError(t, conn.Commit(ctx))

		assert.Zero(t, em.PendingCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Commit drops only the writes it applied", func(t *testing.T) {
		em, mock := newTestEntityManager(t)
		conn := em.Connection()
		require.NoError(t, em.Persist(record("a", `{}`)))

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "records"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, conn.BeginTransaction(ctx))
		require.NoError(t, em.Flush(ctx))
		require.NoError(t, em.Flush(ctx), "applied writes are not written twice")
		require.NoError(t, em.Persist(record("b", `{}`)))
		require.NoError(t, conn.Commit(ctx))

		assert.Equal(t, 1, em.PendingCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed commit keeps every write", func(t *testing.T) {
		em, mock := newTestEntityManager(t)
		conn := em.Connection()
		require.NoError(t, em.Persist(record("a", `{}`)))

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "records"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("could not serialize access due to concurrent update"))

		require.NoError(t, conn.BeginTransaction(ctx))
		require.NoError(t, em.Flush(ctx))
		require.Error(t, conn.Commit(ctx))

		assert.Equal(t, 1, em.PendingCount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing pending touches nothing", func(t *testing.T) {
		em, mock := newTestEntityManager(t)

		require.NoError(t, em.Flush(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEntityManager_Find(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "payload", "created_at", "updated_at"}

	t.Run("Loads once then serves the managed instance", func(t *testing.T) {
		em, mock := newTestEntityManager(t)

		mock.ExpectQuery(`SELECT \* FROM "records" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("a", `{"n":1}`, fixedTime, fixedTime))

		first, err := em.Find(ctx, &model.Record{}, "a")
		require.NoError(t, err)
		assert.Equal(t, `{"n":1}`, first.(*model.Record).Payload)

		second, err := em.Find(ctx, &model.Record{}, "a")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Staged entity is served without a query", func(t *testing.T) {
		em, mock := newTestEntityManager(t)
		staged := record("a", `{"draft":true}`)
		require.NoError(t, em.Persist(staged))

		found, err := em.Find(ctx, &model.Record{}, "a")

		require.NoError(t, err)
		assert.Same(t, staged, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Removed entity is not found", func(t *testing.T) {
		em, mock := newTestEntityManager(t)
		require.NoError(t, em.Remove(record("a", `{}`)))

		_, err := em.Find(ctx, &model.Record{}, "a")

		assert.ErrorIs(t, err, domainErr.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing row", func(t *testing.T) {
		em, mock := newTestEntityManager(t)

		mock.ExpectQuery(`SELECT \* FROM "records"`).WillReturnRows(sqlmock.NewRows(columns))

		_, err := em.Find(ctx, &model.Record{}, "missing")

		assert.ErrorIs(t, err, domainErr.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEntityManager_Clear(t *testing.T) {
	em, mock := newTestEntityManager(t)
	require.NoError(t, em.Persist(record("a", `{}`)))
	require.NoError(t, em.Remove(record("b", `{}`)))

	require.NoError(t, em.Clear())
	assert.Zero(t, em.PendingCount())

	// cleared entities are read from the database again
	mock.ExpectQuery(`SELECT \* FROM "records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload"}).AddRow("b", `{}`))

	found, err := em.Find(context.Background(), &model.Record{}, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", found.EntityID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityManager_RejectsEntityWithoutID(t *testing.T) {
	em, _ := newTestEntityManager(t)

	assert.ErrorIs(t, em.Persist(&model.Record{}), domainErr.ErrUnsupportedEntity)
	assert.ErrorIs(t, em.Remove(&model.Record{}), domainErr.ErrUnsupportedEntity)
	assert.Zero(t, em.PendingCount())
	assert.Equal(t, "orders", em.Name())
}
