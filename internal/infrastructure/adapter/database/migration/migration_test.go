package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/time"
)

func newTestMigrationManager(t *testing.T) (*MigrationManager, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider()), mock
}

func TestMigrationManager_GetCurrentVersion(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "version", "applied_at", "details"}

	t.Run("Latest version", func(t *testing.T) {
		m, mock := newTestMigrationManager(t)
		mock.ExpectQuery(`SELECT \* FROM "migration_versions" ORDER BY applied_at desc`).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(2, CurrentSchemaVersion, time.Now(), "records schema"))

		version, err := m.GetCurrentVersion(ctx)

		require.NoError(t, err)
		assert.Equal(t, CurrentSchemaVersion, version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Fresh database", func(t *testing.T) {
		m, mock := newTestMigrationManager(t)
		mock.ExpectQuery(`SELECT \* FROM "migration_versions"`).WillReturnRows(sqlmock.NewRows(columns))

		version, err := m.GetCurrentVersion(ctx)

		require.NoError(t, err)
		assert.Empty(t, version)
	})

	t.Run("Query failure", func(t *testing.T) {
		m, mock := newTestMigrationManager(t)
		mock.ExpectQuery(`SELECT \* FROM "migration_versions"`).WillReturnError(errors.New("relation does not exist"))

		_, err := m.GetCurrentVersion(ctx)

		assert.Error(t, err)
	})

	t.Run("Canceled context", func(t *testing.T) {
		m, _ := newTestMigrationManager(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := m.GetCurrentVersion(canceled)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
