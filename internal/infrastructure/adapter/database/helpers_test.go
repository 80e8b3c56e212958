package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/logger"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// fixedClock pins Now and reports a constant elapsed time
type fixedClock struct {
	elapsed time.Duration
}

func (c fixedClock) Now() time.Time { return fixedTime }
func (c fixedClock) Since(time.Time) time.Duration { return c.elapsed }

func newTestLogger() coreport.Logger {
	return logger.NewNoopLogger()
}

// newMockDialector returns a postgres dialector backed by sqlmock
func newMockDialector(t *testing.T) (gorm.Dialector, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return postgres.New(postgres.Config{Conn: sqlDB}), mock
}

// newMockDB opens gorm over sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	dialector, mock := newMockDialector(t)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return fixedTime },
	})
	require.NoError(t, err)

	return db, mock
}

func testConfig(name string) *Config {
	conf := DefaultConfig(name)
	conf.Host = "localhost"
	conf.Username = "postgres"
	conf.Database = name + "_db"
	conf.RetryAttempts = 0
	conf.LogLevel = "silent"
	return conf
}
