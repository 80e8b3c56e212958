package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
)

func TestErrorMapper_Classify(t *testing.T) {
	mapper := NewErrorMapper()

	tests := map[string]struct {
		err  error
		want ErrorType
	}{
		"nil":                {err: nil, want: ""},
		"record not found":   {err: gorm.ErrRecordNotFound, want: NotFoundError},
		"unique violation":   {err: &pgconn.PgError{Code: "23505"}, want: DuplicateKeyError},
		"serialization":      {err: &pgconn.PgError{Code: "40001"}, want: LockError},
		"deadlock":           {err: &pgconn.PgError{Code: "40P01"}, want: LockError},
		"not null violation": {err: &pgconn.PgError{Code: "23502"}, want: ConstraintError},
		"connection failure": {err: &pgconn.PgError{Code: "08006"}, want: ConnectionError},
		"query canceled":     {err: &pgconn.PgError{Code: "57014"}, want: TransientError},
		"syntax error":       {err: &pgconn.PgError{Code: "42601"}, want: ""},
		"wrapped pg error":   {err: fmt.Errorf("flush: %w", &pgconn.PgError{Code: "23505"}), want: DuplicateKeyError},
		"refused by message": {err: errors.New("dial tcp 127.0.0.1:5432: connection refused"), want: ConnectionError},
		"timeout by message": {err: errors.New("i/o timeout"), want: TransientError},
		"unknown":            {err: errors.New("boom"), want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapper.Classify(tt.err))
		})
	}
}

func TestErrorMapper_IsTransient(t *testing.T) {
	mapper := NewErrorMapper()

	assert.True(t, mapper.IsTransient(&pgconn.PgError{Code: "40001"}))
	assert.True(t, mapper.IsTransient(errors.New("connection reset by peer")))
	assert.False(t, mapper.IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.False(t, mapper.IsTransient(nil))
}

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()
	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key"}

	assert.NoError(t, mapper.MapError(nil, "op"))
	assert.Equal(t, domainErr.ErrRecordNotFound, mapper.MapError(gorm.ErrRecordNotFound, "find"))

	err := mapper.MapError(pgErr, "upsert records")
	assert.ErrorIs(t, err, domainErr.ErrConstraintViolation)
	assert.ErrorIs(t, err, pgErr)
	assert.Contains(t, err.Error(), "upsert records")

	assert.ErrorIs(t, mapper.MapError(&pgconn.PgError{Code: "40P01"}, "op"), domainErr.ErrLockConflict)
	assert.ErrorIs(t, mapper.MapError(errors.New("broken pipe"), "op"), domainErr.ErrDatabaseConnection)

	canceled := mapper.MapError(context.Canceled, "find records")
	assert.ErrorIs(t, canceled, context.Canceled)
	assert.NotErrorIs(t, canceled, domainErr.ErrDatabaseConnection)

	other := errors.New("boom")
	assert.ErrorIs(t, mapper.MapError(other, "op"), other)
}
