package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	NotFoundError     ErrorType = "not_found"
)

// ErrorMapper classifies database errors and maps them to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// Classify returns the type of error, empty when unknown
func (m *ErrorMapper) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return DuplicateKeyError
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "could not serialize access") ||
		strings.Contains(errMsg, "serialization failure") ||
		strings.Contains(errMsg, "lock timeout"):
		return LockError
	case strings.Contains(errMsg, "violates") ||
		strings.Contains(errMsg, "constraint"):
		return ConstraintError
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "dial"):
		return ConnectionError
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "eof"):
		return TransientError
	default:
		return ""
	}
}

// classifySQLState maps PostgreSQL SQLSTATE codes to error types
func classifySQLState(code string) ErrorType {
	switch {
	case code == "23505":
		return DuplicateKeyError
	case code == "40001" || code == "40P01" || code == "55P03":
		return LockError
	case strings.HasPrefix(code, "23"):
		return ConstraintError
	case strings.HasPrefix(code, "08") || code == "53300" || code == "57P01":
		return ConnectionError
	case code == "57014":
		return TransientError
	default:
		return ""
	}
}

// IsTransient reports whether the operation may succeed if retried
func (m *ErrorMapper) IsTransient(err error) bool {
	switch m.Classify(err) {
	case LockError, ConnectionError, TransientError:
		return true
	default:
		return false
	}
}

// MapError maps a database error to a domain error. The original error stays
// reachable through errors.Is so callers can still see the driver failure.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", operation, err)
	}

	switch m.Classify(err) {
	case NotFoundError:
		return domainErr.ErrRecordNotFound
	case DuplicateKeyError, ConstraintError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrConstraintViolation, operation, err)
	case LockError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrLockConflict, operation, err)
	case ConnectionError, TransientError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrDatabaseConnection, operation, err)
	default:
		return fmt.Errorf("%s: %w", operation, err)
	}
}
