package error

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidManagerName  = 4001
	CodeDuplicateManager    = 4002
	CodeInvalidRecordID     = 4003
	CodeInvalidPayload      = 4004
	CodeConstraintViolation = 4005
	CodeManagerNotFound     = 4040
	CodeRecordNotFound      = 4041
	CodeRolledBack          = 4090
	CodeLockConflict        = 4091

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeRollbackFailed     = 5001
	CodeTransactionState   = 5002
	CodeDatabaseConnection = 5030
	CodeUnavailable        = 5031
	CodeTimeout            = 5040
)

// Base error types
var (
	// ErrRolledBack is matched by every RollbackError
	ErrRolledBack = errors.New("transaction rolled back")

	// ErrRollbackFailed is matched by every RollbackFailedError
	ErrRollbackFailed = errors.New("transaction could not be rolled back")

	// ErrManagerNotFound is returned when a name is not registered
	ErrManagerNotFound = errors.New("entity manager not found")

	// ErrDuplicateManager is returned when the same manager is named twice in one call
	ErrDuplicateManager = errors.New("entity manager named more than once")

	// ErrInvalidManagerName is returned when a manager name is malformed
	ErrInvalidManagerName = errors.New("invalid entity manager name")

	// ErrTransactionActive is returned when a transaction is begun twice on one connection
	ErrTransactionActive = errors.New("transaction already active")

	// ErrNoActiveTransaction is returned when commit or rollback finds nothing to conclude
	ErrNoActiveTransaction = errors.New("no active transaction")

	// ErrRecordNotFound is returned when the requested record doesn't exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecordID is returned when a record id is empty or too long
	ErrInvalidRecordID = errors.New("invalid record ID")

	// ErrInvalidPayload is returned when a record payload is not valid JSON
	ErrInvalidPayload = errors.New("record payload must be valid JSON")

	// ErrUnsupportedEntity is returned when an entity manager is handed an entity it cannot identify
	ErrUnsupportedEntity = errors.New("unsupported entity")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrLockConflict is returned for deadlocks and serialization failures
	ErrLockConflict = errors.New("concurrent update conflict")

	// ErrExecutorClosed is returned when work is submitted after shutdown
	ErrExecutorClosed = errors.New("executor is shut down")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrRollbackFailed):
		return CodeRollbackFailed
	case errors.Is(err, ErrRolledBack):
		return CodeRolledBack
	case errors.Is(err, ErrManagerNotFound):
		return CodeManagerNotFound
	case errors.Is(err, ErrDuplicateManager):
		return CodeDuplicateManager
	case errors.Is(err, ErrInvalidManagerName):
		return CodeInvalidManagerName
	case errors.Is(err, ErrRecordNotFound):
		return CodeRecordNotFound
	case errors.Is(err, ErrInvalidRecordID):
		return CodeInvalidRecordID
	case errors.Is(err, ErrInvalidPayload):
		return CodeInvalidPayload
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrLockConflict):
		return CodeLockConflict
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrTransactionActive), errors.Is(err, ErrNoActiveTransaction):
		return CodeTransactionState
	case errors.Is(err, ErrExecutorClosed), errors.Is(err, context.Canceled):
		return CodeUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	default:
		return CodeInternalServer
	}
}

// Phase names a step of the atomic flush sequence
type Phase string

const (
	PhaseBegin    Phase = "begin"
	PhaseFlush    Phase = "flush"
	PhaseCommit   Phase = "commit"
	PhaseRollback Phase = "rollback"
	PhaseClear    Phase = "clear"
)

// ManagerError ties a failure to the manager and phase it happened in
type ManagerError struct {
	Manager string
	Phase   Phase
	Err     error
}

// NewManagerError creates a new ManagerError
func NewManagerError(manager string, phase Phase, err error) error {
	return &ManagerError{
		Manager: manager,
		Phase:   phase,
		Err:     err,
	}
}

// Error implements the error interface for ManagerError
func (e *ManagerError) Error() string {
	return fmt.Sprintf("%s of entity manager %q failed: %v", e.Phase, e.Manager, e.Err)
}

// Unwrap returns the underlying error
func (e *ManagerError) Unwrap() error {
	return e.Err
}

// RollbackError reports that a flush or commit failed and every participating
// manager was rolled back. The unit of work may be retried.
type RollbackError struct {
	FlushID  string
	Managers []string
	Cause    error
}

// NewRollbackError creates a new RollbackError
func NewRollbackError(flushID string, managers []string, cause error) error {
	return &RollbackError{
		FlushID:  flushID,
		Managers: managers,
		Cause:    cause,
	}
}

// Error implements the error interface for RollbackError
func (e *RollbackError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRolledBack.Error(), e.Cause)
}

// Unwrap returns the failure that triggered the rollback
func (e *RollbackError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is an ErrRolledBack
func (e *RollbackError) Is(target error) bool {
	return target == ErrRolledBack
}

// LogFields returns a map of fields for structured logging
func (e *RollbackError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "rolled_back",
		"flush_id":   e.FlushID,
		"managers":   strings.Join(e.Managers, ","),
		"cause":      errorString(e.Cause),
		"error_code": CodeRolledBack,
	}
}

// RollbackFailedError reports that at least one rollback failed after a flush or
// commit failure. Participating stores may hold partially applied state and the
// failure must be escalated rather than retried.
type RollbackFailedError struct {
	FlushID     string
	Managers    []string
	Cause       error
	RollbackErr error
}

// NewRollbackFailedError creates a new RollbackFailedError
func NewRollbackFailedError(flushID string, managers []string, cause, rollbackErr error) error {
	return &RollbackFailedError{
		FlushID:     flushID,
		Managers:    managers,
		Cause:       cause,
		RollbackErr: rollbackErr,
	}
}

// Error implements the error interface for RollbackFailedError
func (e *RollbackFailedError) Error() string {
	return fmt.Sprintf("%s: %v (cause: %v)", ErrRollbackFailed.Error(), e.RollbackErr, e.Cause)
}

// Unwrap returns both the original cause and the rollback failure
func (e *RollbackFailedError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	if e.RollbackErr != nil {
		errs = append(errs, e.RollbackErr)
	}
	return errs
}

// Is checks if the target error is an ErrRollbackFailed
func (e *RollbackFailedError) Is(target error) bool {
	return target == ErrRollbackFailed
}

// LogFields returns a map of fields for structured logging
func (e *RollbackFailedError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "rollback_failed",
		"flush_id":       e.FlushID,
		"managers":       strings.Join(e.Managers, ","),
		"cause":          errorString(e.Cause),
		"rollback_error": errorString(e.RollbackErr),
		"error_code":     CodeRollbackFailed,
	}
}

// IsRolledBack checks if the error is a clean rollback
func IsRolledBack(err error) bool {
	return errors.Is(err, ErrRolledBack)
}

// IsRollbackFailed checks if the error is a failed rollback
func IsRollbackFailed(err error) bool {
	return errors.Is(err, ErrRollbackFailed)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrManagerNotFound) ||
		errors.Is(err, ErrRecordNotFound)
}

// IsValidationError checks if the error was caused by caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidManagerName) ||
		errors.Is(err, ErrDuplicateManager) ||
		errors.Is(err, ErrInvalidRecordID) ||
		errors.Is(err, ErrInvalidPayload)
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
