package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/usecase/coordinator"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/dto"
)

// Executor runs tasks that touch entity managers one at a time
type Executor interface {
	Execute(ctx context.Context, name string, task coordinator.TaskFunc) error
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsRollbackFailed(err):
		return http.StatusInternalServerError
	case domainerr.IsRolledBack(err):
		return http.StatusConflict
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrLockConflict),
		errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrDatabaseConnection),
		errors.Is(err, domainerr.ErrTransactionActive),
		errors.Is(err, domainerr.ErrNoActiveTransaction),
		errors.Is(err, domainerr.ErrExecutorClosed),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// messageForStatus keeps internal details out of server error responses
func messageForStatus(status int, err error) string {
	if status == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

// writeError logs err and writes the matching error response
func writeError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := statusForError(err)
	fields := map[string]any{
		"error":  err.Error(),
		"status": status,
		"path":   c.Request.URL.Path,
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Warn(message, fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: messageForStatus(status, err),
	})
}
