package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/dto"
)

// CoordinatorHandler handles atomic flush and clear requests
type CoordinatorHandler struct {
	coordinator usecase.CoordinatorUseCase
	executor    Executor
	logger      coreport.Logger
}

// NewCoordinatorHandler creates a new coordinator handler instance
func NewCoordinatorHandler(
	coordinator usecase.CoordinatorUseCase,
	executor Executor,
	logger coreport.Logger,
) *CoordinatorHandler {
	return &CoordinatorHandler{
		coordinator: coordinator,
		executor:    executor,
		logger:      logger,
	}
}

// Flush handles the POST /api/v1/flush endpoint
func (h *CoordinatorHandler) Flush(c *gin.Context) {
	var req dto.ManagersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	h.flush(c, "flush", func(ctx context.Context) (*entity.Outcome, error) {
		return h.coordinator.FlushAtomically(ctx, req.Managers)
	})
}

// FlushAll handles the POST /api/v1/flush/all endpoint
func (h *CoordinatorHandler) FlushAll(c *gin.Context) {
	h.flush(c, "flush_all", h.coordinator.FlushAllAtomically)
}

func (h *CoordinatorHandler) flush(c *gin.Context, name string, run func(ctx context.Context) (*entity.Outcome, error)) {
	// Execute returns only after a started task has finished, so outcome is settled
	var outcome *entity.Outcome
	err := h.executor.Execute(c.Request.Context(), name, func(ctx context.Context) error {
		var flushErr error
		outcome, flushErr = run(ctx)
		return flushErr
	})

	if outcome == nil {
		if err == nil {
			err = domainerr.ErrInternalServer
		}
		writeError(c, h.logger, "Atomic flush did not start", beginFailure(err))
		return
	}

	c.JSON(flushStatus(outcome), dto.NewFlushResponse(outcome))
}

// Clear handles the POST /api/v1/clear endpoint
func (h *CoordinatorHandler) Clear(c *gin.Context) {
	var req dto.ManagersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	err := h.executor.Execute(c.Request.Context(), "clear", func(ctx context.Context) error {
		return h.coordinator.ClearManagers(ctx, req.Managers)
	})
	if err != nil {
		writeError(c, h.logger, "Failed to clear entity managers", err)
		return
	}

	cleared := req.Managers
	if cleared == nil {
		cleared = []string{}
	}
	c.JSON(http.StatusOK, dto.ClearResponse{Cleared: cleared})
}

// ClearAll handles the POST /api/v1/clear/all endpoint
func (h *CoordinatorHandler) ClearAll(c *gin.Context) {
	err := h.executor.Execute(c.Request.Context(), "clear_all", h.coordinator.ClearAllManagers)
	if err != nil {
		writeError(c, h.logger, "Failed to clear entity managers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// flushStatus maps an outcome to its HTTP status code
func flushStatus(outcome *entity.Outcome) int {
	switch outcome.Status {
	case entity.OutcomeSuccess:
		return http.StatusOK
	case entity.OutcomeRollbackFailed:
		return http.StatusInternalServerError
	default:
		var managerErr *domainerr.ManagerError
		if errors.As(outcome.Cause, &managerErr) && managerErr.Phase == domainerr.PhaseBegin {
			return http.StatusServiceUnavailable
		}
		return http.StatusConflict
	}
}

// beginFailure marks errors that stopped a flush before any flush ran as
// unavailability, unless the caller's input was at fault
func beginFailure(err error) error {
	if statusForError(err) != http.StatusInternalServerError || errors.Is(err, domainerr.ErrInternalServer) {
		return err
	}
	return fmt.Errorf("%w: %w", domainerr.ErrDatabaseConnection, err)
}
