package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/database"
)

// ManagerInspector exposes the registered managers and their connection pools
type ManagerInspector interface {
	ManagerNames() []string
	PoolMetrics() map[string]database.ConnectionPoolMetrics
}

// Pinger checks that every backing database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// ManagerHandler handles entity manager listing and health checks
type ManagerHandler struct {
	records   usecase.RecordUseCase
	inspector ManagerInspector
	executor  Executor
	logger    coreport.Logger
}

// NewManagerHandler creates a new manager handler instance
func NewManagerHandler(
	records usecase.RecordUseCase,
	inspector ManagerInspector,
	executor Executor,
	logger coreport.Logger,
) *ManagerHandler {
	return &ManagerHandler{
		records:   records,
		inspector: inspector,
		executor:  executor,
		logger:    logger,
	}
}

// ListManagers handles the GET /api/v1/managers endpoint
func (h *ManagerHandler) ListManagers(c *gin.Context) {
	var pending map[string]int
	err := h.executor.Execute(c.Request.Context(), "list_managers", func(ctx context.Context) error {
		var pendingErr error
		pending, pendingErr = h.records.PendingWrites(ctx)
		return pendingErr
	})
	if err != nil {
		writeError(c, h.logger, "Failed to list entity managers", err)
		return
	}

	pools := h.inspector.PoolMetrics()
	names := h.inspector.ManagerNames()

	resp := dto.ManagersResponse{Managers: make([]dto.ManagerResponse, 0, len(names))}
	for _, name := range names {
		manager := dto.ManagerResponse{
			Name:          name,
			PendingWrites: pending[name],
		}
		if pool, ok := pools[name]; ok {
			manager.Pool = &dto.PoolStats{
				OpenConnections:    pool.OpenConnections,
				IdleConnections:    pool.IdleConnections,
				InUse:              pool.InUse,
				MaxOpenConnections: pool.MaxOpenConnections,
				WaitCount:          pool.WaitCount,
				WaitDurationMs:     pool.WaitDuration.Milliseconds(),
			}
		}
		resp.Managers = append(resp.Managers, manager)
	}

	c.JSON(http.StatusOK, resp)
}

// HealthHandler handles the GET /health endpoint
type HealthHandler struct {
	pinger Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(pinger Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{pinger: pinger, logger: logger}
}

// Health reports whether every database answers
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
