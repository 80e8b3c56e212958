package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/dto"
)

// RecordHandler handles record staging and reads on one entity manager
type RecordHandler struct {
	records  usecase.RecordUseCase
	executor Executor
	logger   coreport.Logger
}

// NewRecordHandler creates a new record handler instance
func NewRecordHandler(
	records usecase.RecordUseCase,
	executor Executor,
	logger coreport.Logger,
) *RecordHandler {
	return &RecordHandler{
		records:  records,
		executor: executor,
		logger:   logger,
	}
}

// StageRecord handles the PUT /api/v1/managers/:name/records/:id endpoint
func (h *RecordHandler) StageRecord(c *gin.Context) {
	var req dto.StageRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	stageReq := usecase.StageRecordRequest{
		Manager: c.Param("name"),
		ID:      c.Param("id"),
		Payload: req.Payload,
	}

	var record *entity.Record
	err := h.executor.Execute(c.Request.Context(), "stage_record", func(ctx context.Context) error {
		var stageErr error
		record, stageErr = h.records.StageRecord(ctx, stageReq)
		return stageErr
	})
	if err != nil {
		writeError(c, h.logger, "Failed to stage record", err)
		return
	}

	c.JSON(http.StatusAccepted, dto.StagedResponse{
		Manager: record.Manager,
		ID:      record.ID,
		Staged:  "upsert",
	})
}

// RemoveRecord handles the DELETE /api/v1/managers/:name/records/:id endpoint
func (h *RecordHandler) RemoveRecord(c *gin.Context) {
	manager, id := c.Param("name"), c.Param("id")

	err := h.executor.Execute(c.Request.Context(), "remove_record", func(ctx context.Context) error {
		return h.records.RemoveRecord(ctx, manager, id)
	})
	if err != nil {
		writeError(c, h.logger, "Failed to stage record removal", err)
		return
	}

	c.JSON(http.StatusAccepted, dto.StagedResponse{
		Manager: manager,
		ID:      id,
		Staged:  "delete",
	})
}

// GetRecord handles the GET /api/v1/managers/:name/records/:id endpoint
func (h *RecordHandler) GetRecord(c *gin.Context) {
	manager, id := c.Param("name"), c.Param("id")

	var record *entity.Record
	err := h.executor.Execute(c.Request.Context(), "get_record", func(ctx context.Context) error {
		var getErr error
		record, getErr = h.records.GetRecord(ctx, manager, id)
		return getErr
	})
	if err != nil {
		writeError(c, h.logger, "Failed to get record", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordResponse(record))
}
