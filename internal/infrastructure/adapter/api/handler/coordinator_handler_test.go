package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/dto"
)

func TestCoordinatorHandler_Flush(t *testing.T) {
	managers := []string{"orders", "billing"}

	tests := []struct {
		name           string
		outcome        *entity.Outcome
		expectedStatus int
		expectedState  string
		expectedCode   int
	}{
		{
			name:           "Every manager committed",
			outcome:        entity.NewSuccessOutcome("f-1", managers),
			expectedStatus: http.StatusOK,
			expectedState:  "success",
		},
		{
			name:           "Flush failure rolled back",
			outcome:        entity.NewRolledBackOutcome("f-2", managers, errors.New("unique violation")),
			expectedStatus: http.StatusConflict,
			expectedState:  "rolled_back",
			expectedCode:   domainerr.CodeRolledBack,
		},
		{
			name: "Rollback failed",
			outcome: entity.NewRollbackFailedOutcome("f-3", managers,
				errors.New("commit failed"), errors.New("connection lost")),
			expectedStatus: http.StatusInternalServerError,
			expectedState:  "rollback_failed",
			expectedCode:   domainerr.CodeRollbackFailed,
		},
		{
			name: "Begin failure rolled back",
			outcome: entity.NewRolledBackOutcome("f-4", managers,
				domainerr.NewManagerError("billing", domainerr.PhaseBegin, errors.New("too many connections"))),
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "rolled_back",
			expectedCode:   domainerr.CodeRolledBack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.coordinator.EXPECT().FlushAtomically(mock.Anything, managers).Return(tt.outcome, tt.outcome.Err())

			w := s.do(t, http.MethodPost, "/api/v1/flush", dto.ManagersRequest{Managers: managers})

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decode[dto.FlushResponse](t, w)
			assert.Equal(t, tt.outcome.FlushID, resp.FlushID)
			assert.Equal(t, tt.expectedState, resp.Status)
			assert.Equal(t, managers, resp.Managers)
			assert.Equal(t, tt.expectedCode, resp.Code)
		})
	}
}

func TestCoordinatorHandler_Flush_NotStarted(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   int
	}{
		{
			name:           "Duplicate manager",
			err:            fmt.Errorf("%w: %q", domainerr.ErrDuplicateManager, "orders"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domainerr.CodeDuplicateManager,
		},
		{
			name:           "Unknown manager",
			err:            fmt.Errorf("%w: %q", domainerr.ErrManagerNotFound, "ghost"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   domainerr.CodeManagerNotFound,
		},
		{
			name:           "Request canceled before the flush started",
			err:            context.Canceled,
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   domainerr.CodeUnavailable,
		},
		{
			name:           "Begin failure returned unchanged",
			err:            errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   domainerr.CodeDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.coordinator.EXPECT().FlushAtomically(mock.Anything, []string{"orders"}).Return(nil, tt.err)

			w := s.do(t, http.MethodPost, "/api/v1/flush", dto.ManagersRequest{Managers: []string{"orders"}})

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, tt.expectedCode, resp.Code)
		})
	}
}

func TestCoordinatorHandler_Flush_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/flush", `{"managers": "orders"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, domainerr.CodeInvalidRequest, resp.Code)
}

func TestCoordinatorHandler_Flush_EmptyList(t *testing.T) {
	s := newTestServer(t)
	s.coordinator.EXPECT().FlushAtomically(mock.Anything, []string{}).
		Return(entity.NewSuccessOutcome("f-empty", []string{}), nil)

	w := s.do(t, http.MethodPost, "/api/v1/flush", `{"managers": []}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.FlushResponse](t, w)
	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.Managers)
}

func TestCoordinatorHandler_FlushAll(t *testing.T) {
	s := newTestServer(t)
	s.coordinator.EXPECT().FlushAllAtomically(mock.Anything).
		Return(entity.NewSuccessOutcome("f-all", []string{"orders", "billing"}), nil)

	w := s.do(t, http.MethodPost, "/api/v1/flush/all", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.FlushResponse](t, w)
	assert.Equal(t, "f-all", resp.FlushID)
	assert.Equal(t, []string{"orders", "billing"}, resp.Managers)
}

func TestCoordinatorHandler_Clear(t *testing.T) {
	t.Run("Clears the named managers", func(t *testing.T) {
		s := newTestServer(t)
		s.coordinator.EXPECT().ClearManagers(mock.Anything, []string{"orders"}).Return(nil)

		w := s.do(t, http.MethodPost, "/api/v1/clear", dto.ManagersRequest{Managers: []string{"orders"}})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ClearResponse](t, w)
		assert.Equal(t, []string{"orders"}, resp.Cleared)
	})

	t.Run("Unknown manager", func(t *testing.T) {
		s := newTestServer(t)
		s.coordinator.EXPECT().ClearManagers(mock.Anything, []string{"ghost"}).
			Return(fmt.Errorf("%w: %q", domainerr.ErrManagerNotFound, "ghost"))

		w := s.do(t, http.MethodPost, "/api/v1/clear", dto.ManagersRequest{Managers: []string{"ghost"}})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Missing body", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, http.MethodPost, "/api/v1/clear", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCoordinatorHandler_ClearAll(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := newTestServer(t)
		s.coordinator.EXPECT().ClearAllManagers(mock.Anything).Return(nil)

		w := s.do(t, http.MethodPost, "/api/v1/clear/all", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"cleared"}`, w.Body.String())
	})

	t.Run("Clear failure hides internals", func(t *testing.T) {
		s := newTestServer(t)
		s.coordinator.EXPECT().ClearAllManagers(mock.Anything).
			Return(domainerr.NewManagerError("orders", domainerr.PhaseClear, errors.New("boom")))

		w := s.do(t, http.MethodPost, "/api/v1/clear/all", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, "Internal server error", resp.Message)
	})
}

func TestCoordinatorHandler_ExecutorShutDown(t *testing.T) {
	s := newTestServer(t)
	s.executor.Shutdown()

	w := s.do(t, http.MethodPost, "/api/v1/flush/all", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, domainerr.CodeUnavailable, resp.Code)
}

func TestCoordinatorHandler_Flush_CanceledWhileRunning(t *testing.T) {
	managers := []string{"orders", "billing"}
	s := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.coordinator.EXPECT().FlushAtomically(mock.Anything, managers).
		RunAndReturn(func(context.Context, []string) (*entity.Outcome, error) {
			cancel()
			time.Sleep(20 * time.Millisecond)
			return entity.NewSuccessOutcome("f-late", managers), nil
		})

	w := s.doContext(t, ctx, http.MethodPost, "/api/v1/flush", dto.ManagersRequest{Managers: managers})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.FlushResponse](t, w)
	assert.Equal(t, "f-late", resp.FlushID)
	assert.Equal(t, "success", resp.Status)
}
