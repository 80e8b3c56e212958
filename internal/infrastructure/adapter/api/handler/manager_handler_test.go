package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/database"
)

func TestManagerHandler_ListManagers(t *testing.T) {
	s := newTestServer(t)
	s.inspector.names = []string{"orders", "billing"}
	s.inspector.pools["orders"] = database.ConnectionPoolMetrics{
		OpenConnections:    3,
		IdleConnections:    2,
		InUse:              1,
		MaxOpenConnections: 25,
		WaitDuration:       1500 * time.Millisecond,
	}
	s.records.EXPECT().PendingWrites(mock.Anything).Return(map[string]int{"orders": 2}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/managers", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ManagersResponse](t, w)
	require.Len(t, resp.Managers, 2)

	assert.Equal(t, "orders", resp.Managers[0].Name)
	assert.Equal(t, 2, resp.Managers[0].PendingWrites)
	require.NotNil(t, resp.Managers[0].Pool)
	assert.Equal(t, 25, resp.Managers[0].Pool.MaxOpenConnections)
	assert.Equal(t, int64(1500), resp.Managers[0].Pool.WaitDurationMs)

	assert.Equal(t, "billing", resp.Managers[1].Name)
	assert.Zero(t, resp.Managers[1].PendingWrites)
	assert.Nil(t, resp.Managers[1].Pool)
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(t, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Database unreachable", func(t *testing.T) {
		s := newTestServer(t)
		s.pinger.err = errors.New("ping billing: connection refused")

		w := s.do(t, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decode[dto.HealthResponse](t, w)
		assert.Equal(t, "unavailable", resp.Status)
	})
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "# metrics")
}
