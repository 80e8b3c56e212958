package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/usecase/coordinator"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/multi-manager-coordinator/mocks/port/usecase"
)

type fakeInspector struct {
	names []string
	pools map[string]database.ConnectionPoolMetrics
}

func (f *fakeInspector) ManagerNames() []string { return f.names }

func (f *fakeInspector) PoolMetrics() map[string]database.ConnectionPoolMetrics { return f.pools }

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }

type testServer struct {
	router      *gin.Engine
	coordinator *mockusecase.MockCoordinatorUseCase
	records     *mockusecase.MockRecordUseCase
	inspector   *fakeInspector
	pinger      *fakePinger
	executor    *coordinator.SerialExecutor
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	s := &testServer{
		router:      gin.New(),
		coordinator: mockusecase.NewMockCoordinatorUseCase(t),
		records:     mockusecase.NewMockRecordUseCase(t),
		inspector:   &fakeInspector{pools: map[string]database.ConnectionPoolMetrics{}},
		pinger:      &fakePinger{},
		executor:    coordinator.NewSerialExecutor(log, 10),
	}
	t.Cleanup(s.executor.Shutdown)

	routes.SetupRoutes(s.router, routes.Handlers{
		Coordinator: handler.NewCoordinatorHandler(s.coordinator, s.executor, log),
		Record:      handler.NewRecordHandler(s.records, s.executor, log),
		Manager:     handler.NewManagerHandler(s.records, s.inspector, s.executor, log),
		Health:      handler.NewHealthHandler(s.pinger, log),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics\n"))
		}),
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return s.doContext(t, context.Background(), method, path, body)
}

// doContext serves the request with ctx as its context
func (s *testServer) doContext(t *testing.T, ctx context.Context, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
