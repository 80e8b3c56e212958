package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/multi-manager-coordinator/mocks/port/core"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func serve(router *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	t.Run("Generates an ID when none is sent", func(t *testing.T) {
		var seen string
		router := newRouter(RequestID())
		router.GET("/ping", func(c *gin.Context) {
			seen = c.GetString(RequestIDKey)
			c.Status(http.StatusOK)
		})

		w := serve(router, http.MethodGet, "/ping", nil)

		assert.NotEmpty(t, seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("Keeps the caller's ID", func(t *testing.T) {
		router := newRouter(RequestID())
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(router, http.MethodGet, "/ping", http.Header{RequestIDHeader: {"req-123"}})

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["path"] == "/boom" && fields["request_id"] == "req-9"
	})).Once()

	router := newRouter(RequestID(), ErrorHandler(mockLogger))
	router.GET("/boom", func(c *gin.Context) { panic("unexpected") })

	w := serve(router, http.MethodGet, "/boom", http.Header{RequestIDHeader: {"req-9"}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func TestLogger(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful request logs at info", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(start)
		mockTime.EXPECT().Since(start).Return(25 * time.Millisecond)

		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == http.StatusOK &&
				fields["latency_ms"] == int64(25) &&
				fields["path"] == "/ok" &&
				fields["status_text"] == "Success"
		})).Once()

		router := newRouter(Logger(mockLogger, mockTime))
		router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(router, http.MethodGet, "/ok", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Server error logs at error", func(t *testing.T) {
		mockTime := mockcore.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(start)
		mockTime.EXPECT().Since(start).Return(time.Millisecond)

		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Error("Request failed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == http.StatusServiceUnavailable
		})).Once()

		router := newRouter(Logger(mockLogger, mockTime))
		router.GET("/down", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

		serve(router, http.MethodGet, "/down", nil)
	})
}

func TestCORS(t *testing.T) {
	router := newRouter(CORS())
	router.GET("/api", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Preflight is answered directly", func(t *testing.T) {
		w := serve(router, http.MethodOptions, "/api", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Regular request passes through", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), RequestIDHeader)
	})
}

func TestStatusText(t *testing.T) {
	tests := map[int]string{
		http.StatusContinue:            "Informational",
		http.StatusAccepted:            "Success",
		http.StatusNotModified:         "Redirect",
		http.StatusConflict:            "Client Error",
		http.StatusInternalServerError: "Server Error",
	}
	for code, expected := range tests {
		assert.Equal(t, expected, statusText(code))
	}
}
