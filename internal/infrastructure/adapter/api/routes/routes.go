package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the handlers served by the API
type Handlers struct {
	Coordinator *handler.CoordinatorHandler
	Record      *handler.RecordHandler
	Manager     *handler.ManagerHandler
	Health      *handler.HealthHandler
	// Metrics serves the Prometheus scrape endpoint; nil disables /metrics
	Metrics http.Handler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	v1 := router.Group("/api/v1")
	{
		// GET /api/v1/managers
		v1.GET("/managers", h.Manager.ListManagers)

		records := v1.Group("/managers/:name/records")
		{
			records.GET("/:id", h.Record.GetRecord)
			records.PUT("/:id", h.Record.StageRecord)
			records.DELETE("/:id", h.Record.RemoveRecord)
		}

		v1.POST("/flush", h.Coordinator.Flush)
		v1.POST("/flush/all", h.Coordinator.FlushAll)
		v1.POST("/clear", h.Coordinator.Clear)
		v1.POST("/clear/all", h.Coordinator.ClearAll)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Request IDs come first so every later middleware can log them
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
