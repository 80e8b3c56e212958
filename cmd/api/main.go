package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/usecase/coordinator"
	recordUseCase "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/usecase/record"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/telemetry"
	timeProvider "github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tel, shutdownTelemetry, err := telemetry.New(telemetry.Config{
		Enabled:          cfg.Telemetry.Enabled,
		ServiceName:      cfg.Telemetry.ServiceName,
		TraceSampleRatio: 1,
	})
	if err != nil {
		appLogger.Error("Failed to initialize telemetry", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	tp := timeProvider.NewRealTimeProvider()

	// One database manager per configured entity manager
	dbConfigs, err := database.ConfigsFromAppConfig(cfg)
	if err != nil {
		appLogger.Error("Invalid entity manager configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	registry, err := database.NewRegistryFromConfigs(dbConfigs, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to register entity managers", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	if err := registry.ConnectAll(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to connect to databases", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	if err := registry.MigrateAll(startupCtx); err != nil {
		cancelStartup()
		_ = registry.CloseAll()
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	cancelStartup()

	// Initialize use cases
	var coordinatorOpts []coordinator.Option
	if cfg.Coordinator.RollbackOnBeginFailure {
		coordinatorOpts = append(coordinatorOpts, coordinator.WithRollbackOnBeginFailure())
	}
	flushCoordinator := coordinator.NewCoordinator(registry, appLogger, tp, coordinatorOpts...)
	executor := coordinator.NewSerialExecutor(appLogger, cfg.Coordinator.QueueSize)

	recordRepo := repository.NewRecordRepository(registry, appLogger)
	recordUseCaseImpl := recordUseCase.NewRecordUseCase(recordRepo, tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		Coordinator: handler.NewCoordinatorHandler(flushCoordinator, executor, appLogger),
		Record:      handler.NewRecordHandler(recordUseCaseImpl, executor, appLogger),
		Manager:     handler.NewManagerHandler(recordUseCaseImpl, registry, executor, appLogger),
		Health:      handler.NewHealthHandler(registry, appLogger),
		Metrics:     tel.MetricsHandler,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":     cfg.Server.Port,
			"env":      cfg.Environment,
			"managers": registry.ManagerNames(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// Queued flushes finish before their databases close
	appLogger.Info("Shutting down serial executor...", nil)
	executor.Shutdown()

	if err := registry.CloseAll(); err != nil {
		appLogger.Error("Failed to close databases", map[string]any{
			"error": err.Error(),
		})
	}

	if err := shutdownTelemetry(ctx); err != nil {
		appLogger.Error("Failed to shut down telemetry", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if len(cfg.Managers) == 0 {
		missingConfigs = append(missingConfigs, "managers")
	}
	for i, m := range cfg.Managers {
		if m.Name == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("managers[%d].name", i))
			continue
		}
		if m.Database == "" {
			missingConfigs = append(missingConfigs,
				fmt.Sprintf("managers[%d].database (or %sNAME environment variable)", i, config.ManagerEnvPrefix(m.Name)))
		}
		if m.Host == "" && cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs,
				fmt.Sprintf("managers[%d].host or database.host (or MMC_DB_HOST environment variable)", i))
		}
		if m.Username == "" && cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs,
				fmt.Sprintf("managers[%d].username or database.username (or MMC_DB_USERNAME environment variable)", i))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
