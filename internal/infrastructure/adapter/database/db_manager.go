package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/adapter/database/migration"
)

// poolMonitorInterval is how often pool statistics are sampled
const poolMonitorInterval = 30 * time.Second

// Manager owns the database of one named entity manager
type Manager struct {
	config       *Config
	dialector    gorm.Dialector
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper

	mu                sync.RWMutex
	db                *gorm.DB
	connection        *Connection
	entityManager     *EntityManager
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a manager that connects to postgres using config
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return NewManagerWithDialector(config, postgres.Open(config.DSN()), logger, timeProvider)
}

// NewManagerWithDialector creates a manager that opens dialector instead of a DSN
func NewManagerWithDialector(config *Config, dialector gorm.Dialector, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		dialector:    dialector,
		logger:       logger.With(map[string]any{"manager": config.Name}),
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
	}
}

// Name returns the manager name
func (m *Manager) Name() string {
	return m.config.Name
}

// Connect opens the database, retrying transient failures
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return nil
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, RetryConfigFrom(m.config), func() error {
		var openErr error
		gormDB, openErr = gorm.Open(m.dialector, &gorm.Config{
			Logger:                 NewDatabaseLogger(m.logger, m.timeProvider, m.config.Name, m.config.LogLevel),
			NowFunc:                m.timeProvider.Now,
			SkipDefaultTransaction: true,
		})
		return openErr
	}, m.errorMapper, m.logger)
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: manager %q: %w", domainErr.ErrDatabaseConnection, m.config.Name, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.db = gormDB
	m.connection = NewConnection(m.config.Name, gormDB, m.config.IsolationSQL(), m.logger)
	m.entityManager = NewEntityManager(m.config.Name, m.connection, m.logger, m.timeProvider)
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger)
	m.connectionMonitor.Start(poolMonitorInterval)

	m.logger.Info("Successfully connected to database", map[string]any{
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"isolation":      m.config.IsolationSQL(),
	})

	return nil
}

// DB returns the GORM database instance, nil before Connect
func (m *Manager) DB() *gorm.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

// EntityManager returns the manager's persistence unit, nil before Connect
func (m *Manager) EntityManager() *EntityManager {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entityManager
}

// Migrate brings the manager's database schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	m.mu.RLock()
	migrationMgr := m.migrationMgr
	m.mu.RUnlock()

	if migrationMgr == nil {
		return fmt.Errorf("manager %q is not connected", m.config.Name)
	}
	return migrationMgr.MigrateAll(ctx)
}

// Ping checks that the database is reachable within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	db := m.DB()
	if db == nil {
		return fmt.Errorf("%w: manager %q is not connected", domainErr.ErrDatabaseConnection, m.config.Name)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return m.errorMapper.MapError(err, "ping "+m.config.Name)
	}
	return nil
}

// PoolMetrics returns the last sampled pool statistics
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// Close stops monitoring and closes the database
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	m.db = nil
	m.connection = nil
	m.entityManager = nil
	m.migrationMgr = nil
	return sqlDB.Close()
}
