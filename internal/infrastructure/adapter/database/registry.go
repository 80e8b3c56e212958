package database

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/persistence"
)

// Registry is the ordered set of named database managers
type Registry struct {
	logger coreport.Logger

	mu       sync.RWMutex
	names    []string
	managers map[string]*Manager
}

var _ persistence.ManagerRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry
func NewRegistry(logger coreport.Logger) *Registry {
	return &Registry{
		logger:   logger,
		managers: make(map[string]*Manager),
	}
}

// NewRegistryFromConfigs registers one postgres manager per config
func NewRegistryFromConfigs(configs []*Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Registry, error) {
	r := NewRegistry(logger)
	for _, conf := range configs {
		if err := r.Register(NewManager(conf, logger, timeProvider)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds m under its name, keeping registration order
func (r *Registry) Register(m *Manager) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.managers[m.Name()]; exists {
		return fmt.Errorf("%w: %q", domainErr.ErrDuplicateManager, m.Name())
	}
	r.names = append(r.names, m.Name())
	r.managers[m.Name()] = m
	return nil
}

// ManagerNames lists every registered name in registration order
func (r *Registry) ManagerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Manager returns the entity manager registered under name
func (r *Registry) Manager(name string) (persistence.EntityManager, error) {
	r.mu.RLock()
	m, ok := r.managers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domainErr.ErrManagerNotFound, name)
	}

	em := m.EntityManager()
	if em == nil {
		return nil, fmt.Errorf("%w: manager %q is not connected", domainErr.ErrDatabaseConnection, name)
	}
	return em, nil
}

// ConnectAll connects every manager in order. On failure the managers already
// connected are closed again.
func (r *Registry) ConnectAll(ctx context.Context) error {
	managers := r.ordered()

	for i, m := range managers {
		if err := m.Connect(ctx); err != nil {
			for _, connected := range managers[:i] {
				if closeErr := connected.Close(); closeErr != nil {
					r.logger.Warn("Failed to close database after connect failure", map[string]any{
						"manager": connected.Name(),
						"error":   closeErr.Error(),
					})
				}
			}
			return err
		}
	}
	return nil
}

// MigrateAll migrates every manager's database, stopping at the first failure
func (r *Registry) MigrateAll(ctx context.Context) error {
	for _, m := range r.ordered() {
		if err := m.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %q: %w", m.Name(), err)
		}
	}
	return nil
}

// Ping checks every database and reports all failures
func (r *Registry) Ping(ctx context.Context) error {
	var errs error
	for _, m := range r.ordered() {
		errs = multierr.Append(errs, m.Ping(ctx))
	}
	return errs
}

// PoolMetrics returns the last sampled pool statistics per manager
func (r *Registry) PoolMetrics() map[string]ConnectionPoolMetrics {
	stats := make(map[string]ConnectionPoolMetrics)
	for _, m := range r.ordered() {
		stats[m.Name()] = m.PoolMetrics()
	}
	return stats
}

// CloseAll closes every manager and reports all failures
func (r *Registry) CloseAll() error {
	var errs error
	for _, m := range r.ordered() {
		if err := m.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close %q: %w", m.Name(), err))
		}
	}
	return errs
}

func (r *Registry) ordered() []*Manager {
	r.mu.RLock()
	defer r.mu.RUnlock()

	managers := make([]*Manager, 0, len(r.names))
	for _, name := range r.names {
		managers = append(managers, r.managers[name])
	}
	return managers
}
