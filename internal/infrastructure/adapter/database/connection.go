package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/persistence"
)

// txState tracks the lifecycle of the connection's transaction
type txState int

const (
	txIdle txState = iota
	txActive
	txCommitted
	txAborted
	txRolledBack
)

func (s txState) String() string {
	switch s {
	case txActive:
		return "active"
	case txCommitted:
		return "committed"
	case txAborted:
		return "aborted"
	case txRolledBack:
		return "rolled_back"
	default:
		return "idle"
	}
}

// Connection is the transactional handle of one manager's database.
// It holds at most one open gorm transaction at a time.
type Connection struct {
	name        string
	db          *gorm.DB
	isolation   string
	logger      coreport.Logger
	errorMapper *ErrorMapper

	mu        sync.Mutex
	tx        *gorm.DB
	state     txState
	listeners []func(committed bool)
}

var _ persistence.Connection = (*Connection)(nil)

// NewConnection creates a Connection over db. isolation is the SQL isolation
// level applied to every transaction, empty for the server default.
func NewConnection(name string, db *gorm.DB, isolation string, logger coreport.Logger) *Connection {
	return &Connection{
		name:        name,
		db:          db,
		isolation:   isolation,
		logger:      logger.With(map[string]any{"manager": name}),
		errorMapper: NewErrorMapper(),
	}
}

// OnTransactionEnd registers fn to run after every transaction ends.
// committed is false when the transaction was rolled back or its commit failed.
func (c *Connection) OnTransactionEnd(fn func(committed bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// notify runs the listeners; callers must not hold c.mu
func (c *Connection) notify(listeners []func(committed bool), committed bool) {
	for _, fn := range listeners {
		fn(committed)
	}
}

// BeginTransaction opens a transaction on the manager's database
func (c *Connection) BeginTransaction(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == txActive {
		return domainErr.ErrTransactionActive
	}

	c.logger.Debug("Beginning database transaction", map[string]any{"isolation": c.isolation})

	tx := c.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		c.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return c.errorMapper.MapError(tx.Error, "begin transaction")
	}

	if c.isolation != "" {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL " + c.isolation).Error; err != nil {
			tx.Rollback()
			c.logger.Error("Failed to set transaction isolation level", map[string]any{
				"error":     err.Error(),
				"isolation": c.isolation,
			})
			return c.errorMapper.MapError(err, "set transaction isolation level")
		}
	}

	c.tx = tx
	c.state = txActive
	return nil
}

// Commit commits the open transaction. A failed commit leaves the transaction
// aborted; the following Rollback only releases it.
func (c *Connection) Commit(ctx context.Context) error {
	c.mu.Lock()

	if c.state != txActive {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("commit on %s connection: %w", state, domainErr.ErrNoActiveTransaction)
	}

	c.logger.Debug("Committing database transaction", nil)

	err := c.tx.Commit().Error
	c.tx = nil
	c.state = txCommitted
	if err != nil {
		c.state = txAborted
	}
	listeners := c.listeners
	c.mu.Unlock()

	c.notify(listeners, err == nil)

	if err != nil {
		c.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return c.errorMapper.MapError(err, "commit transaction")
	}
	return nil
}

// Rollback rolls back the open transaction.
// A rollback after a successful commit cannot undo it and is logged as a no-op.
func (c *Connection) Rollback(ctx context.Context) error {
	c.mu.Lock()

	switch c.state {
	case txCommitted:
		c.mu.Unlock()
		c.logger.Warn("Rollback requested after commit, committed changes are kept", nil)
		return nil
	case txAborted:
		c.state = txRolledBack
		c.mu.Unlock()
		c.logger.Debug("Releasing aborted transaction", nil)
		return nil
	case txActive:
	default:
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("rollback on %s connection: %w", state, domainErr.ErrNoActiveTransaction)
	}

	c.logger.Debug("Rolling back database transaction", nil)

	err := c.tx.Rollback().Error
	c.tx = nil
	c.state = txRolledBack
	listeners := c.listeners
	c.mu.Unlock()

	c.notify(listeners, false)

	if err != nil && isTxDone(err) {
		c.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		c.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return c.errorMapper.MapError(err, "rollback transaction")
	}

	return nil
}

// InTransaction reports whether a transaction is open
func (c *Connection) InTransaction() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == txActive
}

// DB returns the open transaction, or the database itself when none is open
func (c *Connection) DB(ctx context.Context) *gorm.DB {
	db, _ := c.session(ctx)
	return db
}

// session returns DB(ctx) and whether it is the open transaction
func (c *Connection) session(ctx context.Context) (*gorm.DB, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == txActive && c.tx != nil {
		return c.tx.WithContext(ctx), true
	}
	return c.db.WithContext(ctx), false
}

func isTxDone(err error) bool {
	return errors.Is(err, sql.ErrTxDone) ||
		strings.Contains(err.Error(), "already been committed or rolled back")
}
