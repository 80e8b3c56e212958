package database

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErr "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/persistence"
)

type writeKind int

const (
	writeUpsert writeKind = iota
	writeDelete
)

func (k writeKind) String() string {
	if k == writeDelete {
		return "delete"
	}
	return "upsert"
}

type pendingWrite struct {
	kind   writeKind
	entity persistence.Entity
}

// EntityManager stages writes against one manager's database and applies them
// on Flush, through the connection's open transaction when there is one.
type EntityManager struct {
	name        string
	conn        *Connection
	logger      coreport.Logger
	errorMapper *ErrorMapper
	metrics     *MetricsCollector

	mu          sync.Mutex
	identityMap map[string]persistence.Entity
	removed     map[string]bool
	pending     []pendingWrite
	// applied counts the leading pending writes already written by the open transaction
	applied int
}

var _ persistence.EntityManager = (*EntityManager)(nil)

// NewEntityManager creates an EntityManager bound to conn
func NewEntityManager(name string, conn *Connection, logger coreport.Logger, timeProvider coreport.TimeProvider) *EntityManager {
	log := logger.With(map[string]any{"manager": name})
	m := &EntityManager{
		name:        name,
		conn:        conn,
		logger:      log,
		errorMapper: NewErrorMapper(),
		metrics:     NewMetricsCollector(name, log, timeProvider),
		identityMap: make(map[string]persistence.Entity),
		removed:     make(map[string]bool),
	}
	conn.OnTransactionEnd(m.transactionEnded)
	return m
}

// Name returns the logical name the manager is registered under
func (m *EntityManager) Name() string {
	return m.name
}

// Connection returns the manager's transactional handle
func (m *EntityManager) Connection() persistence.Connection {
	return m.conn
}

// Persist stages an insert-or-update of entity
func (m *EntityManager) Persist(entity persistence.Entity) error {
	key, err := identityKey(entity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.identityMap[key] = entity
	delete(m.removed, key)
	m.pending = append(m.pending, pendingWrite{kind: writeUpsert, entity: entity})
	return nil
}

// Remove stages a delete of entity
func (m *EntityManager) Remove(entity persistence.Entity) error {
	key, err := identityKey(entity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.identityMap, key)
	m.removed[key] = true
	m.pending = append(m.pending, pendingWrite{kind: writeDelete, entity: entity})
	return nil
}

// Find loads the entity with the given id into dest. A managed instance is
// returned as is; an entity staged for removal is reported as not found.
func (m *EntityManager) Find(ctx context.Context, dest persistence.Entity, id string) (persistence.Entity, error) {
	if dest == nil {
		return nil, domainErr.ErrUnsupportedEntity
	}
	key := dest.TableName() + ":" + id

	m.mu.Lock()
	if managed, ok := m.identityMap[key]; ok {
		m.mu.Unlock()
		return managed, nil
	}
	if m.removed[key] {
		m.mu.Unlock()
		return nil, domainErr.ErrRecordNotFound
	}
	m.mu.Unlock()

	if err := m.conn.DB(ctx).First(dest, "id = ?", id).Error; err != nil {
		return nil, m.errorMapper.MapError(err, "find "+dest.TableName())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// a concurrent Persist wins over the row just read
	if managed, ok := m.identityMap[key]; ok {
		return managed, nil
	}
	m.identityMap[key] = dest
	return dest, nil
}

// Flush applies the pending writes in staging order. Inside a transaction the
// applied writes stay pending until the transaction commits, and a rollback
// stages all of them again. Without a transaction every applied write is
// final, so on failure only the failed write and the ones after it stay pending.
func (m *EntityManager) Flush(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.applied == len(m.pending) {
		return nil
	}

	db, inTransaction := m.conn.session(ctx)
	for i := m.applied; i < len(m.pending); i++ {
		w := m.pending[i]
		if err := m.apply(ctx, db, w); err != nil {
			if inTransaction {
				m.applied = i
			} else {
				m.pending = m.pending[i:]
			}
			m.logger.Error("Failed to flush pending write", map[string]any{
				"operation": w.kind.String(),
				"table":     w.entity.TableName(),
				"id":        w.entity.EntityID(),
				"remaining": len(m.pending) - m.applied,
				"error":     err.Error(),
			})
			return err
		}
	}

	m.logger.Debug("Flushed pending writes", map[string]any{
		"count":       len(m.pending) - m.applied,
		"transaction": inTransaction,
	})
	if inTransaction {
		m.applied = len(m.pending)
	} else {
		m.pending = nil
	}
	return nil
}

// transactionEnded drops the writes a committed transaction made durable, or
// restages them after a rollback
func (m *EntityManager) transactionEnded(committed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.applied == 0 {
		return
	}
	if committed {
		m.pending = m.pending[m.applied:]
		if len(m.pending) == 0 {
			m.pending = nil
		}
	} else {
		m.logger.Debug("Transaction ended without commit, restaging writes", map[string]any{
			"count": m.applied,
		})
	}
	m.applied = 0
}

func (m *EntityManager) apply(ctx context.Context, db *gorm.DB, w pendingWrite) error {
	operation := w.kind.String() + " " + w.entity.TableName()

	_, err := m.metrics.MeasureQuery(ctx, operation, func() (int64, error) {
		var result *gorm.DB
		switch w.kind {
		case writeDelete:
			result = db.Delete(w.entity)
		default:
			result = db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(w.entity)
		}
		return result.RowsAffected, result.Error
	})
	if err != nil {
		return m.errorMapper.MapError(err, operation)
	}
	return nil
}

// Clear discards the identity map and every pending write
func (m *EntityManager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) > 0 {
		m.logger.Debug("Discarding pending writes", map[string]any{"count": len(m.pending)})
	}

	m.identityMap = make(map[string]persistence.Entity)
	m.removed = make(map[string]bool)
	m.pending = nil
	m.applied = 0
	return nil
}

// PendingCount returns the number of staged writes not yet committed
func (m *EntityManager) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func identityKey(entity persistence.Entity) (string, error) {
	if entity == nil || entity.EntityID() == "" {
		return "", fmt.Errorf("%w: missing entity id", domainErr.ErrUnsupportedEntity)
	}
	return entity.TableName() + ":" + entity.EntityID(), nil
}
