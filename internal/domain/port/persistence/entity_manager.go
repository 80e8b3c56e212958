package persistence

import "context"

// Entity is an object an EntityManager can track in its identity map.
// TableName is also honored by gorm when the entity is written.
type Entity interface {
	TableName() string
	EntityID() string
}

// PersistenceUnit batches pending writes against one data store
type PersistenceUnit interface {
	// Flush applies all pending writes, inside the open transaction if there is one.
	// Writes applied inside a transaction stay pending until it commits, so a
	// rollback leaves the whole unit of work staged for the next flush.
	Flush(ctx context.Context) error

	// Clear discards the identity map and any pending writes
	Clear() error

	// Connection returns the transactional handle of the unit's data store
	Connection() Connection
}

// EntityManager is a PersistenceUnit that also stages and reads entities
type EntityManager interface {
	PersistenceUnit

	// Name returns the logical name the manager is registered under
	Name() string

	// Persist stages an insert-or-update of the entity
	Persist(entity Entity) error

	// Remove stages a delete of the entity
	Remove(entity Entity) error

	// Find loads the entity with the given id into dest, serving it from the
	// identity map when it is already managed. The returned entity is the managed instance.
	Find(ctx context.Context, dest Entity, id string) (Entity, error)

	// PendingCount returns the number of staged writes not yet committed
	PendingCount() int
}
