package persistence

import "context"

// Connection is the transactional handle of a single data store.
// It is owned by its EntityManager and holds at most one open transaction.
type Connection interface {
	// BeginTransaction opens a transaction on the underlying store
	BeginTransaction(ctx context.Context) error

	// Commit commits the open transaction
	Commit(ctx context.Context) error

	// Rollback rolls back the open transaction.
	// Rolling back a transaction that was already committed cannot undo the commit.
	Rollback(ctx context.Context) error
}
