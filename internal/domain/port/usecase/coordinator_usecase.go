package usecase

import (
	"context"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
)

// CoordinatorUseCase drives atomic flushes across several entity managers
type CoordinatorUseCase interface {
	// FlushAtomically begins a transaction on every named manager, flushes and
	// commits them in order, and rolls all of them back if any flush or commit fails.
	//
	// Returns:
	// - (outcome, nil) when every manager committed
	// - (outcome, *RollbackError) when a failure was followed by a clean rollback
	// - (outcome, *RollbackFailedError) when at least one rollback failed
	// - (nil, err) when validation, lookup or BeginTransaction failed
	FlushAtomically(ctx context.Context, names []string) (*entity.Outcome, error)

	// FlushAllAtomically runs FlushAtomically over every registered manager
	FlushAllAtomically(ctx context.Context) (*entity.Outcome, error)

	// ClearManagers clears the named managers in order and stops at the first failure.
	// Clears that already happened are not undone.
	ClearManagers(ctx context.Context, names []string) error

	// ClearAllManagers runs ClearManagers over every registered manager
	ClearAllManagers(ctx context.Context) error
}
