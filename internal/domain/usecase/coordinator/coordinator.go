package coordinator

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/persistence"
)

// Coordinator flushes and commits several entity managers as one unit of work.
//
// Every call is synchronous and visits managers in the order given by the
// caller. The coordinator holds no state between calls and never retries.
// Callers must not run two calls against the same managers concurrently;
// SerialExecutor provides that discipline.
type Coordinator struct {
	registry     persistence.ManagerRegistry
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	opts         options
}

// participant is a manager borrowed from the registry for one call
type participant struct {
	name    string
	manager persistence.EntityManager
}

// NewCoordinator creates a new Coordinator
func NewCoordinator(
	registry persistence.ManagerRegistry,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	opts ...Option,
) *Coordinator {
	if registry == nil {
		panic("Manager registry cannot be nil")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Coordinator{
		registry:     registry,
		logger:       logger,
		timeProvider: timeProvider,
		opts:         o,
	}
}

// FlushAtomically begins, flushes and commits the named managers, rolling every
// one of them back when a flush or commit fails
func (c *Coordinator) FlushAtomically(ctx context.Context, names []string) (*entity.Outcome, error) {
	flushID := c.opts.flushIDGenerator()
	startedAt := c.timeProvider.Now()

	ctx, span := tracer.Start(ctx, "Coordinator.FlushAtomically", trace.WithAttributes(
		attribute.String("flush.id", flushID),
		attribute.StringSlice("flush.managers", names),
	))
	defer span.End()

	log := c.logger.With(map[string]any{"flush_id": flushID})

	if len(names) == 0 {
		log.Debug("No managers to flush", nil)
		return c.finish(ctx, span, log, entity.NewSuccessOutcome(flushID, nil), startedAt)
	}

	participants, err := c.resolve(names)
	if err != nil {
		recordErrorAndStatus(span, err)
		log.Warn("Atomic flush rejected", map[string]any{
			"managers": names,
			"error":    err.Error(),
		})
		return nil, err
	}

	log.Debug("Starting atomic flush", map[string]any{
		"managers": names,
	})

	begun, err := c.begin(ctx, log, participants)
	if err != nil {
		if !c.opts.rollbackOnBeginFailure {
			recordErrorAndStatus(span, err)
			RecordFlushOutcome(ctx, "begin_failed", len(names), c.timeProvider.Since(startedAt))
			log.Error("Failed to begin transaction, no rollback attempted", map[string]any{
				"managers": names,
				"begun":    namesOf(begun),
				"error":    err.Error(),
			})
			return nil, err
		}

		cause := errs.NewManagerError(participants[len(begun)].name, errs.PhaseBegin, err)
		return c.finish(ctx, span, log, c.rollback(ctx, log, flushID, names, begun, cause), startedAt)
	}

	if cause := c.flushAndCommit(ctx, log, participants); cause != nil {
		return c.finish(ctx, span, log, c.rollback(ctx, log, flushID, names, participants, cause), startedAt)
	}

	return c.finish(ctx, span, log, entity.NewSuccessOutcome(flushID, names), startedAt)
}

// FlushAllAtomically flushes every registered manager as one unit of work
func (c *Coordinator) FlushAllAtomically(ctx context.Context) (*entity.Outcome, error) {
	return c.FlushAtomically(ctx, c.registry.ManagerNames())
}

// ClearManagers clears the identity map and pending writes of the named managers.
// The first failure is returned as is; managers cleared before it stay cleared.
func (c *Coordinator) ClearManagers(ctx context.Context, names []string) error {
	ctx, span := tracer.Start(ctx, "Coordinator.ClearManagers", trace.WithAttributes(
		attribute.StringSlice("clear.managers", names),
	))
	defer span.End()

	for _, name := range names {
		manager, err := c.registry.Manager(name)
		if err != nil {
			return c.clearFailed(ctx, span, name, err)
		}
		if err := manager.Clear(); err != nil {
			return c.clearFailed(ctx, span, name, err)
		}
		c.logger.Debug("Cleared entity manager", map[string]any{
			"manager": name,
		})
	}

	recordErrorAndStatus(span, nil)
	RecordClear(ctx, "success")
	return nil
}

// ClearAllManagers clears every registered manager
func (c *Coordinator) ClearAllManagers(ctx context.Context) error {
	return c.ClearManagers(ctx, c.registry.ManagerNames())
}

func (c *Coordinator) clearFailed(ctx context.Context, span trace.Span, name string, err error) error {
	recordErrorAndStatus(span, err)
	RecordClear(ctx, "failure")
	c.logger.Error("Failed to clear entity manager", map[string]any{
		"manager": name,
		"error":   err.Error(),
	})
	return err
}

// resolve checks the names and borrows every manager before any transaction begins
func (c *Coordinator) resolve(names []string) ([]participant, error) {
	if err := entity.ValidateManagerNames(names); err != nil {
		return nil, err
	}

	participants := make([]participant, 0, len(names))
	for _, name := range names {
		manager, err := c.registry.Manager(name)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant{name: name, manager: manager})
	}
	return participants, nil
}

// begin opens a transaction on each participant in order and returns those that began
func (c *Coordinator) begin(ctx context.Context, log coreport.Logger, participants []participant) ([]participant, error) {
	for i, p := range participants {
		if err := p.manager.Connection().BeginTransaction(ctx); err != nil {
			return participants[:i], err
		}
		log.Debug("Transaction begun", map[string]any{"manager": p.name})
	}
	return participants, nil
}

// flushAndCommit returns the first flush or commit failure, nil when all committed
func (c *Coordinator) flushAndCommit(ctx context.Context, log coreport.Logger, participants []participant) error {
	for _, p := range participants {
		if err := p.manager.Flush(ctx); err != nil {
			log.Warn("Flush failed", map[string]any{
				"manager": p.name,
				"error":   err.Error(),
			})
			return errs.NewManagerError(p.name, errs.PhaseFlush, err)
		}
	}

	for _, p := range participants {
		if err := p.manager.Connection().Commit(ctx); err != nil {
			log.Warn("Commit failed", map[string]any{
				"manager": p.name,
				"error":   err.Error(),
			})
			return errs.NewManagerError(p.name, errs.PhaseCommit, err)
		}
		log.Debug("Transaction committed", map[string]any{"manager": p.name})
	}
	return nil
}

// rollback gives every participant exactly one rollback attempt, in order.
// It runs detached from cancellation so an aborted request still rolls back.
func (c *Coordinator) rollback(
	ctx context.Context,
	log coreport.Logger,
	flushID string,
	names []string,
	participants []participant,
	cause error,
) *entity.Outcome {
	ctx = context.WithoutCancel(ctx)

	var rollbackErr error
	for _, p := range participants {
		if err := p.manager.Connection().Rollback(ctx); err != nil {
			log.Error("Rollback failed", map[string]any{
				"manager": p.name,
				"error":   err.Error(),
			})
			rollbackErr = multierr.Append(rollbackErr, errs.NewManagerError(p.name, errs.PhaseRollback, err))
			continue
		}
		log.Debug("Transaction rolled back", map[string]any{"manager": p.name})
	}

	if rollbackErr != nil {
		return entity.NewRollbackFailedOutcome(flushID, names, cause, rollbackErr)
	}
	return entity.NewRolledBackOutcome(flushID, names, cause)
}

// finish stamps timing on the outcome, records it and returns it with its typed error
func (c *Coordinator) finish(
	ctx context.Context,
	span trace.Span,
	log coreport.Logger,
	outcome *entity.Outcome,
	startedAt time.Time,
) (*entity.Outcome, error) {
	outcome.StartedAt = startedAt
	outcome.Duration = c.timeProvider.Since(startedAt)

	err := outcome.Err()
	recordErrorAndStatus(span, err)
	span.SetAttributes(attribute.String("flush.status", string(outcome.Status)))
	RecordFlushOutcome(ctx, string(outcome.Status), len(outcome.Managers), outcome.Duration)

	switch outcome.Status {
	case entity.OutcomeSuccess:
		log.Info("Atomic flush committed", outcome.LogFields())
	case entity.OutcomeRolledBack:
		log.Warn("Atomic flush rolled back", outcome.LogFields())
	default:
		log.Error("Atomic flush rollback failed, managers may hold partial state", outcome.LogFields())
	}

	return outcome, err
}

func namesOf(participants []participant) []string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.name)
	}
	return names
}
