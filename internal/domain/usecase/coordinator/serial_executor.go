package coordinator

import (
	"context"
	"sync"
	"sync/atomic"

	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/port/core"
)

// DefaultQueueSize is the queue capacity used when none is configured
const DefaultQueueSize = 100

// TaskFunc is a unit of work run by the SerialExecutor
type TaskFunc func(ctx context.Context) error

// SerialExecutor runs submitted tasks one at a time in submission order.
// Entity managers are not safe for interleaved use, so every operation that
// touches them goes through a single executor.
type SerialExecutor struct {
	logger coreport.Logger

	mu       sync.RWMutex
	queue    chan *taskRequest
	closed   bool
	workerWG sync.WaitGroup
}

// Task states. A request leaves taskQueued exactly once, to taskRunning when
// the worker picks it up or to taskAbandoned when its caller stops waiting.
const (
	taskQueued int32 = iota
	taskRunning
	taskAbandoned
)

// taskRequest represents a queued task
type taskRequest struct {
	ctx        context.Context
	name       string
	task       TaskFunc
	resultChan chan error
	state      atomic.Int32
}

// NewSerialExecutor creates a new executor and starts its worker
func NewSerialExecutor(logger coreport.Logger, queueSize int) *SerialExecutor {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	e := &SerialExecutor{
		logger: logger,
		queue:  make(chan *taskRequest, queueSize),
	}

	e.workerWG.Add(1)
	go e.run()

	return e
}

// Execute queues the task and waits for it to finish.
// If ctx is done before the task starts, the task is skipped and ctx.Err() is
// returned. A task that has started is always waited for and its result
// returned, so the caller never observes it half done.
func (e *SerialExecutor) Execute(ctx context.Context, name string, task TaskFunc) error {
	resultChan := make(chan error, 1)
	req := &taskRequest{
		ctx:        ctx,
		name:       name,
		task:       task,
		resultChan: resultChan,
	}

	if err := e.enqueue(ctx, req); err != nil {
		return err
	}

	select {
	case err := <-resultChan:
		return err
	case <-ctx.Done():
	}

	if req.state.CompareAndSwap(taskQueued, taskAbandoned) {
		e.logger.Warn("Context canceled before task started", map[string]any{
			"task":  name,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}

	e.logger.Debug("Context canceled while task is running, waiting for its result", map[string]any{
		"task": name,
	})
	return <-resultChan
}

func (e *SerialExecutor) enqueue(ctx context.Context, req *taskRequest) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return errs.ErrExecutorClosed
	}

	select {
	case e.queue <- req:
		e.logger.Debug("Task enqueued", map[string]any{
			"task": req.name,
		})
		return nil
	case <-ctx.Done():
		e.logger.Warn("Context canceled while enqueueing task", map[string]any{
			"task":  req.name,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// run is the worker goroutine
func (e *SerialExecutor) run() {
	defer e.workerWG.Done()

	e.logger.Info("Serial executor worker started", nil)

	for req := range e.queue {
		if err := req.ctx.Err(); err != nil {
			req.state.CompareAndSwap(taskQueued, taskAbandoned)
		}
		if !req.state.CompareAndSwap(taskQueued, taskRunning) {
			e.logger.Debug("Skipping canceled task", map[string]any{
				"task": req.name,
			})
			req.resultChan <- req.ctx.Err()
			close(req.resultChan)
			continue
		}

		e.logger.Debug("Running task", map[string]any{
			"task": req.name,
		})
		req.resultChan <- req.task(req.ctx)
		close(req.resultChan)
	}

	e.logger.Info("Serial executor worker stopped", nil)
}

// Shutdown stops accepting tasks, runs what is already queued and waits for the worker
func (e *SerialExecutor) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()

	e.logger.Info("Shutting down serial executor", nil)
	e.workerWG.Wait()
	e.logger.Info("Serial executor shut down successfully", nil)
}
