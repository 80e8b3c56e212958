package coordinator

import "github.com/google/uuid"

type options struct {
	rollbackOnBeginFailure bool
	flushIDGenerator       func() string
}

// Option configures a Coordinator
type Option func(*options)

// WithRollbackOnBeginFailure makes a failed BeginTransaction roll back every
// manager whose transaction was already begun in the same call. The failure is
// then reported as a RolledBack or RollbackFailed outcome instead of being
// returned as is.
func WithRollbackOnBeginFailure() Option {
	return func(o *options) {
		o.rollbackOnBeginFailure = true
	}
}

// WithFlushIDGenerator replaces the generator of flush IDs
func WithFlushIDGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.flushIDGenerator = gen
		}
	}
}

func defaultOptions() options {
	return options{
		flushIDGenerator: func() string {
			return uuid.NewString()
		},
	}
}
