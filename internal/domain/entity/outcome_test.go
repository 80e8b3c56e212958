package entity

import (
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	managers := []string{"one", "two"}

	t.Run("Success outcome has no error", func(t *testing.T) {
		outcome := NewSuccessOutcome("flush-1", managers)

		assert.True(t, outcome.Succeeded())
		assert.Equal(t, OutcomeSuccess, outcome.Status)
		assert.NoError(t, outcome.Err())
		assert.NotContains(t, outcome.LogFields(), "cause")
	})

	t.Run("RolledBack outcome maps to RollbackError", func(t *testing.T) {
		cause := errors.New("flush failed")
		outcome := NewRolledBackOutcome("flush-2", managers, cause)

		assert.False(t, outcome.Succeeded())
		err := outcome.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrRolledBack)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, errs.ErrRollbackFailed)

		var rollbackErr *errs.RollbackError
		require.ErrorAs(t, err, &rollbackErr)
		assert.Equal(t, "flush-2", rollbackErr.FlushID)
		assert.Equal(t, managers, rollbackErr.Managers)
		assert.Equal(t, "flush failed", outcome.LogFields()["cause"])
	})

	t.Run("RollbackFailed outcome maps to RollbackFailedError", func(t *testing.T) {
		cause := errors.New("commit failed")
		rbErr := errors.New("rollback failed")
		outcome := NewRollbackFailedOutcome("flush-3", managers, cause, rbErr)

		err := outcome.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrRollbackFailed)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, rbErr)
		assert.NotErrorIs(t, err, errs.ErrRolledBack)

		fields := outcome.LogFields()
		assert.Equal(t, "rollback_failed", fields["status"])
		assert.Equal(t, "rollback failed", fields["rollback_error"])
	})
}
