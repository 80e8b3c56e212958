package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("Valid record creation", func(t *testing.T) {
		record, err := NewRecord("orders", "order-1", []byte(`{"total":42}`), fixedTime)

		require.NoError(t, err)
		assert.Equal(t, "orders", record.Manager)
		assert.Equal(t, "order-1", record.ID)
		assert.JSONEq(t, `{"total":42}`, string(record.Payload))
		assert.Equal(t, fixedTime, record.CreatedAt)
		assert.Equal(t, fixedTime, record.UpdatedAt)
	})

	t.Run("Invalid manager name", func(t *testing.T) {
		record, err := NewRecord("Orders!", "order-1", []byte(`{}`), fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidManagerName)
		assert.Nil(t, record)
	})

	t.Run("Invalid record id", func(t *testing.T) {
		for _, id := range []string{"", strings.Repeat("x", MaxRecordIDLength+1)} {
			record, err := NewRecord("orders", id, []byte(`{}`), fixedTime)

			assert.ErrorIs(t, err, errs.ErrInvalidRecordID)
			assert.Nil(t, record)
		}
	})

	t.Run("Invalid payload", func(t *testing.T) {
		record, err := NewRecord("orders", "order-1", []byte(`{"total":`), fixedTime)

		assert.ErrorIs(t, err, errs.ErrInvalidPayload)
		assert.Nil(t, record)
	})
}
