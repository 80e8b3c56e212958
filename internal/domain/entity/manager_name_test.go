package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateManagerName(t *testing.T) {
	valid := []string{"one", "billing", "audit_log", "shard-7"}
	for _, name := range valid {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, ValidateManagerName(name))
		})
	}

	invalid := []string{"", "7shard", "Billing", "audit log", "name/with/slash"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateManagerName(name), errs.ErrInvalidManagerName)
		})
	}
}

func TestValidateManagerNames(t *testing.T) {
	assert.NoError(t, ValidateManagerNames(nil))
	assert.NoError(t, ValidateManagerNames([]string{"one", "two"}))
	assert.ErrorIs(t, ValidateManagerNames([]string{"one", "two", "one"}), errs.ErrDuplicateManager)
	assert.ErrorIs(t, ValidateManagerNames([]string{"one", "Two"}), errs.ErrInvalidManagerName)
}

func TestDuplicateManagerName(t *testing.T) {
	name, dup := DuplicateManagerName([]string{"a", "b", "c", "b", "a"})
	assert.True(t, dup)
	assert.Equal(t, "b", name)

	_, dup = DuplicateManagerName([]string{"a", "b"})
	assert.False(t, dup)
}
