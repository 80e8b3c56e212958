package entity

import (
	"encoding/json"
	"time"

	errs "github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/error"
)

// MaxRecordIDLength is the longest record id accepted
const MaxRecordIDLength = 128

// Record is a keyed JSON document stored by one entity manager
type Record struct {
	Manager   string
	ID        string
	Payload   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecord creates a validated record
func NewRecord(manager, id string, payload []byte, now time.Time) (*Record, error) {
	if err := ValidateManagerName(manager); err != nil {
		return nil, err
	}
	if err := ValidateRecordID(id); err != nil {
		return nil, err
	}
	if !json.Valid(payload) {
		return nil, errs.ErrInvalidPayload
	}

	return &Record{
		Manager:   manager,
		ID:        id,
		Payload:   json.RawMessage(payload),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateRecordID checks the id length bounds
func ValidateRecordID(id string) error {
	if id == "" || len(id) > MaxRecordIDLength {
		return errs.ErrInvalidRecordID
	}
	return nil
}
