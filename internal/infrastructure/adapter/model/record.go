package model

import (
	"time"
)

// Record represents the records table of one manager's database
type Record struct {
	ID        string    `gorm:"primaryKey;type:varchar(128)"`
	Payload   string    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for the record model
func (Record) TableName() string {
	return "records"
}

// EntityID returns the primary key used by the entity manager's identity map
func (r *Record) EntityID() string {
	return r.ID
}
