package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationCompleted RegistrationStatus = "completed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// ValidUpdate reports whether the status may be set by an organizer.
// "pending" is assigned by the system on creation and cannot be restored.
func (s RegistrationStatus) ValidUpdate() bool {
	return s == RegistrationCompleted || s == RegistrationCancelled
}

// Registration is uniquely keyed by (event_id, user_id). Both columns are
// plain references without foreign keys; the composite primary key is what
// guarantees at most one registration per user per event, even under
// concurrent inserts.
type Registration struct {
	EventID    uint               `gorm:"primaryKey;autoIncrement:false" json:"event_id"`
	UserID     int                `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Status     RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AmountPaid decimal.Decimal    `gorm:"type:decimal(10,2);not null;default:0" json:"amount_paid"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (Registration) TableName() string {
	return "registrations"
}
