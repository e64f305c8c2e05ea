package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	TypeCultural EventType = "cultural"
	TypeAcademic EventType = "academic"
	TypeLeisure  EventType = "leisure"
)

func (t EventType) Valid() bool {
	switch t {
	case TypeCultural, TypeAcademic, TypeLeisure:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Event keeps only the organizer's id, not a user relation: identities
// live in a separate service.
type Event struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	StartTime   time.Time       `gorm:"not null;index" json:"start_time"`
	EndTime     *time.Time      `json:"end_time"`
	Location    string          `gorm:"not null" json:"location"`
	Capacity    int             `gorm:"not null" json:"capacity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Type        EventType       `gorm:"type:varchar(20);not null" json:"type"`
	Image       *string         `json:"image"`
	OrganizerID int             `gorm:"not null;index" json:"organizer_id"`
	Status      EventStatus     `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
