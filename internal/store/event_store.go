package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Manuhps/SIC-Grupo8/internal/helpers"
	"github.com/Manuhps/SIC-Grupo8/internal/models"
)

// EventFilter narrows event listings. Empty fields are ignored; set
// fields are AND-combined exact matches.
type EventFilter struct {
	Type   models.EventType
	Status models.EventStatus
}

type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) List(ctx context.Context, filter EventFilter, p helpers.Pagination) (*Page[models.Event], error) {
	query := s.db.WithContext(ctx).Model(&models.Event{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	events := []models.Event{}
	err := query.Order("start_time ASC").Offset(p.Offset()).Limit(p.Limit).Find(&events).Error
	if err != nil {
		return nil, err
	}

	return newPage(events, total, p), nil
}

func (s *EventStore) Get(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventStore) Create(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Create(event).Error
}

// Update applies only the given columns to the event, leaving everything
// else untouched, and reloads the row so generated values (updated_at)
// are fresh.
func (s *EventStore) Update(ctx context.Context, event *models.Event, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Model(event).Updates(fields).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).First(event, event.ID).Error
}

func (s *EventStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
