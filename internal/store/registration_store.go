package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Manuhps/SIC-Grupo8/internal/helpers"
	"github.com/Manuhps/SIC-Grupo8/internal/models"
)

type RegistrationStore struct {
	db *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

func (s *RegistrationStore) ListForEvent(ctx context.Context, eventID uint, p helpers.Pagination) (*Page[models.Registration], error) {
	query := s.db.WithContext(ctx).Model(&models.Registration{}).Where("event_id = ?", eventID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	registrations := []models.Registration{}
	err := query.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&registrations).Error
	if err != nil {
		return nil, err
	}

	return newPage(registrations, total, p), nil
}

func (s *RegistrationStore) Get(ctx context.Context, eventID uint, userID int) (*models.Registration, error) {
	var registration models.Registration
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// Create inserts a registration. An existing row for the same (event,
// user) pair fails the pre-check; if two requests race past it, the
// composite primary key rejects the second insert and that error maps to
// ErrAlreadyRegistered as well.
func (s *RegistrationStore) Create(ctx context.Context, registration *models.Registration) error {
	_, err := s.Get(ctx, registration.EventID, registration.UserID)
	if err == nil {
		return ErrAlreadyRegistered
	}
	if !errors.Is(err, ErrRegistrationNotFound) {
		return err
	}

	err = s.db.WithContext(ctx).Create(registration).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyRegistered
	}
	return err
}

func (s *RegistrationStore) UpdateStatus(ctx context.Context, eventID uint, userID int, status models.RegistrationStatus) (*models.Registration, error) {
	registration, err := s.Get(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(registration).Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, eventID, userID)
}

func (s *RegistrationStore) Delete(ctx context.Context, eventID uint, userID int) error {
	result := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}
