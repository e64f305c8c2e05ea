package store

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Manuhps/SIC-Grupo8/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Event{}, &models.Registration{}))
	return db
}

func makeEvent(t *testing.T, db *gorm.DB, event *models.Event) *models.Event {
	t.Helper()

	if event.Name == "" {
		event.Name = "Test Event"
	}
	if event.Description == "" {
		event.Description = "A test event."
	}
	if event.StartTime.IsZero() {
		event.StartTime = time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	}
	if event.Location == "" {
		event.Location = "Lisbon"
	}
	if event.Capacity == 0 {
		event.Capacity = 100
	}
	if event.Type == "" {
		event.Type = models.TypeCultural
	}
	if event.Status == "" {
		event.Status = models.StatusScheduled
	}
	if event.OrganizerID == 0 {
		event.OrganizerID = 10
	}
	if event.Price.IsZero() {
		event.Price = decimal.NewFromInt(50)
	}

	require.NoError(t, db.Create(event).Error)
	return event
}
