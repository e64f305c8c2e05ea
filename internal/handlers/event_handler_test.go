package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manuhps/SIC-Grupo8/internal/auth"
	"github.com/Manuhps/SIC-Grupo8/internal/models"
)

func TestCreateEvent(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]any{
		"name":        "Jazz Night",
		"description": "An evening of jazz.",
		"start_time":  "2026-10-01T20:00:00Z",
		"location":    "Lisbon",
		"capacity":    120,
		"price":       50,
		"type":        "cultural",
	}

	w := doRequest(t, r, http.MethodPost, "/events", token(t, 10, auth.RoleOrganizer), body)
	require.Equal(t, http.StatusCreated, w.Code)

	event := decode[models.Event](t, w)
	assert.NotZero(t, event.ID)
	assert.Equal(t, "Jazz Night", event.Name)
	assert.Equal(t, 10, event.OrganizerID)
	assert.Equal(t, models.StatusScheduled, event.Status)
	assert.True(t, event.Price.Equal(decimal.NewFromInt(50)))
	assert.False(t, event.CreatedAt.IsZero())
}

func TestCreateEventIgnoresBodyOrganizer(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]any{
		"name":         "Jazz Night",
		"description":  "An evening of jazz.",
		"start_time":   "2026-10-01T20:00:00Z",
		"location":     "Lisbon",
		"capacity":     120,
		"type":         "cultural",
		"organizer_id": 999,
		"status":       "completed",
	}

	w := doRequest(t, r, http.MethodPost, "/events", token(t, 10, auth.RoleOrganizer), body)
	require.Equal(t, http.StatusCreated, w.Code)

	event := decode[models.Event](t, w)
	assert.Equal(t, 10, event.OrganizerID, "organizer must come from the token")
	assert.Equal(t, models.StatusScheduled, event.Status, "status must start scheduled")
}

func TestCreateEventAuthz(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]any{
		"name":        "x",
		"description": "x",
		"start_time":  "2026-10-01T20:00:00Z",
		"location":    "x",
		"capacity":    1,
		"type":        "cultural",
	}

	w := doRequest(t, r, http.MethodPost, "/events", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/events", "Bearer garbage", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/events", token(t, 20, auth.RoleUser), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodPost, "/events", token(t, 99, auth.RoleAdmin), body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateEventValidation(t *testing.T) {
	r, _ := setupRouter(t)
	organizer := token(t, 10, auth.RoleOrganizer)

	bodies := []map[string]any{
		{"description": "no name", "start_time": "2026-10-01T20:00:00Z", "location": "x", "capacity": 1, "type": "cultural"},
		{"name": "x", "description": "x", "start_time": "2026-10-01T20:00:00Z", "location": "x", "capacity": 0, "type": "cultural"},
		{"name": "x", "description": "x", "start_time": "2026-10-01T20:00:00Z", "location": "x", "capacity": 1, "type": "sports"},
		{"name": "x", "description": "x", "start_time": "2026-10-01T20:00:00Z", "location": "x", "capacity": 1, "type": "cultural", "price": -5},
	}

	for i, body := range bodies {
		w := doRequest(t, r, http.MethodPost, "/events", organizer, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %d", i)
	}
}

func TestGetEvent(t *testing.T) {
	r, db := setupRouter(t)
	event := seedEvent(t, db, 10, models.StatusScheduled, decimal.NewFromInt(50))

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/events/%d", event.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Event](t, w)
	assert.Equal(t, event.ID, got.ID)

	w = doRequest(t, r, http.MethodGet, "/events/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEventsPagination(t *testing.T) {
	r, db := setupRouter(t)
	for i := 0; i < 3; i++ {
		seedEvent(t, db, 10, models.StatusScheduled, decimal.NewFromInt(50))
	}

	w := doRequest(t, r, http.MethodGet, "/events?limit=1&page=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	page := decode[eventPage](t, w)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Data, 1)

	w = doRequest(t, r, http.MethodGet, "/events?limit=0", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEventsFilters(t *testing.T) {
	r, db := setupRouter(t)
	seedEvent(t, db, 10, models.StatusScheduled, decimal.NewFromInt(50))
	cancelled := seedEvent(t, db, 10, models.StatusCancelled, decimal.NewFromInt(50))
	require.NoError(t, db.Model(cancelled).Update("type", models.TypeLeisure).Error)

	w := doRequest(t, r, http.MethodGet, "/events?tipo=leisure", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[eventPage](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, models.TypeLeisure, page.Data[0].Type)

	w = doRequest(t, r, http.MethodGet, "/events?status=cancelled", "", nil)
	page = decode[eventPage](t, w)
	require.Len(t, page.Data, 1)
	assert.Equal(t, models.StatusCancelled, page.Data[0].Status)
}

func TestUpdateEventPartial(t *testing.T) {
	r, db := setupRouter(t)
	event := seedEvent(t, db, 10, models.StatusScheduled, decimal.NewFromInt(75))

	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/events/%d", event.ID),
		token(t, 10, auth.RoleOrganizer), map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[models.Event](t, w)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, event.Capacity, got.Capacity, "capacity must be untouched")
	assert.True(t, got.Price.Equal(decimal.NewFromInt(75)), "price must be untouched")
	assert.Equal(t, event.Location, got.Location)
}

func TestUpdateEventOwnership(t *testing.T) {
	r, db := setupRouter(t)
	event := seedEvent(t, db, 10, models.StatusScheduled, decimal.NewFromInt(50))
	path := fmt.Sprintf("/events/%d", event.ID)
	body := map[string]any{"name": "Hijacked"}

	// Another organizer is not the owner.
	w := doRequest(t, r, http.MethodPatch, path, token(t, 11, auth.RoleOrganizer), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admins may edit anything.
	w = doRequest(t, r, http.MethodPatch, path, token(t, 99, auth.RoleAdmin), body)
	assert.Equal(t, http.StatusOK, w.Code)

	// The owner may edit.
	w = doRequest(t, r, http.MethodPatch, path, token(t, 10, auth.RoleOrganizer), map[string]any{"name": "Mine"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPatch, "/events/9999", token(t, 10, auth.RoleOrganizer), body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEventValidatesValues(t *testing.T) {
	r, db := setupRouter(t)
	event := seedEvent(t, db, 10, models.StatusScheduled, decimal.NewFromInt(50))
	path := fmt.Sprintf("/events/%d", event.ID)
	organizer := token(t, 10, auth.RoleOrganizer)

	w := doRequest(t, r, http.MethodPatch, path, organizer, map[string]any{"type": "sports"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPatch, path, organizer, map[string]any{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPatch, path, organizer, map[string]any{"capacity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPatch, path, organizer, map[string]any{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Event](t, w)
	assert.Equal(t, models.StatusCancelled, got.Status)
}

func TestDeleteEvent(t *testing.T) {
	r, db := setupRouter(t)
	event := seedEvent(t, db, 10, models.StatusScheduled, decimal.NewFromInt(50))
	path := fmt.Sprintf("/events/%d", event.ID)

	w := doRequest(t, r, http.MethodDelete, path, token(t, 11, auth.RoleOrganizer), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodDelete, path, token(t, 10, auth.RoleOrganizer), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, path, token(t, 10, auth.RoleOrganizer), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
