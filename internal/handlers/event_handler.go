package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Manuhps/SIC-Grupo8/internal/helpers"
	"github.com/Manuhps/SIC-Grupo8/internal/middleware"
	"github.com/Manuhps/SIC-Grupo8/internal/models"
	"github.com/Manuhps/SIC-Grupo8/internal/store"
)

type EventHandler struct {
	events *store.EventStore
}

func NewEventHandler(events *store.EventStore) *EventHandler {
	return &EventHandler{events: events}
}

type CreateEventRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description" binding:"required"`
	StartTime   time.Time        `json:"start_time" binding:"required"`
	EndTime     *time.Time       `json:"end_time"`
	Location    string           `json:"location" binding:"required"`
	Capacity    int              `json:"capacity" binding:"required,gte=1"`
	Price       *decimal.Decimal `json:"price"`
	Type        models.EventType `json:"type" binding:"required"`
	Image       *string          `json:"image"`
}

// UpdateEventRequest uses pointer fields so that absent fields can be told
// apart from zero values: only fields present in the body are applied.
type UpdateEventRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	StartTime   *time.Time          `json:"start_time"`
	EndTime     *time.Time          `json:"end_time"`
	Location    *string             `json:"location"`
	Capacity    *int                `json:"capacity"`
	Price       *decimal.Decimal    `json:"price"`
	Type        *models.EventType   `json:"type"`
	Image       *string             `json:"image"`
	Status      *models.EventStatus `json:"status"`
}

func (h *EventHandler) List(c *gin.Context) {
	pagination, err := helpers.ParsePagination(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	filter := store.EventFilter{
		Type:   models.EventType(c.Query("tipo")),
		Status: models.EventStatus(c.Query("status")),
	}

	page, err := h.events.List(c.Request.Context(), filter, pagination)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *EventHandler) Get(c *gin.Context) {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrEventNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !req.Type.Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event type. Allowed types are: cultural, academic, leisure.")
		return
	}

	price := decimal.Zero
	if req.Price != nil {
		if req.Price.IsNegative() {
			helpers.RespondWithError(c, http.StatusBadRequest, "Price must not be negative.")
			return
		}
		price = *req.Price
	}

	// The organizer is always the authenticated caller, never a body field.
	event := models.Event{
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Price:       price,
		Type:        req.Type,
		Image:       req.Image,
		OrganizerID: identity.UserID,
		Status:      models.StatusScheduled,
	}

	if err := h.events.Create(c.Request.Context(), &event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	fields, err := req.fields()
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrEventNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !identity.CanManageEvent(event) {
		helpers.RespondWithError(c, http.StatusForbidden, "Only the event's organizer or an admin can edit this event.")
		return
	}

	if err := h.events.Update(c.Request.Context(), event, fields); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	id, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrEventNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !identity.CanManageEvent(event) {
		helpers.RespondWithError(c, http.StatusForbidden, "Only the event's organizer or an admin can delete this event.")
		return
	}

	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

// fields maps the set request fields to their columns, validating enum and
// numeric values along the way.
func (r *UpdateEventRequest) fields() (map[string]any, error) {
	fields := map[string]any{}

	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.StartTime != nil {
		fields["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		fields["end_time"] = *r.EndTime
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Capacity != nil {
		if *r.Capacity < 1 {
			return nil, errors.New("capacity must be at least 1")
		}
		fields["capacity"] = *r.Capacity
	}
	if r.Price != nil {
		if r.Price.IsNegative() {
			return nil, errors.New("price must not be negative")
		}
		fields["price"] = *r.Price
	}
	if r.Type != nil {
		if !r.Type.Valid() {
			return nil, errors.New("invalid event type. Allowed types are: cultural, academic, leisure")
		}
		fields["type"] = *r.Type
	}
	if r.Image != nil {
		fields["image"] = *r.Image
	}
	if r.Status != nil {
		if !r.Status.Valid() {
			return nil, errors.New("invalid status. Allowed statuses are: scheduled, completed, cancelled")
		}
		fields["status"] = *r.Status
	}

	return fields, nil
}
