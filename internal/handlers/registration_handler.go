package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Manuhps/SIC-Grupo8/internal/helpers"
	"github.com/Manuhps/SIC-Grupo8/internal/middleware"
	"github.com/Manuhps/SIC-Grupo8/internal/models"
	"github.com/Manuhps/SIC-Grupo8/internal/store"
)

type RegistrationHandler struct {
	events        *store.EventStore
	registrations *store.RegistrationStore
}

func NewRegistrationHandler(events *store.EventStore, registrations *store.RegistrationStore) *RegistrationHandler {
	return &RegistrationHandler{events: events, registrations: registrations}
}

type UpdateRegistrationRequest struct {
	Status models.RegistrationStatus `json:"status" binding:"required"`
}

// Register creates the caller's registration for a scheduled event,
// snapshotting the event's current price.
func (h *RegistrationHandler) Register(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	event, err := h.events.Get(c.Request.Context(), eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if event.Status != models.StatusScheduled {
		helpers.RespondWithError(c, http.StatusBadRequest, "This event is not accepting registrations.")
		return
	}

	registration := models.Registration{
		EventID:    event.ID,
		UserID:     identity.UserID,
		Status:     models.RegistrationPending,
		AmountPaid: event.Price,
	}

	err = h.registrations.Create(c.Request.Context(), &registration)
	if errors.Is(err, store.ErrAlreadyRegistered) {
		helpers.RespondWithError(c, http.StatusBadRequest, "You are already registered for this event.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create registration.")
		return
	}

	c.JSON(http.StatusCreated, registration)
}

// ListForEvent returns the registrations of an event, newest first.
// Restricted to the event's organizer or an admin.
func (h *RegistrationHandler) ListForEvent(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	pagination, err := helpers.ParsePagination(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.events.Get(c.Request.Context(), eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !identity.CanManageEvent(event) {
		helpers.RespondWithError(c, http.StatusForbidden, "Only the event's organizer or an admin can view registrations.")
		return
	}

	page, err := h.registrations.ListForEvent(c.Request.Context(), eventID, pagination)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving registrations.")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	eventID, userID, ok := h.registrationKey(c)
	if !ok {
		return
	}

	var req UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !req.Status.ValidUpdate() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid status. Allowed statuses are: completed, cancelled.")
		return
	}

	event, err := h.events.Get(c.Request.Context(), eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !identity.CanManageEvent(event) {
		helpers.RespondWithError(c, http.StatusForbidden, "Only the event's organizer or an admin can update registrations.")
		return
	}

	registration, err := h.registrations.UpdateStatus(c.Request.Context(), eventID, userID, req.Status)
	if errors.Is(err, store.ErrRegistrationNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Registration not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update registration.")
		return
	}

	c.JSON(http.StatusOK, registration)
}

func (h *RegistrationHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
		return
	}

	eventID, userID, ok := h.registrationKey(c)
	if !ok {
		return
	}

	event, err := h.events.Get(c.Request.Context(), eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	if !identity.CanManageEvent(event) {
		helpers.RespondWithError(c, http.StatusForbidden, "Only the event's organizer or an admin can delete registrations.")
		return
	}

	err = h.registrations.Delete(c.Request.Context(), eventID, userID)
	if errors.Is(err, store.ErrRegistrationNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Registration not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete registration.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration deleted successfully."})
}

func (h *RegistrationHandler) registrationKey(c *gin.Context) (uint, int, bool) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return 0, 0, false
	}

	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid user id.")
		return 0, 0, false
	}

	return eventID, userID, true
}
