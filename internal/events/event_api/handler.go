package event_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-events/internal/events"
	"ms-events/internal/logger"
	"ms-events/internal/models"
	"ms-events/internal/utils"
)

type Handler struct {
	EventService *events.EventService
	Logger       *logger.Logger
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	h.Logger.Info("API", "CreateEvent: received request")

	var candidate models.Event
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateEvent: failed to decode request body: %v", err))
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid request body", err.Error()))
		return
	}

	created, err := h.EventService.SubmitEvent(candidate)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateEvent: submit failed: %v", err))
		utils.WriteJSON(w, statusForError(err), utils.ErrorResponse("Could not create event", err.Error()))
		return
	}

	h.Logger.LogEvent("CREATE", created.Slug, "event created")
	utils.WriteJSON(w, http.StatusCreated, utils.SuccessResponse("Event created", created))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	h.Logger.Info("API", fmt.Sprintf("UpdateEvent: eventId=%s", eventID))

	var update models.Event
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateEvent: failed to decode request body: %v", err))
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid request body", err.Error()))
		return
	}

	updated, err := h.EventService.UpdateEvent(eventID, update)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateEvent: update failed: %v", err))
		utils.WriteJSON(w, statusForError(err), utils.ErrorResponse("Could not update event", err.Error()))
		return
	}

	h.Logger.LogEvent("UPDATE", updated.Slug, "event updated")
	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Event updated", updated))
}

func (h *Handler) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	h.Logger.Info("API", fmt.Sprintf("GetEventBySlug: slug=%s", slug))

	event, err := h.EventService.GetEventBySlug(slug)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetEventBySlug: %v", err))
		utils.WriteJSON(w, statusForError(err), utils.ErrorResponse("Event not found", err.Error()))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Event found", event))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	eventList, err := h.EventService.ListEvents()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
		utils.WriteJSON(w, statusForError(err), utils.ErrorResponse("Could not list events", err.Error()))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Events", eventList))
}

func statusForError(err error) int {
	switch {
	case events.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSlugConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
