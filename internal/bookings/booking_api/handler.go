package booking_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-events/internal/bookings"
	"ms-events/internal/logger"
	"ms-events/internal/models"
	"ms-events/internal/utils"
)

type Handler struct {
	BookingService *bookings.BookingService
	Logger         *logger.Logger
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	h.Logger.Info("API", "CreateBooking: received request")

	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: failed to decode request body: %v", err))
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid request body", err.Error()))
		return
	}

	created, err := h.BookingService.SubmitBooking(models.Booking{
		EventID: req.EventID,
		Email:   req.Email,
	})
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: submit failed: %v", err))
		utils.WriteJSON(w, statusForError(err), utils.ErrorResponse("Could not create booking", err.Error()))
		return
	}

	h.Logger.LogBooking("CREATE", created.ID, fmt.Sprintf("booking created for event %s", created.EventID))
	utils.WriteJSON(w, http.StatusCreated, utils.SuccessResponse("Booking created", created))
}

func (h *Handler) ListBookingsByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	h.Logger.Info("API", fmt.Sprintf("ListBookingsByEvent: eventId=%s", eventID))

	bookingList, err := h.BookingService.ListBookingsByEvent(eventID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBookingsByEvent: %v", err))
		utils.WriteJSON(w, statusForError(err), utils.ErrorResponse("Could not list bookings", err.Error()))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Bookings", bookingList))
}

func statusForError(err error) int {
	switch {
	case bookings.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, bookings.ErrDanglingEvent):
		return http.StatusNotFound
	case errors.Is(err, models.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
