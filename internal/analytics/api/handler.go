package analytics_api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-events/internal/analytics"
	"ms-events/internal/logger"
	"ms-events/internal/utils"
)

// Handler handles analytics HTTP endpoints
type Handler struct {
	Service *analytics.Service
	Logger  *logger.Logger
}

func NewHandler(service *analytics.Service, logger *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: logger}
}

// RegisterRoutes registers the analytics routes on a chi router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/events/{eventId}/analytics", h.GetEventBookingAnalytics)
}

func (h *Handler) GetEventBookingAnalytics(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	h.Logger.Info("API", fmt.Sprintf("GetEventBookingAnalytics: eventId=%s", eventID))

	result, err := h.Service.GetEventBookingAnalytics(r.Context(), eventID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetEventBookingAnalytics: %v", err))
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Could not compute analytics", err.Error()))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("Booking analytics", result))
}
