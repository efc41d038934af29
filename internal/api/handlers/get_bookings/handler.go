package get_bookings

import (
	"errors"
	"net/http"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/bookings"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: roomId, customerId, status, startDate, endDate, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(
		query.Get("roomId"),
		query.Get("customerId"),
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
