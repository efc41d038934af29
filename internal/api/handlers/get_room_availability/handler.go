package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/rooms"
)

const (
	msgInvalidRoomID    = "некорректный ID номера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат"
	msgRoomNotFound     = "номер не найден"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
// Query params: startDate, endDate (обязательные, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), roomID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid date range: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Availability checked: room_id=%d, available=%t",
		roomID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
