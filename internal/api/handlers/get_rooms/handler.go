package get_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgRoomNotFound  = "номер не найден"
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

// HandleList GET /api/v1/rooms
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to get rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/rooms/{roomId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id} - Failed to get room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id} - Room retrieved successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
