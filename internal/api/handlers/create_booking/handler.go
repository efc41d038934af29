package create_booking

import (
	"errors"
	"net/http"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	createBooking "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound         = "номер не найден"
	msgCustomerNotFound     = "клиент не найден"
	msgRoomUnavailable      = "номер занят на выбранные даты"
	msgRoomCapacityExceeded = "количество гостей превышает вместимость номера"
	msgInvalidBookingDates  = "некорректные даты заезда и выезда"
	msgInvalidCustomer      = "некорректные данные клиента"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%d, dates=%s to %s",
				req.RoomID, req.StartDate, req.EndDate)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrRoomCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room_id=%d, guests=%d", req.RoomID, req.GuestsCount)
			handlers.RespondBadRequest(w, msgRoomCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid dates: room_id=%d, dates=%s to %s",
				req.RoomID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDates)

		case errors.Is(err, createBooking.ErrInvalidCustomer):
			h.logger.Warn("POST /bookings - Invalid customer data: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidCustomer)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, final_amount=%d",
		result.ID, result.RoomID, result.FinalAmount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
