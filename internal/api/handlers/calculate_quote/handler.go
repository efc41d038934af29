package calculate_quote

import (
	"errors"
	"net/http"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	calculateQuote "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/calculate_quote"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound         = "номер не найден"
	msgRoomCapacityExceeded = "количество гостей превышает вместимость номера"
	msgInvalidDates         = "некорректные даты заезда и выезда"
	msgInvalidInput         = "некорректные параметры расчета"
)

type Handler struct {
	useCase CalculateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CalculateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculateQuote.ErrRoomNotFound):
			h.logger.Warn("POST /bookings/quote - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, calculateQuote.ErrRoomCapacityExceeded):
			h.logger.Warn("POST /bookings/quote - Capacity exceeded: room_id=%d, guests=%d",
				req.RoomID, req.GuestsCount)
			handlers.RespondBadRequest(w, msgRoomCapacityExceeded)

		case errors.Is(err, calculateQuote.ErrInvalidDate):
			h.logger.Warn("POST /bookings/quote - Invalid dates: room_id=%d, dates=%s to %s",
				req.RoomID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, calculateQuote.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid input: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/quote - Failed to calculate quote: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote calculated: room_id=%d, final_amount=%d",
		result.RoomID, result.FinalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
