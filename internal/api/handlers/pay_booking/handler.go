package pay_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers"
	payBooking "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/pay_booking"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgBookingNotFound      = "бронирование не найдено"
	msgInvalidState         = "бронирование нельзя оплатить в текущем статусе"
	msgInvalidPaymentMethod = "некорректный метод оплаты"
	msgPaymentDeclined      = "платеж отклонен"
)

type Handler struct {
	useCase PayBookingUseCase
	logger  Logger
}

func NewHandler(useCase PayBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/pay - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req PayBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/pay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &payBooking.Request{
		BookingID: bookingID,
		Method:    req.Method,
		Confirmed: req.Confirmed,
	})
	if err != nil {
		switch {
		case errors.Is(err, payBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/pay - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, payBooking.ErrInvalidState):
			h.logger.Warn("POST /bookings/{id}/pay - Invalid state: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, payBooking.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /bookings/{id}/pay - Invalid method %q: booking_id=%d", req.Method, bookingID)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, payBooking.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings/{id}/pay - Payment declined: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentDeclined)

		case errors.Is(err, payBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/pay - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/pay - Failed to pay booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/pay - Payment processed: booking_id=%d, status=%s",
		result.BookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
