package pay_booking

import (
	payBooking "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/pay_booking"
)

// PayBookingRequest HTTP request model
type PayBookingRequest struct {
	Method    string `json:"method"` // cash | card | online | bank
	Confirmed bool   `json:"confirmed"`
}

// PayBookingResponse HTTP response model
type PayBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	PaymentID int64  `json:"paymentId,omitempty"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
	Status    string `json:"status"` // paid | awaiting_confirmation
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *payBooking.Response) *PayBookingResponse {
	return &PayBookingResponse{
		BookingID: resp.BookingID,
		PaymentID: resp.PaymentID,
		Amount:    resp.Amount,
		Method:    resp.Method,
		Status:    resp.Status,
	}
}
