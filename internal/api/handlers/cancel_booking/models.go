package cancel_booking

import (
	cancelBooking "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID    int64  `json:"bookingId"`
	Status       string `json:"status"`
	RefundIssued bool   `json:"refundIssued"`
	Message      string `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID:    resp.BookingID,
		Status:       resp.Status,
		RefundIssued: resp.RefundIssued,
		Message:      resp.Message,
	}
}
