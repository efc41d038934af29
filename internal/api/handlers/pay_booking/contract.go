package pay_booking

import (
	"context"

	payBooking "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/pay_booking"
)

type PayBookingUseCase interface {
	Execute(ctx context.Context, req *payBooking.Request) (*payBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
