package bookings

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetSuccessfulByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
