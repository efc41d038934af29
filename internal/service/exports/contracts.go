package exports

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	List(ctx context.Context) ([]*domain.Customer, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	List(ctx context.Context) ([]*domain.Payment, error)
}

// TransactionRepository интерфейс репозитория финансовых транзакций
type TransactionRepository interface {
	List(ctx context.Context) ([]*domain.Transaction, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
