package create_booking

import (
	"context"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	customersModels "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/customers/models"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	HasOverlapping(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	HasBookingSince(ctx context.Context, customerID int64, since time.Time) (bool, error)
}

// CustomerResolver находит существующего клиента по контактам или ID,
// либо создает нового
type CustomerResolver interface {
	Resolve(ctx context.Context, req *customersModels.ResolveCustomerRequest) (*domain.Customer, error)
	ResolveByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
