package rooms

import (
	"context"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	HasOverlapping(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
