package analytics

import (
	"context"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// AnalyticsRepository интерфейс репозитория аналитических выборок
type AnalyticsRepository interface {
	IncomeByCategory(ctx context.Context, start, end *time.Time) ([]*domain.CategoryIncome, error)
	GuestsByMonth(ctx context.Context) ([]*domain.MonthGuests, error)
	TopRooms(ctx context.Context, limit int) ([]*domain.RoomUsage, error)
}

// TransactionManager выполняет отчетные выборки в read-only транзакции
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
