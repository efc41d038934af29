package analytics

import (
	"context"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/analytics/models"
)

type AnalyticsService interface {
	RevenueByCategory(ctx context.Context, start, end *time.Time) (*models.RevenueByCategoryResponse, error)
	GuestsByMonth(ctx context.Context) (*models.GuestsByMonthResponse, error)
	TopRooms(ctx context.Context, limit int) (*models.TopRoomsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
