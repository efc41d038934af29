package get_rooms

import (
	"context"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/rooms/models"
)

type RoomService interface {
	List(ctx context.Context) (*models.RoomListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
