package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	roomRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/room"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/rooms/models"
)

// Service сервис для работы с номерами
type Service struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает все номера с названиями категорий
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch rooms: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	categories, err := s.roomRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch categories: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms, categories), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	categoryName := ""
	if category, err := s.roomRepo.GetCategoryByID(ctx, room.CategoryID); err == nil {
		categoryName = category.Name
	}

	return models.FromDomainRoom(room, categoryName), nil
}

// CheckAvailability проверяет, свободен ли номер на диапазон дат.
// Диапазон полуоткрытый [start, end): выезд в день заезда другого
// бронирования конфликтом не считается. Номер держат брони в статусах
// created и paid, отменённые не учитываются.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, start, end time.Time) (*models.AvailabilityResponse, error) {
	if !end.After(start) {
		s.logger.Warn("CheckAvailability: invalid range for room id=%d: start=%s, end=%s",
			roomID, start.Format(domain.DateFormat), end.Format(domain.DateFormat))
		return nil, ErrInvalidDateRange
	}

	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("CheckAvailability: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("CheckAvailability: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrInternal, err)
	}

	occupied, err := s.bookingRepo.HasOverlapping(ctx, roomID, start, end)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to check overlaps for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CheckAvailability: room id=%d, %s to %s, available=%t",
		roomID, start.Format(domain.DateFormat), end.Format(domain.DateFormat), !occupied)

	return &models.AvailabilityResponse{
		RoomID:    roomID,
		StartDate: start.Format(domain.DateFormat),
		EndDate:   end.Format(domain.DateFormat),
		Available: !occupied,
	}, nil
}
