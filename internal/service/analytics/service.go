package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/analytics/models"
)

// DefaultTopRoomsLimit количество номеров в отчете по умолчанию
const DefaultTopRoomsLimit = 3

// Service сервис аналитических отчетов по выручке и загрузке.
// Выборки выполняются в read-only транзакции, чтобы отчет видел
// согласованный снимок данных.
type Service struct {
	analyticsRepo AnalyticsRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(analyticsRepo AnalyticsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// RevenueByCategory считает доход по категориям номеров за период.
// Границы периода опциональны: nil снимает ограничение с соответствующей стороны.
// Отменённые бронирования в доход не входят.
func (s *Service) RevenueByCategory(ctx context.Context, start, end *time.Time) (*models.RevenueByCategoryResponse, error) {
	if start != nil && end != nil && end.Before(*start) {
		s.logger.Warn("RevenueByCategory: invalid period %s to %s",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat))
		return nil, ErrInvalidPeriod
	}

	var items []*domain.CategoryIncome
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		items, err = s.analyticsRepo.IncomeByCategory(txCtx, start, end)
		return err
	})
	if err != nil {
		s.logger.Error("RevenueByCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: RevenueByCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RevenueByCategory: fetched %d categories", len(items))
	return models.FromDomainCategoryIncome(items), nil
}

// GuestsByMonth считает количество гостей по месяцам заезда
func (s *Service) GuestsByMonth(ctx context.Context) (*models.GuestsByMonthResponse, error) {
	var items []*domain.MonthGuests
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		items, err = s.analyticsRepo.GuestsByMonth(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("GuestsByMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: GuestsByMonth - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GuestsByMonth: fetched %d months", len(items))
	return models.FromDomainMonthGuests(items), nil
}

// TopRooms возвращает самые востребованные номера по количеству бронирований.
// При limit <= 0 используется значение по умолчанию.
func (s *Service) TopRooms(ctx context.Context, limit int) (*models.TopRoomsResponse, error) {
	if limit <= 0 {
		limit = DefaultTopRoomsLimit
	}

	var items []*domain.RoomUsage
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		items, err = s.analyticsRepo.TopRooms(txCtx, limit)
		return err
	})
	if err != nil {
		s.logger.Error("TopRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: TopRooms - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("TopRooms: fetched %d rooms (limit=%d)", len(items), limit)
	return models.FromDomainRoomUsage(items), nil
}
