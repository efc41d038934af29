package calculate_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	roomRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/room"
)

// UseCase use case для предварительного расчета стоимости бронирования.
// Ничего не пишет в БД: клиент видит детализацию до подтверждения.
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	rules        domain.PricingRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	rules domain.PricingRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateQuote: room=%d, dates=%s to %s, guests=%d",
		req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.GuestsCount)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateQuote: validation failed: %v", err)
		return nil, err
	}

	nights := nightsBetween(req.StartDate, req.EndDate)
	if nights < domain.MinNights {
		uc.logger.Warn("CalculateQuote: invalid range %s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: stay must be at least %d night", ErrInvalidDate, domain.MinNights)
	}
	if nights > domain.MaxNights {
		return nil, fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidDate, domain.MaxNights)
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CalculateQuote: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CalculateQuote: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.FitsGuests(req.GuestsCount) {
		uc.logger.Warn("CalculateQuote: room id=%d capacity=%d, requested guests=%d",
			room.ID, room.Capacity, req.GuestsCount)
		return nil, ErrRoomCapacityExceeded
	}

	// Скидка постоянного клиента применяется только для известного клиента
	repeat := false
	if req.CustomerID != nil {
		now := uc.timeProvider.Now()
		since := now.AddDate(0, 0, -domain.RepeatCustomerWindowDays)

		repeat, err = uc.bookingRepo.HasBookingSince(ctx, *req.CustomerID, since)
		if err != nil {
			uc.logger.Error("CalculateQuote: failed to check booking history for customer id=%d: %v",
				*req.CustomerID, err)
			return nil, fmt.Errorf("%w: failed to check booking history: %v", ErrInternal, err)
		}
	}

	breakdown, err := domain.CalculateQuote(domain.QuoteInput{
		NightlyRate:    room.PricePerNight,
		Nights:         nights,
		GuestsCount:    req.GuestsCount,
		BreakfastCount: req.BreakfastCount,
		LunchCount:     req.LunchCount,
		DinnerCount:    req.DinnerCount,
		RepeatCustomer: repeat,
	}, uc.rules)
	if err != nil {
		uc.logger.Warn("CalculateQuote: calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("CalculateQuote: room=%d, nights=%d, discount=%.1f%%, final=%d",
		req.RoomID, nights, breakdown.DiscountPercent, breakdown.FinalAmount)

	return &Response{
		RoomID:                room.ID,
		Nights:                nights,
		BaseTotal:             breakdown.BaseTotal,
		MealsTotal:            breakdown.MealsTotal,
		Subtotal:              breakdown.Subtotal,
		NightsDiscountPercent: breakdown.NightsDiscountPercent,
		RepeatDiscountPercent: breakdown.RepeatDiscountPercent,
		DiscountPercent:       breakdown.DiscountPercent,
		FinalAmount:           breakdown.FinalAmount,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.GuestsCount < domain.MinGuestsCount {
		return fmt.Errorf("%w: guests count must be at least %d", ErrInvalidInput, domain.MinGuestsCount)
	}
	if req.BreakfastCount < 0 || req.LunchCount < 0 || req.DinnerCount < 0 {
		return fmt.Errorf("%w: meal counts must not be negative", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	return nil
}

// nightsBetween возвращает количество ночей между датами
func nightsBetween(start, end time.Time) int {
	startOnly := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endOnly := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	return int(endOnly.Sub(startOnly).Hours() / 24)
}
