package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	bookingRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/booking"
	roomRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/room"
	customersService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/customers"
	customersModels "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/customers/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo         RoomRepository
	bookingRepo      BookingRepository
	customerResolver CustomerResolver
	txManager        TransactionManager
	rules            domain.PricingRules
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	customerResolver CustomerResolver,
	txManager TransactionManager,
	rules domain.PricingRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:         roomRepo,
		bookingRepo:      bookingRepo,
		customerResolver: customerResolver,
		txManager:        txManager,
		rules:            rules,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности номера, создание клиента и вставка бронирования
// выполняются в одной сериализуемой транзакции, чтобы два конкурентных
// запроса не забронировали один номер на пересекающиеся даты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, dates=%s to %s, guests=%d",
		req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.GuestsCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация дат относительно текущего дня
	now := uc.timeProvider.Now()
	if err := validateDates(req.StartDate, req.EndDate, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	nights := nightsBetween(req.StartDate, req.EndDate)

	var (
		result    *domain.Booking
		breakdown domain.PriceBreakdown
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем номер
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Проверяем вместимость
		if !room.FitsGuests(req.GuestsCount) {
			uc.logger.Warn("CreateBooking: room id=%d capacity=%d, requested guests=%d",
				room.ID, room.Capacity, req.GuestsCount)
			return ErrRoomCapacityExceeded
		}

		// 3.3. Проверяем доступность номера (блокирует пересекающиеся брони FOR UPDATE)
		occupied, err := uc.bookingRepo.HasOverlapping(txCtx, req.RoomID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlaps for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}
		if occupied {
			uc.logger.Warn("CreateBooking: room id=%d is occupied for %s to %s",
				req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
			return ErrRoomUnavailable
		}

		// 3.4. Определяем клиента в этой же транзакции.
		// По customerID берем существующего, иначе ищем по контактам
		// или создаем нового
		var customer *domain.Customer
		if req.CustomerID != nil {
			customer, err = uc.customerResolver.ResolveByID(txCtx, *req.CustomerID)
			if err != nil {
				if errors.Is(err, customersService.ErrCustomerNotFound) {
					uc.logger.Warn("CreateBooking: customer id=%d not found", *req.CustomerID)
					return ErrCustomerNotFound
				}
				uc.logger.Error("CreateBooking: failed to resolve customer id=%d: %v", *req.CustomerID, err)
				return fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
			}
		} else {
			customer, err = uc.customerResolver.Resolve(txCtx, &customersModels.ResolveCustomerRequest{
				FullName: req.Customer.FullName,
				Phone:    req.Customer.Phone,
				Email:    req.Customer.Email,
			})
			if err != nil {
				if errors.Is(err, customersService.ErrInvalidInput) {
					uc.logger.Warn("CreateBooking: invalid customer data: %v", err)
					return fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
				}
				uc.logger.Error("CreateBooking: failed to resolve customer: %v", err)
				return fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
			}
		}

		// 3.5. Скидка постоянного клиента: было ли у него бронирование за последний год.
		// Новый клиент, только что созданный резолвером, истории не имеет
		since := now.AddDate(0, 0, -domain.RepeatCustomerWindowDays)
		repeat, err := uc.bookingRepo.HasBookingSince(txCtx, customer.ID, since)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check booking history for customer id=%d: %v", customer.ID, err)
			return fmt.Errorf("%w: failed to check booking history: %v", ErrInternal, err)
		}

		// 3.6. Считаем стоимость
		breakdown, err = domain.CalculateQuote(domain.QuoteInput{
			NightlyRate:    room.PricePerNight,
			Nights:         nights,
			GuestsCount:    req.GuestsCount,
			BreakfastCount: req.BreakfastCount,
			LunchCount:     req.LunchCount,
			DinnerCount:    req.DinnerCount,
			RepeatCustomer: repeat,
		}, uc.rules)
		if err != nil {
			uc.logger.Warn("CreateBooking: quote calculation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		uc.logger.Info("CreateBooking: customer id=%d, repeat=%t, discount=%.1f%%, final=%d",
			customer.ID, repeat, breakdown.DiscountPercent, breakdown.FinalAmount)

		// 3.7. Сохраняем бронирование
		booking := &domain.Booking{
			RoomID:         room.ID,
			CustomerID:     customer.ID,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			GuestsCount:    req.GuestsCount,
			BreakfastCount: req.BreakfastCount,
			LunchCount:     req.LunchCount,
			DinnerCount:    req.DinnerCount,
			DiscountNights: breakdown.NightsDiscountPercent,
			DiscountRepeat: breakdown.RepeatDiscountPercent,
			TotalAmount:    breakdown.BaseTotal,
			FinalAmount:    breakdown.FinalAmount,
			Status:         domain.StatusCreated,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная бронь успела первой: exclusion constraint в БД
			if errors.Is(err, bookingRepo.ErrRoomConflict) {
				uc.logger.Warn("CreateBooking: room id=%d conflict on insert", req.RoomID)
				return ErrRoomUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                    result.ID,
		RoomID:                result.RoomID,
		CustomerID:            result.CustomerID,
		StartDate:             result.StartDate,
		EndDate:               result.EndDate,
		Nights:                nights,
		GuestsCount:           result.GuestsCount,
		BaseTotal:             breakdown.BaseTotal,
		MealsTotal:            breakdown.MealsTotal,
		Subtotal:              breakdown.Subtotal,
		NightsDiscountPercent: breakdown.NightsDiscountPercent,
		RepeatDiscountPercent: breakdown.RepeatDiscountPercent,
		DiscountPercent:       breakdown.DiscountPercent,
		FinalAmount:           breakdown.FinalAmount,
		Status:                string(result.Status),
		CreatedAt:             result.CreatedAt,
	}, nil
}
