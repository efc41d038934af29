package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/booking"
	paymentRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/payment"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/bookings/models"
)

// Service сервис для чтения бронирований.
// Изменения жизненного цикла (оплата, отмена) выполняются в use case слое.
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с данными успешного платежа,
// если бронирование оплачено
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(booking)

	// Платеж есть только у оплаченных бронирований
	if booking.IsPaid() {
		payment, err := s.paymentRepo.GetSuccessfulByBookingID(ctx, id)
		if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Error("GetByID: failed to fetch payment for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
		}
		resp.Payment = models.FromDomainPayment(payment)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return resp, nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Все активные бронирования: List(ctx, &GetBookingsRequest{})
// - Бронирования номера: указать RoomID
// - Бронирования клиента: указать CustomerID
// - Заезды за период: StartDate и EndDate
// - Только оплаченные: Status = "paid"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) List(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%d", *req.RoomID)
	}
	if req.CustomerID != nil {
		logMsg += fmt.Sprintf(", customer=%d", *req.CustomerID)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
