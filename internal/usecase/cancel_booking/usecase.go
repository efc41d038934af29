package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	bookingRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/booking"
	paymentRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/payment"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	paymentRepo     PaymentRepository
	transactionRepo TransactionRepository
	txManager       TransactionManager
	noticeHours     int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// noticeHours это минимальный срок уведомления до заезда, при котором
// оплаченное бронирование отменяется с возвратом средств.
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	transactionRepo TransactionRepository,
	txManager TransactionManager,
	noticeHours int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		noticeHours:     noticeHours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования.
// Отменить можно только до дня заезда. Оплаченное бронирование,
// отмененное не позднее чем за noticeHours до заезда, получает возврат:
// транзакцию refund и статус платежа cancelled.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		uc.logger.Warn("CancelBooking: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var refundIssued bool

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Читаем бронирование с блокировкой: конкурентная отмена или оплата
		// не должны пройти параллельно
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", booking.ID)
			return ErrAlreadyCancelled
		}

		// После наступления дня заезда отмена невозможна
		if booking.StayStarted(now) {
			uc.logger.Warn("CancelBooking: booking id=%d stay started on %s",
				booking.ID, booking.StartDate.Format(domain.DateFormat))
			return ErrStayStarted
		}

		wasPaid := booking.IsPaid()
		refundIssued = wasPaid && booking.HoursUntilCheckIn(now) >= float64(uc.noticeHours)

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
			uc.logger.Error("CancelBooking: failed to update booking id=%d status: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		if !refundIssued {
			if wasPaid {
				uc.logger.Info("CancelBooking: booking id=%d cancelled without refund, notice < %dh",
					booking.ID, uc.noticeHours)
			}
			return nil
		}

		// Возврат: транзакция refund по успешному платежу и отмена платежа
		payment, err := uc.paymentRepo.GetSuccessfulByBookingID(txCtx, booking.ID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				// Оплаченное бронирование без успешного платежа это рассинхрон данных
				uc.logger.Error("CancelBooking: paid booking id=%d has no successful payment", booking.ID)
				return fmt.Errorf("%w: paid booking has no successful payment", ErrInternal)
			}
			uc.logger.Error("CancelBooking: failed to get payment for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
		}

		if _, err := uc.transactionRepo.Create(txCtx, &domain.Transaction{
			PaymentID:       payment.ID,
			Amount:          payment.Amount,
			Type:            domain.TransactionRefund,
			TransactionDate: now,
		}); err != nil {
			uc.logger.Error("CancelBooking: failed to create refund transaction for payment id=%d: %v", payment.ID, err)
			return fmt.Errorf("%w: failed to create refund transaction: %v", ErrInternal, err)
		}

		if err := uc.paymentRepo.UpdateStatus(txCtx, payment.ID, domain.PaymentCancelled); err != nil {
			uc.logger.Error("CancelBooking: failed to update payment id=%d status: %v", payment.ID, err)
			return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
		}

		uc.logger.Info("CancelBooking: refund issued for booking id=%d, payment id=%d, amount=%d",
			booking.ID, payment.ID, payment.Amount)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, refund=%t", req.BookingID, refundIssued)

	resp := &Response{
		BookingID:    req.BookingID,
		Status:       string(domain.StatusCancelled),
		RefundIssued: refundIssued,
	}
	if refundIssued {
		resp.Message = domain.RefundContactMessage
	}

	return resp, nil
}
