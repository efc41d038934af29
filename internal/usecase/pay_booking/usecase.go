package pay_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	bookingRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/booking"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/integrations/acquiring"
)

// UseCase use case для оплаты бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	paymentRepo     PaymentRepository
	transactionRepo TransactionRepository
	acquiringClient AcquiringClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	transactionRepo TransactionRepository,
	acquiringClient AcquiringClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		acquiringClient: acquiringClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case оплаты бронирования.
// Сумма платежа всегда равна итоговой стоимости бронирования.
// Успешная оплата атомарно создает платеж, приходную транзакцию
// и переводит бронирование в статус paid.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PayBooking: booking=%d, method=%s, confirmed=%t", req.BookingID, req.Method, req.Confirmed)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		uc.logger.Warn("PayBooking: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	method := domain.PaymentMethod(req.Method)
	if !domain.IsValidPaymentMethod(method) {
		uc.logger.Warn("PayBooking: invalid payment method %q", req.Method)
		return nil, ErrInvalidPaymentMethod
	}

	// 2. Проверяем бронирование и его состояние
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("PayBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("PayBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Без подтверждения оплата не проводится, никакие записи не создаются.
	// Состояние бронирования при этом не проверяется: неподтверждённый
	// запрос лишь показывает сумму к оплате
	if !req.Confirmed {
		uc.logger.Info("PayBooking: booking id=%d awaiting confirmation", booking.ID)
		return &Response{
			BookingID: booking.ID,
			Amount:    booking.FinalAmount,
			Method:    req.Method,
			Status:    StatusAwaiting,
		}, nil
	}

	if !booking.CanBePaid() {
		uc.logger.Warn("PayBooking: booking id=%d cannot be paid, status=%s", booking.ID, booking.Status)
		return nil, ErrInvalidState
	}

	// 4. Авторизуем платеж в эквайринге.
	// При недоступности шлюза платеж проводится как оффлайн
	_, err = uc.acquiringClient.AuthorizeWithGracefulDegradation(ctx, &acquiring.AuthorizeRequest{
		BookingID: booking.ID,
		Amount:    booking.FinalAmount,
		Method:    req.Method,
	})
	if err != nil {
		if errors.Is(err, acquiring.ErrPaymentDeclined) {
			uc.logger.Warn("PayBooking: payment declined for booking id=%d", booking.ID)
			// Отказ фиксируем для истории, статус бронирования не меняется
			uc.recordFailedPayment(ctx, booking, method)
			return nil, ErrPaymentDeclined
		}
		if !errors.Is(err, acquiring.ErrServiceDegraded) {
			uc.logger.Error("PayBooking: acquiring error for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: acquiring error: %v", ErrInternal, err)
		}
		uc.logger.Warn("PayBooking: acquiring degraded, processing booking id=%d as offline payment", booking.ID)
	}

	now := uc.timeProvider.Now()

	var payment *domain.Payment

	// 5. Платеж, транзакция и смена статуса в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем бронирование с блокировкой: конкурентная оплата
		// не должна провести платеж дважды
		locked, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("PayBooking: failed to lock booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !locked.CanBePaid() {
			uc.logger.Warn("PayBooking: booking id=%d state changed concurrently, status=%s", locked.ID, locked.Status)
			return ErrInvalidState
		}

		payment, err = uc.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:   locked.ID,
			Amount:      locked.FinalAmount,
			Method:      method,
			Status:      domain.PaymentSuccess,
			PaymentDate: now,
		})
		if err != nil {
			uc.logger.Error("PayBooking: failed to create payment for booking id=%d: %v", locked.ID, err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		if _, err := uc.transactionRepo.Create(txCtx, &domain.Transaction{
			PaymentID:       payment.ID,
			Amount:          payment.Amount,
			Type:            domain.TransactionIncome,
			TransactionDate: now,
		}); err != nil {
			uc.logger.Error("PayBooking: failed to create transaction for payment id=%d: %v", payment.ID, err)
			return fmt.Errorf("%w: failed to create transaction: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, locked.ID, domain.StatusPaid); err != nil {
			uc.logger.Error("PayBooking: failed to update booking id=%d status: %v", locked.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("PayBooking: booking id=%d paid, payment id=%d, amount=%d",
		booking.ID, payment.ID, payment.Amount)

	return &Response{
		BookingID: booking.ID,
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		Method:    string(payment.Method),
		Status:    StatusPaid,
	}, nil
}

// recordFailedPayment фиксирует отклоненный платеж.
// Ошибка записи не критична для ответа клиенту, только логируется
func (uc *UseCase) recordFailedPayment(ctx context.Context, booking *domain.Booking, method domain.PaymentMethod) {
	_, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		BookingID:   booking.ID,
		Amount:      booking.FinalAmount,
		Method:      method,
		Status:      domain.PaymentFailed,
		PaymentDate: uc.timeProvider.Now(),
	})
	if err != nil {
		uc.logger.Error("PayBooking: failed to record declined payment for booking id=%d: %v", booking.ID, err)
	}
}
