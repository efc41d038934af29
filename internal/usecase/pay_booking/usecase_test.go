package pay_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	bookingRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/booking"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/integrations/acquiring"
)

// --- Моки зависимостей ---

type mockBookingRepo struct {
	booking *domain.Booking
	getErr  error

	updatedStatus domain.BookingStatus
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	copied := *m.booking
	return &copied, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	m.updatedStatus = status
	return nil
}

type mockPaymentRepo struct {
	payments []*domain.Payment
}

func (m *mockPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	created := *p
	created.ID = int64(len(m.payments) + 1)
	m.payments = append(m.payments, &created)
	return &created, nil
}

type mockTransactionRepo struct {
	transactions []*domain.Transaction
}

func (m *mockTransactionRepo) Create(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	created := *tx
	created.ID = int64(len(m.transactions) + 1)
	m.transactions = append(m.transactions, &created)
	return &created, nil
}

type mockAcquiringClient struct {
	auth *acquiring.Authorization
	err  error
}

func (m *mockAcquiringClient) AuthorizeWithGracefulDegradation(_ context.Context, _ *acquiring.AuthorizeRequest) (*acquiring.Authorization, error) {
	return m.auth, m.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- Вспомогательные данные ---

func createdBooking() *domain.Booking {
	return &domain.Booking{
		ID:          42,
		RoomID:      1,
		CustomerID:  7,
		StartDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		FinalAmount: 10200,
		Status:      domain.StatusCreated,
	}
}

func newTestUseCase(bookings *mockBookingRepo, payments *mockPaymentRepo, transactions *mockTransactionRepo, client *mockAcquiringClient) *UseCase {
	uc := NewUseCase(bookings, payments, transactions, client, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func confirmedAuth() *mockAcquiringClient {
	return &mockAcquiringClient{auth: &acquiring.Authorization{OrderID: "ord-1", Status: "confirmed"}}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	bookings := &mockBookingRepo{booking: createdBooking()}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}

	uc := newTestUseCase(bookings, payments, transactions, confirmedAuth())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Method:    "card",
		Confirmed: true,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, resp.Status)
	assert.Equal(t, int64(10200), resp.Amount)
	assert.Equal(t, domain.StatusPaid, bookings.updatedStatus)

	// Сумма платежа всегда равна итоговой стоимости бронирования
	require.Len(t, payments.payments, 1)
	assert.Equal(t, int64(10200), payments.payments[0].Amount)
	assert.Equal(t, domain.PaymentSuccess, payments.payments[0].Status)

	// Приходная транзакция привязана к платежу
	require.Len(t, transactions.transactions, 1)
	assert.Equal(t, domain.TransactionIncome, transactions.transactions[0].Type)
	assert.Equal(t, payments.payments[0].ID, transactions.transactions[0].PaymentID)
	assert.Equal(t, int64(10200), transactions.transactions[0].Amount)
}

func TestExecute_AwaitingConfirmationNoWrites(t *testing.T) {
	bookings := &mockBookingRepo{booking: createdBooking()}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}

	uc := newTestUseCase(bookings, payments, transactions, confirmedAuth())

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Method:    "cash",
		Confirmed: false,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusAwaiting, resp.Status)
	assert.Equal(t, int64(10200), resp.Amount)
	assert.Zero(t, resp.PaymentID)

	// Без подтверждения никакие записи не создаются
	assert.Empty(t, payments.payments)
	assert.Empty(t, transactions.transactions)
	assert.Empty(t, bookings.updatedStatus)
}

func TestExecute_AwaitingConfirmationOnPaidBooking(t *testing.T) {
	paid := createdBooking()
	paid.Status = domain.StatusPaid

	bookings := &mockBookingRepo{booking: paid}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}

	uc := newTestUseCase(bookings, payments, transactions, confirmedAuth())

	// Неподтверждённый запрос показывает сумму независимо от статуса брони
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Method:    "card",
		Confirmed: false,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusAwaiting, resp.Status)
	assert.Equal(t, int64(10200), resp.Amount)
	assert.Empty(t, payments.payments)
	assert.Empty(t, transactions.transactions)
	assert.Empty(t, bookings.updatedStatus)
}

func TestExecute_AlreadyPaid(t *testing.T) {
	booking := createdBooking()
	booking.Status = domain.StatusPaid

	bookings := &mockBookingRepo{booking: booking}
	uc := newTestUseCase(bookings, &mockPaymentRepo{}, &mockTransactionRepo{}, confirmedAuth())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Method: "card", Confirmed: true})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestExecute_CancelledBooking(t *testing.T) {
	booking := createdBooking()
	booking.Status = domain.StatusCancelled

	bookings := &mockBookingRepo{booking: booking}
	uc := newTestUseCase(bookings, &mockPaymentRepo{}, &mockTransactionRepo{}, confirmedAuth())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Method: "card", Confirmed: true})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bookings, &mockPaymentRepo{}, &mockTransactionRepo{}, confirmedAuth())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Method: "card", Confirmed: true})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidMethod(t *testing.T) {
	bookings := &mockBookingRepo{booking: createdBooking()}
	uc := newTestUseCase(bookings, &mockPaymentRepo{}, &mockTransactionRepo{}, confirmedAuth())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Method: "crypto", Confirmed: true})
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestExecute_PaymentDeclined(t *testing.T) {
	bookings := &mockBookingRepo{booking: createdBooking()}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}
	client := &mockAcquiringClient{err: acquiring.ErrPaymentDeclined}

	uc := newTestUseCase(bookings, payments, transactions, client)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Method: "card", Confirmed: true})
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	// Отказ фиксируется как неуспешный платеж, статус бронирования не меняется
	require.Len(t, payments.payments, 1)
	assert.Equal(t, domain.PaymentFailed, payments.payments[0].Status)
	assert.Empty(t, transactions.transactions)
	assert.Empty(t, bookings.updatedStatus)
}

func TestExecute_GatewayDegradedProcessedOffline(t *testing.T) {
	bookings := &mockBookingRepo{booking: createdBooking()}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}
	client := &mockAcquiringClient{err: acquiring.ErrServiceDegraded}

	uc := newTestUseCase(bookings, payments, transactions, client)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Method: "cash", Confirmed: true})
	require.NoError(t, err)

	// Недоступность шлюза не блокирует оплату на стойке
	assert.Equal(t, StatusPaid, resp.Status)
	require.Len(t, payments.payments, 1)
	assert.Equal(t, domain.PaymentSuccess, payments.payments[0].Status)
}
