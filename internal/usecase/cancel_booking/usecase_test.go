package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	bookingRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/booking"
	paymentRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/payment"
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
	payment *domain.Payment
	getErr  error

	updatedStatus domain.PaymentStatus
}

func (m *mockPaymentRepo) GetSuccessfulByBookingID(_ context.Context, _ int64) (*domain.Payment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	copied := *m.payment
	return &copied, nil
}

func (m *mockPaymentRepo) UpdateStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	m.updatedStatus = status
	return nil
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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// --- Вспомогательные данные ---

// Заезд 10 сентября, "сейчас" задается в каждом тесте
func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          42,
		RoomID:      1,
		CustomerID:  7,
		StartDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		FinalAmount: 10200,
		Status:      status,
	}
}

func newTestUseCase(bookings *mockBookingRepo, payments *mockPaymentRepo, transactions *mockTransactionRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, payments, transactions, &fakeTxManager{}, domain.DefaultCancellationNoticeHours, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// --- Тесты ---

func TestExecute_CancelUnpaidBooking(t *testing.T) {
	bookings := &mockBookingRepo{booking: testBooking(domain.StatusCreated)}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}

	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, payments, transactions, now)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.False(t, resp.RefundIssued)
	assert.Empty(t, resp.Message)
	assert.Equal(t, domain.StatusCancelled, bookings.updatedStatus)
	assert.Empty(t, transactions.transactions)
}

func TestExecute_PaidBookingRefundWithNotice(t *testing.T) {
	bookings := &mockBookingRepo{booking: testBooking(domain.StatusPaid)}
	payments := &mockPaymentRepo{payment: &domain.Payment{
		ID:        3,
		BookingID: 42,
		Amount:    10200,
		Status:    domain.PaymentSuccess,
	}}
	transactions := &mockTransactionRepo{}

	// За 5 дней до заезда, срок уведомления соблюден
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, payments, transactions, now)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	require.NoError(t, err)

	assert.True(t, resp.RefundIssued)
	assert.Equal(t, domain.RefundContactMessage, resp.Message)
	assert.Equal(t, domain.StatusCancelled, bookings.updatedStatus)
	assert.Equal(t, domain.PaymentCancelled, payments.updatedStatus)

	require.Len(t, transactions.transactions, 1)
	assert.Equal(t, domain.TransactionRefund, transactions.transactions[0].Type)
	assert.Equal(t, int64(10200), transactions.transactions[0].Amount)
	assert.Equal(t, int64(3), transactions.transactions[0].PaymentID)
}

func TestExecute_PaidBookingNoRefundShortNotice(t *testing.T) {
	bookings := &mockBookingRepo{booking: testBooking(domain.StatusPaid)}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}

	// Менее 24 часов до заезда: отмена проходит, возврата нет
	now := time.Date(2026, 9, 9, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, payments, transactions, now)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	require.NoError(t, err)

	assert.False(t, resp.RefundIssued)
	assert.Empty(t, resp.Message)
	assert.Equal(t, domain.StatusCancelled, bookings.updatedStatus)
	assert.Empty(t, transactions.transactions)
	assert.Empty(t, payments.updatedStatus)
}

func TestExecute_RefundBoundaryExactly24Hours(t *testing.T) {
	bookings := &mockBookingRepo{booking: testBooking(domain.StatusPaid)}
	payments := &mockPaymentRepo{payment: &domain.Payment{
		ID: 3, BookingID: 42, Amount: 10200, Status: domain.PaymentSuccess,
	}}
	transactions := &mockTransactionRepo{}

	// Ровно за 24 часа до заезда возврат еще положен
	now := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, payments, transactions, now)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	require.NoError(t, err)
	assert.True(t, resp.RefundIssued)
}

func TestExecute_StayStarted(t *testing.T) {
	bookings := &mockBookingRepo{booking: testBooking(domain.StatusPaid)}
	payments := &mockPaymentRepo{}
	transactions := &mockTransactionRepo{}

	// В день заезда отмена невозможна
	now := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, payments, transactions, now)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	assert.ErrorIs(t, err, ErrStayStarted)
	assert.Empty(t, bookings.updatedStatus)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	bookings := &mockBookingRepo{booking: testBooking(domain.StatusCancelled)}
	uc := newTestUseCase(bookings, &mockPaymentRepo{}, &mockTransactionRepo{}, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bookings, &mockPaymentRepo{}, &mockTransactionRepo{}, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_PaidWithoutPaymentIsInternalError(t *testing.T) {
	bookings := &mockBookingRepo{booking: testBooking(domain.StatusPaid)}
	payments := &mockPaymentRepo{getErr: paymentRepo.ErrPaymentNotFound}
	transactions := &mockTransactionRepo{}

	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(bookings, payments, transactions, now)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42})
	assert.ErrorIs(t, err, ErrInternal)
}
