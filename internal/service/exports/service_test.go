package exports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (m *mockBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.filter = filter
	return m.bookings, nil
}

type mockRoomRepo struct {
	rooms []*domain.Room
}

func (m *mockRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	return m.rooms, nil
}

type mockCustomerRepo struct {
	customers []*domain.Customer
}

func (m *mockCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	return m.customers, nil
}

type mockPaymentRepo struct {
	payments []*domain.Payment
}

func (m *mockPaymentRepo) List(_ context.Context) ([]*domain.Payment, error) {
	return m.payments, nil
}

type mockTransactionRepo struct {
	transactions []*domain.Transaction
}

func (m *mockTransactionRepo) List(_ context.Context) ([]*domain.Transaction, error) {
	return m.transactions, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(bookings *mockBookingRepo) *Service {
	return NewService(
		bookings,
		&mockRoomRepo{rooms: []*domain.Room{
			{ID: 1, Number: 101, CategoryID: 1, Capacity: 2, PricePerNight: 4500},
		}},
		&mockCustomerRepo{},
		&mockPaymentRepo{payments: []*domain.Payment{
			{ID: 3, BookingID: 42, Amount: 10200, Method: domain.MethodCard, Status: domain.PaymentSuccess,
				PaymentDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		}},
		&mockTransactionRepo{},
		noopLogger{},
	)
}

func TestExport_Bookings(t *testing.T) {
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{
			ID:          42,
			RoomID:      1,
			CustomerID:  7,
			StartDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			GuestsCount: 2,
			TotalAmount: 9000,
			FinalAmount: 10200,
			Status:      domain.StatusPaid,
		},
	}}

	svc := newTestService(bookings)

	records, err := svc.Export(context.Background(), EntityBookings)
	require.NoError(t, err)

	// Выгрузка включает отмененные бронирования
	assert.True(t, bookings.filter.IncludeCancelled)

	require.Len(t, records, 2)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "42", records[1][0])
	assert.Equal(t, "2026-09-10", records[1][3])
	assert.Equal(t, "paid", records[1][11])
}

func TestExport_Rooms(t *testing.T) {
	svc := newTestService(&mockBookingRepo{})

	records, err := svc.Export(context.Background(), EntityRooms)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "number", "category_id", "capacity", "price_per_night"}, records[0])
	assert.Equal(t, []string{"1", "101", "1", "2", "4500"}, records[1])
}

func TestExport_Payments(t *testing.T) {
	svc := newTestService(&mockBookingRepo{})

	records, err := svc.Export(context.Background(), EntityPayments)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"3", "42", "10200", "card", "success", "2026-09-01"}, records[1])
}

func TestExport_HeaderOnlyWhenEmpty(t *testing.T) {
	svc := newTestService(&mockBookingRepo{})

	records, err := svc.Export(context.Background(), EntityCustomers)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestExport_UnknownEntity(t *testing.T) {
	svc := newTestService(&mockBookingRepo{})

	_, err := svc.Export(context.Background(), "invoices")
	assert.ErrorIs(t, err, ErrUnknownEntity)
}
