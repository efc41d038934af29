package exports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
)

// Экспортируемые сущности
const (
	EntityBookings     = "bookings"
	EntityRooms        = "rooms"
	EntityCustomers    = "customers"
	EntityPayments     = "payments"
	EntityTransactions = "transactions"
)

// Service сервис табличных выгрузок для бэк-офиса.
// Каждая выгрузка это заголовок и строки, готовые для записи в CSV.
type Service struct {
	bookingRepo     BookingRepository
	roomRepo        RoomRepository
	customerRepo    CustomerRepository
	paymentRepo     PaymentRepository
	transactionRepo TransactionRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса выгрузок
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	customerRepo CustomerRepository,
	paymentRepo PaymentRepository,
	transactionRepo TransactionRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		roomRepo:        roomRepo,
		customerRepo:    customerRepo,
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Export выгружает указанную сущность.
// Первая строка результата всегда заголовок.
func (s *Service) Export(ctx context.Context, entity string) ([][]string, error) {
	switch entity {
	case EntityBookings:
		return s.exportBookings(ctx)
	case EntityRooms:
		return s.exportRooms(ctx)
	case EntityCustomers:
		return s.exportCustomers(ctx)
	case EntityPayments:
		return s.exportPayments(ctx)
	case EntityTransactions:
		return s.exportTransactions(ctx)
	default:
		s.logger.Warn("Export: unknown entity %q", entity)
		return nil, ErrUnknownEntity
	}
}

func (s *Service) exportBookings(ctx context.Context) ([][]string, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{IncludeCancelled: true})
	if err != nil {
		s.logger.Error("Export: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: exportBookings - repository error: %v", ErrInternal, err)
	}

	records := [][]string{{
		"id", "room_id", "customer_id", "start_date", "end_date",
		"guests_count", "breakfast_count", "lunch_count", "dinner_count",
		"total_amount", "final_amount", "status", "created_at",
	}}

	for _, b := range bookings {
		records = append(records, []string{
			formatID(b.ID),
			formatID(b.RoomID),
			formatID(b.CustomerID),
			b.StartDate.Format(domain.DateFormat),
			b.EndDate.Format(domain.DateFormat),
			strconv.Itoa(b.GuestsCount),
			strconv.Itoa(b.BreakfastCount),
			strconv.Itoa(b.LunchCount),
			strconv.Itoa(b.DinnerCount),
			formatID(b.TotalAmount),
			formatID(b.FinalAmount),
			string(b.Status),
			b.CreatedAt.Format(time.RFC3339),
		})
	}

	s.logger.Info("Export: bookings, %d rows", len(records)-1)
	return records, nil
}

func (s *Service) exportRooms(ctx context.Context) ([][]string, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("Export: failed to fetch rooms: %v", err)
		return nil, fmt.Errorf("%w: exportRooms - repository error: %v", ErrInternal, err)
	}

	records := [][]string{{"id", "number", "category_id", "capacity", "price_per_night"}}

	for _, r := range rooms {
		records = append(records, []string{
			formatID(r.ID),
			strconv.Itoa(r.Number),
			formatID(r.CategoryID),
			strconv.Itoa(r.Capacity),
			formatID(r.PricePerNight),
		})
	}

	s.logger.Info("Export: rooms, %d rows", len(records)-1)
	return records, nil
}

func (s *Service) exportCustomers(ctx context.Context) ([][]string, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("Export: failed to fetch customers: %v", err)
		return nil, fmt.Errorf("%w: exportCustomers - repository error: %v", ErrInternal, err)
	}

	records := [][]string{{"id", "full_name", "phone", "email", "created_at"}}

	for _, c := range customers {
		records = append(records, []string{
			formatID(c.ID),
			c.FullName,
			c.Phone,
			c.Email,
			c.CreatedAt.Format(time.RFC3339),
		})
	}

	s.logger.Info("Export: customers, %d rows", len(records)-1)
	return records, nil
}

func (s *Service) exportPayments(ctx context.Context) ([][]string, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		s.logger.Error("Export: failed to fetch payments: %v", err)
		return nil, fmt.Errorf("%w: exportPayments - repository error: %v", ErrInternal, err)
	}

	records := [][]string{{"id", "booking_id", "amount", "method", "status", "payment_date"}}

	for _, p := range payments {
		records = append(records, []string{
			formatID(p.ID),
			formatID(p.BookingID),
			formatID(p.Amount),
			string(p.Method),
			string(p.Status),
			p.PaymentDate.Format(domain.DateFormat),
		})
	}

	s.logger.Info("Export: payments, %d rows", len(records)-1)
	return records, nil
}

func (s *Service) exportTransactions(ctx context.Context) ([][]string, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		s.logger.Error("Export: failed to fetch transactions: %v", err)
		return nil, fmt.Errorf("%w: exportTransactions - repository error: %v", ErrInternal, err)
	}

	records := [][]string{{"id", "payment_id", "amount", "type", "transaction_date"}}

	for _, t := range transactions {
		records = append(records, []string{
			formatID(t.ID),
			formatID(t.PaymentID),
			formatID(t.Amount),
			string(t.Type),
			t.TransactionDate.Format(domain.DateFormat),
		})
	}

	s.logger.Info("Export: transactions, %d rows", len(records)-1)
	return records, nil
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}
