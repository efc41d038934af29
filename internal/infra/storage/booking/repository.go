package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/dbmetrics"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/psqlbuilder"
)

// pgExclusionViolation код ошибки PostgreSQL при срабатывании exclusion constraint
// (bookings_no_room_overlap в migrations/001_init.up.sql)
const pgExclusionViolation = "23P01"

var bookingColumns = []string{
	"id",
	"room_id",
	"customer_id",
	"start_date",
	"end_date",
	"guests_count",
	"breakfast_count",
	"lunch_count",
	"dinner_count",
	"discount_nights",
	"discount_repeat",
	"total_amount",
	"final_amount",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// При пересечении дат с активной бронью того же номера БД отклоняет вставку
// exclusion constraint-ом, что конвертируется в ErrRoomConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"customer_id",
			"start_date",
			"end_date",
			"guests_count",
			"breakfast_count",
			"lunch_count",
			"dinner_count",
			"discount_nights",
			"discount_repeat",
			"total_amount",
			"final_amount",
			"status",
		).
		Values(
			booking.RoomID,
			booking.CustomerID,
			booking.StartDate,
			booking.EndDate,
			booking.GuestsCount,
			booking.BreakfastCount,
			booking.LunchCount,
			booking.DinnerCount,
			booking.DiscountNights,
			booking.DiscountRepeat,
			booking.TotalAmount,
			booking.FinalAmount,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgExclusionViolation {
			return nil, ErrRoomConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до конца операции
	// (оплата и отмена читают бронь перед изменением статуса)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// overlappingQuery строит запрос поиска активных бронирований номера,
// пересекающихся с интервалом [start, end).
// Интервалы полуоткрытые: existing.start < new.end AND existing.end > new.start
func overlappingQuery(roomID int64, start, end time.Time) squirrel.SelectBuilder {
	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	return psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Limit(1)
}

// HasOverlapping проверяет, есть ли активное бронирование того же номера,
// пересекающееся с интервалом [start, end)
// Граничный случай (выезд в день заезда) пересечением НЕ считается:
// existing.start < new.end AND existing.end > new.start
func (r *Repository) HasOverlapping(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := overlappingQuery(roomID, start, end)

	// Внутри транзакции блокируем найденные брони (FOR UPDATE),
	// чтобы конкурентное создание не прошло проверку одновременно
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlapping - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// HasBookingSince проверяет, есть ли у клиента неотменённая бронь,
// созданная не раньше указанной даты (определение повторного клиента)
func (r *Repository) HasBookingSince(ctx context.Context, customerID int64, since time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasBookingSince - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBookingSince - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по номеру, клиенту, статусу и периоду заезда
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	selectBuilder = selectBuilder.OrderBy("start_date DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.CustomerID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.GuestsCount,
		&booking.BreakfastCount,
		&booking.LunchCount,
		&booking.DinnerCount,
		&booking.DiscountNights,
		&booking.DiscountRepeat,
		&booking.TotalAmount,
		&booking.FinalAmount,
		&booking.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
