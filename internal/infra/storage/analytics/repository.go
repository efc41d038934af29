package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/domain"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/dbmetrics"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/psqlbuilder"
)

// DBExecutor алиас интерфейса исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий аналитических запросов
// Только чтение: агрегации по бронированиям для отчётов администратора
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аналитики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IncomeByCategory возвращает доход по категориям номеров за период
// Отменённые бронирования в доход не входят
func (r *Repository) IncomeByCategory(ctx context.Context, start, end *time.Time) ([]*domain.CategoryIncome, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"c.name",
		"COALESCE(SUM(b.final_amount), 0) AS income",
	).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Join("categories c ON c.id = r.category_id").
		Where(squirrel.NotEq{"b.status": string(domain.StatusCancelled)}).
		GroupBy("c.name").
		OrderBy("income DESC")

	if start != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.start_date": *start})
	}
	if end != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.start_date": *end})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: IncomeByCategory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: IncomeByCategory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.CategoryIncome, 0)
	for rows.Next() {
		var row domain.CategoryIncome
		if err := rows.Scan(&row.CategoryName, &row.Income); err != nil {
			return nil, fmt.Errorf("%w: IncomeByCategory - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: IncomeByCategory - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GuestsByMonth возвращает суммарное количество гостей по месяцам заезда
func (r *Repository) GuestsByMonth(ctx context.Context) ([]*domain.MonthGuests, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"to_char(start_date, 'YYYY-MM') AS month",
		"COALESCE(SUM(guests_count), 0) AS guests",
	).
		From("bookings").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GuestsByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GuestsByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.MonthGuests, 0)
	for rows.Next() {
		var row domain.MonthGuests
		if err := rows.Scan(&row.Month, &row.Guests); err != nil {
			return nil, fmt.Errorf("%w: GuestsByMonth - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GuestsByMonth - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// TopRooms возвращает номера с наибольшим доходом
func (r *Repository) TopRooms(ctx context.Context, limit int) ([]*domain.RoomUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.number",
		"COUNT(b.id) AS bookings_count",
		"COALESCE(SUM(b.final_amount), 0) AS income",
	).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(squirrel.NotEq{"b.status": string(domain.StatusCancelled)}).
		GroupBy("r.id", "r.number").
		OrderBy("income DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TopRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TopRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.RoomUsage, 0)
	for rows.Next() {
		var row domain.RoomUsage
		if err := rows.Scan(&row.RoomID, &row.RoomNumber, &row.BookingsCount, &row.Income); err != nil {
			return nil, fmt.Errorf("%w: TopRooms - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TopRooms - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
